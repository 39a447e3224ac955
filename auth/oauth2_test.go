package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/oauth2"
)

type fakeTokenSource struct {
	token *oauth2.Token
	err   error
	calls int
}

func (f *fakeTokenSource) Token() (*oauth2.Token, error) {
	f.calls++
	return f.token, f.err
}

func TestFromTokenSource(t *testing.T) {
	src := &fakeTokenSource{token: &oauth2.Token{AccessToken: "source-token"}}
	provider := FromTokenSource(src)

	tok, err := provider.Token(context.Background(), []string{"scope"})
	if err != nil {
		t.Fatalf("Token() error: %v", err)
	}
	if tok.AccessToken != "source-token" {
		t.Errorf("AccessToken = %q, want 'source-token'", tok.AccessToken)
	}
	if src.calls != 1 {
		t.Errorf("source calls = %d, want 1", src.calls)
	}
}

func TestFromTokenSourceNil(t *testing.T) {
	provider := FromTokenSource(nil)

	_, err := provider.Token(context.Background(), nil)
	if !errors.Is(err, ErrNoCredentials) {
		t.Errorf("Token() error = %v, want ErrNoCredentials", err)
	}
}

func TestFromTokenSourcePropagatesError(t *testing.T) {
	srcErr := errors.New("refresh failed")
	provider := FromTokenSource(&fakeTokenSource{err: srcErr})

	_, err := provider.Token(context.Background(), nil)
	if !errors.Is(err, srcErr) {
		t.Errorf("Token() error = %v, want the source error", err)
	}
}

func TestScopedReusesSourcePerScopeSet(t *testing.T) {
	created := 0
	provider := Scoped(func(scopes ...string) oauth2.TokenSource {
		created++
		return &fakeTokenSource{token: &oauth2.Token{AccessToken: "tok"}}
	})

	ctx := context.Background()
	if _, err := provider.Token(ctx, []string{"b", "a"}); err != nil {
		t.Fatalf("Token() error: %v", err)
	}
	// Same set in a different order must hit the same source.
	if _, err := provider.Token(ctx, []string{"a", "b"}); err != nil {
		t.Fatalf("Token() error: %v", err)
	}
	if created != 1 {
		t.Errorf("factory invocations = %d, want 1", created)
	}

	if _, err := provider.Token(ctx, []string{"c"}); err != nil {
		t.Fatalf("Token() error: %v", err)
	}
	if created != 2 {
		t.Errorf("factory invocations = %d, want 2 after a new scope set", created)
	}
}

func TestScopedNilFactory(t *testing.T) {
	provider := &ScopedProvider{}

	_, err := provider.Token(context.Background(), []string{"scope"})
	if !errors.Is(err, ErrNoCredentials) {
		t.Errorf("Token() error = %v, want ErrNoCredentials", err)
	}
}
