package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/oauth2"
)

func TestStatic(t *testing.T) {
	provider := Static("test-token-123")

	tok, err := provider.Token(context.Background(), []string{"https://www.googleapis.com/auth/cloud-billing"})
	if err != nil {
		t.Fatalf("Token() error: %v", err)
	}
	if tok.AccessToken != "test-token-123" {
		t.Errorf("AccessToken = %q, want 'test-token-123'", tok.AccessToken)
	}
	if tok.Type() != "Bearer" {
		t.Errorf("Type() = %q, want 'Bearer'", tok.Type())
	}
}

func TestStaticEmptyToken(t *testing.T) {
	provider := Static("")

	_, err := provider.Token(context.Background(), nil)
	if !errors.Is(err, ErrNoCredentials) {
		t.Errorf("Token() error = %v, want ErrNoCredentials", err)
	}
}

func TestTokenProviderFunc(t *testing.T) {
	var gotScopes []string
	provider := TokenProviderFunc(func(ctx context.Context, scopes []string) (*oauth2.Token, error) {
		gotScopes = scopes
		return &oauth2.Token{AccessToken: "from-func"}, nil
	})

	tok, err := provider.Token(context.Background(), []string{"scope-a", "scope-b"})
	if err != nil {
		t.Fatalf("Token() error: %v", err)
	}
	if tok.AccessToken != "from-func" {
		t.Errorf("AccessToken = %q, want 'from-func'", tok.AccessToken)
	}
	if len(gotScopes) != 2 || gotScopes[0] != "scope-a" {
		t.Errorf("scopes = %v, want [scope-a scope-b]", gotScopes)
	}
}

func TestNone(t *testing.T) {
	provider := None()

	_, err := provider.Token(context.Background(), []string{"any"})
	if !errors.Is(err, ErrNoCredentials) {
		t.Errorf("Token() error = %v, want ErrNoCredentials", err)
	}
}
