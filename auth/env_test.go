package auth

import (
	"context"
	"errors"
	"testing"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("GOOGLE_ACCESS_TOKEN", "env-token")

	provider := FromEnv()
	tok, err := provider.Token(context.Background(), nil)
	if err != nil {
		t.Fatalf("Token() error: %v", err)
	}
	if tok.AccessToken != "env-token" {
		t.Errorf("AccessToken = %q, want 'env-token'", tok.AccessToken)
	}
}

func TestFromEnvFirstNonEmptyWins(t *testing.T) {
	t.Setenv("PRIMARY_TOKEN", "")
	t.Setenv("FALLBACK_TOKEN", "fallback")

	provider := FromEnv("PRIMARY_TOKEN", "FALLBACK_TOKEN")
	tok, err := provider.Token(context.Background(), nil)
	if err != nil {
		t.Fatalf("Token() error: %v", err)
	}
	if tok.AccessToken != "fallback" {
		t.Errorf("AccessToken = %q, want 'fallback'", tok.AccessToken)
	}
}

func TestFromEnvUnset(t *testing.T) {
	t.Setenv("GOOGLE_ACCESS_TOKEN", "")

	provider := FromEnv()
	_, err := provider.Token(context.Background(), nil)
	if !errors.Is(err, ErrNoCredentials) {
		t.Errorf("Token() error = %v, want ErrNoCredentials", err)
	}
}
