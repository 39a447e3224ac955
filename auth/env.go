package auth

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
)

// DefaultTokenEnvVar is the environment variable FromEnv reads when no
// explicit variables are given.
const DefaultTokenEnvVar = "GOOGLE_ACCESS_TOKEN"

// EnvProvider reads an access token from the environment on every call, so
// a token rotated by an external process (a credential helper writing the
// variable, a test) is picked up without rebuilding the client.
type EnvProvider struct {
	vars []string
}

// FromEnv creates a provider reading the first non-empty variable of vars,
// defaulting to GOOGLE_ACCESS_TOKEN.
//
// Example:
//
//	provider := auth.FromEnv() // GOOGLE_ACCESS_TOKEN
//	provider = auth.FromEnv("MY_TOKEN", "GOOGLE_ACCESS_TOKEN")
func FromEnv(vars ...string) *EnvProvider {
	if len(vars) == 0 {
		vars = []string{DefaultTokenEnvVar}
	}
	return &EnvProvider{vars: vars}
}

// Token returns a bearer token from the environment.
func (p *EnvProvider) Token(ctx context.Context, scopes []string) (*oauth2.Token, error) {
	for _, v := range p.vars {
		if val := os.Getenv(v); val != "" {
			return &oauth2.Token{AccessToken: val, TokenType: "Bearer"}, nil
		}
	}
	return nil, fmt.Errorf("auth: none of %v is set: %w", p.vars, ErrNoCredentials)
}
