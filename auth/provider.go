// Package auth provides access-token plumbing for the Google API client
// suite.
//
// Google APIs accept OAuth2 bearer tokens scoped to the operation being
// called. This package defines the TokenProvider contract the call pipeline
// consumes and a set of providers covering the common cases:
//
//   - [Static]: a fixed access token (gcloud auth print-access-token, tests)
//   - [FromTokenSource]: any golang.org/x/oauth2 TokenSource
//   - [Scoped]: a per-scope-set TokenSource factory with source reuse
//   - [FromEnv]: a token read from the environment at call time
//
// # Static token
//
//	provider := auth.Static(os.Getenv("GOOGLE_ACCESS_TOKEN"))
//	rt, _ := client.New(client.WithTokenProvider(provider))
//
// # oauth2 TokenSource
//
//	cfg := &oauth2.Config{ /* client id, secret, endpoint */ }
//	provider := auth.FromTokenSource(cfg.TokenSource(ctx, savedToken))
//
// Token refresh and caching belong to the underlying source (for example
// oauth2.ReuseTokenSource); the call pipeline itself never caches tokens.
//
// API keys are not tokens: they travel as the "key" query parameter and are
// configured on the client runtime directly (client.WithAPIKey).
package auth

import (
	"context"
	"errors"

	"golang.org/x/oauth2"
)

// ErrNoCredentials is returned by providers that have nothing to offer for
// the requested scopes.
var ErrNoCredentials = errors.New("auth: no credentials configured")

// TokenProvider supplies an access token covering the given scope set.
//
// Implementations must be safe for concurrent use. The scopes slice is the
// operation's effective scope set and may be empty only for providers that
// issue scope-agnostic tokens.
type TokenProvider interface {
	Token(ctx context.Context, scopes []string) (*oauth2.Token, error)
}

// TokenProviderFunc adapts a function to the TokenProvider interface.
type TokenProviderFunc func(ctx context.Context, scopes []string) (*oauth2.Token, error)

// Token calls f.
func (f TokenProviderFunc) Token(ctx context.Context, scopes []string) (*oauth2.Token, error) {
	return f(ctx, scopes)
}

// StaticProvider serves one fixed access token regardless of scopes.
type StaticProvider struct {
	token oauth2.Token
}

// Static creates a provider around a fixed access token. The token is
// assumed to already cover every scope it will be used with.
//
// Example:
//
//	provider := auth.Static("ya29.a0AfH6...")
func Static(accessToken string) *StaticProvider {
	return &StaticProvider{token: oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}}
}

// Token returns the fixed token, or ErrNoCredentials when it is empty.
func (s *StaticProvider) Token(ctx context.Context, scopes []string) (*oauth2.Token, error) {
	if s.token.AccessToken == "" {
		return nil, ErrNoCredentials
	}
	tok := s.token
	return &tok, nil
}

// NoProvider always fails with ErrNoCredentials. It is the explicit form of
// "this client cannot authenticate" and is what unauthenticated callers hit
// when an operation does require scopes.
type NoProvider struct{}

// None creates a provider without credentials.
func None() *NoProvider {
	return &NoProvider{}
}

// Token always returns ErrNoCredentials.
func (*NoProvider) Token(ctx context.Context, scopes []string) (*oauth2.Token, error) {
	return nil, ErrNoCredentials
}
