package auth

import (
	"context"
	"sort"
	"strings"
	"sync"

	"golang.org/x/oauth2"
)

// SourceProvider bridges a single golang.org/x/oauth2 TokenSource to the
// TokenProvider contract. The source is expected to have been constructed
// for the scopes it will serve; the requested scope set is not re-checked.
type SourceProvider struct {
	ts oauth2.TokenSource
}

// FromTokenSource creates a provider backed by ts. Wrap the source with
// oauth2.ReuseTokenSource if token caching is wanted; the pipeline will call
// Token on every attempt.
func FromTokenSource(ts oauth2.TokenSource) *SourceProvider {
	return &SourceProvider{ts: ts}
}

// Token returns the source's current token.
func (s *SourceProvider) Token(ctx context.Context, scopes []string) (*oauth2.Token, error) {
	if s.ts == nil {
		return nil, ErrNoCredentials
	}
	return s.ts.Token()
}

// ScopedProvider builds one TokenSource per distinct scope set, on demand,
// and reuses it for subsequent calls with the same set. This matches how
// Google credentials are minted: the scope set is fixed when the source is
// created, not per token fetch.
type ScopedProvider struct {
	factory func(scopes ...string) oauth2.TokenSource

	mu      sync.Mutex
	sources map[string]oauth2.TokenSource
}

// Scoped creates a provider around a per-scope-set source factory.
//
// Example:
//
//	provider := auth.Scoped(func(scopes ...string) oauth2.TokenSource {
//	    return cfg.TokenSource(ctx, token) // or a service-account JWT source
//	})
func Scoped(factory func(scopes ...string) oauth2.TokenSource) *ScopedProvider {
	return &ScopedProvider{
		factory: factory,
		sources: make(map[string]oauth2.TokenSource),
	}
}

// Token fetches a token from the source for the given scope set, creating
// the source on first use.
func (p *ScopedProvider) Token(ctx context.Context, scopes []string) (*oauth2.Token, error) {
	if p.factory == nil {
		return nil, ErrNoCredentials
	}

	key := scopeKey(scopes)
	p.mu.Lock()
	ts, ok := p.sources[key]
	if !ok {
		ts = p.factory(scopes...)
		p.sources[key] = ts
	}
	p.mu.Unlock()

	if ts == nil {
		return nil, ErrNoCredentials
	}
	return ts.Token()
}

// scopeKey canonicalizes a scope set: order does not change the credential.
func scopeKey(scopes []string) string {
	if len(scopes) < 2 {
		return strings.Join(scopes, " ")
	}
	sorted := make([]string, len(scopes))
	copy(sorted, scopes)
	sort.Strings(sorted)
	return strings.Join(sorted, " ")
}
