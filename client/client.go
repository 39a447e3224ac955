// Package client implements the request pipeline shared by every API
// package: ordered call parameters, URI template expansion, authenticated
// dispatch with retry and observation hooks, and typed JSON decoding.
package client

import (
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/MOZGIII/google-apis-go/auth"
	"github.com/MOZGIII/google-apis-go/internal/transport"
)

// Version is reported in the default User-Agent.
const Version = "0.1.0"

const defaultUserAgent = "google-apis-go/" + Version

// Client is the runtime shared by every API package. It owns the HTTP
// client, the credentials, and the defaults applied to calls that do not
// override them. A single Client is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	provider   auth.TokenProvider
	userAgent  string
	apiKey     string
	delegate   Delegate
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for all requests. Without it the
// tuned default transport with response decompression is used.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseTransport builds the HTTP client from a tuned transport with the
// given configuration, keeping the default decompression layer.
func WithBaseTransport(cfg transport.Config) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{
			Transport: transport.Decompression(transport.Base(cfg)),
		}
	}
}

// WithTokenProvider sets the credential source consulted for operations
// that require OAuth scopes.
func WithTokenProvider(p auth.TokenProvider) Option {
	return func(c *Client) {
		c.provider = p
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithAPIKey sets the API key injected as the "key" parameter on operations
// that declare no OAuth scopes.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithDelegate sets the default delegate for calls that do not carry their
// own. The zero Delegate performs no retries and reports nothing.
func WithDelegate(d Delegate) Option {
	return func(c *Client) {
		c.delegate = d
	}
}

// WithRateLimit throttles outgoing attempts to rps requests per second with
// the given burst size.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithLogger attaches a logger; every call then emits lifecycle records
// correlated by a per-call id.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client. Without options it uses the default transport, no
// credentials, and performs no retries.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		provider:  auth.None(),
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.limiter != nil && (c.limiter.Limit() <= 0 || c.limiter.Burst() < 1) {
		return nil, fmt.Errorf("rate limit must allow at least one request, got %v req/s with burst %d",
			c.limiter.Limit(), c.limiter.Burst())
	}
	if c.provider == nil {
		c.provider = auth.None()
	}
	if c.userAgent == "" {
		c.userAgent = defaultUserAgent
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Transport: transport.Decompression(transport.Base(transport.Config{})),
		}
	}
	return c, nil
}
