// Package googleapis is a suite of typed Go clients for Google REST APIs.
//
// One shared runtime (package client) implements the whole request
// pipeline: ordered parameter assembly with clash detection, URI template
// expansion with reserved-expansion semantics, authenticated dispatch with
// pluggable retry policy and progress observation, and typed JSON decoding
// with a structured error taxonomy (package core). The per-API packages
// (chromemanagement, billingbudgets, customsearch) are thin typed surfaces
// over that runtime.
//
// Basic usage with a static access token:
//
//	rt, err := googleapis.New(
//	    googleapis.WithTokenProvider(auth.Static(os.Getenv("GOOGLE_ACCESS_TOKEN"))),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svc := chromemanagement.New(rt)
//	app, err := svc.Customers.Apps.Android.
//	    Get("customers/my_customer/apps/android/com.google.android.apps.docs").
//	    Do(ctx)
//
// With opt-in retries and a rate limit:
//
//	rt, err := googleapis.New(
//	    googleapis.WithTokenProvider(provider),
//	    googleapis.WithDelegate(googleapis.Delegate{RetryPolicy: &googleapis.Backoff{MaxRetries: 5}}),
//	    googleapis.WithRateLimit(10, 2), // 10 req/s, burst 2
//	)
//
// API-key APIs need no token provider:
//
//	rt, err := googleapis.New(googleapis.WithAPIKey(os.Getenv("GOOGLE_API_KEY")))
//	svc := customsearch.New(rt)
//
// Errors carry their full context as types in package core:
//
//	var apiErr *core.APIError
//	if errors.As(err, &apiErr) && apiErr.Code == 404 {
//	    // handle not-found
//	}
package googleapis

import (
	"github.com/MOZGIII/google-apis-go/client"
)

// Version of the module, reported in the default User-Agent.
const Version = client.Version

// Client is the runtime shared by every API package.
type Client = client.Client

// Option configures the runtime.
type Option = client.Option

// Delegate composes a retry policy with progress observation hooks. The
// zero value performs no retries and reports nothing.
type Delegate = client.Delegate

// NoRetry is the default retry policy: every failure is terminal.
type NoRetry = client.NoRetry

// Backoff is the opt-in lenient retry policy: exponential backoff with
// jitter on transient failures.
type Backoff = client.Backoff

// New creates a runtime. See the client package for the full option list.
func New(opts ...Option) (*Client, error) {
	return client.New(opts...)
}

// Re-exported runtime options.
var (
	WithHTTPClient    = client.WithHTTPClient
	WithBaseTransport = client.WithBaseTransport
	WithTokenProvider = client.WithTokenProvider
	WithUserAgent     = client.WithUserAgent
	WithAPIKey        = client.WithAPIKey
	WithDelegate      = client.WithDelegate
	WithRateLimit     = client.WithRateLimit
	WithLogger        = client.WithLogger
)
