package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MOZGIII/google-apis-go/core"
	"github.com/MOZGIII/google-apis-go/internal/json"
)

// Operation describes one REST method of an API surface: its identifier,
// HTTP verb, URI template, and the OAuth scopes it accepts.
type Operation struct {
	// ID names the method the way the discovery document does, for example
	// "chromemanagement.customers.apps.android.get".
	ID string

	// Method is the HTTP verb.
	Method string

	// Path is a URI template relative to the base URL. {name} expands with
	// full percent-encoding; {+name} keeps "/" separators literal.
	Path string

	// Scopes lists the OAuth scopes the method accepts. An empty list marks
	// a public method authorized by API key.
	Scopes []string

	// MaxBody caps the encoded request payload in bytes. Zero means no cap.
	MaxBody int64
}

// Call is a single invocation of an Operation. API packages construct one,
// fill in parameters and an optional body, and Do it. A Call is not safe
// for concurrent use.
type Call[T any] struct {
	client  *Client
	baseURL string
	op      Operation

	params   *Params
	extra    *Params
	header   http.Header
	body     any
	delegate *Delegate
}

// NewCall prepares an invocation of op against baseURL using c's
// credentials and defaults.
func NewCall[T any](c *Client, baseURL string, op Operation) *Call[T] {
	return &Call[T]{
		client:  c,
		baseURL: baseURL,
		op:      op,
		params:  NewParams(),
		extra:   NewParams(),
	}
}

// Param sets a call-managed parameter, replacing any previous value. Path
// variables and the typed query setters of the API packages land here.
func (c *Call[T]) Param(key, value string) *Call[T] {
	c.params.Set(key, value)
	return c
}

// AddParam appends a repeated call-managed parameter.
func (c *Call[T]) AddParam(key, value string) *Call[T] {
	c.params.Add(key, value)
	return c
}

// Extra appends a caller-supplied parameter that no typed setter covers.
// Keys colliding with call-managed parameters fail Do with
// *core.FieldClashError before any request is sent.
func (c *Call[T]) Extra(key, value string) *Call[T] {
	c.extra.Add(key, value)
	return c
}

// Body sets the request payload, encoded as JSON.
func (c *Call[T]) Body(v any) *Call[T] {
	c.body = v
	return c
}

// Scopes replaces the operation's scope set. With no arguments the set is
// emptied, which drops the Authorization header and makes the call rely on
// an API key.
func (c *Call[T]) Scopes(scopes ...string) *Call[T] {
	c.op.Scopes = scopes
	return c
}

// AddScope appends a scope to the operation's scope set.
func (c *Call[T]) AddScope(scope string) *Call[T] {
	c.op.Scopes = append(c.op.Scopes, scope)
	return c
}

// ClearScopes empties the scope set, switching the call to API-key mode.
func (c *Call[T]) ClearScopes() *Call[T] {
	c.op.Scopes = nil
	return c
}

// Header sets an extra request header sent with every attempt.
func (c *Call[T]) Header(key, value string) *Call[T] {
	if c.header == nil {
		c.header = make(http.Header)
	}
	c.header.Set(key, value)
	return c
}

// Delegate overrides the client's default delegate for this call only.
func (c *Call[T]) Delegate(d Delegate) *Call[T] {
	c.delegate = &d
	return c
}

// Do executes the call and decodes the response into T.
//
// The pipeline is: validate caller parameters, assemble the URL from the
// operation's template, then attempt the request until the delegate's
// retry policy declines. Every error surfaces as one of the core error
// types; a response that was received but failed to decode is never
// retried.
func (c *Call[T]) Do(ctx context.Context) (T, error) {
	d := c.effectiveDelegate()
	d.Begin(c.op)
	v, err := c.run(ctx, d)
	d.Finished(err == nil)
	return v, err
}

// effectiveDelegate resolves the delegate for this call: the call override
// if present, else the client default, with nil halves filled in and the
// client logger attached as an extra observer.
func (c *Call[T]) effectiveDelegate() Delegate {
	d := c.client.delegate
	if c.delegate != nil {
		d = *c.delegate
	}
	if d.RetryPolicy == nil {
		d.RetryPolicy = NoRetry{}
	}
	if d.ProgressObserver == nil {
		d.ProgressObserver = nopObserver{}
	}
	if c.client.logger != nil {
		d.ProgressObserver = multiObserver{newLogObserver(c.client.logger, c.op), d.ProgressObserver}
	}
	return d
}

func (c *Call[T]) run(ctx context.Context, d Delegate) (T, error) {
	var zero T

	for _, key := range c.extra.Keys() {
		if c.params.Has(key) || key == "alt" {
			return zero, &core.FieldClashError{Field: key}
		}
	}

	params := c.params.Clone()
	for _, key := range c.extra.Keys() {
		for _, value := range c.extra.Values(key) {
			params.Add(key, value)
		}
	}
	if c.client.apiKey != "" && len(c.op.Scopes) == 0 && !params.Has("key") {
		params.Set("key", c.client.apiKey)
	}
	params.Set("alt", "json")

	path, err := expandPath(c.op.Path, params)
	if err != nil {
		return zero, err
	}
	url := joinURL(c.baseURL, path)
	if q := params.Encode(); q != "" {
		url += "?" + q
	}

	var payload []byte
	if c.body != nil {
		payload, err = json.Marshal(c.body)
		if err != nil {
			return zero, fmt.Errorf("encoding request body: %w", err)
		}
		if c.op.MaxBody > 0 && int64(len(payload)) > c.op.MaxBody {
			return zero, &core.UploadLimitError{Size: int64(len(payload)), Limit: c.op.MaxBody}
		}
	}

	for attempt := 1; ; attempt++ {
		if c.client.limiter != nil {
			if err := c.client.limiter.Wait(ctx); err != nil {
				if ctx.Err() != nil {
					return zero, &core.CancelledError{Cause: ctx.Err()}
				}
				return zero, fmt.Errorf("rate limiter: %w", err)
			}
		}

		req, err := c.newRequest(ctx, url, payload, d)
		if err != nil {
			return zero, err
		}

		d.PreRequest(req)

		resp, err := c.client.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return zero, &core.CancelledError{Cause: err}
			}
			terr := core.NewTransportError(err)
			if delay, retry := d.HTTPError(attempt, terr); retry {
				if err := sleepCtx(ctx, delay); err != nil {
					return zero, &core.CancelledError{Cause: err}
				}
				continue
			}
			return zero, terr
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			if ctx.Err() != nil {
				return zero, &core.CancelledError{Cause: err}
			}
			terr := core.NewTransportError(err)
			if delay, retry := d.HTTPError(attempt, terr); retry {
				if err := sleepCtx(ctx, delay); err != nil {
					return zero, &core.CancelledError{Cause: err}
				}
				continue
			}
			return zero, terr
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			ferr := core.ParseErrorResponse(resp, body)
			retryAfter := core.RetryAfter(resp.Header)
			if delay, retry := d.HTTPFailure(attempt, resp.StatusCode, retryAfter, ferr); retry {
				if err := sleepCtx(ctx, delay); err != nil {
					return zero, &core.CancelledError{Cause: err}
				}
				continue
			}
			return zero, ferr
		}

		var out T
		if err := json.Unmarshal(body, &out); err != nil {
			d.DecodeError(body, err)
			return zero, core.NewDecodeError(body, err)
		}
		return out, nil
	}
}

// newRequest builds one attempt: fresh body reader, standard headers, and
// an access token when the operation declares scopes.
func (c *Call[T]) newRequest(ctx context.Context, url string, payload []byte, d Delegate) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, c.op.Method, url, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", c.client.userAgent)
	req.Header.Set("X-Goog-Api-Client", defaultUserAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range c.header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	if len(c.op.Scopes) > 0 {
		tok, err := c.client.provider.Token(ctx, c.op.Scopes)
		if err != nil {
			fallback, ok := d.Token(err)
			if !ok {
				return nil, &core.MissingTokenError{Scopes: c.op.Scopes, Cause: err}
			}
			tok = fallback
		}
		if tok != nil {
			tok.SetAuthHeader(req)
		}
	}
	return req, nil
}

// joinURL joins the service base URL and an expanded template path without
// doubling or dropping the separator.
func joinURL(base, path string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

// sleepCtx sleeps for d unless the context ends first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
