// Package core provides shared types for the Google API client suite.
//
// This package contains:
//   - Error types for every failure class of the call pipeline (transport,
//     structured API errors, raw HTTP failures, decode errors, ...)
//   - Well-known wire types shared across APIs (Date, Money, Status, Empty)
//
// Error types can be used for type assertions to handle specific cases:
//
//	app, err := svc.Customers.Apps.Android.Get(name).Do(ctx)
//	if err != nil {
//	    var apiErr *core.APIError
//	    if errors.As(err, &apiErr) {
//	        // Handle a structured server error, e.g. apiErr.Code == 404
//	    }
//	}
package core

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MOZGIII/google-apis-go/internal/json"
)

// CallError is the base type embedded by the specific error types below.
type CallError struct {
	Message    string      `json:"message"`
	StatusCode int         `json:"statusCode,omitempty"` // HTTP status, 0 when no response was received
	Body       string      `json:"body,omitempty"`       // raw response body when one was captured
	Header     http.Header `json:"-"`
	Cause      error       `json:"-"`
}

func (e *CallError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

func (e *CallError) Unwrap() error {
	return e.Cause
}

// TransportError is returned when the HTTP round trip itself fails (DNS,
// connection reset, TLS, ...). No response was received.
type TransportError struct {
	CallError
}

// NewTransportError creates a new TransportError wrapping cause.
func NewTransportError(cause error) *TransportError {
	return &TransportError{
		CallError: CallError{
			Message: fmt.Sprintf("request failed: %v", cause),
			Cause:   cause,
		},
	}
}

// HTTPError is returned for a non-success response whose body could not be
// parsed as JSON. The raw body is preserved for inspection.
type HTTPError struct {
	CallError
	Status string `json:"status,omitempty"` // e.g. "502 Bad Gateway"
}

// NewHTTPError creates a new HTTPError from a raw response.
func NewHTTPError(statusCode int, status string, header http.Header, body []byte) *HTTPError {
	return &HTTPError{
		CallError: CallError{
			Message:    fmt.Sprintf("unexpected response: %s", status),
			StatusCode: statusCode,
			Body:       string(body),
			Header:     header,
		},
		Status: status,
	}
}

// APIError is returned for a non-success response carrying a JSON body. When
// the body follows the standard Google error envelope the Code, Status,
// Errors and Details fields are populated; any other JSON body is preserved
// raw with Code left zero.
type APIError struct {
	CallError
	Code    int               `json:"code,omitempty"`   // envelope code, usually equal to the HTTP status
	Status  string            `json:"status,omitempty"` // canonical code name, e.g. "NOT_FOUND"
	Errors  []ErrorItem       `json:"errors,omitempty"`
	Details []json.RawMessage `json:"details,omitempty"`
}

// ErrorItem is a single item of an error envelope's "errors" list.
type ErrorItem struct {
	Domain       string `json:"domain,omitempty"`
	Reason       string `json:"reason,omitempty"`
	Message      string `json:"message,omitempty"`
	Location     string `json:"location,omitempty"`
	LocationType string `json:"locationType,omitempty"`
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "server returned an error document"
	}
	if e.Status != "" {
		return fmt.Sprintf("%s: %s (status: %d)", e.Status, msg, e.StatusCode)
	}
	return fmt.Sprintf("%s (status: %d)", msg, e.StatusCode)
}

// DecodeError is returned when a success response body does not decode into
// the expected type. It is never retried: the request succeeded, the payload
// is what it is.
type DecodeError struct {
	CallError
}

// NewDecodeError creates a new DecodeError preserving the offending body.
func NewDecodeError(body []byte, cause error) *DecodeError {
	return &DecodeError{
		CallError: CallError{
			Message: fmt.Sprintf("response decoding failed: %v", cause),
			Body:    string(body),
			Cause:   cause,
		},
	}
}

// FieldClashError is returned when a caller-supplied additional parameter
// collides with a parameter the operation manages itself. The call aborts
// before any network I/O.
type FieldClashError struct {
	Field string `json:"field"`
}

func (e *FieldClashError) Error() string {
	return fmt.Sprintf("parameter %q is managed by this call and cannot be overridden", e.Field)
}

// MissingTokenError is returned when no usable access token could be
// acquired for the operation's scope set.
type MissingTokenError struct {
	Scopes []string `json:"scopes,omitempty"`
	Cause  error    `json:"-"`
}

func (e *MissingTokenError) Error() string {
	if len(e.Scopes) > 0 {
		return fmt.Sprintf("no access token for scopes [%s]: %v", strings.Join(e.Scopes, " "), e.Cause)
	}
	return fmt.Sprintf("no access token: %v", e.Cause)
}

func (e *MissingTokenError) Unwrap() error {
	return e.Cause
}

// UploadLimitError is returned when a request payload exceeds the
// operation's declared maximum size. The check happens before any I/O.
type UploadLimitError struct {
	Size  int64 `json:"size"`
	Limit int64 `json:"limit"`
}

func (e *UploadLimitError) Error() string {
	return fmt.Sprintf("payload of %d bytes exceeds the %d byte limit", e.Size, e.Limit)
}

// CancelledError is returned when the call was aborted through its context,
// including cancellations that interrupt a retry backoff sleep.
type CancelledError struct {
	Cause error `json:"-"`
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("call cancelled: %v", e.Cause)
}

func (e *CancelledError) Unwrap() error {
	return e.Cause
}

// errorEnvelope is the standard Google error document.
type errorEnvelope struct {
	Error struct {
		Code    int               `json:"code"`
		Message string            `json:"message"`
		Status  string            `json:"status"`
		Errors  []ErrorItem       `json:"errors"`
		Details []json.RawMessage `json:"details"`
	} `json:"error"`
}

// ParseErrorResponse classifies a non-success response. A body that is valid
// JSON produces an *APIError (envelope fields populated when present); any
// other body produces an *HTTPError carrying the raw bytes.
func ParseErrorResponse(resp *http.Response, body []byte) error {
	if !json.Valid(body) {
		return NewHTTPError(resp.StatusCode, resp.Status, resp.Header, body)
	}

	apiErr := &APIError{
		CallError: CallError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Header:     resp.Header,
		},
	}
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil {
		apiErr.Message = env.Error.Message
		apiErr.Code = env.Error.Code
		apiErr.Status = env.Error.Status
		apiErr.Errors = env.Error.Errors
		apiErr.Details = env.Error.Details
	}
	if apiErr.Message == "" {
		apiErr.Message = resp.Status
	}
	return apiErr
}

// IsRetryable reports whether the error is a transient failure worth
// retrying: transport errors and HTTP 408/429/5xx responses. Decode errors,
// field clashes and cancellations are never retryable.
func IsRetryable(err error) bool {
	var transport *TransportError
	if errors.As(err, &transport) {
		return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}
	return IsRetryableStatus(statusOf(err))
}

// IsRetryableStatus reports whether an HTTP status code signals a transient
// failure.
func IsRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests ||
		status == http.StatusRequestTimeout ||
		status >= 500
}

func statusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

// RetryAfter parses a Retry-After header, which is either a delay in whole
// seconds or an HTTP date. It returns 0 when absent or unparseable.
func RetryAfter(h http.Header) time.Duration {
	v := h.Get("Retry-After")
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
