package core

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestErrorString(t *testing.T) {
	t.Run("Error() with status", func(t *testing.T) {
		err := &CallError{
			Message:    "unexpected response",
			StatusCode: 502,
		}

		expected := "unexpected response (status: 502)"
		if err.Error() != expected {
			t.Errorf("Error() = %q, want %q", err.Error(), expected)
		}
	})

	t.Run("Error() without status", func(t *testing.T) {
		err := &CallError{Message: "request failed: connection refused"}

		expected := "request failed: connection refused"
		if err.Error() != expected {
			t.Errorf("Error() = %q, want %q", err.Error(), expected)
		}
	})

	t.Run("Unwrap() returns cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := NewTransportError(cause)

		if !errors.Is(err, cause) {
			t.Errorf("errors.Is(err, cause) = false, want true")
		}
	})
}

func TestAPIErrorString(t *testing.T) {
	t.Run("with canonical status", func(t *testing.T) {
		err := &APIError{
			CallError: CallError{Message: "Budget not found.", StatusCode: 404},
			Code:      404,
			Status:    "NOT_FOUND",
		}

		expected := "NOT_FOUND: Budget not found. (status: 404)"
		if err.Error() != expected {
			t.Errorf("Error() = %q, want %q", err.Error(), expected)
		}
	})

	t.Run("without canonical status", func(t *testing.T) {
		err := &APIError{
			CallError: CallError{Message: "backend error", StatusCode: 500},
		}

		expected := "backend error (status: 500)"
		if err.Error() != expected {
			t.Errorf("Error() = %q, want %q", err.Error(), expected)
		}
	})
}

func TestFieldClashError(t *testing.T) {
	err := &FieldClashError{Field: "alt"}

	expected := `parameter "alt" is managed by this call and cannot be overridden`
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestMissingTokenError(t *testing.T) {
	cause := errors.New("no credentials configured")
	err := &MissingTokenError{
		Scopes: []string{"https://www.googleapis.com/auth/cloud-billing"},
		Cause:  cause,
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
	expected := "no access token for scopes [https://www.googleapis.com/auth/cloud-billing]: no credentials configured"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestUploadLimitError(t *testing.T) {
	err := &UploadLimitError{Size: 2048, Limit: 1024}

	expected := "payload of 2048 bytes exceeds the 1024 byte limit"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestCancelledErrorUnwrap(t *testing.T) {
	err := &CancelledError{Cause: context.Canceled}

	if !errors.Is(err, context.Canceled) {
		t.Errorf("errors.Is(err, context.Canceled) = false, want true")
	}
}

func TestParseErrorResponse(t *testing.T) {
	t.Run("standard envelope returns APIError", func(t *testing.T) {
		body := `{"error": {"code": 404, "message": "Budget not found.", "status": "NOT_FOUND",
			"errors": [{"domain": "global", "reason": "notFound", "message": "Budget not found."}]}}`
		resp := &http.Response{
			StatusCode: 404,
			Status:     "404 Not Found",
			Header:     http.Header{},
		}

		err := ParseErrorResponse(resp, []byte(body))

		apiErr, ok := err.(*APIError)
		if !ok {
			t.Fatalf("expected *APIError, got %T", err)
		}
		if apiErr.Code != 404 {
			t.Errorf("Code = %d, want 404", apiErr.Code)
		}
		if apiErr.Message != "Budget not found." {
			t.Errorf("Message = %q, want 'Budget not found.'", apiErr.Message)
		}
		if apiErr.Status != "NOT_FOUND" {
			t.Errorf("Status = %q, want 'NOT_FOUND'", apiErr.Status)
		}
		if len(apiErr.Errors) != 1 || apiErr.Errors[0].Reason != "notFound" {
			t.Errorf("Errors = %+v, want one item with reason 'notFound'", apiErr.Errors)
		}
		if apiErr.StatusCode != 404 {
			t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
		}
	})

	t.Run("non-envelope JSON still returns APIError", func(t *testing.T) {
		body := `{"unexpected": "shape"}`
		resp := &http.Response{
			StatusCode: 400,
			Status:     "400 Bad Request",
			Header:     http.Header{},
		}

		err := ParseErrorResponse(resp, []byte(body))

		apiErr, ok := err.(*APIError)
		if !ok {
			t.Fatalf("expected *APIError, got %T", err)
		}
		if apiErr.Code != 0 {
			t.Errorf("Code = %d, want 0", apiErr.Code)
		}
		if apiErr.Message != "400 Bad Request" {
			t.Errorf("Message = %q, want status fallback", apiErr.Message)
		}
		if apiErr.Body != body {
			t.Errorf("Body = %q, want raw body preserved", apiErr.Body)
		}
	})

	t.Run("unparseable body returns HTTPError with raw body", func(t *testing.T) {
		body := "<html><body>Bad Gateway</body></html>"
		resp := &http.Response{
			StatusCode: 502,
			Status:     "502 Bad Gateway",
			Header:     http.Header{"Content-Type": []string{"text/html"}},
		}

		err := ParseErrorResponse(resp, []byte(body))

		httpErr, ok := err.(*HTTPError)
		if !ok {
			t.Fatalf("expected *HTTPError, got %T", err)
		}
		if httpErr.StatusCode != 502 {
			t.Errorf("StatusCode = %d, want 502", httpErr.StatusCode)
		}
		if httpErr.Body != body {
			t.Errorf("Body = %q, want raw body preserved", httpErr.Body)
		}
		if httpErr.Status != "502 Bad Gateway" {
			t.Errorf("Status = %q, want '502 Bad Gateway'", httpErr.Status)
		}
	})
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "transport error is retryable",
			err:      NewTransportError(errors.New("connection reset")),
			expected: true,
		},
		{
			name:     "transport error from cancellation is not retryable",
			err:      NewTransportError(fmt.Errorf("round trip: %w", context.Canceled)),
			expected: false,
		},
		{
			name:     "429 is retryable",
			err:      &APIError{CallError: CallError{StatusCode: 429}},
			expected: true,
		},
		{
			name:     "503 HTTPError is retryable",
			err:      NewHTTPError(503, "503 Service Unavailable", http.Header{}, nil),
			expected: true,
		},
		{
			name:     "404 is not retryable",
			err:      &APIError{CallError: CallError{StatusCode: 404}},
			expected: false,
		},
		{
			name:     "decode error is not retryable",
			err:      NewDecodeError([]byte(`[]`), errors.New("cannot unmarshal array")),
			expected: false,
		},
		{
			name:     "field clash is not retryable",
			err:      &FieldClashError{Field: "alt"},
			expected: false,
		},
		{
			name:     "missing token is not retryable",
			err:      &MissingTokenError{Cause: errors.New("no credentials")},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsRetryable(tt.err)
			if result != tt.expected {
				t.Errorf("IsRetryable() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestRetryAfter(t *testing.T) {
	t.Run("seconds", func(t *testing.T) {
		h := http.Header{}
		h.Set("Retry-After", "30")

		if got := RetryAfter(h); got != 30*time.Second {
			t.Errorf("RetryAfter() = %v, want 30s", got)
		}
	})

	t.Run("HTTP date", func(t *testing.T) {
		h := http.Header{}
		h.Set("Retry-After", time.Now().Add(10*time.Second).UTC().Format(http.TimeFormat))

		got := RetryAfter(h)
		if got <= 0 || got > 10*time.Second {
			t.Errorf("RetryAfter() = %v, want a positive duration up to 10s", got)
		}
	})

	t.Run("absent", func(t *testing.T) {
		if got := RetryAfter(http.Header{}); got != 0 {
			t.Errorf("RetryAfter() = %v, want 0", got)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		h := http.Header{}
		h.Set("Retry-After", "soon")

		if got := RetryAfter(h); got != 0 {
			t.Errorf("RetryAfter() = %v, want 0", got)
		}
	})

	t.Run("negative seconds", func(t *testing.T) {
		h := http.Header{}
		h.Set("Retry-After", "-5")

		if got := RetryAfter(h); got != 0 {
			t.Errorf("RetryAfter() = %v, want 0", got)
		}
	})
}
