package client

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/MOZGIII/google-apis-go/core"
)

// RetryPolicy decides what happens after a failed attempt. Attempt numbers
// are 1-based: a policy consulted with attempt == 1 is looking at the first
// failure.
type RetryPolicy interface {
	// Token is consulted when token acquisition fails. Returning a token
	// and true retries the attempt with it; returning false aborts the call
	// with a MissingTokenError.
	Token(err error) (*oauth2.Token, bool)

	// HTTPError is consulted when the round trip itself fails. Returning
	// true retries after the given delay.
	HTTPError(attempt int, err error) (time.Duration, bool)

	// HTTPFailure is consulted on a non-success response. retryAfter is the
	// server's Retry-After hint (0 when absent) and err the classified
	// error that will be returned if the policy declines.
	HTTPFailure(attempt int, status int, retryAfter time.Duration, err error) (time.Duration, bool)
}

// ProgressObserver receives pipeline lifecycle hooks. Observers must not
// mutate what they are handed; decisions belong to the RetryPolicy.
type ProgressObserver interface {
	// Begin fires once per call, before validation and I/O.
	Begin(op Operation)

	// PreRequest fires before every attempt is sent.
	PreRequest(req *http.Request)

	// DecodeError fires when a success response failed to decode.
	DecodeError(body []byte, err error)

	// Finished fires exactly once per call, after the outcome is known.
	Finished(ok bool)
}

// Delegate composes the two call-shaping concerns. The zero value is the
// default behavior: no retries, no hooks.
type Delegate struct {
	RetryPolicy
	ProgressObserver
}

// NoRetry is the default policy: every failure is terminal, so a call makes
// exactly one attempt.
type NoRetry struct{}

func (NoRetry) Token(error) (*oauth2.Token, bool) { return nil, false }
func (NoRetry) HTTPError(int, error) (time.Duration, bool) { return 0, false }
func (NoRetry) HTTPFailure(int, int, time.Duration, error) (time.Duration, bool) {
	return 0, false
}

// Backoff retries transient failures (transport errors and HTTP 408/429/5xx)
// with exponential backoff and ±10% jitter. The zero value uses the
// defaults: 3 retries, 1s initial delay, doubling, capped at 30s. A server
// Retry-After hint overrides the computed delay when larger.
type Backoff struct {
	MaxRetries int           // retries after the first attempt (default 3)
	Initial    time.Duration // first delay (default 1s)
	Max        time.Duration // delay ceiling before jitter (default 30s)
	Multiplier float64       // growth factor (default 2)
}

func (b *Backoff) maxRetries() int {
	if b.MaxRetries > 0 {
		return b.MaxRetries
	}
	return 3
}

// Delay returns the backoff for the given 1-based attempt.
func (b *Backoff) Delay(attempt int) time.Duration {
	initial := b.Initial
	if initial <= 0 {
		initial = time.Second
	}
	ceil := b.Max
	if ceil <= 0 {
		ceil = 30 * time.Second
	}
	mult := b.Multiplier
	if mult <= 0 {
		mult = 2
	}

	d := float64(initial) * math.Pow(mult, float64(attempt-1))
	if d > float64(ceil) {
		d = float64(ceil)
	}
	// ±10% jitter keeps simultaneous retries from pulsing in step.
	jitter := (rand.Float64()*0.2 - 0.1) * d
	return time.Duration(d + jitter)
}

// Token declines: Backoff has no substitute credentials.
func (b *Backoff) Token(error) (*oauth2.Token, bool) { return nil, false }

// HTTPError retries transport failures within the retry budget.
func (b *Backoff) HTTPError(attempt int, err error) (time.Duration, bool) {
	if attempt > b.maxRetries() {
		return 0, false
	}
	return b.Delay(attempt), true
}

// HTTPFailure retries transient statuses within the retry budget.
func (b *Backoff) HTTPFailure(attempt int, status int, retryAfter time.Duration, err error) (time.Duration, bool) {
	if attempt > b.maxRetries() || !core.IsRetryableStatus(status) {
		return 0, false
	}
	d := b.Delay(attempt)
	if retryAfter > d {
		d = retryAfter
	}
	return d, true
}

// nopObserver is the default observer.
type nopObserver struct{}

func (nopObserver) Begin(Operation) {}
func (nopObserver) PreRequest(*http.Request) {}
func (nopObserver) DecodeError([]byte, error) {}
func (nopObserver) Finished(bool) {}

// logObserver emits slog records for one call, correlated by a fresh UUID.
// The runtime creates one per call when a logger is configured, so shared
// Delegate values stay stateless.
type logObserver struct {
	log     *slog.Logger
	start   time.Time
	attempt int
}

func newLogObserver(logger *slog.Logger, op Operation) *logObserver {
	return &logObserver{
		log: logger.With(
			slog.String("call", uuid.NewString()),
			slog.String("op", op.ID),
		),
	}
}

func (o *logObserver) Begin(op Operation) {
	o.start = time.Now()
	o.log.Debug("call started", slog.String("method", op.Method), slog.String("path", op.Path))
}

func (o *logObserver) PreRequest(req *http.Request) {
	o.attempt++
	o.log.Debug("sending request",
		slog.Int("attempt", o.attempt),
		slog.String("url", req.URL.String()),
	)
}

func (o *logObserver) DecodeError(body []byte, err error) {
	o.log.Warn("response decode failed",
		slog.Int("bodyBytes", len(body)),
		slog.Any("error", err),
	)
}

func (o *logObserver) Finished(ok bool) {
	o.log.Debug("call finished",
		slog.Bool("ok", ok),
		slog.Duration("elapsed", time.Since(o.start)),
	)
}

// multiObserver fans hooks out in order.
type multiObserver []ProgressObserver

func (m multiObserver) Begin(op Operation) {
	for _, o := range m {
		o.Begin(op)
	}
}

func (m multiObserver) PreRequest(req *http.Request) {
	for _, o := range m {
		o.PreRequest(req)
	}
}

func (m multiObserver) DecodeError(body []byte, err error) {
	for _, o := range m {
		o.DecodeError(body, err)
	}
}

func (m multiObserver) Finished(ok bool) {
	for _, o := range m {
		o.Finished(ok)
	}
}
