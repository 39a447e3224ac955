package client

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MOZGIII/google-apis-go/core"
)

func TestBackoffDelay(t *testing.T) {
	b := &Backoff{
		Initial:    100 * time.Millisecond,
		Max:        1000 * time.Millisecond,
		Multiplier: 2,
	}

	t.Run("first attempt delay around initial", func(t *testing.T) {
		delay := b.Delay(1)
		// 100ms ± 10% jitter = 90-110ms
		if delay < 90*time.Millisecond || delay > 110*time.Millisecond {
			t.Errorf("Delay(1) = %v, want 90-110ms", delay)
		}
	})

	t.Run("second attempt doubles delay", func(t *testing.T) {
		delay := b.Delay(2)
		// 100 * 2^1 = 200ms ± 10% = 180-220ms
		if delay < 180*time.Millisecond || delay > 220*time.Millisecond {
			t.Errorf("Delay(2) = %v, want 180-220ms", delay)
		}
	})

	t.Run("third attempt quadruples delay", func(t *testing.T) {
		delay := b.Delay(3)
		// 100 * 2^2 = 400ms ± 10% = 360-440ms
		if delay < 360*time.Millisecond || delay > 440*time.Millisecond {
			t.Errorf("Delay(3) = %v, want 360-440ms", delay)
		}
	})

	t.Run("caps at max", func(t *testing.T) {
		delay := b.Delay(10)
		// Capped at 1000ms, plus at most 10% jitter
		if delay > 1100*time.Millisecond {
			t.Errorf("Delay(10) = %v, should be capped at ~1100ms", delay)
		}
	})

	t.Run("respects different multiplier", func(t *testing.T) {
		b := &Backoff{
			Initial:    100 * time.Millisecond,
			Max:        10 * time.Second,
			Multiplier: 3,
		}
		delay := b.Delay(2)
		// 100 * 3^1 = 300ms ± 10% = 270-330ms
		if delay < 270*time.Millisecond || delay > 330*time.Millisecond {
			t.Errorf("Delay(2) with mult=3 = %v, want 270-330ms", delay)
		}
	})

	t.Run("zero value uses defaults", func(t *testing.T) {
		b := &Backoff{}
		delay := b.Delay(1)
		// 1s ± 10% = 900ms-1.1s
		if delay < 900*time.Millisecond || delay > 1100*time.Millisecond {
			t.Errorf("Delay(1) on zero value = %v, want 900ms-1.1s", delay)
		}
	})
}

func TestBackoffHTTPError(t *testing.T) {
	b := &Backoff{MaxRetries: 3, Initial: time.Millisecond}
	err := core.NewTransportError(errors.New("connection reset"))

	for attempt := 1; attempt <= 3; attempt++ {
		if _, retry := b.HTTPError(attempt, err); !retry {
			t.Errorf("HTTPError(attempt=%d) declined, want retry within budget", attempt)
		}
	}
	if _, retry := b.HTTPError(4, err); retry {
		t.Error("HTTPError(attempt=4) retried past the budget")
	}
}

func TestBackoffHTTPFailure(t *testing.T) {
	b := &Backoff{MaxRetries: 3, Initial: 10 * time.Millisecond}

	t.Run("retries 503 within budget", func(t *testing.T) {
		if _, retry := b.HTTPFailure(1, 503, 0, nil); !retry {
			t.Error("HTTPFailure(503) declined, want retry")
		}
	})

	t.Run("declines 404", func(t *testing.T) {
		if _, retry := b.HTTPFailure(1, 404, 0, nil); retry {
			t.Error("HTTPFailure(404) retried, want decline")
		}
	})

	t.Run("declines past budget", func(t *testing.T) {
		if _, retry := b.HTTPFailure(4, 503, 0, nil); retry {
			t.Error("HTTPFailure(attempt=4) retried past the budget")
		}
	})

	t.Run("server hint overrides shorter delay", func(t *testing.T) {
		delay, retry := b.HTTPFailure(1, 429, 5*time.Second, nil)
		if !retry {
			t.Fatal("HTTPFailure(429) declined, want retry")
		}
		if delay != 5*time.Second {
			t.Errorf("delay = %v, want the 5s Retry-After hint", delay)
		}
	})

	t.Run("computed delay wins over shorter hint", func(t *testing.T) {
		delay, retry := b.HTTPFailure(1, 429, time.Millisecond, nil)
		if !retry {
			t.Fatal("HTTPFailure(429) declined, want retry")
		}
		if delay < 9*time.Millisecond {
			t.Errorf("delay = %v, want at least the computed backoff", delay)
		}
	})
}

func TestNoRetryDeclinesEverything(t *testing.T) {
	var p NoRetry

	if _, ok := p.Token(errors.New("no credentials")); ok {
		t.Error("Token() offered a fallback")
	}
	if _, retry := p.HTTPError(1, errors.New("dial failed")); retry {
		t.Error("HTTPError() retried")
	}
	if _, retry := p.HTTPFailure(1, 503, 0, nil); retry {
		t.Error("HTTPFailure() retried")
	}
}

// recordingObserver captures hook invocations for assertions.
type recordingObserver struct {
	events []string
}

func (o *recordingObserver) Begin(op Operation) { o.events = append(o.events, "begin:"+op.ID) }

func (o *recordingObserver) PreRequest(*http.Request) { o.events = append(o.events, "pre") }

func (o *recordingObserver) DecodeError([]byte, error) { o.events = append(o.events, "decode") }

func (o *recordingObserver) Finished(bool) { o.events = append(o.events, "finished") }

func TestMultiObserverFansOutInOrder(t *testing.T) {
	first := &recordingObserver{}
	second := &recordingObserver{}
	m := multiObserver{first, second}

	m.Begin(Operation{ID: "svc.op"})
	m.Finished(true)

	for _, o := range []*recordingObserver{first, second} {
		if len(o.events) != 2 || o.events[0] != "begin:svc.op" || o.events[1] != "finished" {
			t.Errorf("observer events = %v, want [begin:svc.op finished]", o.events)
		}
	}
}
