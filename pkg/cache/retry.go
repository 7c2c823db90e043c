package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable marks a backend that could not be reached.
var ErrUnavailable = errors.New("backend unavailable")

// ErrClosed is returned by operations on a closed cache.
var ErrClosed = errors.New("cache closed")

type retryable struct{ err error }

func (e retryable) Error() string { return e.err.Error() }
func (e retryable) Unwrap() error { return e.err }

// Retryable marks err as transient. Backoff.Do retries only marked errors.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return retryable{err}
}

// IsRetryable reports whether err, or anything it wraps, was marked with
// Retryable.
func IsRetryable(err error) bool {
	var r retryable
	return errors.As(err, &r)
}

// Backoff is an exponential retry schedule.
type Backoff struct {
	Attempts int
	Initial  time.Duration
	Max      time.Duration
}

// DefaultBackoff is used by the network backends for their startup ping.
var DefaultBackoff = Backoff{Attempts: 3, Initial: time.Second, Max: 8 * time.Second}

// Do calls fn until it succeeds, returns an unmarked error, or the attempts
// run out. The last error is returned unwrapped from its retry mark.
func (b Backoff) Do(ctx context.Context, fn func() error) error {
	delay := b.Initial
	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		var r retryable
		if !errors.As(err, &r) {
			return err
		}
		if attempt >= max(b.Attempts, 1) {
			return r.err
		}
		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		delay *= 2
		if b.Max > 0 && delay > b.Max {
			delay = b.Max
		}
	}
}

// RetryWithBackoff runs fn under DefaultBackoff.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return DefaultBackoff.Do(ctx, fn)
}
