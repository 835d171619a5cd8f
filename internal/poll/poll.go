// Package poll drives a bounded check loop with a fixed wait before every check.
package poll

import (
	"context"
	"errors"
	"fmt"
	"time"

	capsolver "github.com/spetersoncode/capsolver"
)

// ErrExhausted is returned when every attempt ran without a terminal result.
var ErrExhausted = errors.New("poll: attempts exhausted")

// Check inspects the remote state once. attempt is 1-indexed.
// It returns done=true with a result once a terminal state is reached.
// A non-nil error stops the loop unless it was wrapped with Retryable.
type Check[T any] func(ctx context.Context, attempt int) (result T, done bool, err error)

// Until runs check up to cfg.MaxAttempts times, waiting cfg.Interval before each call.
// It returns the terminal result, the number of checks made, and an error.
// The wait respects context cancellation.
func Until[T any](ctx context.Context, cfg capsolver.PollConfig, check Check[T]) (T, int, error) {
	return UntilWithEvents(ctx, cfg, nil, check)
}

// UntilWithEvents is like Until but emits events for observability.
// Events are sent non-blocking; if the channel is full, events are dropped.
// Pass nil for events to disable event emission (equivalent to Until).
func UntilWithEvents[T any](ctx context.Context, cfg capsolver.PollConfig, events chan<- Event, check Check[T]) (T, int, error) {
	var zero T
	var lastErr error

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := wait(ctx, cfg.Interval); err != nil {
			return zero, attempt - 1, err
		}

		emit(events, Event{
			Type:        EventAttemptStart,
			Attempt:     attempt,
			MaxAttempts: cfg.MaxAttempts,
		})

		result, done, err := check(ctx, attempt)
		if err != nil {
			retryable := IsRetryable(err)
			emit(events, Event{
				Type:        EventAttemptFailed,
				Attempt:     attempt,
				MaxAttempts: cfg.MaxAttempts,
				Error:       err,
				Retryable:   retryable,
			})
			if !retryable {
				return zero, attempt, unwrapRetryable(err)
			}
			lastErr = unwrapRetryable(err)
			continue
		}

		if done {
			emit(events, Event{
				Type:        EventTerminal,
				Attempt:     attempt,
				MaxAttempts: cfg.MaxAttempts,
			})
			return result, attempt, nil
		}

		lastErr = nil
		emit(events, Event{
			Type:        EventPending,
			Attempt:     attempt,
			MaxAttempts: cfg.MaxAttempts,
		})
	}

	emit(events, Event{
		Type:        EventExhausted,
		Attempt:     cfg.MaxAttempts,
		MaxAttempts: cfg.MaxAttempts,
		Error:       lastErr,
	})

	if lastErr != nil {
		return zero, cfg.MaxAttempts, fmt.Errorf("%w: last error: %w", ErrExhausted, lastErr)
	}
	return zero, cfg.MaxAttempts, ErrExhausted
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
