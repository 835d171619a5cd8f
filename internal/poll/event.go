package poll

import "time"

// EventType identifies the kind of event occurring during polling.
type EventType string

const (
	// EventAttemptStart fires before each check, after the wait.
	EventAttemptStart EventType = "attempt_start"

	// EventPending fires when a check found no terminal state yet.
	EventPending EventType = "pending"

	// EventAttemptFailed fires after a check returned an error.
	EventAttemptFailed EventType = "attempt_failed"

	// EventTerminal fires when a check reached a terminal state.
	EventTerminal EventType = "terminal"

	// EventExhausted fires when all attempts ran without a terminal state.
	EventExhausted EventType = "exhausted"
)

// Event represents an observable occurrence during polling.
type Event struct {
	// Type identifies the kind of event.
	Type EventType

	// Attempt is the current attempt number (1-indexed).
	Attempt int

	// MaxAttempts is the total number of attempts allowed.
	MaxAttempts int

	// Error contains the error from a failed check.
	Error error

	// Retryable indicates whether the failed check consumed an attempt and polling continued.
	Retryable bool

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// emit sends an event with timestamp to the channel without blocking.
func emit(ch chan<- Event, event Event) {
	if ch == nil {
		return
	}
	event.Timestamp = time.Now()
	select {
	case ch <- event:
	default:
		// Channel full - don't block
	}
}
