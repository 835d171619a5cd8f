package solver

import "github.com/spetersoncode/capsolver/internal/poll"

// PollEvent represents an observable occurrence while polling a task.
type PollEvent = poll.Event

// PollEventType identifies the kind of poll event.
type PollEventType = poll.EventType

// Poll event type constants.
const (
	PollEventAttemptStart  = poll.EventAttemptStart
	PollEventPending       = poll.EventPending
	PollEventAttemptFailed = poll.EventAttemptFailed
	PollEventTerminal      = poll.EventTerminal
	PollEventExhausted     = poll.EventExhausted
)
