package capsolver

import (
	"errors"
	"fmt"
)

// OutcomeStatus tags the variant held by an Outcome.
type OutcomeStatus string

const (
	// OutcomeReady means the service returned a token.
	OutcomeReady OutcomeStatus = "ready"

	// OutcomeFailed means the service gave up on the task.
	OutcomeFailed OutcomeStatus = "failed"

	// OutcomeTimedOut means the poll budget ran out.
	OutcomeTimedOut OutcomeStatus = "timed_out"

	// OutcomeRequestError means the service rejected a request.
	OutcomeRequestError OutcomeStatus = "request_error"

	// OutcomeTransportError means a round trip failed below the API level.
	OutcomeTransportError OutcomeStatus = "transport_error"
)

// Outcome is the terminal value of one solve as seen by a tool caller.
type Outcome struct {
	Status OutcomeStatus
	// Token is set for OutcomeReady.
	Token string
	// Description is set for the failure variants.
	Description string
}

// OutcomeOf converts the result of a solve into an Outcome.
// A nil err yields OutcomeReady; uncategorized errors are reported as transport errors.
func OutcomeOf(token string, err error) Outcome {
	if err == nil {
		return Outcome{Status: OutcomeReady, Token: token}
	}

	desc := err.Error()
	var ce CategorizedError
	if errors.As(err, &ce) {
		desc = ce.Description()
	}

	switch CategoryOf(err) {
	case ErrorTaskFailed:
		return Outcome{Status: OutcomeFailed, Description: desc}
	case ErrorTimeout:
		return Outcome{Status: OutcomeTimedOut}
	case ErrorRequest:
		return Outcome{Status: OutcomeRequestError, Description: desc}
	default:
		return Outcome{Status: OutcomeTransportError, Description: desc}
	}
}

// String renders the outcome for the tool-invoker boundary.
func (o Outcome) String() string {
	switch o.Status {
	case OutcomeReady:
		return o.Token
	case OutcomeFailed:
		return "Failed: " + o.Description
	case OutcomeTimedOut:
		return "Timeout waiting for solution"
	default:
		return "Error: " + o.Description
	}
}

// IsError reports whether the outcome is anything other than a token.
func (o Outcome) IsError() bool {
	return o.Status != OutcomeReady
}

// FormatBalance renders an account balance for the tool-invoker boundary.
func FormatBalance(amount float64) string {
	return fmt.Sprintf("Balance: $%.4f", amount)
}
