package capsolver

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCategory classifies solve errors by where the lifecycle stopped.
type ErrorCategory string

const (
	// ErrorRequest indicates the remote service rejected a request.
	// Examples: invalid client key, malformed task, unknown task ID.
	ErrorRequest ErrorCategory = "request"

	// ErrorTaskFailed indicates the service accepted the task but could not solve it.
	ErrorTaskFailed ErrorCategory = "task_failed"

	// ErrorTimeout indicates the poll budget was spent without a terminal status.
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorTransport indicates a network, HTTP or decoding failure.
	ErrorTransport ErrorCategory = "transport"
)

// CategorizedError is an error that reports which part of the lifecycle failed.
type CategorizedError interface {
	error
	Category() ErrorCategory
	Description() string
}

// Error is a categorized error returned by the solver.
type Error struct {
	Op    string        // "createTask", "getTaskResult", "getBalance", or "" when not tied to one call
	Msg   string        // human-readable description, usually the remote errorDescription
	Cat   ErrorCategory // lifecycle stage that failed
	Code  string        // remote errorCode, "" if not applicable
	Cause error         // underlying error
}

// Error returns the error message.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("capsolver")
	if e.Op != "" {
		b.WriteString(" " + e.Op)
	}
	if e.Msg != "" {
		b.WriteString(": " + e.Msg)
	}
	if e.Cause != nil {
		b.WriteString(": " + e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Category returns the error category.
func (e *Error) Category() ErrorCategory {
	return e.Cat
}

// Description returns the text surfaced to a tool caller.
// It prefers the remote description and falls back to the cause.
func (e *Error) Description() string {
	if e.Msg != "" && e.Cause != nil {
		return e.Msg + ": " + e.Cause.Error()
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	return string(e.Cat)
}

// NewRequestError creates an error for a request the remote service rejected.
func NewRequestError(op, code, description string) *Error {
	return &Error{Op: op, Msg: description, Cat: ErrorRequest, Code: code}
}

// NewTaskFailedError creates an error for a task the remote service gave up on.
func NewTaskFailedError(description string) *Error {
	return &Error{Op: "getTaskResult", Msg: description, Cat: ErrorTaskFailed}
}

// NewTimeoutError creates an error for an exhausted poll budget.
func NewTimeoutError(attempts int, cause error) *Error {
	return &Error{
		Msg:   fmt.Sprintf("no terminal status after %d polls", attempts),
		Cat:   ErrorTimeout,
		Cause: cause,
	}
}

// NewTransportError creates an error for a failed round trip.
func NewTransportError(op string, cause error) *Error {
	return &Error{Op: op, Cat: ErrorTransport, Cause: cause}
}

// CategoryOf returns the category of err, or "" if err is not categorized.
func CategoryOf(err error) ErrorCategory {
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.Category()
	}
	return ""
}

// IsRequest returns true if the remote service rejected the request.
func IsRequest(err error) bool {
	return CategoryOf(err) == ErrorRequest
}

// IsTaskFailed returns true if the remote service could not solve the task.
func IsTaskFailed(err error) bool {
	return CategoryOf(err) == ErrorTaskFailed
}

// IsTimeout returns true if polling ran out of attempts.
func IsTimeout(err error) bool {
	return CategoryOf(err) == ErrorTimeout
}

// IsTransport returns true if a round trip failed below the API level.
func IsTransport(err error) bool {
	return CategoryOf(err) == ErrorTransport
}
