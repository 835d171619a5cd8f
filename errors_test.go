package capsolver

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "request error",
			err:      NewRequestError("createTask", "ERROR_KEY_DENIED_ACCESS", "bad key"),
			expected: "capsolver createTask: bad key",
		},
		{
			name:     "transport error",
			err:      NewTransportError("getTaskResult", errors.New("connection refused")),
			expected: "capsolver getTaskResult: connection refused",
		},
		{
			name:     "timeout",
			err:      NewTimeoutError(60, nil),
			expected: "capsolver: no terminal status after 60 polls",
		},
		{
			name:     "task failed",
			err:      NewTaskFailedError("captcha unsolvable"),
			expected: "capsolver getTaskResult: captcha unsolvable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorDescription(t *testing.T) {
	t.Run("prefers the remote description", func(t *testing.T) {
		assert.Equal(t, "bad key", NewRequestError("getBalance", "ERROR_KEY", "bad key").Description())
	})

	t.Run("falls back to the cause", func(t *testing.T) {
		err := NewTransportError("createTask", errors.New("HTTP 502: upstream down"))
		assert.Equal(t, "HTTP 502: upstream down", err.Description())
	})

	t.Run("falls back to the error code", func(t *testing.T) {
		assert.Equal(t, "ERROR_ZERO_BALANCE", NewRequestError("createTask", "ERROR_ZERO_BALANCE", "").Description())
	})

	t.Run("falls back to the category", func(t *testing.T) {
		err := &Error{Cat: ErrorRequest}
		assert.Equal(t, "request", err.Description())
	})
}

func TestErrorCategories(t *testing.T) {
	t.Run("predicates match their category only", func(t *testing.T) {
		cases := []struct {
			err  error
			pred func(error) bool
		}{
			{NewRequestError("createTask", "", "x"), IsRequest},
			{NewTaskFailedError("x"), IsTaskFailed},
			{NewTimeoutError(1, nil), IsTimeout},
			{NewTransportError("getBalance", errors.New("x")), IsTransport},
		}
		preds := []func(error) bool{IsRequest, IsTaskFailed, IsTimeout, IsTransport}

		for i, c := range cases {
			matches := 0
			for _, p := range preds {
				if p(c.err) {
					matches++
				}
			}
			assert.Equal(t, 1, matches, "case %d", i)
			assert.True(t, c.pred(c.err), "case %d", i)
		}
	})

	t.Run("sees through wrapping", func(t *testing.T) {
		err := fmt.Errorf("tool: %w", NewTaskFailedError("x"))
		assert.True(t, IsTaskFailed(err))
		assert.Equal(t, ErrorTaskFailed, CategoryOf(err))
	})

	t.Run("uncategorized errors have no category", func(t *testing.T) {
		assert.Equal(t, ErrorCategory(""), CategoryOf(errors.New("plain")))
		assert.False(t, IsRequest(nil))
	})

	t.Run("Unwrap returns the cause", func(t *testing.T) {
		cause := errors.New("dial tcp: refused")
		err := NewTransportError("createTask", cause)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, cause, err.Unwrap())
	})
}
