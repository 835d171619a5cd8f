package capsolver

import "time"

// PollConfig bounds the result-polling loop of a solve.
// Use DefaultPollConfig() for the service's recommended cadence.
type PollConfig struct {
	// MaxAttempts is the number of getTaskResult checks (default: 60).
	MaxAttempts int

	// Interval is the wait before every check, including the first (default: 2s).
	Interval time.Duration
}

// DefaultPollConfig returns the default poll configuration.
//   - 60 attempts
//   - 2 second interval
//
// The worst case spends two minutes waiting plus the round trips.
func DefaultPollConfig() PollConfig {
	return PollConfig{
		MaxAttempts: 60,
		Interval:    2 * time.Second,
	}
}

// Budget returns the total time spent waiting when every attempt is used.
func (c PollConfig) Budget() time.Duration {
	return time.Duration(c.MaxAttempts) * c.Interval
}
