package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	capsolver "github.com/spetersoncode/capsolver"
	"github.com/spetersoncode/capsolver/internal/poll"
)

const (
	// DefaultBaseURL is the public CapSolver API endpoint.
	DefaultBaseURL = "https://api.capsolver.com"

	defaultRequestTimeout = 30 * time.Second
)

// Client solves challenges through the CapSolver API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	poll       capsolver.PollConfig
	logger     *slog.Logger
	events     chan<- PollEvent
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for every request.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithPollConfig sets the poll budget and interval.
func WithPollConfig(cfg capsolver.PollConfig) Option {
	return func(c *Client) {
		c.poll = cfg
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithEvents sets a channel that receives poll events.
// Events are sent non-blocking; if the channel is full, events are dropped.
func WithEvents(ch chan<- PollEvent) Option {
	return func(c *Client) {
		c.events = ch
	}
}

// New creates a Client bound to apiKey.
// The key is sent as-is; an empty or invalid key is rejected by the service.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		poll:       capsolver.DefaultPollConfig(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Solution is the result of a successful solve.
type Solution struct {
	TaskID string
	Kind   capsolver.ChallengeKind
	Token  string
	// Polls is the number of getTaskResult calls made.
	Polls int
}

// Solve submits req and polls until the task reaches a terminal status.
// Errors are *capsolver.Error values categorized as request, task_failed,
// timeout or transport.
func (c *Client) Solve(ctx context.Context, req capsolver.ChallengeRequest) (*Solution, error) {
	if !req.Kind.Valid() {
		return nil, &capsolver.Error{
			Msg: fmt.Sprintf("unsupported challenge type %q", req.Kind),
			Cat: capsolver.ErrorRequest,
		}
	}

	log := c.logger.With(
		"solve_id", uuid.NewString(),
		"type", string(req.Kind),
	)
	start := time.Now()

	taskID, err := c.createTask(ctx, req)
	if err != nil {
		log.Warn("captcha task not created", "error", err)
		return nil, err
	}
	log = log.With("task_id", taskID)
	log.Info("captcha task created")

	sol, polls, err := poll.UntilWithEvents(ctx, c.poll, c.events,
		func(ctx context.Context, attempt int) (*Solution, bool, error) {
			return c.checkTask(ctx, taskID, req.Kind)
		})
	if err != nil {
		err = classifyPollError(polls, err)
		log.Warn("captcha not solved",
			"category", string(capsolver.CategoryOf(err)),
			"polls", polls,
			"elapsed", time.Since(start),
			"error", err,
		)
		return nil, err
	}

	sol.Polls = polls
	log.Info("captcha solved", "polls", polls, "elapsed", time.Since(start))
	return sol, nil
}

// checkTask performs one getTaskResult round trip.
func (c *Client) checkTask(ctx context.Context, taskID string, kind capsolver.ChallengeKind) (*Solution, bool, error) {
	var resp taskResultResponse
	err := c.post(ctx, opGetTaskResult, taskResultRequest{
		ClientKey: c.apiKey,
		TaskID:    taskID,
	}, &resp)
	if err != nil {
		terr := capsolver.NewTransportError(opGetTaskResult, err)
		if poll.IsTransient(err) {
			return nil, false, poll.Retryable(terr)
		}
		return nil, false, terr
	}

	switch resp.Status {
	case statusReady:
		token := kind.ExtractToken(resp.Solution)
		if token == "" {
			return nil, false, capsolver.NewTaskFailedError(
				fmt.Sprintf("solution has no %s", kind.SolutionField()))
		}
		return &Solution{TaskID: taskID, Kind: kind, Token: token}, true, nil
	case statusFailed:
		desc := resp.ErrorDescription
		if desc == "" {
			desc = resp.ErrorCode
		}
		if desc == "" {
			desc = "task failed without description"
		}
		return nil, false, capsolver.NewTaskFailedError(desc)
	}

	if resp.ErrorID != 0 {
		return nil, false, capsolver.NewRequestError(opGetTaskResult, resp.ErrorCode, resp.ErrorDescription)
	}
	return nil, false, nil
}

// classifyPollError maps the poll loop's stop reason onto a capsolver error.
func classifyPollError(polls int, err error) error {
	if errors.Is(err, poll.ErrExhausted) {
		if err == poll.ErrExhausted {
			return capsolver.NewTimeoutError(polls, nil)
		}
		// the last attempts failed in transit
		return capsolver.NewTimeoutError(polls, err)
	}
	if capsolver.CategoryOf(err) != "" {
		return err
	}
	// context cancellation during the wait
	return capsolver.NewTransportError(opGetTaskResult, err)
}
