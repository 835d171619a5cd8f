package tool

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	capsolver "github.com/spetersoncode/capsolver"
	"github.com/spetersoncode/capsolver/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSolver records requests and answers from canned values.
type fakeSolver struct {
	mu       sync.Mutex
	requests []capsolver.ChallengeRequest
	token    string
	err      error
	balance  float64
	balErr   error
}

func (f *fakeSolver) Solve(ctx context.Context, req capsolver.ChallengeRequest) (*solver.Solution, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &solver.Solution{TaskID: "task-1", Kind: req.Kind, Token: f.token, Polls: 1}, nil
}

func (f *fakeSolver) Balance(ctx context.Context) (float64, error) {
	return f.balance, f.balErr
}

func (f *fakeSolver) last() capsolver.ChallengeRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func execute(t *testing.T, s Solver, name, args string) capsolver.ToolResult {
	t.Helper()
	registry := NewRegistry()
	require.NoError(t, RegisterCaptchaTools(registry, s))

	result, err := registry.Execute(context.Background(), capsolver.ToolCall{
		ID:        "call_1",
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err)
	assert.Equal(t, "call_1", result.ToolCallID)
	return result
}

const siteArgs = `{"website_url":"https://example.com/login","website_key":"site-key"}`

func TestCaptchaToolsRegistered(t *testing.T) {
	registry := NewRegistry().Add(CaptchaTools(&fakeSolver{})...)

	assert.Equal(t, []string{
		CheckBalanceName,
		SolveAnyCaptchaName,
		SolveRecaptchaV2Name,
		SolveTurnstileName,
	}, registry.Names())

	for _, tl := range registry.Tools() {
		var doc map[string]any
		require.NoError(t, json.Unmarshal(tl.Parameters, &doc), tl.Name)
		assert.Equal(t, "object", doc["type"], tl.Name)
		assert.NotEmpty(t, tl.Description, tl.Name)
	}
}

func TestSolveRecaptchaV2Tool(t *testing.T) {
	s := &fakeSolver{token: "03AGdBq24-recaptcha"}

	result := execute(t, s, SolveRecaptchaV2Name, siteArgs)

	assert.False(t, result.IsError)
	assert.Equal(t, "03AGdBq24-recaptcha", result.Content)
	assert.Equal(t, capsolver.ChallengeRequest{
		Kind:       capsolver.KindReCaptchaV2,
		WebsiteURL: "https://example.com/login",
		WebsiteKey: "site-key",
	}, s.last())
}

func TestSolveTurnstileTool(t *testing.T) {
	s := &fakeSolver{token: "0.turnstile"}

	result := execute(t, s, SolveTurnstileName, siteArgs)

	assert.Equal(t, "0.turnstile", result.Content)
	assert.Equal(t, capsolver.KindTurnstile, s.last().Kind)
}

func TestSolveAnyCaptchaTool(t *testing.T) {
	t.Run("defaults to reCAPTCHA v2", func(t *testing.T) {
		s := &fakeSolver{token: "tok"}

		result := execute(t, s, SolveAnyCaptchaName, siteArgs)

		assert.Equal(t, "tok", result.Content)
		assert.Equal(t, capsolver.KindReCaptchaV2, s.last().Kind)
	})

	t.Run("uses the requested type", func(t *testing.T) {
		s := &fakeSolver{token: "tok"}

		execute(t, s, SolveAnyCaptchaName,
			`{"website_url":"u","website_key":"k","captcha_type":"AntiTurnstileTaskProxyLess"}`)

		assert.Equal(t, capsolver.KindTurnstile, s.last().Kind)
	})

	t.Run("rejects unsupported types without solving", func(t *testing.T) {
		s := &fakeSolver{token: "tok"}

		result := execute(t, s, SolveAnyCaptchaName,
			`{"website_url":"u","website_key":"k","captcha_type":"FunCaptchaTaskProxyLess"}`)

		assert.True(t, result.IsError)
		assert.Equal(t, `Error: unsupported challenge type "FunCaptchaTaskProxyLess"`, result.Content)
		assert.Empty(t, s.requests)
	})
}

func TestSolveToolFailures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		content string
	}{
		{"request error", capsolver.NewRequestError("createTask", "ERROR_KEY_DENIED_ACCESS", "bad key"), "Error: bad key"},
		{"task failed", capsolver.NewTaskFailedError("captcha unsolvable"), "Failed: captcha unsolvable"},
		{"timeout", capsolver.NewTimeoutError(60, nil), "Timeout waiting for solution"},
		{"transport", capsolver.NewTransportError("createTask", errors.New("connection refused")), "Error: connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := execute(t, &fakeSolver{err: tt.err}, SolveRecaptchaV2Name, siteArgs)

			assert.True(t, result.IsError)
			assert.Equal(t, tt.content, result.Content)
		})
	}
}

func TestCheckBalanceTool(t *testing.T) {
	t.Run("formats the balance", func(t *testing.T) {
		result := execute(t, &fakeSolver{balance: 12.3}, CheckBalanceName, `{}`)

		assert.False(t, result.IsError)
		assert.Equal(t, "Balance: $12.3000", result.Content)
	})

	t.Run("reports errors", func(t *testing.T) {
		s := &fakeSolver{balErr: capsolver.NewRequestError("getBalance", "", "bad key")}

		result := execute(t, s, CheckBalanceName, "")

		assert.True(t, result.IsError)
		assert.Equal(t, "Error: bad key", result.Content)
	})
}
