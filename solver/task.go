package solver

import (
	"context"
	"errors"

	capsolver "github.com/spetersoncode/capsolver"
)

// createTask submits req and returns the task ID.
// There is no retry: a rejected or failed submission ends the solve.
func (c *Client) createTask(ctx context.Context, req capsolver.ChallengeRequest) (string, error) {
	var resp createTaskResponse
	err := c.post(ctx, opCreateTask, createTaskRequest{
		ClientKey: c.apiKey,
		Task: taskPayload{
			Type:       string(req.Kind),
			WebsiteURL: req.WebsiteURL,
			WebsiteKey: req.WebsiteKey,
		},
	}, &resp)
	if err != nil {
		return "", capsolver.NewTransportError(opCreateTask, err)
	}
	if resp.ErrorID != 0 {
		return "", capsolver.NewRequestError(opCreateTask, resp.ErrorCode, resp.ErrorDescription)
	}
	if resp.TaskID == "" {
		return "", capsolver.NewTransportError(opCreateTask, errors.New("empty taskId in response"))
	}
	return resp.TaskID, nil
}

// Balance returns the account balance in USD.
// A reply without a balance field reads as 0.
func (c *Client) Balance(ctx context.Context) (float64, error) {
	var resp balanceResponse
	if err := c.post(ctx, opGetBalance, balanceRequest{ClientKey: c.apiKey}, &resp); err != nil {
		return 0, capsolver.NewTransportError(opGetBalance, err)
	}
	if resp.ErrorID != 0 {
		return 0, capsolver.NewRequestError(opGetBalance, resp.ErrorCode, resp.ErrorDescription)
	}
	return resp.Balance, nil
}
