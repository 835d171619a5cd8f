package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"
)

// API operations; each is POSTed to baseURL + "/" + op.
const (
	opCreateTask    = "createTask"
	opGetTaskResult = "getTaskResult"
	opGetBalance    = "getBalance"
)

// getTaskResult status values.
const (
	statusReady      = "ready"
	statusFailed     = "failed"
	statusProcessing = "processing"
)

const (
	maxResponseBodySize = 1 << 20 // 1MB
	maxErrorBodySize    = 200
)

type taskPayload struct {
	Type       string `json:"type"`
	WebsiteURL string `json:"websiteURL"`
	WebsiteKey string `json:"websiteKey"`
}

type createTaskRequest struct {
	ClientKey string      `json:"clientKey"`
	Task      taskPayload `json:"task"`
}

// errorFields are present on every reply.
type errorFields struct {
	ErrorID          int    `json:"errorId"`
	ErrorCode        string `json:"errorCode,omitempty"`
	ErrorDescription string `json:"errorDescription,omitempty"`
}

type createTaskResponse struct {
	errorFields
	TaskID string `json:"taskId"`
}

type taskResultRequest struct {
	ClientKey string `json:"clientKey"`
	TaskID    string `json:"taskId"`
}

type taskResultResponse struct {
	errorFields
	Status   string         `json:"status"`
	Solution map[string]any `json:"solution,omitempty"`
}

type balanceRequest struct {
	ClientKey string `json:"clientKey"`
}

type balanceResponse struct {
	errorFields
	Balance float64 `json:"balance"`
}

// HTTPError is returned when the API answers with a non-200 status.
// The operation name is carried by the wrapping *capsolver.Error.
type HTTPError struct {
	Status int
	Body   string
}

// Error returns a message with the status code and a prefix of the body.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

// StatusCode returns the HTTP status code.
func (e *HTTPError) StatusCode() int {
	return e.Status
}

// post sends a JSON POST request for op and decodes the response into result.
func (c *Client) post(ctx context.Context, op string, payload, result any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+op, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		// API-level rejections may arrive with a 4xx status; surface them as replies.
		var ef errorFields
		if json.Unmarshal(data, &ef) == nil && ef.ErrorID != 0 {
			return json.Unmarshal(data, result)
		}
		return &HTTPError{
			Status: resp.StatusCode,
			Body:   truncate(data, maxErrorBodySize),
		}
	}

	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// truncate returns at most n bytes of data without splitting a UTF-8 sequence.
func truncate(data []byte, n int) string {
	if len(data) <= n {
		return string(data)
	}
	for n > 0 && !utf8.RuneStart(data[n]) {
		n--
	}
	return string(data[:n])
}
