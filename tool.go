package capsolver

import "encoding/json"

// Tool describes a named operation an agent runtime can call.
type Tool struct {
	// Name is the unique identifier for the tool.
	Name string `json:"name"`
	// Description explains what the tool does (helps the model decide when to use it).
	Description string `json:"description"`
	// Parameters is a JSON Schema object defining the arguments.
	Parameters json.RawMessage `json:"parameters"`
}

// ToolCall is a request from a tool invoker to run a tool.
type ToolCall struct {
	// ID is a unique identifier for this call (used to match results).
	ID string `json:"id"`
	// Name is the name of the tool to invoke.
	Name string `json:"name"`
	// Arguments is a JSON string containing the arguments to pass.
	Arguments string `json:"arguments"`
}

// ToolResult is the string returned to the invoker for one ToolCall.
type ToolResult struct {
	// ToolCallID matches the ID from the corresponding ToolCall.
	ToolCallID string `json:"toolCallId"`
	// Content is the result text.
	Content string `json:"content"`
	// IsError indicates the content describes a failure.
	IsError bool `json:"isError,omitempty"`
}
