package mcp

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	capsolver "github.com/spetersoncode/capsolver"
)

// emptySchema is used for tools registered without parameters.
var emptySchema = json.RawMessage(`{"type":"object","properties":{}}`)

// ToMCPTool converts a Tool to an MCP Tool.
// Tool.Parameters is used as the MCP Tool's RawInputSchema.
func ToMCPTool(t capsolver.Tool) mcp.Tool {
	schema := t.Parameters
	if len(schema) == 0 {
		schema = emptySchema
	}
	return mcp.NewToolWithRawSchema(t.Name, t.Description, schema)
}

// ToMCPTools converts a slice of Tools to MCP Tools.
func ToMCPTools(tools []capsolver.Tool) []mcp.Tool {
	result := make([]mcp.Tool, len(tools))
	for i, t := range tools {
		result[i] = ToMCPTool(t)
	}
	return result
}

// ToMCPCallToolResult converts a ToolResult to an MCP CallToolResult.
func ToMCPCallToolResult(result capsolver.ToolResult) *mcp.CallToolResult {
	if result.IsError {
		return mcp.NewToolResultError(result.Content)
	}
	return mcp.NewToolResultText(result.Content)
}
