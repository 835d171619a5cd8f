package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	capsolver "github.com/spetersoncode/capsolver"
	"github.com/spetersoncode/capsolver/tool"
)

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	name    string
	version string
	logger  *slog.Logger
}

// WithName sets the server name reported to MCP clients.
func WithName(name string) ServerOption {
	return func(c *serverConfig) {
		c.name = name
	}
}

// WithVersion sets the server version reported to MCP clients.
func WithVersion(version string) ServerOption {
	return func(c *serverConfig) {
		c.version = version
	}
}

// WithLogger sets the logger used for per-call logging.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(c *serverConfig) {
		c.logger = logger
	}
}

// NewServer creates an MCP server that exposes every tool in registry.
//
// Example:
//
//	registry := tool.NewRegistry().Add(tool.CaptchaTools(s)...)
//
//	mcpServer := mcp.NewServer(registry,
//	    mcp.WithName("capsolver"),
//	    mcp.WithVersion("1.0.0"),
//	)
//
//	server.ServeStdio(mcpServer)
func NewServer(registry *tool.Registry, opts ...ServerOption) *server.MCPServer {
	cfg := &serverConfig{
		name:    "capsolver-mcp",
		version: "1.0.0",
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	s := server.NewMCPServer(
		cfg.name,
		cfg.version,
		server.WithToolCapabilities(true),
	)

	for _, t := range registry.Tools() {
		s.AddTool(ToMCPTool(t), createMCPHandler(t.Name, registry, cfg.logger))
	}

	return s
}

// createMCPHandler routes an MCP tool call through the registry.
// Tool failures are returned as error results, never as protocol errors.
func createMCPHandler(toolName string, registry *tool.Registry, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsJSON := "{}"
		if req.Params.Arguments != nil {
			data, err := json.Marshal(req.Params.Arguments)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to marshal arguments: %v", err)), nil
			}
			argsJSON = string(data)
		}

		// MCP has no call IDs of its own
		call := capsolver.ToolCall{
			ID:        uuid.NewString(),
			Name:      toolName,
			Arguments: argsJSON,
		}
		log := logger.With("tool", toolName, "call_id", call.ID)
		log.Debug("tool call received")

		result, err := registry.Execute(ctx, call)
		if err != nil {
			log.Warn("tool call failed", "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}

		log.Info("tool call finished", "is_error", result.IsError)
		return ToMCPCallToolResult(result), nil
	}
}

// ServeStdio starts an MCP server that communicates over stdin/stdout.
// This is the standard transport for MCP servers invoked as subprocesses.
func ServeStdio(registry *tool.Registry, opts ...ServerOption) error {
	s := NewServer(registry, opts...)
	return server.ServeStdio(s)
}
