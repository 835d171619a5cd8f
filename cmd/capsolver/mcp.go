package main

import (
	"github.com/spetersoncode/capsolver/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd serves the tools over the Model Context Protocol.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the CAPTCHA tools over MCP stdio",
	Long: `Serve the CAPTCHA tools to an MCP client over stdin/stdout.

Register this command with an MCP-capable agent runtime, for example:

  {"mcpServers": {"capsolver": {"command": "capsolver", "args": ["mcp"]}}}

Logs are written to stderr.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	e.logger.Info("serving MCP over stdio", "version", version)
	return mcp.ServeStdio(e.registry(),
		mcp.WithName("capsolver"),
		mcp.WithVersion(version),
		mcp.WithLogger(e.logger),
	)
}
