package main

import (
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	capsolver "github.com/spetersoncode/capsolver"
	"github.com/spf13/cobra"
)

// toolsCmd prints the tool definitions an agent runtime would see.
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Print the tool definitions as JSON",
	Args:  cobra.NoArgs,
	RunE:  runTools,
}

// callCmd runs one tool through the registry.
var callCmd = &cobra.Command{
	Use:   "call <tool> [json-args]",
	Short: "Run one tool",
	Long: `Run one tool through the registry, exactly as an agent runtime would.

Example:
  capsolver call check_capsolver_balance
  capsolver call solve_turnstile '{"website_url":"https://example.com","website_key":"0x4AAAA"}'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCall,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(callCmd)
}

func runTools(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(e.registry().Tools(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runCall(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	call := capsolver.ToolCall{
		ID:   uuid.NewString(),
		Name: args[0],
	}
	if len(args) == 2 {
		call.Arguments = args[1]
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := e.registry().Execute(ctx, call)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Content)
	if result.IsError {
		return &failure{msg: result.Content}
	}
	return nil
}
