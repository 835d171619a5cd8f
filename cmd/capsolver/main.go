// Package main is the entry point for the capsolver CLI.
//
// Usage:
//
//	capsolver solve --type turnstile --url https://example.com --key 0x4AAAA
//	capsolver balance
//	capsolver tools                         # Print tool definitions as JSON
//	capsolver call solve_recaptcha_v2 '{"website_url":"...","website_key":"..."}'
//	capsolver mcp                           # Serve the tools over MCP stdio
//	capsolver version
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "capsolver",
	Short: "Solve CAPTCHA challenges through CapSolver",
	Long: `capsolver submits reCAPTCHA and Turnstile challenges to the CapSolver
API and waits for the solution token.

Configuration is read from an optional YAML file (--config) and from the
environment. A .env file in the working directory is loaded if present.

  CAPSOLVER_API_KEY          client key (required by the service)
  CAPSOLVER_BASE_URL         API endpoint (default https://api.capsolver.com)
  CAPSOLVER_POLL_INTERVAL    wait before each result check (default 2s)
  CAPSOLVER_MAX_POLLS        result checks per solve (default 60)
  CAPSOLVER_REQUEST_TIMEOUT  per-request timeout (default 30s)
  CAPSOLVER_LOG_LEVEL        debug, info, warn or error (default info)`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// failure marks an error whose message has already been written to stdout.
type failure struct {
	msg string
}

func (f *failure) Error() string {
	return f.msg
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var f *failure
		if !errors.As(err, &f) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "capsolver %s\n", version)
		fmt.Fprintf(out, "  commit: %s\n", commit)
		fmt.Fprintf(out, "  built:  %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
}
