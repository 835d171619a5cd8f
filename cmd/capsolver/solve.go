package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	capsolver "github.com/spetersoncode/capsolver"
	"github.com/spf13/cobra"
)

// solveCmd solves one challenge and prints the token.
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve one challenge",
	Long: `Submit a challenge to CapSolver and wait for the token.

The token is printed on stdout. On failure the command prints one of
"Failed: ...", "Error: ..." or "Timeout waiting for solution" and exits 1.

Types: recaptcha-v2, recaptcha-v2-enterprise, recaptcha-v3, turnstile
(CapSolver task type names such as AntiTurnstileTaskProxyLess also work).

Example:
  capsolver solve --type turnstile --url https://example.com --key 0x4AAAAAAA`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringP("type", "t", capsolver.KindReCaptchaV2.Alias(), "challenge type")
	solveCmd.Flags().StringP("url", "u", "", "URL of the page showing the challenge (required)")
	solveCmd.Flags().StringP("key", "k", "", "site key of the widget (required)")
	_ = solveCmd.MarkFlagRequired("url")
	_ = solveCmd.MarkFlagRequired("key")
}

func runSolve(cmd *cobra.Command, args []string) error {
	typ, _ := cmd.Flags().GetString("type")
	kind, err := capsolver.ParseChallengeKind(typ)
	if err != nil {
		return err
	}

	e, err := setup(cmd)
	if err != nil {
		return err
	}

	websiteURL, _ := cmd.Flags().GetString("url")
	websiteKey, _ := cmd.Flags().GetString("key")

	ctx, stop := signal.NotifyContext(cmdContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var token string
	sol, err := e.solver().Solve(ctx, capsolver.ChallengeRequest{
		Kind:       kind,
		WebsiteURL: websiteURL,
		WebsiteKey: websiteKey,
	})
	if sol != nil {
		token = sol.Token
	}
	return printOutcome(cmd, capsolver.OutcomeOf(token, err))
}

// printOutcome writes o to stdout and reports failures through the exit code.
func printOutcome(cmd *cobra.Command, o capsolver.Outcome) error {
	fmt.Fprintln(cmd.OutOrStdout(), o.String())
	if o.IsError() {
		return &failure{msg: o.String()}
	}
	return nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
