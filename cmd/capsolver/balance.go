package main

import (
	"fmt"
	"os/signal"
	"syscall"

	capsolver "github.com/spetersoncode/capsolver"
	"github.com/spf13/cobra"
)

// balanceCmd prints the account balance.
var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Print the CapSolver account balance",
	RunE:  runBalance,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

func runBalance(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bal, err := e.solver().Balance(ctx)
	if err != nil {
		return printOutcome(cmd, capsolver.OutcomeOf("", err))
	}
	fmt.Fprintln(cmd.OutOrStdout(), capsolver.FormatBalance(bal))
	return nil
}
