package cmd

import (
	"github.com/SBDJUK/dsesh/deps"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check system dependencies",
	Long:  `Check that the shell used to run startup commands, and the tools they commonly call, are on PATH.`,
	Args:  cobra.NoArgs,
	Run:   runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) {
	deps.PrintResults(cmd.OutOrStdout(), deps.CheckAllDependencies())
}
