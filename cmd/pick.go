package cmd

import (
	"fmt"

	"github.com/SBDJUK/dsesh/tui"
	"github.com/spf13/cobra"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a session interactively",
	Long:  `Open a filterable list of sessions. Enter connects to the highlighted session, Esc quits.`,
	Args:  cobra.NoArgs,
	RunE:  runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	if reg.Len() == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No sessions configured.")
		return nil
	}

	selected, err := tui.Pick(reg)
	if err != nil {
		return err
	}
	if selected == nil {
		return nil
	}

	return newLauncher(cmd).Connect(*selected)
}
