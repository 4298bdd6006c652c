package cmd

import (
	"errors"
	"fmt"

	"github.com/SBDJUK/dsesh/session"
	"github.com/spf13/cobra"
)

var connectCmd = &cobra.Command{
	Use:   "connect <name>",
	Short: "Connect to the given session",
	Long: `Run the session's startup_command with sh -c, in the session's path or the
current directory when no path is configured. Blocks until the command exits.

A name starting with '-' must follow '--', as in: dsesh connect -- -x`,
	Args: cobra.ArbitraryArgs,
	RunE: runConnect,
}

func init() {
	rootCmd.AddCommand(connectCmd)
}

func runConnect(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return errors.New("connect requires a session name")
	}

	name := args[0]
	if name == "" {
		return nil
	}

	s, ok := reg.Find(name)
	if !ok {
		return fmt.Errorf("%w: %s", session.ErrNotFound, name)
	}

	return newLauncher(cmd).Connect(s)
}
