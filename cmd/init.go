package cmd

import (
	"errors"
	"fmt"

	"github.com/SBDJUK/dsesh/config"
	"github.com/SBDJUK/dsesh/paths"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config",
	Long:  `Create ~/.config/sesh/sesh.toml with an example session that can be customized.`,
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := paths.ConfigFile()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if err := config.WriteStarter(path, initForce); err != nil {
		if errors.Is(err, config.ErrExists) {
			fmt.Fprintf(out, "Config file already exists at %s\n", path)
			fmt.Fprintf(out, "Use --force to overwrite\n")
			return nil
		}
		return err
	}

	fmt.Fprintf(out, "Created starter config at %s\n", path)
	return nil
}
