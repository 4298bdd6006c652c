/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/SBDJUK/dsesh/config"
	"github.com/SBDJUK/dsesh/paths"
	"github.com/SBDJUK/dsesh/session"
	"github.com/SBDJUK/dsesh/version"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var debugFlag bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dsesh",
	Short: "A minimal terminal session launcher",
	Long: `dsesh is a terminal session manager designed to be compatible with Sesh TOML configurations.
Sessions are read from ~/.config/sesh/sesh.toml and any files it imports.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd.ErrOrStderr(), debugFlag)
	},
	RunE: runRoot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Only the commands registered here are accepted; help and completion
	// fall through to runRoot as unknown commands.
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Log config loading and launch details to stderr")
	rootCmd.Flags().BoolP("version", "v", false, "Show version information")
}

func runRoot(cmd *cobra.Command, args []string) error {
	if versionFlag, _ := cmd.Flags().GetBool("version"); versionFlag {
		fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
		return nil
	}

	if len(args) == 0 {
		printBanner(cmd.OutOrStdout())
		return nil
	}

	return fmt.Errorf("Unknown command: `%s`", args[0])
}

func configureLogging(w io.Writer, debug bool) {
	log.SetOutput(w)
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// loadRegistry reads the fixed config file and everything it imports.
func loadRegistry() (*session.Registry, error) {
	path, err := paths.ConfigFile()
	if err != nil {
		return nil, err
	}

	reg, err := config.LoadRegistry(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	log.Debug("loaded sessions", "count", reg.Len(), "config", path)
	return reg, nil
}

func newLauncher(cmd *cobra.Command) *session.Launcher {
	return session.NewLauncher(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
}
