package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/SBDJUK/dsesh/version"
	"github.com/spf13/cobra"
)

var (
	versionOutput string
	detailedFlag  bool
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display version information for dsesh including build details.`,
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().StringVarP(&versionOutput, "output", "o", "", "Output format: json")
	versionCmd.Flags().BoolVar(&detailedFlag, "detailed", false, "Show detailed version information")
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.Get()
	out := cmd.OutOrStdout()

	switch versionOutput {
	case "json":
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format version: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "":
		if detailedFlag {
			fmt.Fprintln(out, info.Detailed())
		} else {
			fmt.Fprintln(out, info.String())
		}
	default:
		return fmt.Errorf("unknown output format '%s'", versionOutput)
	}

	return nil
}
