package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/SBDJUK/dsesh/session"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var listOutput string

var listCmd = &cobra.Command{
	Use:   "list [filter]",
	Short: "List sessions",
	Long: `List session names in config order, one per line.
An optional filter keeps only names containing it, ignoring case.`,
	Args: cobra.ArbitraryArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "", "Output format: json, yaml")
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	var filter string
	if len(args) > 0 {
		filter = args[0]
	}

	matches := reg.Filter(filter)
	if matches == nil {
		matches = []session.Session{}
	}

	out := cmd.OutOrStdout()

	switch listOutput {
	case "":
		for _, s := range matches {
			fmt.Fprintln(out, s.Name)
		}
	case "json":
		data, err := json.MarshalIndent(matches, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal sessions: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := yaml.Marshal(matches)
		if err != nil {
			return fmt.Errorf("failed to marshal sessions: %w", err)
		}
		fmt.Fprint(out, string(data))
	default:
		return fmt.Errorf("unknown output format '%s'", listOutput)
	}

	return nil
}
