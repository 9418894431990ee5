package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func (a *app) analyzeCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze [idea]",
		Short: "Classify an idea and print its project analysis",
		Example: `  ideaplan analyze "a marketplace for handmade furniture"
  ideaplan analyze --json "team analytics dashboard"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			idea, err := a.idea(cmd.Context(), args)
			if err != nil {
				return err
			}
			p, err := a.orch.Plan(cmd.Context(), idea)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")
				return enc.Encode(p.Analysis)
			}
			a.printer.Analysis(p.Analysis)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the analysis as JSON")
	return cmd
}
