package cli

import "github.com/spf13/cobra"

func (a *app) renderersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "renderers",
		Short: "List the available renderers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.printer.Renderers(a.orch.Registry().Describe(), a.orch.DefaultRenderer())
			return nil
		},
	}
}
