package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-ideaplan/pkg/export"
	"github.com/goliatone/go-ideaplan/pkg/orchestrator"
)

func (a *app) renderCommand() *cobra.Command {
	var (
		rendererName string
		outputPath   string
		themeName    string
		variant      string
		copyOutput   bool
	)

	cmd := &cobra.Command{
		Use:   "render [idea]",
		Short: "Render an idea's plan with one renderer",
		Long: `Render an idea's plan with one renderer and print it, write it to a
file, or copy it to the clipboard. Run "ideaplan renderers" for the list.`,
		Example: `  ideaplan render "an online store" -r mermaid
  ideaplan render "an online store" -r deck-html -o deck.html --variant light
  ideaplan render "an online store" -r scaffold --copy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			idea, err := a.idea(ctx, args)
			if err != nil {
				return err
			}
			if themeName == "" {
				themeName = a.cfg.Render.Theme
			}
			if variant == "" {
				variant = a.cfg.Render.Variant
			}

			out, err := a.orch.Generate(ctx, orchestrator.Request{
				Idea:         idea,
				Renderer:     rendererName,
				ThemeName:    themeName,
				ThemeVariant: variant,
			})
			if err != nil {
				return err
			}

			switch {
			case copyOutput:
				if err := a.exporter("").Copy(ctx, string(out)); err != nil {
					return err
				}
				a.printer.Success("Copied %d bytes to the clipboard", len(out))
			case outputPath != "":
				sink := export.NewFileSink(filepath.Dir(outputPath), a.logger)
				path, err := sink.Write(ctx, export.Artifact{Name: filepath.Base(outputPath), Data: out})
				if err != nil {
					return err
				}
				a.printer.Success("Output written to %s", path)
			default:
				a.printer.Raw(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&rendererName, "renderer", "r", "", "Renderer to use (default from config)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (stdout if empty)")
	cmd.Flags().StringVar(&themeName, "theme", "", "Deck theme")
	cmd.Flags().StringVar(&variant, "variant", "", "Deck theme variant")
	cmd.Flags().BoolVar(&copyOutput, "copy", false, "Copy the output to the clipboard")
	cmd.MarkFlagsMutuallyExclusive("output", "copy")
	return cmd
}
