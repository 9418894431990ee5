package cli

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-ideaplan/pkg/export"
	"github.com/goliatone/go-ideaplan/pkg/render"
)

var defaultExports = []string{"summary", "mermaid", "scaffold", "openapi", "deck-html"}

func (a *app) exportCommand() *cobra.Command {
	var (
		dir       string
		renderers []string
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "export [idea]",
		Short: "Write the plan's documents to a directory",
		Long: `Write the plan's documents to a directory using their conventional
file names: project-flowchart.txt, project-diagram.mmd, project-scaffold.txt,
project-openapi.json and <idea>-project-analysis.html.`,
		Example: `  ideaplan export "an online store"
  ideaplan export "an online store" -d build -r deck-markdown -r slides-json
  ideaplan export "an online store" --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			idea, err := a.idea(ctx, args)
			if err != nil {
				return err
			}
			p, err := a.orch.Plan(ctx, idea)
			if err != nil {
				return err
			}
			themeCfg, err := a.orch.Theme(a.cfg.Render.Theme, a.cfg.Render.Variant)
			if err != nil {
				return err
			}

			names := renderers
			switch {
			case all:
				names = a.orch.Renderers()
			case len(names) == 0:
				names = defaultExports
			}

			svc := a.exporter("")
			artifacts := make([]export.Artifact, 0, len(names))
			for _, name := range names {
				r, err := a.orch.Registry().Get(name)
				if err != nil {
					return err
				}
				artifact, err := svc.Rendered(ctx, r, p, render.RenderOptions{Theme: themeCfg})
				if err != nil {
					return err
				}
				artifacts = append(artifacts, artifact)
			}

			paths, err := a.sink(dir).WriteAll(ctx, artifacts...)
			for _, path := range paths {
				a.printer.Success("Wrote %s", path)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Output directory (default from config)")
	cmd.Flags().StringArrayVarP(&renderers, "renderer", "r", nil, "Renderer to export (repeatable)")
	cmd.Flags().BoolVar(&all, "all", false, "Export every registered renderer")
	return cmd
}
