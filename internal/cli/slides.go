package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-ideaplan/pkg/prompt"
	"github.com/goliatone/go-ideaplan/pkg/renderers/deck"
	"github.com/goliatone/go-ideaplan/pkg/session"
)

func (a *app) slidesCommand() *cobra.Command {
	var (
		dir        string
		deckFormat string
	)

	cmd := &cobra.Command{
		Use:   "slides [idea]",
		Short: "Start an interactive planning session",
		Long: `Start an interactive planning session. After the analysis finishes you
can view the summary and diagram, step through the slides, copy the code
scaffold to the clipboard or export the deck.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := session.New(a.orch,
				session.WithDelay(a.cfg.Analysis.Delay),
				session.WithLogger(a.logger),
			)
			runner, err := prompt.NewRunner(sess, a.orch,
				prompt.WithPromptDriver(a.driver),
				prompt.WithExporter(a.exporter(deckFormat)),
				prompt.WithSink(a.sink(dir)),
				prompt.WithTheme(prompt.Theme{ErrorPrefix: "✗ "}),
				prompt.WithRenderTheme(a.cfg.Render.Theme, a.cfg.Render.Variant),
				prompt.WithInitialIdea(strings.Join(args, " ")),
			)
			if err != nil {
				return err
			}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Deck export directory (default from config)")
	cmd.Flags().StringVar(&deckFormat, "deck", deck.HTMLName, "Deck exporter: deck-html, deck-markdown or slides-json")
	return cmd
}
