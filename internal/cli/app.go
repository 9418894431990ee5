package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-ideaplan/internal/classifier"
	"github.com/goliatone/go-ideaplan/internal/config"
	"github.com/goliatone/go-ideaplan/internal/output"
	"github.com/goliatone/go-ideaplan/pkg/analysis"
	"github.com/goliatone/go-ideaplan/pkg/deckthemes"
	"github.com/goliatone/go-ideaplan/pkg/export"
	"github.com/goliatone/go-ideaplan/pkg/orchestrator"
	"github.com/goliatone/go-ideaplan/pkg/prompt"
)

func (a *app) setup() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger = log.New(io.Discard, "", 0)
	if a.verbose {
		a.logger = log.New(a.errOut, "ideaplan: ", log.Ltime)
	}
	a.printer = output.New(a.out)

	opts := []orchestrator.Option{
		orchestrator.WithDefaultRenderer(cfg.Render.DefaultRenderer),
		orchestrator.WithLogger(a.logger),
	}

	if path := strings.TrimSpace(cfg.Analysis.CatalogPath); path != "" {
		c, err := classifier.New(classifier.Options{CatalogFS: os.DirFS(path)})
		if err != nil {
			return fmt.Errorf("load catalog %s: %w", path, err)
		}
		opts = append(opts, orchestrator.WithClassifier(c))
	}

	selector, err := deckthemes.NewSelector(cfg.Render.Theme, cfg.Render.Variant)
	if err != nil {
		return err
	}
	opts = append(opts, orchestrator.WithThemeSelector(selector))

	a.orch = orchestrator.New(opts...)
	return nil
}

// idea joins args into the idea text, prompting when none were given.
// Blank ideas are rejected before anything is classified.
func (a *app) idea(ctx context.Context, args []string) (string, error) {
	idea := strings.Join(args, " ")
	if len(args) == 0 {
		answer, err := a.driver.Input(ctx, prompt.InputConfig{
			Message: "Describe your project idea",
			Help:    "A sentence is enough, e.g. \"an online store for vintage records\".",
		})
		if err != nil {
			return "", err
		}
		idea = answer
	}
	if analysis.IsBlank(idea) {
		return "", export.ErrEmptyIdea
	}
	return idea, nil
}

// exporter builds an export service whose deck exporter is the registered
// renderer named deckRenderer.
func (a *app) exporter(deckRenderer string) *export.Service {
	opts := []export.Option{
		export.WithClipboard(a.clipboard),
		export.WithLogger(a.logger),
	}
	if r, err := a.orch.Renderer(deckRenderer); err == nil {
		if exporter, ok := r.(export.DeckExporter); ok {
			opts = append(opts, export.WithDeckExporter(exporter))
		}
	}
	return export.NewService(opts...)
}

func (a *app) sink(dir string) *export.FileSink {
	if dir == "" {
		dir = a.cfg.Export.OutputDir
	}
	return export.NewFileSink(dir, a.logger)
}
