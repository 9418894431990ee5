package deck

import (
	"context"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-ideaplan/pkg/export"
	"github.com/goliatone/go-ideaplan/pkg/plan"
	"github.com/goliatone/go-ideaplan/pkg/render"
	rendertemplate "github.com/goliatone/go-ideaplan/pkg/render/template"
	"github.com/goliatone/go-ideaplan/pkg/slides"
)

const MarkdownName = "deck-markdown"

// MarkdownRenderer produces a Marp deck: front matter followed by slides
// separated by "---" lines.
type MarkdownRenderer struct {
	templates rendertemplate.TemplateRenderer
}

var (
	_ render.Renderer     = (*MarkdownRenderer)(nil)
	_ export.DeckExporter = (*MarkdownRenderer)(nil)
)

func NewMarkdown(options ...Option) (*MarkdownRenderer, error) {
	templates, err := newTemplates(MarkdownName, options)
	if err != nil {
		return nil, err
	}
	return &MarkdownRenderer{templates: templates}, nil
}

func (r *MarkdownRenderer) Name() string { return MarkdownName }

func (r *MarkdownRenderer) ContentType() string { return "text/markdown; charset=utf-8" }

func (r *MarkdownRenderer) Render(ctx context.Context, p plan.Plan, opts render.RenderOptions) ([]byte, error) {
	return r.render(ctx, p.Slides, opts.Theme)
}

func (r *MarkdownRenderer) Export(ctx context.Context, deck []slides.Slide, meta export.Metadata) (export.Artifact, error) {
	out, err := r.render(ctx, deck, meta.Theme)
	if err != nil {
		return export.Artifact{}, export.ExportError("export markdown deck", err)
	}
	return export.Artifact{
		Name:        export.DeckFileName(meta.Idea, "md"),
		ContentType: r.ContentType(),
		Data:        out,
	}, nil
}

// render only emits colour directives when a theme was selected explicitly.
func (r *MarkdownRenderer) render(ctx context.Context, deck []slides.Slide, cfg *theme.RendererConfig) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("deck renderer: template renderer is nil")
	}
	if len(deck) == 0 {
		return nil, errEmptyDeck
	}

	data := map[string]any{"slides": deck}
	if cfg != nil && cfg.Tokens["background"] != "" {
		data["colors"] = map[string]any{
			"background": cfg.Tokens["background"],
			"text":       cfg.Tokens["text"],
		}
	}

	out, err := r.templates.RenderTemplate("markdown", data)
	if err != nil {
		return nil, fmt.Errorf("deck renderer: render markdown: %w", err)
	}
	return []byte(out), nil
}
