package deck

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-ideaplan/pkg/export"
	"github.com/goliatone/go-ideaplan/pkg/plan"
	"github.com/goliatone/go-ideaplan/pkg/render"
	rendertemplate "github.com/goliatone/go-ideaplan/pkg/render/template"
	"github.com/goliatone/go-ideaplan/pkg/slides"
)

const HTMLName = "deck-html"

var errEmptyDeck = errors.New("deck renderer: deck has no slides")

// slideTemplates maps a slide kind to its partial under templates/slides.
var slideTemplates = map[slides.Kind]string{
	slides.KindTitle:     "title",
	slides.KindSummary:   "summary",
	slides.KindGoals:     "list",
	slides.KindFeatures:  "list",
	slides.KindTechStack: "techstack",
	slides.KindTimeline:  "steps",
	slides.KindCode:      "code",
	slides.KindRoadmap:   "steps",
	slides.KindRisks:     "risks",
	slides.KindNextSteps: "steps",
	slides.KindResources: "resources",
}

// HTMLRenderer produces a single-file HTML deck with inlined styles.
type HTMLRenderer struct {
	templates  rendertemplate.TemplateRenderer
	stylesheet string
	script     string
}

var (
	_ render.Renderer     = (*HTMLRenderer)(nil)
	_ export.DeckExporter = (*HTMLRenderer)(nil)
)

func NewHTML(options ...Option) (*HTMLRenderer, error) {
	templates, err := newTemplates(HTMLName, options)
	if err != nil {
		return nil, err
	}
	return &HTMLRenderer{
		templates:  templates,
		stylesheet: readAsset(StylesheetName),
		script:     readAsset(ScriptName),
	}, nil
}

func (r *HTMLRenderer) Name() string { return HTMLName }

func (r *HTMLRenderer) ContentType() string { return "text/html; charset=utf-8" }

func (r *HTMLRenderer) Render(ctx context.Context, p plan.Plan, opts render.RenderOptions) ([]byte, error) {
	return r.render(ctx, p.Slides, opts.TitleOr(p.Idea), opts.Theme)
}

// Export renders deck into an artifact named after the idea.
func (r *HTMLRenderer) Export(ctx context.Context, deck []slides.Slide, meta export.Metadata) (export.Artifact, error) {
	title := meta.Title
	if title == "" {
		title = meta.Idea
	}
	out, err := r.render(ctx, deck, title, meta.Theme)
	if err != nil {
		return export.Artifact{}, export.ExportError("export html deck", err)
	}
	return export.Artifact{
		Name:        export.DeckFileName(meta.Idea, "html"),
		ContentType: r.ContentType(),
		Data:        out,
	}, nil
}

func (r *HTMLRenderer) render(ctx context.Context, deck []slides.Slide, title string, cfg *theme.RendererConfig) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("deck renderer: template renderer is nil")
	}
	if len(deck) == 0 {
		return nil, errEmptyDeck
	}

	sections := make([]any, 0, len(deck))
	for _, slide := range deck {
		body, err := r.slideBody(slide)
		if err != nil {
			return nil, err
		}
		sections = append(sections, map[string]any{
			"kind": string(slide.Kind),
			"body": body,
		})
	}

	colors := palette(cfg)
	out, err := r.templates.RenderTemplate("deck", map[string]any{
		"title":      title,
		"theme":      colors.Theme,
		"variant":    colors.Variant,
		"css_vars":   cssVariables(colors),
		"stylesheet": r.stylesheet,
		"script":     r.script,
		"slides":     sections,
	})
	if err != nil {
		return nil, fmt.Errorf("deck renderer: render deck: %w", err)
	}
	return []byte(out), nil
}

func (r *HTMLRenderer) slideBody(slide slides.Slide) (string, error) {
	name, ok := slideTemplates[slide.Kind]
	if !ok {
		return "", fmt.Errorf("deck renderer: no template for slide type %q", slide.Kind)
	}
	body, err := r.templates.RenderTemplate("slides/"+name, map[string]any{"slide": slide})
	if err != nil {
		return "", fmt.Errorf("deck renderer: render %s slide: %w", slide.Kind, err)
	}
	return sanitizeBody(body), nil
}
