// Package ideaplan turns a short project idea into a structured plan: an
// analysis, a flowchart, a slide deck and a code scaffold, with renderers for
// text, Mermaid, OpenAPI, HTML and Markdown output.
package ideaplan

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-ideaplan/pkg/analysis"
	"github.com/goliatone/go-ideaplan/pkg/deckthemes"
	"github.com/goliatone/go-ideaplan/pkg/orchestrator"
	"github.com/goliatone/go-ideaplan/pkg/plan"
	"github.com/goliatone/go-ideaplan/pkg/render"
)

// ProjectAnalysis aliases analysis.ProjectAnalysis.
type ProjectAnalysis = analysis.ProjectAnalysis

// Plan aliases plan.Plan.
type Plan = plan.Plan

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// Classify analyses idea with the built-in archetype catalogue. Blank ideas
// return analysis.ErrEmptyIdea.
func Classify(idea string) (ProjectAnalysis, error) {
	if analysis.IsBlank(idea) {
		return ProjectAnalysis{}, analysis.ErrEmptyIdea
	}
	c, err := NewClassifier()
	if err != nil {
		return ProjectAnalysis{}, err
	}
	return c.Classify(idea), nil
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// BuildPlan classifies idea and builds its plan.
func BuildPlan(ctx context.Context, idea string, options ...orchestrator.Option) (Plan, error) {
	return orchestrator.New(options...).Plan(ctx, idea)
}

// Generate plans idea and renders it with the named renderer. An empty name
// uses the default summary renderer.
func Generate(ctx context.Context, idea, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Idea:     idea,
		Renderer: rendererName,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// deck renderers receive resolved tokens.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithBuiltinThemes registers the embedded deck themes with the given
// defaults. Empty names use the package defaults.
func WithBuiltinThemes(defaultTheme, defaultVariant string) (orchestrator.Option, error) {
	selector, err := deckthemes.NewSelector(defaultTheme, defaultVariant)
	if err != nil {
		return nil, err
	}
	return orchestrator.WithThemeSelector(selector), nil
}

// WithClassifier replaces the built-in classifier.
func WithClassifier(c analysis.Classifier) orchestrator.Option {
	return orchestrator.WithClassifier(c)
}
