// Package summary renders the plain-text project summary that is offered as
// a download next to the diagram.
package summary

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-ideaplan/pkg/plan"
	"github.com/goliatone/go-ideaplan/pkg/render"
	rendertemplate "github.com/goliatone/go-ideaplan/pkg/render/template"
	"github.com/goliatone/go-ideaplan/pkg/render/template/gotemplate"
)

const Name = "summary"

//go:embed templates/summary.tpl
var templates embed.FS

// Option configures the summary renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate summary.tpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplateRenderer injects a custom template renderer.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the summary renderer.
func New(options ...Option) (*Renderer, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		sub, err := fs.Sub(templates, "templates")
		if err != nil {
			return nil, fmt.Errorf("summary renderer: templates: %w", err)
		}
		cfg.templateFS = sub
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(gotemplate.WithName(Name), gotemplate.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("summary renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}
	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string { return Name }

func (r *Renderer) ContentType() string { return "text/plain; charset=utf-8" }

func (r *Renderer) Render(ctx context.Context, p plan.Plan, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("summary renderer: template renderer is nil")
	}

	out, err := r.templates.RenderTemplate("summary", map[string]any{
		"analysis": p.Analysis,
	})
	if err != nil {
		return nil, fmt.Errorf("summary renderer: render template: %w", err)
	}
	return []byte(out), nil
}
