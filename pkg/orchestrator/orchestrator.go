package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-ideaplan/internal/classifier"
	"github.com/goliatone/go-ideaplan/pkg/analysis"
	"github.com/goliatone/go-ideaplan/pkg/deckthemes"
	"github.com/goliatone/go-ideaplan/pkg/plan"
	"github.com/goliatone/go-ideaplan/pkg/render"
)

const defaultRendererName = "summary"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithClassifier replaces the catalogue-backed classifier.
func WithClassifier(c analysis.Classifier) Option {
	return func(o *Orchestrator) {
		o.classifier = c
	}
}

// WithRegistry injects a renderer registry. The built-in renderers are only
// registered when no registry is supplied.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithPlanOptions forwards options to plan.New for every plan built.
func WithPlanOptions(opts ...plan.Option) Option {
	return func(o *Orchestrator) {
		o.planOptions = append(o.planOptions, opts...)
	}
}

// WithThemeSelector resolves Request.ThemeName and ThemeVariant into the
// renderer theme configuration.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithLogger sets the logger used for render failures. Nil discards.
func WithLogger(logger *log.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates classification, plan construction and rendering.
// It is safe for concurrent use once constructed.
type Orchestrator struct {
	classifier      analysis.Classifier
	registry        *render.Registry
	defaultRenderer string
	planOptions     []plan.Option
	themeSelector   theme.ThemeSelector
	logger          *log.Logger
	initialiseErr   error
}

// New constructs an Orchestrator. Missing dependencies get the built-in
// implementations; construction errors surface on first use.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          log.New(io.Discard, "", 0),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one render. Either Idea or Plan must be set; a supplied
// Plan skips classification.
type Request struct {
	Idea string
	Plan *plan.Plan

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer, then to the first registered one.
	Renderer string

	// ThemeName and ThemeVariant are resolved through the theme selector when
	// RenderOptions.Theme is nil.
	ThemeName    string
	ThemeVariant string

	RenderOptions render.RenderOptions
}

// Plan classifies idea and builds its plan.
func (o *Orchestrator) Plan(ctx context.Context, idea string) (plan.Plan, error) {
	if err := o.ready(ctx); err != nil {
		return plan.Plan{}, err
	}
	if analysis.IsBlank(idea) {
		return plan.Plan{}, analysis.ErrEmptyIdea
	}

	a := o.classifier.Classify(idea)
	if err := a.Validate(); err != nil {
		return plan.Plan{}, fmt.Errorf("orchestrator: classify: %w", err)
	}

	p, err := plan.New(idea, a, o.planOptions...)
	if err != nil {
		return plan.Plan{}, fmt.Errorf("orchestrator: build plan: %w", err)
	}
	return p, nil
}

// Generate builds (or reuses) a plan and renders it.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if err := o.ready(ctx); err != nil {
		return nil, err
	}

	var p plan.Plan
	if req.Plan != nil {
		p = *req.Plan
	} else {
		built, err := o.Plan(ctx, req.Idea)
		if err != nil {
			return nil, err
		}
		p = built
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	opts := req.RenderOptions
	if opts.Theme == nil {
		cfg, err := o.Theme(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return nil, err
		}
		opts.Theme = cfg
	}

	output, err := renderer.Render(ctx, p, opts)
	if err != nil {
		o.logger.Printf("orchestrator: renderer %q failed: %v", renderer.Name(), err)
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Renderer returns the renderer Generate would use for name.
func (o *Orchestrator) Renderer(name string) (render.Renderer, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	return o.rendererFor(name)
}

// Renderers lists the registered renderer names, sorted.
func (o *Orchestrator) Renderers() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

// DefaultRenderer names the renderer used when a request names none.
func (o *Orchestrator) DefaultRenderer() string {
	return o.defaultRenderer
}

// Registry exposes the renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

// Theme resolves a theme selection into renderer configuration. It returns
// nil when no selector is configured.
func (o *Orchestrator) Theme(name, variant string) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}
	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	return deckthemes.RendererConfig(selection), nil
}

func (o *Orchestrator) ready(ctx context.Context) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return o.initialiseErr
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.classifier == nil {
		c, err := classifier.New(classifier.Options{})
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default classifier: %w", err)
		} else {
			o.classifier = c
		}
	}
	if o.registry == nil {
		registry, err := DefaultRegistry()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderers: %w", err)
		}
		o.registry = registry
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
