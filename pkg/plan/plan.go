// Package plan bundles an idea, its analysis and the three derived
// renderings into one immutable value that renderers and exporters consume.
package plan

import (
	"fmt"
	"time"

	"github.com/goliatone/go-ideaplan/pkg/analysis"
	"github.com/goliatone/go-ideaplan/pkg/diagram"
	"github.com/goliatone/go-ideaplan/pkg/scaffold"
	"github.com/goliatone/go-ideaplan/pkg/slides"
)

// Plan is the complete result for one idea.
type Plan struct {
	Idea      string                   `json:"idea"`
	Analysis  analysis.ProjectAnalysis `json:"analysis"`
	Diagram   diagram.Description      `json:"diagram"`
	Slides    []slides.Slide           `json:"slides"`
	Scaffold  string                   `json:"scaffold"`
	CreatedAt time.Time                `json:"createdAt"`
}

// ScaffoldGenerator renders the code scaffold document.
type ScaffoldGenerator interface {
	Generate(a analysis.ProjectAnalysis, idea string) (string, error)
}

// ScaffoldFunc adapts a function into a ScaffoldGenerator.
type ScaffoldFunc func(a analysis.ProjectAnalysis, idea string) (string, error)

func (fn ScaffoldFunc) Generate(a analysis.ProjectAnalysis, idea string) (string, error) {
	return fn(a, idea)
}

// Option customises plan construction.
type Option func(*config)

type config struct {
	clock       func() time.Time
	scaffolder  ScaffoldGenerator
	slideOption []slides.Option
}

// WithClock sets the clock used for CreatedAt and the title slide.
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithScaffolder replaces the default embedded-template scaffold generator.
func WithScaffolder(gen ScaffoldGenerator) Option {
	return func(c *config) {
		if gen != nil {
			c.scaffolder = gen
		}
	}
}

// WithSlideOptions forwards options to slides.Generate.
func WithSlideOptions(opts ...slides.Option) Option {
	return func(c *config) {
		c.slideOption = append(c.slideOption, opts...)
	}
}

// New builds a Plan. Each generator receives its own copy of the analysis.
func New(idea string, a analysis.ProjectAnalysis, opts ...Option) (Plan, error) {
	if analysis.IsBlank(idea) {
		return Plan{}, analysis.ErrEmptyIdea
	}

	cfg := config{
		clock:      time.Now,
		scaffolder: ScaffoldFunc(scaffold.Generate),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	code, err := cfg.scaffolder.Generate(a.Clone(), idea)
	if err != nil {
		return Plan{}, fmt.Errorf("plan: scaffold: %w", err)
	}

	slideOpts := append([]slides.Option{slides.WithClock(cfg.clock)}, cfg.slideOption...)

	return Plan{
		Idea:      idea,
		Analysis:  a.Clone(),
		Diagram:   diagram.Generate(a.Clone(), idea),
		Slides:    slides.Generate(a.Clone(), idea, slideOpts...),
		Scaffold:  code,
		CreatedAt: cfg.clock(),
	}, nil
}

// Mermaid returns the diagram encoded as Mermaid flowchart source.
func (p Plan) Mermaid() string {
	return diagram.Mermaid(p.Diagram)
}
