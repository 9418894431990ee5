package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-ideaplan/pkg/analysis"
	"github.com/goliatone/go-ideaplan/pkg/export"
	"github.com/goliatone/go-ideaplan/pkg/orchestrator"
	"github.com/goliatone/go-ideaplan/pkg/plan"
	"github.com/goliatone/go-ideaplan/pkg/session"
)

// Theme captures optional message prefixes.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Menu entries offered once results are ready.
const (
	ActionSummary = "View summary"
	ActionDiagram = "View diagram (Mermaid)"
	ActionSlides  = "Present slides"
	ActionCopy    = "Copy code scaffold"
	ActionExport  = "Export slide deck"
	ActionNewIdea = "Analyze another idea"
	ActionQuit    = "Quit"
)

const (
	ideaPromptText = "Describe your project idea"
	slideNext      = "Next slide"
	slidePrev      = "Previous slide"
	slideBack      = "Back to menu"
)

var resultActions = []string{
	ActionSummary, ActionDiagram, ActionSlides, ActionCopy, ActionExport, ActionNewIdea, ActionQuit,
}

// Option configures a Runner.
type Option func(*Runner)

// WithPromptDriver overrides the survey-backed driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithExporter sets the service used for clipboard and deck exports.
func WithExporter(s *export.Service) Option {
	return func(r *Runner) {
		r.exporter = s
	}
}

// WithSink sets where exported decks are written.
func WithSink(sink *export.FileSink) Option {
	return func(r *Runner) {
		r.sink = sink
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Runner) {
		r.theme = theme
	}
}

// WithRenderTheme selects the theme passed to renderers and exporters.
func WithRenderTheme(name, variant string) Option {
	return func(r *Runner) {
		r.themeName = name
		r.themeVariant = variant
	}
}

// WithInitialIdea answers the first idea prompt.
func WithInitialIdea(idea string) Option {
	return func(r *Runner) {
		r.initial = idea
	}
}

// Runner drives one session from the terminal.
type Runner struct {
	session      *session.Session
	orch         *orchestrator.Orchestrator
	driver       PromptDriver
	exporter     *export.Service
	sink         *export.FileSink
	theme        Theme
	themeName    string
	themeVariant string
	initial      string
}

// NewRunner wires a runner around a session and the orchestrator that
// renders its results.
func NewRunner(s *session.Session, orch *orchestrator.Orchestrator, opts ...Option) (*Runner, error) {
	if s == nil || orch == nil {
		return nil, errors.New("prompt: session and orchestrator are required")
	}
	r := &Runner{
		session: s,
		orch:    orch,
		driver:  NewSurveyDriver(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r, nil
}

// Run loops until the user quits or aborts. Aborting is not an error.
func (r *Runner) Run(ctx context.Context) error {
	for {
		idea, err := r.nextIdea(ctx)
		if errors.Is(err, ErrAborted) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := r.info(ctx, "Analyzing your idea..."); err != nil {
			return err
		}
		snap, err := r.session.Submit(ctx, idea)
		if errors.Is(err, export.ErrEmptyIdea) {
			if err := r.fail(ctx, err); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		again, err := r.results(ctx, *snap.Plan)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
		r.session.Reset()
	}
}

func (r *Runner) nextIdea(ctx context.Context) (string, error) {
	if idea := r.initial; idea != "" {
		r.initial = ""
		return idea, nil
	}
	return r.driver.Input(ctx, InputConfig{
		Message:   ideaPromptText,
		Help:      "A sentence is enough, e.g. \"an online store for vintage records\".",
		Validator: requireIdea,
	})
}

func requireIdea(text string) error {
	if analysis.IsBlank(text) {
		return errors.New("please describe your idea")
	}
	return nil
}

// results shows the action menu. It reports whether the user wants to
// analyze another idea.
func (r *Runner) results(ctx context.Context, p plan.Plan) (bool, error) {
	if err := r.info(ctx, fmt.Sprintf("Analysis ready: %s complexity, %s, %s.", p.Analysis.Complexity, p.Analysis.Timeline, p.Analysis.TeamSize)); err != nil {
		return false, err
	}

	for {
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:  "What next?",
			Options:  resultActions,
			PageSize: len(resultActions),
		})
		if errors.Is(err, ErrAborted) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if idx < 0 || idx >= len(resultActions) {
			continue
		}

		var actionErr error
		switch resultActions[idx] {
		case ActionSummary:
			actionErr = r.show(ctx, p, "summary")
		case ActionDiagram:
			actionErr = r.show(ctx, p, "mermaid")
		case ActionSlides:
			actionErr = r.present(ctx)
		case ActionCopy:
			actionErr = r.copyScaffold(ctx, p)
		case ActionExport:
			actionErr = r.exportDeck(ctx, p)
		case ActionNewIdea:
			return true, nil
		case ActionQuit:
			return false, nil
		}

		if errors.Is(actionErr, ErrAborted) {
			return false, nil
		}
		if actionErr != nil {
			if err := r.fail(ctx, actionErr); err != nil {
				return false, err
			}
		}
	}
}

func (r *Runner) show(ctx context.Context, p plan.Plan, renderer string) error {
	out, err := r.orch.Generate(ctx, orchestrator.Request{
		Plan:         &p,
		Renderer:     renderer,
		ThemeName:    r.themeName,
		ThemeVariant: r.themeVariant,
	})
	if err != nil {
		return err
	}
	return r.driver.Info(ctx, string(out))
}

func (r *Runner) present(ctx context.Context) error {
	options := []string{slideNext, slidePrev, slideBack}
	for {
		slide, ok := r.session.CurrentSlide()
		if !ok {
			return errors.New("no slides to present")
		}
		snap := r.session.Snapshot()
		if err := r.driver.Info(ctx, FormatSlide(slide, snap.Slide, len(snap.Plan.Slides))); err != nil {
			return err
		}

		idx, err := r.driver.Select(ctx, SelectConfig{Message: "Slides", Options: options})
		if err != nil {
			return err
		}
		switch idx {
		case 0:
			r.session.NextSlide()
		case 1:
			r.session.PrevSlide()
		default:
			return nil
		}
	}
}

func (r *Runner) copyScaffold(ctx context.Context, p plan.Plan) error {
	if r.exporter == nil {
		return export.ExportError("clipboard copy", errors.New("no exporter configured"))
	}
	if err := r.exporter.CopyScaffold(ctx, p); err != nil {
		return err
	}
	return r.info(ctx, "Code scaffold copied to clipboard.")
}

func (r *Runner) exportDeck(ctx context.Context, p plan.Plan) error {
	if r.exporter == nil || r.sink == nil {
		return export.ExportError("export deck", errors.New("no exporter configured"))
	}
	cfg, err := r.orch.Theme(r.themeName, r.themeVariant)
	if err != nil {
		return err
	}
	artifact, err := r.exporter.Deck(ctx, p, export.Metadata{Idea: p.Idea, Theme: cfg})
	if err != nil {
		return err
	}
	path, err := r.sink.Write(ctx, artifact)
	if err != nil {
		return err
	}
	return r.info(ctx, "Deck written to "+path)
}

func (r *Runner) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.InfoPrefix+msg)
}

func (r *Runner) fail(ctx context.Context, err error) error {
	return r.driver.Info(ctx, r.theme.ErrorPrefix+err.Error())
}
