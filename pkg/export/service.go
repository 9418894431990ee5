package export

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/goliatone/go-ideaplan/pkg/plan"
	"github.com/goliatone/go-ideaplan/pkg/render"
)

// Service runs the export capabilities for a plan and normalises their
// failures into ErrRender or ErrExport. Failures are logged and never
// retried; the plan itself is left untouched.
type Service struct {
	graph     GraphRenderer
	deck      DeckExporter
	clipboard Clipboard
	logger    *log.Logger
}

// Option configures a Service.
type Option func(*Service)

func WithGraphRenderer(g GraphRenderer) Option { return func(s *Service) { s.graph = g } }

func WithDeckExporter(d DeckExporter) Option { return func(s *Service) { s.deck = d } }

func WithClipboard(c Clipboard) Option { return func(s *Service) { s.clipboard = c } }

// WithLogger sets the failure logger. Nil discards.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService builds a Service. Capabilities left unset report ErrExport or
// ErrRender when used.
func NewService(opts ...Option) *Service {
	s := &Service{logger: log.New(io.Discard, "", 0)}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

var errUnavailable = errors.New("capability not configured")

// Diagram renders the plan's diagram through the graph renderer.
func (s *Service) Diagram(ctx context.Context, p plan.Plan) (Artifact, error) {
	if s.graph == nil {
		return Artifact{}, RenderError("render diagram", errUnavailable)
	}
	a, err := s.graph.Render(ctx, p.Diagram)
	if err != nil {
		s.logger.Printf("export: diagram render failed: %v", err)
		return Artifact{}, RenderError("render diagram", err)
	}
	return a, nil
}

// Deck exports the plan's slides.
func (s *Service) Deck(ctx context.Context, p plan.Plan, meta Metadata) (Artifact, error) {
	if s.deck == nil {
		return Artifact{}, ExportError("export deck", errUnavailable)
	}
	if meta.Idea == "" {
		meta.Idea = p.Idea
	}
	a, err := s.deck.Export(ctx, p.Slides, meta)
	if err != nil {
		s.logger.Printf("export: deck export failed: %v", err)
		return Artifact{}, ExportError("export deck", err)
	}
	return a, nil
}

// CopyScaffold places the plan's scaffold document on the clipboard.
func (s *Service) CopyScaffold(ctx context.Context, p plan.Plan) error {
	return s.Copy(ctx, p.Scaffold)
}

// Copy places arbitrary text on the clipboard.
func (s *Service) Copy(ctx context.Context, text string) error {
	if s.clipboard == nil {
		return ExportError("clipboard copy", errUnavailable)
	}
	if err := s.clipboard.Copy(ctx, text); err != nil {
		s.logger.Printf("export: clipboard copy failed: %v", err)
		return ExportError("clipboard copy", err)
	}
	return nil
}

// Rendered runs a named renderer and packages its output as an artifact
// using the conventional file name.
func (s *Service) Rendered(ctx context.Context, r render.Renderer, p plan.Plan, opts render.RenderOptions) (Artifact, error) {
	if r == nil {
		return Artifact{}, ExportError("render artifact", errors.New("renderer is required"))
	}
	data, err := r.Render(ctx, p, opts)
	if err != nil {
		s.logger.Printf("export: renderer %q failed: %v", r.Name(), err)
		return Artifact{}, ExportError("render "+r.Name(), err)
	}
	return Artifact{
		Name:        FileName(r.Name(), p.Idea),
		ContentType: r.ContentType(),
		Data:        data,
	}, nil
}
