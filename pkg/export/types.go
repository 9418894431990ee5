package export

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-ideaplan/pkg/diagram"
	"github.com/goliatone/go-ideaplan/pkg/slides"
)

// Artifact is one exported document.
type Artifact struct {
	Name        string
	ContentType string
	Data        []byte
}

// Metadata describes the deck being exported.
type Metadata struct {
	Idea  string
	Title string
	Theme *theme.RendererConfig
}

// GraphRenderer turns a diagram description into a displayable artifact.
type GraphRenderer interface {
	Render(ctx context.Context, d diagram.Description) (Artifact, error)
}

// DeckExporter writes a slide deck to a file format.
type DeckExporter interface {
	Export(ctx context.Context, deck []slides.Slide, meta Metadata) (Artifact, error)
}

// Clipboard places text where the user can paste it.
type Clipboard interface {
	Copy(ctx context.Context, text string) error
}
