package deck

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-ideaplan/pkg/export"
	"github.com/goliatone/go-ideaplan/pkg/plan"
	"github.com/goliatone/go-ideaplan/pkg/render"
	"github.com/goliatone/go-ideaplan/pkg/slides"
)

const JSONName = "slides-json"

// JSONRenderer emits the slide model as a JSON array that slides.Slide can
// decode again.
type JSONRenderer struct{}

var (
	_ render.Renderer     = (*JSONRenderer)(nil)
	_ export.DeckExporter = (*JSONRenderer)(nil)
)

func NewJSON() *JSONRenderer { return &JSONRenderer{} }

func (r *JSONRenderer) Name() string { return JSONName }

func (r *JSONRenderer) ContentType() string { return "application/json" }

func (r *JSONRenderer) Render(ctx context.Context, p plan.Plan, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return encodeDeck(p.Slides, opts.Compact)
}

func (r *JSONRenderer) Export(ctx context.Context, deck []slides.Slide, meta export.Metadata) (export.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return export.Artifact{}, export.ExportError("export slides json", err)
	}
	out, err := encodeDeck(deck, false)
	if err != nil {
		return export.Artifact{}, export.ExportError("export slides json", err)
	}
	return export.Artifact{
		Name:        export.FileName(JSONName, meta.Idea),
		ContentType: r.ContentType(),
		Data:        out,
	}, nil
}

func encodeDeck(deck []slides.Slide, compact bool) ([]byte, error) {
	if deck == nil {
		deck = []slides.Slide{}
	}
	var (
		out []byte
		err error
	)
	if compact {
		out, err = json.Marshal(deck)
	} else {
		out, err = json.MarshalIndent(deck, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("deck renderer: encode slides: %w", err)
	}
	return out, nil
}
