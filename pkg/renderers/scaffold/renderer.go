// Package scaffold exposes the plan's code scaffold document as a renderer,
// which is what the CLI copies to the clipboard.
package scaffold

import (
	"context"
	"errors"

	"github.com/goliatone/go-ideaplan/pkg/plan"
	"github.com/goliatone/go-ideaplan/pkg/render"
)

const Name = "scaffold"

var errEmpty = errors.New("scaffold renderer: plan has no scaffold")

type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

func New() *Renderer { return &Renderer{} }

func (r *Renderer) Name() string { return Name }

func (r *Renderer) ContentType() string { return "text/plain; charset=utf-8" }

func (r *Renderer) Render(ctx context.Context, p plan.Plan, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.Scaffold == "" {
		return nil, errEmpty
	}
	return []byte(p.Scaffold), nil
}
