package render

import (
	"context"

	"github.com/goliatone/go-ideaplan/pkg/plan"
)

// Renderer turns a plan into bytes of a single content type (Mermaid source,
// an HTML deck, a JSON document and so on).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, p plan.Plan, options RenderOptions) ([]byte, error)
}
