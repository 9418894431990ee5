// Package mermaid renders a plan's diagram as Mermaid flowchart source.
package mermaid

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-ideaplan/pkg/diagram"
	"github.com/goliatone/go-ideaplan/pkg/export"
	"github.com/goliatone/go-ideaplan/pkg/plan"
	"github.com/goliatone/go-ideaplan/pkg/render"
)

const (
	Name        = "mermaid"
	contentType = "text/vnd.mermaid; charset=utf-8"
)

// themeVariables maps Mermaid theme variables to deck theme tokens.
var themeVariables = map[string]string{
	"primaryColor":       "goal",
	"primaryTextColor":   "text",
	"primaryBorderColor": "accent",
	"lineColor":          "subtle",
	"sectionBkgColor":    "surface",
	"gridColor":          "border",
	"secondaryColor":     "feature",
	"tertiaryColor":      "tech",
}

// Renderer implements render.Renderer.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

func New() *Renderer { return &Renderer{} }

func (r *Renderer) Name() string { return Name }

func (r *Renderer) ContentType() string { return contentType }

// Render returns the flowchart source. When a theme is selected an init
// directive carrying its colours is prepended.
func (r *Renderer) Render(ctx context.Context, p plan.Plan, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	source := diagram.Mermaid(p.Diagram)
	if directive := initDirective(opts); directive != "" {
		source = directive + "\n" + source
	}
	return []byte(source), nil
}

func initDirective(opts render.RenderOptions) string {
	if opts.Theme == nil || len(opts.Theme.Tokens) == 0 {
		return ""
	}

	keys := make([]string, 0, len(themeVariables))
	for key := range themeVariables {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		value := opts.Token(themeVariables[key], "")
		if value == "" {
			continue
		}
		pairs = append(pairs, fmt.Sprintf("'%s': '%s'", key, value))
	}
	if len(pairs) == 0 {
		return ""
	}

	base := "dark"
	if opts.Theme.Variant == "light" {
		base = "default"
	}
	return fmt.Sprintf("%%%%{init: {'theme': '%s', 'themeVariables': {%s}}}%%%%", base, strings.Join(pairs, ", "))
}

// Graph implements export.GraphRenderer, producing a .mmd artifact straight
// from a diagram description.
type Graph struct{}

var _ export.GraphRenderer = Graph{}

func (Graph) Render(ctx context.Context, d diagram.Description) (export.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return export.Artifact{}, err
	}
	if len(d.Nodes) == 0 {
		return export.Artifact{}, fmt.Errorf("mermaid: diagram has no nodes")
	}
	return export.Artifact{
		Name:        export.DiagramFile,
		ContentType: contentType,
		Data:        []byte(diagram.Mermaid(d)),
	}, nil
}
