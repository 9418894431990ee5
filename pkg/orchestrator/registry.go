package orchestrator

import (
	"github.com/goliatone/go-ideaplan/pkg/render"
	"github.com/goliatone/go-ideaplan/pkg/renderers/deck"
	"github.com/goliatone/go-ideaplan/pkg/renderers/mermaid"
	"github.com/goliatone/go-ideaplan/pkg/renderers/openapi"
	"github.com/goliatone/go-ideaplan/pkg/renderers/scaffold"
	"github.com/goliatone/go-ideaplan/pkg/renderers/summary"
)

// DefaultRegistry returns a registry holding every built-in renderer:
// summary, mermaid, scaffold, openapi, deck-html, deck-markdown and
// slides-json.
func DefaultRegistry() (*render.Registry, error) {
	registry := render.NewRegistry(
		mermaid.New(),
		scaffold.New(),
		openapi.New(),
		deck.NewJSON(),
	)

	summaryRenderer, err := summary.New()
	if err != nil {
		return registry, err
	}
	registry.MustRegister(summaryRenderer)

	htmlDeck, err := deck.NewHTML()
	if err != nil {
		return registry, err
	}
	registry.MustRegister(htmlDeck)

	markdownDeck, err := deck.NewMarkdown()
	if err != nil {
		return registry, err
	}
	registry.MustRegister(markdownDeck)

	return registry, nil
}
