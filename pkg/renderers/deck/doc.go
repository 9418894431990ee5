// Package deck renders a plan's slides as a presentation: a self-contained
// HTML deck, a Marp Markdown deck, or the raw slide model as JSON. The HTML
// and Markdown renderers also implement export.DeckExporter.
//
// Colours come from the go-theme selection passed in RenderOptions; when none
// is supplied the HTML deck falls back to the built-in default theme.
package deck
