package render

import (
	theme "github.com/goliatone/go-theme"
)

// RenderOptions carry per-request settings that do not belong in the plan.
type RenderOptions struct {
	// Theme holds the resolved theme selection. Renderers that support
	// colours read Tokens and CSSVars from it and fall back to their own
	// palette when it is nil.
	Theme *theme.RendererConfig
	// Title overrides the document title used by deck renderers. Defaults to
	// the idea text.
	Title string
	// Compact asks structured renderers (JSON) to skip indentation.
	Compact bool
}

// TitleOr returns the title override or fallback when none is set.
func (o RenderOptions) TitleOr(fallback string) string {
	if o.Title != "" {
		return o.Title
	}
	return fallback
}

// Token looks up a theme token, returning fallback when the theme or the
// token is missing.
func (o RenderOptions) Token(name, fallback string) string {
	if o.Theme == nil {
		return fallback
	}
	if value, ok := o.Theme.Tokens[name]; ok && value != "" {
		return value
	}
	return fallback
}
