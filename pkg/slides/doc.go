// Package slides builds the eleven-slide presentation model for a project
// analysis and provides a clamped cursor for stepping through it.
//
// The model is presentation-agnostic: renderers in pkg/renderers/deck turn it
// into HTML, Markdown or JSON. Only the title slide depends on the clock.
package slides
