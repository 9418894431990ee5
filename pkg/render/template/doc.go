// Package template defines the template rendering seam used by the text and
// HTML renderers. The pongo2-backed implementation lives in gotemplate.
package template
