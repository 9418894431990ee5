// Package scaffold renders a starter-project document (package manifest,
// frontend and backend stubs, database schema, API reference and deployment
// files) from a project analysis. Sections are pongo2 templates embedded in
// the binary; WithTemplateDir lets callers override any of them by name.
package scaffold
