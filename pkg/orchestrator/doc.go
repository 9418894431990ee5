// Package orchestrator wires the classify → plan → render pipeline behind a
// single entry point, with dependency-injection friendly options for callers
// that want to swap the classifier, renderers or theme selection.
package orchestrator
