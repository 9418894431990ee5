// Package render defines the Renderer contract and a registry for looking
// renderers up by name. Built-in renderers live under pkg/renderers.
package render
