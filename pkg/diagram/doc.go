// Package diagram turns a ProjectAnalysis into a renderer-neutral directed
// graph description. The shape is fixed: an idea root, four branches, up to
// fourteen leaves and a constant delivery pipeline. Text taken from the idea or
// the analysis goals/features passes through Sanitize and Truncate so the
// description stays well-formed for any graph syntax. Mermaid encodes the
// description as Mermaid flowchart source.
package diagram
