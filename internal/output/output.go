// Package output formats CLI messages. Rendered documents are written
// verbatim; only status lines and headings are styled.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/goliatone/go-ideaplan/pkg/analysis"
	"github.com/goliatone/go-ideaplan/pkg/render"
)

// Printer handles formatted output for the CLI.
type Printer struct {
	w      io.Writer
	styles styles

	success *color.Color
	failure *color.Color
	warning *color.Color
	info    *color.Color
}

// New creates a Printer for w. Colors are disabled when w is not a terminal.
func New(w io.Writer) *Printer {
	if w == nil {
		w = io.Discard
	}
	p := &Printer{
		w:       w,
		styles:  newStyles(lipgloss.NewRenderer(w), TerminalWidth(w)),
		success: clone(SuccessColor),
		failure: clone(ErrorColor),
		warning: clone(WarningColor),
		info:    clone(InfoColor),
	}
	if !IsTerminal(w) {
		for _, c := range []*color.Color{p.success, p.failure, p.warning, p.info} {
			c.DisableColor()
		}
	}
	return p
}

func clone(c *color.Color) *color.Color {
	out := *c
	return &out
}

// Writer exposes the underlying writer.
func (p *Printer) Writer() io.Writer { return p.w }

// Success prints "✓ <msg>".
func (p *Printer) Success(format string, args ...any) {
	p.success.Fprintf(p.w, "✓ "+format+"\n", args...)
}

// Error prints "✗ <msg>".
func (p *Printer) Error(format string, args ...any) {
	p.failure.Fprintf(p.w, "✗ "+format+"\n", args...)
}

// Warn prints "! <msg>".
func (p *Printer) Warn(format string, args ...any) {
	p.warning.Fprintf(p.w, "! "+format+"\n", args...)
}

// Info prints an informational line.
func (p *Printer) Info(format string, args ...any) {
	p.info.Fprintf(p.w, format+"\n", args...)
}

// Title prints a heading.
func (p *Printer) Title(text string) {
	fmt.Fprintln(p.w, p.styles.title.Render(text))
}

// Raw writes data unchanged, adding a final newline when missing.
func (p *Printer) Raw(data []byte) {
	p.w.Write(data)
	if len(data) > 0 && data[len(data)-1] != '\n' {
		io.WriteString(p.w, "\n")
	}
}

// Box prints body inside a bordered box.
func (p *Printer) Box(body string) {
	fmt.Fprintln(p.w, p.styles.box(ColorInfo).Render(strings.TrimRight(body, "\n")))
}

// Renderers lists renderer names with their content types.
func (p *Printer) Renderers(infos []render.Info, defaultName string) {
	width := 0
	for _, info := range infos {
		width = max(width, len(info.Name))
	}
	for _, info := range infos {
		marker := " "
		if info.Name == defaultName {
			marker = "*"
		}
		name := fmt.Sprintf("%-*s", width, info.Name)
		fmt.Fprintf(p.w, "%s %s  %s\n", marker, p.styles.bold.Render(name), p.styles.muted.Render(info.ContentType))
	}
}

// Analysis prints a readable summary of a.
func (p *Printer) Analysis(a analysis.ProjectAnalysis) {
	p.Title("Project Analysis")
	if a.Archetype != "" {
		p.field("Archetype", string(a.Archetype))
	}
	p.field("Timeline", a.Timeline)
	p.field("Complexity", string(a.Complexity))
	p.field("Team Size", a.TeamSize)

	p.list("Goals", a.Goals)
	p.list("Key Features", a.Features)

	fmt.Fprintln(p.w)
	p.Title("Tech Stack")
	for _, entry := range a.TechStack {
		fmt.Fprintf(p.w, "  %s %s\n", p.styles.accent.Render(entry.Category+":"), strings.Join(entry.Technologies, ", "))
		if entry.Reason != "" {
			fmt.Fprintf(p.w, "    %s\n", p.styles.muted.Render(entry.Reason))
		}
	}
}

func (p *Printer) field(label, value string) {
	fmt.Fprintf(p.w, "  %s %s\n", p.styles.bold.Render(label+":"), value)
}

func (p *Printer) list(label string, items []string) {
	fmt.Fprintln(p.w)
	p.Title(label)
	for _, item := range items {
		fmt.Fprintf(p.w, "  • %s\n", item)
	}
}
