package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/fatih/color"
)

// Color palette
var (
	ColorSuccess = lipgloss.Color("#00D787")
	ColorError   = lipgloss.Color("#FF5F87")
	ColorWarning = lipgloss.Color("#FFAF00")
	ColorInfo    = lipgloss.Color("#5FAFFF")
	ColorMuted   = lipgloss.Color("#888888")
	ColorAccent  = lipgloss.Color("#AF87FF")
)

// Status line colors
var (
	SuccessColor = color.New(color.FgGreen, color.Bold)
	ErrorColor   = color.New(color.FgRed, color.Bold)
	WarningColor = color.New(color.FgYellow, color.Bold)
	InfoColor    = color.New(color.FgCyan)
)

const defaultWidth = 80

// TerminalWidth returns the width of w when it is a terminal, or 80.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultWidth
	}
	width, _, err := term.GetSize(f.Fd())
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}

type styles struct {
	title  lipgloss.Style
	muted  lipgloss.Style
	accent lipgloss.Style
	bold   lipgloss.Style
	box    func(lipgloss.Color) lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, width int) styles {
	return styles{
		title:  r.NewStyle().Foreground(ColorInfo).Bold(true),
		muted:  r.NewStyle().Foreground(ColorMuted),
		accent: r.NewStyle().Foreground(ColorAccent),
		bold:   r.NewStyle().Bold(true),
		box: func(border lipgloss.Color) lipgloss.Style {
			return r.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(border).
				Padding(0, 1).
				Width(width - 2)
		},
	}
}
