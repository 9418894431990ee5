package prompt

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-ideaplan/pkg/slides"
)

// FormatSlide renders a slide as plain text for terminal presentation,
// headed by its position in the deck.
func FormatSlide(slide slides.Slide, index, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d/%d] %s\n", index+1, total, slide.Title)
	b.WriteString(strings.Repeat("─", 40))
	b.WriteString("\n")

	switch content := slide.Content.(type) {
	case slides.TitleContent:
		b.WriteString(content.Subtitle + "\n")
		b.WriteString(content.Generated + "\n")
	case slides.SummaryContent:
		width := 0
		for _, row := range content.Rows {
			width = max(width, len(row.Label))
		}
		for _, row := range content.Rows {
			fmt.Fprintf(&b, "%-*s  %s\n", width, row.Label, row.Value)
		}
	case slides.ListContent:
		numbered := slide.Kind == slides.KindTimeline || slide.Kind == slides.KindRoadmap || slide.Kind == slides.KindNextSteps
		for i, item := range content.Items {
			if numbered {
				fmt.Fprintf(&b, "%d. %s\n", i+1, item)
			} else {
				b.WriteString("• " + item + "\n")
			}
		}
	case slides.TechStackContent:
		for _, entry := range content.Entries {
			fmt.Fprintf(&b, "%s: %s\n", entry.Category, strings.Join(entry.Technologies, ", "))
			if entry.Reason != "" {
				fmt.Fprintf(&b, "  %s\n", entry.Reason)
			}
		}
	case slides.CodeContent:
		fmt.Fprintf(&b, "Frontend: %s / Backend: %s\n\n", content.Frontend, content.Backend)
		b.WriteString(content.Structure + "\n")
	case slides.RiskContent:
		for _, row := range content.Rows {
			fmt.Fprintf(&b, "• %s [%s]\n  %s\n", row.Risk, row.Impact, row.Mitigation)
		}
	case slides.ResourcesContent:
		b.WriteString(content.Subtitle + "\n")
		for _, item := range content.Includes {
			b.WriteString("• " + item + "\n")
		}
	}
	return b.String()
}
