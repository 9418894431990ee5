package export

import (
	"strings"
)

const (
	SummaryFile  = "project-flowchart.txt"
	DiagramFile  = "project-diagram.mmd"
	ScaffoldFile = "project-scaffold.txt"
	OpenAPIFile  = "project-openapi.json"

	deckSuffix = "-project-analysis"
)

// IdeaStem replaces every rune that is not an ASCII letter or digit with "-"
// and lower-cases the result. Runs of replaced runes are kept, one dash each.
func IdeaStem(idea string) string {
	var b strings.Builder
	b.Grow(len(idea))
	for _, r := range idea {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

// DeckFileName names a deck export for idea with the given extension.
func DeckFileName(idea, ext string) string {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return IdeaStem(idea) + deckSuffix + ext
}

// FileName returns the conventional file name for a built-in renderer's
// output. Unknown renderers get "<name>.out".
func FileName(renderer, idea string) string {
	switch renderer {
	case "summary":
		return SummaryFile
	case "mermaid":
		return DiagramFile
	case "scaffold":
		return ScaffoldFile
	case "openapi":
		return OpenAPIFile
	case "deck-html":
		return DeckFileName(idea, "html")
	case "deck-markdown":
		return DeckFileName(idea, "md")
	case "slides-json":
		return IdeaStem(idea) + "-slides.json"
	default:
		return renderer + ".out"
	}
}
