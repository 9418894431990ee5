package scaffold

import (
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-ideaplan/pkg/diagram"
)

// Slug turns text into a URL path segment: sanitized, lower-cased, words
// joined with "-".
func Slug(text string) string {
	return joinWords(text, "-")
}

// SnakeSlug is Slug with "_" separators, for SQL identifiers.
func SnakeSlug(text string) string {
	return joinWords(text, "_")
}

// FeatureSlug is the route segment for the feature at index i. Features with
// nothing left after sanitizing become "feature-<i+1>".
func FeatureSlug(feature string, i int) string {
	if slug := Slug(feature); slug != "" {
		return slug
	}
	return fmt.Sprintf("feature-%d", i+1)
}

func joinWords(text, sep string) string {
	clean := strings.ToLower(diagram.Sanitize(text))
	return strings.ReplaceAll(clean, " ", sep)
}

// slugFilters exposes Slug and SnakeSlug to templates, so overridden template
// directories can derive identifiers the same way.
func slugFilters() map[string]any {
	var slug pongo2.FilterFunction = func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(Slug(in.String())), nil
	}
	var snake pongo2.FilterFunction = func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(SnakeSlug(in.String())), nil
	}
	return map[string]any{
		"slug":  slug,
		"snake": snake,
	}
}
