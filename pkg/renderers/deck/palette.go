package deck

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-ideaplan/pkg/deckthemes"
)

var (
	fallbackOnce    sync.Once
	fallbackPalette *theme.RendererConfig
)

// palette returns cfg when it carries tokens, otherwise the built-in default
// theme.
func palette(cfg *theme.RendererConfig) *theme.RendererConfig {
	if cfg != nil && (len(cfg.Tokens) > 0 || len(cfg.CSSVars) > 0) {
		return cfg
	}
	fallbackOnce.Do(func() {
		fallbackPalette = &theme.RendererConfig{}
		selector, err := deckthemes.NewSelector("", "")
		if err != nil {
			return
		}
		sel, err := selector.Select("", "")
		if err != nil {
			return
		}
		fallbackPalette = deckthemes.RendererConfig(sel)
	})
	return fallbackPalette
}

var cssValueCleaner = strings.NewReplacer("<", "", ">", "", "{", "", "}", "", ";", "")

// cssVariables renders the custom properties for the :root block, sorted by
// name. Tokens without a CSS variable are exposed as --<token>.
func cssVariables(cfg *theme.RendererConfig) string {
	vars := map[string]string{}
	for key, value := range cfg.Tokens {
		vars["--"+key] = value
	}
	for key, value := range cfg.CSSVars {
		vars[key] = value
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		if strings.HasPrefix(name, "--") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("  %s: %s;", cssValueCleaner.Replace(name), cssValueCleaner.Replace(vars[name])))
	}
	return strings.Join(lines, "\n")
}
