// Package deckthemes ships the colour palettes used by the deck renderers as
// go-theme manifests, plus a selector that resolves a theme and variant into
// renderer configuration.
package deckthemes

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme   = "ideaplan"
	DefaultVariant = "dark"
)

//go:embed themes.yaml
var themesYAML []byte

var (
	ErrUnknownTheme   = errors.New("deckthemes: unknown theme")
	ErrUnknownVariant = errors.New("deckthemes: unknown variant")
)

type themeFile struct {
	Themes []themeDoc `yaml:"themes"`
}

type themeDoc struct {
	Name           string                       `yaml:"name"`
	Version        string                       `yaml:"version"`
	DefaultVariant string                       `yaml:"default_variant"`
	Tokens         map[string]string            `yaml:"tokens"`
	Variants       map[string]map[string]string `yaml:"variants"`
}

// Parse decodes a themes document into go-theme manifests keyed by name.
func Parse(data []byte) (map[string]*theme.Manifest, map[string]string, error) {
	var doc themeFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("deckthemes: decode: %w", err)
	}
	if len(doc.Themes) == 0 {
		return nil, nil, errors.New("deckthemes: no themes defined")
	}

	manifests := make(map[string]*theme.Manifest, len(doc.Themes))
	defaults := make(map[string]string, len(doc.Themes))
	for _, entry := range doc.Themes {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, nil, errors.New("deckthemes: theme name is required")
		}
		if _, dup := manifests[name]; dup {
			return nil, nil, fmt.Errorf("deckthemes: duplicate theme %q", name)
		}

		manifest := &theme.Manifest{
			Name:     name,
			Version:  entry.Version,
			Tokens:   copyTokens(entry.Tokens),
			Variants: make(map[string]theme.Variant, len(entry.Variants)),
		}
		for variant, tokens := range entry.Variants {
			manifest.Variants[variant] = theme.Variant{Tokens: copyTokens(tokens)}
		}
		manifests[name] = manifest
		defaults[name] = entry.DefaultVariant
	}
	return manifests, defaults, nil
}

var (
	builtinOnce      sync.Once
	builtinManifests map[string]*theme.Manifest
	builtinDefaults  map[string]string
	builtinErr       error
)

// Builtin returns the embedded manifests.
func Builtin() (map[string]*theme.Manifest, error) {
	builtinOnce.Do(func() {
		builtinManifests, builtinDefaults, builtinErr = Parse(themesYAML)
	})
	return builtinManifests, builtinErr
}

// Selector implements theme.ThemeSelector over a fixed set of manifests.
type Selector struct {
	manifests      map[string]*theme.Manifest
	variants       map[string]string
	defaultTheme   string
	defaultVariant string
}

var _ theme.ThemeSelector = (*Selector)(nil)

// NewSelector returns a selector over the embedded themes. Empty names fall
// back to defaultTheme and defaultVariant, then to the package defaults.
func NewSelector(defaultTheme, defaultVariant string) (*Selector, error) {
	manifests, err := Builtin()
	if err != nil {
		return nil, err
	}
	return newSelector(manifests, builtinDefaults, defaultTheme, defaultVariant), nil
}

// NewSelectorFrom builds a selector over caller-supplied manifests.
func NewSelectorFrom(manifests map[string]*theme.Manifest, defaultTheme, defaultVariant string) *Selector {
	return newSelector(manifests, nil, defaultTheme, defaultVariant)
}

func newSelector(manifests map[string]*theme.Manifest, variants map[string]string, defaultTheme, defaultVariant string) *Selector {
	if defaultTheme == "" {
		defaultTheme = DefaultTheme
	}
	return &Selector{
		manifests:      manifests,
		variants:       variants,
		defaultTheme:   defaultTheme,
		defaultVariant: defaultVariant,
	}
}

// Select resolves name and variant. Query options are accepted for interface
// compatibility and ignored.
func (s *Selector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if name == "" {
		name = s.defaultTheme
	}
	manifest, ok := s.manifests[name]
	if !ok || manifest == nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownTheme, name)
	}

	if variant == "" {
		variant = s.defaultVariant
	}
	if variant == "" {
		variant = s.variants[name]
	}
	if variant == "" {
		variant = DefaultVariant
	}
	if len(manifest.Variants) > 0 {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w %q for theme %q", ErrUnknownVariant, variant, name)
		}
	}

	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

// Names lists the available theme names, sorted.
func (s *Selector) Names() []string {
	names := make([]string, 0, len(s.manifests))
	for name := range s.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RendererConfig flattens a selection into the tokens and CSS variables the
// deck renderers read. Variant tokens override base tokens.
func RendererConfig(sel *theme.Selection) *theme.RendererConfig {
	if sel == nil {
		return nil
	}

	tokens := map[string]string{}
	if sel.Manifest != nil {
		for key, value := range sel.Manifest.Tokens {
			tokens[key] = value
		}
		if variant, ok := sel.Manifest.Variants[sel.Variant]; ok {
			for key, value := range variant.Tokens {
				tokens[key] = value
			}
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	return &theme.RendererConfig{
		Theme:    sel.Theme,
		Variant:  sel.Variant,
		Partials: map[string]string{},
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: func(string) string { return "" },
	}
}

func copyTokens(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
