package deckthemes

import (
	"errors"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"
)

func TestBuiltinThemes(t *testing.T) {
	manifests, err := Builtin()
	if err != nil {
		t.Fatalf("builtin: %v", err)
	}
	for _, name := range []string{"ideaplan", "mono"} {
		manifest, ok := manifests[name]
		if !ok {
			t.Fatalf("missing theme %q", name)
		}
		for _, token := range []string{"background", "surface", "text", "accent", "goal", "feature", "tech", "timeline", "phase"} {
			if manifest.Tokens[token] == "" {
				t.Fatalf("theme %q missing token %q", name, token)
			}
		}
	}
}

func TestSelectorDefaults(t *testing.T) {
	selector, err := NewSelector("", "")
	if err != nil {
		t.Fatalf("selector: %v", err)
	}

	sel, err := selector.Select("", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if sel.Theme != "ideaplan" || sel.Variant != "dark" {
		t.Fatalf("unexpected default selection %s/%s", sel.Theme, sel.Variant)
	}
	if diff := cmp.Diff([]string{"ideaplan", "mono"}, selector.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectorErrors(t *testing.T) {
	selector, err := NewSelector("ideaplan", "dark")
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	if _, err := selector.Select("nope", ""); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
	if _, err := selector.Select("ideaplan", "sepia"); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestRendererConfigMergesVariant(t *testing.T) {
	selector, err := NewSelector("", "")
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	sel, err := selector.Select("ideaplan", "light")
	if err != nil {
		t.Fatalf("select: %v", err)
	}

	cfg := RendererConfig(sel)
	if cfg.Theme != "ideaplan" || cfg.Variant != "light" {
		t.Fatalf("unexpected config identity %s/%s", cfg.Theme, cfg.Variant)
	}
	if cfg.Tokens["background"] != "#f8fafc" {
		t.Fatalf("variant token not applied: %s", cfg.Tokens["background"])
	}
	if cfg.Tokens["feature"] != "#8b5cf6" {
		t.Fatalf("base token lost: %s", cfg.Tokens["feature"])
	}
	if cfg.CSSVars["--background"] != "#f8fafc" {
		t.Fatalf("css vars not derived from tokens")
	}
	if RendererConfig(nil) != nil {
		t.Fatalf("nil selection should produce nil config")
	}
}

func TestSelectorFromCustomManifests(t *testing.T) {
	selector := NewSelectorFrom(map[string]*theme.Manifest{
		"acme": {Name: "acme", Tokens: map[string]string{"accent": "#123456"}},
	}, "acme", "")

	sel, err := selector.Select("", "whatever")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if got := RendererConfig(sel).Tokens["accent"]; got != "#123456" {
		t.Fatalf("unexpected accent %q", got)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"empty":     "themes: []",
		"unnamed":   "themes:\n  - version: 1\n",
		"duplicate": "themes:\n  - name: a\n  - name: a\n",
		"malformed": "themes: [",
	}
	for name, doc := range cases {
		if _, _, err := Parse([]byte(doc)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
