package ideaplan

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-ideaplan/pkg/analysis"
)

func TestClassify(t *testing.T) {
	got, err := Classify("A marketplace for used bikes")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if got.Archetype != analysis.ArchetypeCommerce {
		t.Fatalf("expected commerce, got %q", got.Archetype)
	}

	if _, err := Classify(" \t"); !errors.Is(err, analysis.ErrEmptyIdea) {
		t.Fatalf("expected ErrEmptyIdea, got %v", err)
	}
}

func TestGenerateDefaultsToSummary(t *testing.T) {
	out, err := Generate(context.Background(), "Sales analytics dashboard", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(string(out), "Project Flowchart") {
		t.Fatalf("expected summary output, got %q", out)
	}
}

func TestGenerateWithBuiltinThemes(t *testing.T) {
	opt, err := WithBuiltinThemes("mono", "light")
	if err != nil {
		t.Fatalf("themes: %v", err)
	}
	out, err := Generate(context.Background(), "Sales analytics dashboard", "deck-html", opt)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), "--background: #fafafa;") {
		t.Fatalf("expected mono light palette in deck")
	}
}

func TestBuildPlan(t *testing.T) {
	p, err := BuildPlan(context.Background(), "A community for birdwatchers")
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if p.Analysis.Archetype != analysis.ArchetypeSocial || len(p.Slides) == 0 || p.Scaffold == "" {
		t.Fatalf("unexpected plan %+v", p.Analysis)
	}
}

func TestNewClassifierFS(t *testing.T) {
	catalog := fstest.MapFS{
		"only.yaml": &fstest.MapFile{Data: []byte(`
archetypes:
  - name: generic
    goals: [Ship it]
    features: [Login]
    techStack:
      - category: Backend
        technologies: [Go]
    timeline: 1 week
    complexity: Low
    teamSize: 1 developer
`)},
	}
	c, err := NewClassifierFS(catalog)
	if err != nil {
		t.Fatalf("classifier: %v", err)
	}
	if got := c.Classify("an online store"); got.Timeline != "1 week" {
		t.Fatalf("expected custom catalogue, got %+v", got)
	}

	p, err := BuildPlan(context.Background(), "anything at all", WithClassifier(c))
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if p.Analysis.TeamSize != "1 developer" {
		t.Fatalf("plan should use the supplied classifier, got %+v", p.Analysis)
	}
}

func TestEmbeddedFilesystems(t *testing.T) {
	checks := map[string]struct {
		fsys fs.FS
		name string
	}{
		"catalog":  {CatalogFS(), "archetypes.yaml"},
		"deck":     {DeckTemplates(), "deck.tpl"},
		"scaffold": {ScaffoldTemplates(), "scaffold.tpl"},
		"assets":   {DeckAssetsFS(), "deck.js"},
	}
	for label, check := range checks {
		if _, err := fs.ReadFile(check.fsys, check.name); err != nil {
			t.Fatalf("%s: expected %s to be readable: %v", label, check.name, err)
		}
	}
}
