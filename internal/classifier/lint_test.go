package classifier

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestLintEmbeddedCatalogIsClean(t *testing.T) {
	c := MustNew(Options{})
	if issues := c.Catalog().Lint(); len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

func TestLintReportsProblems(t *testing.T) {
	catalog := fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: []byte(`
archetypes:
  - name: shop
    keywords: [shop, shop]
    goals: [Sell, sell]
    features: [Cart]
    techStack:
      - category: Backend
        technologies: [Go]
    timeline: 1 month
    complexity: Low
    teamSize: one developer
  - name: workshop
    keywords: [workshop, class]
    goals: [Teach]
    features: [Booking]
    techStack:
      - category: Backend
        technologies: []
    timeline: 1 month
    complexity: Low
    teamSize: one developer
  - name: generic
    goals: [Ship]
    features: [Login]
    techStack:
      - category: Backend
        technologies: [Go]
    timeline: 1 month
    complexity: Low
    teamSize: one developer
`)},
	}
	cat, err := LoadFS(catalog)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	var got []string
	for _, issue := range cat.Lint() {
		got = append(got, issue.String())
	}
	want := []string{
		`a.yaml: shop.keywords[1] -> duplicate keyword "shop"`,
		`a.yaml: shop.goals[1] -> duplicate entry "sell"`,
		`a.yaml: workshop.keywords[0] -> keyword "workshop" never matches: "shop" of shop wins first`,
		`a.yaml: workshop.techStack[0] -> no technologies listed`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
}
