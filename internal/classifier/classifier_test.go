package classifier

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ideaplan/pkg/analysis"
)

func newClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := New(Options{})
	if err != nil {
		t.Fatalf("new classifier: %v", err)
	}
	return c
}

func TestClassify_KeywordGroups(t *testing.T) {
	c := newClassifier(t)

	cases := []struct {
		name string
		idea string
		want analysis.Archetype
	}{
		{name: "shop any case", idea: "My SHOP for sneakers", want: analysis.ArchetypeCommerce},
		{name: "ecommerce", idea: "an ecommerce site", want: analysis.ArchetypeCommerce},
		{name: "store inside word", idea: "restore old furniture", want: analysis.ArchetypeCommerce},
		{name: "marketplace", idea: "A marketplace for used books", want: analysis.ArchetypeCommerce},
		{name: "social", idea: "Social network for hikers", want: analysis.ArchetypeSocial},
		{name: "chat", idea: "team chat app", want: analysis.ArchetypeSocial},
		{name: "dashboard", idea: "Sales DASHBOARD", want: analysis.ArchetypeAnalytics},
		{name: "data", idea: "weather data explorer", want: analysis.ArchetypeAnalytics},
		{name: "generic", idea: "A todo list for cats", want: analysis.ArchetypeGeneric},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Classify(tc.idea)
			if got.Archetype != tc.want {
				t.Fatalf("classify %q: want %s, got %s", tc.idea, tc.want, got.Archetype)
			}
		})
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	c := newClassifier(t)

	got := c.Classify("community marketplace shop")
	if got.Archetype != analysis.ArchetypeCommerce {
		t.Fatalf("expected commerce to win over social, got %s", got.Archetype)
	}

	got = c.Classify("chat about analytics data")
	if got.Archetype != analysis.ArchetypeSocial {
		t.Fatalf("expected social to win over analytics, got %s", got.Archetype)
	}
}

func TestClassify_CommerceTemplate(t *testing.T) {
	c := newClassifier(t)

	want := analysis.ProjectAnalysis{
		Archetype: analysis.ArchetypeCommerce,
		Goals: []string{
			"Create seamless online shopping experience",
			"Implement secure payment processing",
			"Build inventory management system",
			"Optimize for mobile commerce",
		},
		Features: []string{
			"Product catalog with search and filters",
			"Shopping cart and checkout flow",
			"User authentication and profiles",
			"Payment gateway integration",
			"Order tracking and history",
			"Admin dashboard for inventory",
			"Reviews and ratings system",
			"Email notifications",
		},
		TechStack: []analysis.TechStack{
			{Category: "Frontend", Technologies: []string{"React", "Next.js", "Tailwind CSS"}, Reason: "Modern UI with SSR for SEO"},
			{Category: "Backend", Technologies: []string{"Node.js", "Express", "PostgreSQL"}, Reason: "Scalable API with relational data"},
			{Category: "Payments", Technologies: []string{"Stripe", "PayPal"}, Reason: "Secure payment processing"},
			{Category: "Hosting", Technologies: []string{"Vercel", "AWS"}, Reason: "Reliable deployment and scaling"},
		},
		Timeline:   "6-12 months",
		Complexity: analysis.ComplexityHigh,
		TeamSize:   "4-6 developers",
	}

	if diff := cmp.Diff(want, c.Classify("online shop")); diff != "" {
		t.Fatalf("commerce template mismatch (-want +got):\n%s", diff)
	}
}

func TestClassify_ArchetypeScalars(t *testing.T) {
	c := newClassifier(t)

	cases := []struct {
		idea       string
		timeline   string
		complexity analysis.Complexity
		team       string
		third      string
	}{
		{idea: "social", timeline: "8-15 months", complexity: analysis.ComplexityHigh, team: "5-8 developers", third: "Real-time"},
		{idea: "dashboard", timeline: "4-8 months", complexity: analysis.ComplexityMedium, team: "3-4 developers", third: "Visualization"},
		{idea: "something else", timeline: "3-6 months", complexity: analysis.ComplexityMedium, team: "2-3 developers", third: "Authentication"},
	}

	for _, tc := range cases {
		got := c.Classify(tc.idea)
		if got.Timeline != tc.timeline || got.Complexity != tc.complexity || got.TeamSize != tc.team {
			t.Fatalf("%q: unexpected scalars %q/%q/%q", tc.idea, got.Timeline, got.Complexity, got.TeamSize)
		}
		if len(got.TechStack) != 4 {
			t.Fatalf("%q: expected 4 tech stack entries, got %d", tc.idea, len(got.TechStack))
		}
		if got.TechStack[2].Category != tc.third {
			t.Fatalf("%q: expected third category %q, got %q", tc.idea, tc.third, got.TechStack[2].Category)
		}
	}
}

func TestClassify_ContentIndependentOfIdeaText(t *testing.T) {
	c := newClassifier(t)

	a := c.Classify("shop for dogs")
	b := c.Classify("a completely different store idea with many words")
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same archetype should yield identical analyses:\n%s", diff)
	}
}

func TestClassify_ReturnsIndependentCopies(t *testing.T) {
	c := newClassifier(t)

	first := c.Classify("shop")
	first.Goals[0] = "mutated"
	first.TechStack[0].Technologies[0] = "Angular"

	second := c.Classify("shop")
	if second.Goals[0] == "mutated" || second.TechStack[0].Technologies[0] == "Angular" {
		t.Fatalf("catalogue template was mutated through a returned analysis")
	}
}

func TestLoadFS_CustomCatalog(t *testing.T) {
	fsys := fstest.MapFS{
		"custom.yaml": &fstest.MapFile{Data: []byte(`
archetypes:
  - name: game
    keywords: [Game]
    goals: [Have fun]
    features: [Levels]
    techStack:
      - category: Engine
        technologies: [Godot]
        reason: Open source
    timeline: 2 months
    complexity: Low
    teamSize: 1 developer
  - name: fallback
    goals: [Do things]
    features: [Things]
    techStack:
      - category: Frontend
        technologies: [HTMX]
        reason: Simple
    timeline: 1 month
    complexity: Low
    teamSize: 1 developer
`)},
	}

	c, err := New(Options{CatalogFS: fsys})
	if err != nil {
		t.Fatalf("new classifier: %v", err)
	}

	if got := c.Classify("a retro GAME"); got.Archetype != "game" {
		t.Fatalf("expected game archetype, got %s", got.Archetype)
	}
	if got := c.Classify("a shop"); got.Archetype != "fallback" {
		t.Fatalf("expected fallback archetype, got %s", got.Archetype)
	}
}

func TestLoadFS_Errors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want error
	}{
		{name: "empty", data: "archetypes: []\n", want: ErrEmptyCatalog},
		{
			name: "no default",
			data: `
archetypes:
  - name: only
    keywords: [x]
    goals: [g]
    features: [f]
    techStack: [{category: c, technologies: [t], reason: r}]
    timeline: t
    complexity: Low
    teamSize: s
`,
			want: ErrMissingDefault,
		},
		{
			name: "invalid complexity",
			data: `
archetypes:
  - name: bad
    goals: [g]
    features: [f]
    techStack: [{category: c, technologies: [t], reason: r}]
    timeline: t
    complexity: Extreme
    teamSize: s
`,
			want: analysis.ErrBadComplexity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFS(fstest.MapFS{"c.yaml": &fstest.MapFile{Data: []byte(tc.data)}})
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestEmbeddedCatalogOrder(t *testing.T) {
	catalog, err := LoadFS(EmbeddedFS())
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}

	var names []analysis.Archetype
	for _, arch := range catalog.Archetypes() {
		names = append(names, arch.Name)
	}
	want := []analysis.Archetype{
		analysis.ArchetypeCommerce,
		analysis.ArchetypeSocial,
		analysis.ArchetypeAnalytics,
		analysis.ArchetypeGeneric,
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("catalogue order mismatch:\n%s", diff)
	}
}
