package plan

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ideaplan/pkg/analysis"
	"github.com/goliatone/go-ideaplan/pkg/slides"
	"github.com/goliatone/go-ideaplan/pkg/testsupport"
)

func TestNewBuildsEveryRendering(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	a := testsupport.CommerceAnalysis()

	p, err := New(testsupport.CommerceIdea, a, WithClock(testsupport.FixedClock(now)))
	if err != nil {
		t.Fatalf("new plan: %v", err)
	}

	if !p.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created at %v", p.CreatedAt)
	}
	if diff := cmp.Diff(a, p.Analysis); diff != "" {
		t.Fatalf("analysis mismatch (-want +got):\n%s", diff)
	}
	if len(p.Slides) != 11 {
		t.Fatalf("expected 11 slides, got %d", len(p.Slides))
	}
	if got := p.Slides[0].Content.(slides.TitleContent).Generated; !strings.HasSuffix(got, "June 1, 2025") {
		t.Fatalf("title slide should use the plan clock, got %q", got)
	}
	if node, _ := p.Diagram.Node("E1"); !strings.Contains(node.Label, "React, Next.js") {
		t.Fatalf("unexpected E1 label %q", node.Label)
	}
	if !strings.Contains(p.Scaffold, "// A marketplace for used books - Project Structure") {
		t.Fatalf("scaffold missing header:\n%s", p.Scaffold)
	}
	if !strings.HasPrefix(p.Mermaid(), "flowchart TD\n") {
		t.Fatalf("unexpected mermaid output")
	}
}

func TestNewRejectsBlankIdea(t *testing.T) {
	called := false
	gen := ScaffoldFunc(func(analysis.ProjectAnalysis, string) (string, error) {
		called = true
		return "", nil
	})

	_, err := New("   \t", testsupport.CommerceAnalysis(), WithScaffolder(gen))
	if !errors.Is(err, analysis.ErrEmptyIdea) {
		t.Fatalf("expected ErrEmptyIdea, got %v", err)
	}
	if called {
		t.Fatalf("scaffold generator should not run for blank ideas")
	}
}

func TestNewScaffoldFailure(t *testing.T) {
	boom := errors.New("boom")
	gen := ScaffoldFunc(func(analysis.ProjectAnalysis, string) (string, error) {
		return "", boom
	})

	if _, err := New("idea", testsupport.CommerceAnalysis(), WithScaffolder(gen)); !errors.Is(err, boom) {
		t.Fatalf("expected scaffold error, got %v", err)
	}
}

func TestNewIsolatesAnalysisCopies(t *testing.T) {
	a := testsupport.CommerceAnalysis()
	gen := ScaffoldFunc(func(in analysis.ProjectAnalysis, _ string) (string, error) {
		in.TechStack[0].Technologies[0] = "Mutated"
		in.Goals[0] = "Mutated"
		return "ok", nil
	})

	p, err := New("idea", a, WithScaffolder(gen))
	if err != nil {
		t.Fatalf("new plan: %v", err)
	}
	if a.TechStack[0].Technologies[0] != "React" || p.Analysis.Goals[0] == "Mutated" {
		t.Fatalf("scaffold generator mutated shared analysis data")
	}
	if entries := p.Slides[4].Content.(slides.TechStackContent).Entries; entries[0].Technologies[0] != "React" {
		t.Fatalf("slides observed scaffold mutation")
	}
}
