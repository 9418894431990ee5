package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ideaplan/pkg/analysis"
	"github.com/goliatone/go-ideaplan/pkg/plan"
	"github.com/goliatone/go-ideaplan/pkg/render"
	"github.com/goliatone/go-ideaplan/pkg/testsupport"
)

func stubClassifier() analysis.Classifier {
	return analysis.ClassifierFunc(func(string) analysis.ProjectAnalysis {
		return testsupport.SparseAnalysis()
	})
}

type countingClassifier struct {
	calls int
}

func (c *countingClassifier) Classify(string) analysis.ProjectAnalysis {
	c.calls++
	return testsupport.SparseAnalysis()
}

type captureRenderer struct {
	name    string
	options render.RenderOptions
	plan    plan.Plan
	err     error
}

func (r *captureRenderer) Name() string {
	if r.name != "" {
		return r.name
	}
	return "capture"
}

func (r *captureRenderer) ContentType() string {
	return "text/plain"
}

func (r *captureRenderer) Render(_ context.Context, p plan.Plan, opts render.RenderOptions) ([]byte, error) {
	r.options = opts
	r.plan = p
	if r.err != nil {
		return nil, r.err
	}
	return []byte(p.Idea), nil
}

func TestPlan_BlankIdeaSkipsClassifier(t *testing.T) {
	counter := &countingClassifier{}
	orch := New(WithClassifier(counter))

	for _, idea := range []string{"", "   ", "\n\t"} {
		_, err := orch.Plan(context.Background(), idea)
		if !errors.Is(err, analysis.ErrEmptyIdea) {
			t.Fatalf("idea %q: expected ErrEmptyIdea, got %v", idea, err)
		}
	}
	if counter.calls != 0 {
		t.Fatalf("classifier should not run for blank ideas, ran %d times", counter.calls)
	}
}

func TestPlan_ContextChecks(t *testing.T) {
	orch := New(WithClassifier(stubClassifier()))

	if _, err := orch.Plan(nil, "idea"); err == nil {
		t.Fatalf("expected error for nil context")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := orch.Plan(ctx, "idea"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPlan_UsesCatalogueByDefault(t *testing.T) {
	orch := New(WithPlanOptions(plan.WithClock(testsupport.FixedClock(testsupport.ReferenceTime))))

	p, err := orch.Plan(context.Background(), "An online store for vintage records")
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if p.Analysis.Archetype != analysis.ArchetypeCommerce {
		t.Fatalf("expected commerce archetype, got %q", p.Analysis.Archetype)
	}
	if !p.CreatedAt.Equal(testsupport.ReferenceTime) {
		t.Fatalf("plan options not forwarded, created at %v", p.CreatedAt)
	}
	if len(p.Slides) == 0 || p.Scaffold == "" || len(p.Diagram.Nodes) == 0 {
		t.Fatalf("plan is missing derived renderings")
	}
}

func TestPlan_RejectsInvalidAnalysis(t *testing.T) {
	orch := New(WithClassifier(analysis.ClassifierFunc(func(string) analysis.ProjectAnalysis {
		return analysis.ProjectAnalysis{}
	})))
	_, err := orch.Plan(context.Background(), "idea")
	if !errors.Is(err, analysis.ErrNoGoals) {
		t.Fatalf("expected ErrNoGoals, got %v", err)
	}
}

func TestGenerate_DefaultsToSummary(t *testing.T) {
	orch := New(WithClassifier(stubClassifier()))

	out, err := orch.Generate(context.Background(), Request{Idea: "tiny"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(string(out), "Project Flowchart\n") {
		t.Fatalf("expected summary output, got %q", out)
	}
}

func TestGenerate_ReusesSuppliedPlan(t *testing.T) {
	counter := &countingClassifier{}
	renderer := &captureRenderer{}
	orch := New(WithClassifier(counter), WithRegistry(render.NewRegistry(renderer)))

	p, err := plan.New("given", testsupport.CommerceAnalysis())
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	out, err := orch.Generate(context.Background(), Request{Plan: &p, Renderer: "capture"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(out) != "given" {
		t.Fatalf("unexpected output %q", out)
	}
	if counter.calls != 0 {
		t.Fatalf("classifier should not run when a plan is supplied")
	}
	if diff := cmp.Diff(p.Analysis, renderer.plan.Analysis); diff != "" {
		t.Fatalf("plan mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_RendererResolution(t *testing.T) {
	alpha := &captureRenderer{name: "alpha"}
	beta := &captureRenderer{name: "beta"}
	orch := New(
		WithClassifier(stubClassifier()),
		WithRegistry(render.NewRegistry(beta, alpha)),
		WithDefaultRenderer("missing"),
	)

	if _, err := orch.Generate(context.Background(), Request{Idea: "x"}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if alpha.plan.Idea != "x" || beta.plan.Idea != "" {
		t.Fatalf("expected fallback to first registered renderer (alpha)")
	}

	if _, err := orch.Generate(context.Background(), Request{Idea: "y", Renderer: "beta"}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if beta.plan.Idea != "y" {
		t.Fatalf("explicit renderer not used")
	}

	if _, err := orch.Generate(context.Background(), Request{Idea: "z", Renderer: "nope"}); err == nil {
		t.Fatalf("expected error for unknown explicit renderer")
	}
}

func TestGenerate_LogsRenderFailures(t *testing.T) {
	var buf bytes.Buffer
	failing := &captureRenderer{name: "failing", err: errors.New("boom")}
	orch := New(
		WithClassifier(stubClassifier()),
		WithRegistry(render.NewRegistry(failing)),
		WithLogger(log.New(&buf, "", 0)),
	)

	_, err := orch.Generate(context.Background(), Request{Idea: "x"})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected wrapped render error, got %v", err)
	}
	if !strings.Contains(buf.String(), `renderer "failing" failed: boom`) {
		t.Fatalf("render failure not logged: %q", buf.String())
	}
}

func TestRenderers_ListsBuiltins(t *testing.T) {
	want := []string{"deck-html", "deck-markdown", "mermaid", "openapi", "scaffold", "slides-json", "summary"}
	if diff := cmp.Diff(want, New().Renderers()); diff != "" {
		t.Fatalf("renderers mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_EveryBuiltinRenders(t *testing.T) {
	orch := New()
	p, err := orch.Plan(context.Background(), "A social network for gardeners")
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	for _, name := range orch.Renderers() {
		out, err := orch.Generate(context.Background(), Request{Plan: &p, Renderer: name})
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(out) == 0 {
			t.Fatalf("%s: empty output", name)
		}
	}
}
