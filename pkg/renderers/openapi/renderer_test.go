package openapi

import (
	"context"
	"encoding/json"
	"sort"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ideaplan/pkg/plan"
	"github.com/goliatone/go-ideaplan/pkg/render"
	"github.com/goliatone/go-ideaplan/pkg/testsupport"
)

func sparsePlan(t *testing.T) plan.Plan {
	t.Helper()
	p, err := plan.New("Book Swap", testsupport.SparseAnalysis())
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	return p
}

func TestDocumentPaths(t *testing.T) {
	doc := Document(sparsePlan(t), "Book Swap")

	got := doc.Paths.InMatchingOrder()
	sort.Strings(got)
	want := []string{
		"/api/user-profiles",
		"/api/user-profiles/{id}",
		"/auth/login",
		"/auth/logout",
		"/auth/register",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}

	item := doc.Paths.Value("/api/user-profiles/{id}")
	ids := []string{item.Get.OperationID, item.Put.OperationID, item.Delete.OperationID}
	if diff := cmp.Diff([]string{"getUserProfiles", "updateUserProfiles", "deleteUserProfiles"}, ids); diff != "" {
		t.Fatalf("operation ids mismatch (-want +got):\n%s", diff)
	}
	if doc.Servers[0].URL != "https://api.book-swap.com" {
		t.Fatalf("unexpected server %q", doc.Servers[0].URL)
	}
}

func TestDocumentValidates(t *testing.T) {
	p, err := plan.New(testsupport.CommerceIdea, testsupport.CommerceAnalysis())
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	doc := Document(p, p.Idea)
	if err := doc.Validate(context.Background()); err != nil {
		t.Fatalf("validate: %v", err)
	}
	// three auth paths plus a collection and an item path per feature
	if got, want := doc.Paths.Len(), 3+2*len(p.Analysis.Features); got != want {
		t.Fatalf("expected %d paths, got %d", want, got)
	}
}

func TestRenderProducesLoadableJSON(t *testing.T) {
	out, err := New().Render(context.Background(), sparsePlan(t), render.RenderOptions{Title: "Swap API"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	loaded, err := openapi3.NewLoader().LoadFromData(out)
	if err != nil {
		t.Fatalf("load rendered document: %v", err)
	}
	if loaded.Info.Title != "Swap API" {
		t.Fatalf("unexpected title %q", loaded.Info.Title)
	}
	if loaded.Paths.Find("/api/user-profiles") == nil {
		t.Fatalf("collection path missing")
	}
}

func TestRenderCompact(t *testing.T) {
	out, err := New().Render(context.Background(), sparsePlan(t), render.RenderOptions{Compact: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded["openapi"] != "3.0.3" {
		t.Fatalf("unexpected openapi version %v", decoded["openapi"])
	}
	for _, b := range out {
		if b == '\n' {
			t.Fatalf("compact output contains newlines")
		}
	}
}

func TestFallbackSlugs(t *testing.T) {
	a := testsupport.SparseAnalysis()
	a.Features = []string{"!!!"}
	p, err := plan.New("???", a)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	doc := Document(p, "x")
	if doc.Paths.Value("/api/feature-1") == nil {
		t.Fatalf("expected fallback feature path")
	}
	if doc.Servers[0].URL != "https://api.project.com" {
		t.Fatalf("unexpected server %q", doc.Servers[0].URL)
	}
	if err := doc.Validate(context.Background()); err != nil {
		t.Fatalf("validate: %v", err)
	}
}
