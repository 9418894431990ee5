package render

import (
	"context"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ideaplan/pkg/plan"
)

type stubRenderer struct {
	name        string
	contentType string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return s.contentType }
func (s stubRenderer) Render(context.Context, plan.Plan, RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	registry := NewRegistry(stubRenderer{name: "summary", contentType: "text/plain"})
	if err := registry.Register(stubRenderer{name: "mermaid", contentType: "text/vnd.mermaid"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if !registry.Has("mermaid") || registry.Has("missing") {
		t.Fatalf("unexpected Has results")
	}
	if diff := cmp.Diff([]string{"mermaid", "summary"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	got, err := registry.Get("summary")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ContentType() != "text/plain" {
		t.Fatalf("unexpected renderer %v", got)
	}
	if _, err := registry.Get("missing"); err == nil {
		t.Fatalf("expected error for missing renderer")
	}

	want := []Info{
		{Name: "mermaid", ContentType: "text/vnd.mermaid"},
		{Name: "summary", ContentType: "text/plain"},
	}
	if diff := cmp.Diff(want, registry.Describe()); diff != "" {
		t.Fatalf("describe mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryRejectsInvalid(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected error for unnamed renderer")
	}
	registry.MustRegister(stubRenderer{name: "a"})
	if err := registry.Register(stubRenderer{name: "a"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustGet to panic")
		}
	}()
	registry.MustGet("missing")
}

func TestRenderOptionsHelpers(t *testing.T) {
	var opts RenderOptions
	if opts.TitleOr("idea") != "idea" || opts.Token("accent", "#fff") != "#fff" {
		t.Fatalf("zero options should fall back")
	}

	opts = RenderOptions{
		Title: "Deck",
		Theme: &theme.RendererConfig{Tokens: map[string]string{"accent": "#06b6d4", "empty": ""}},
	}
	if opts.TitleOr("idea") != "Deck" {
		t.Fatalf("title override ignored")
	}
	if opts.Token("accent", "#fff") != "#06b6d4" {
		t.Fatalf("token lookup failed")
	}
	if opts.Token("empty", "#fff") != "#fff" {
		t.Fatalf("empty token should fall back")
	}
}
