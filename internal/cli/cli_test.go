package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ideaplan/pkg/analysis"
	"github.com/goliatone/go-ideaplan/pkg/export"
	"github.com/goliatone/go-ideaplan/pkg/prompt"
)

type scriptedDriver struct {
	inputs  []string
	selects []int
	infos   []string
	asked   int
}

func (d *scriptedDriver) Input(_ context.Context, _ prompt.InputConfig) (string, error) {
	d.asked++
	if len(d.inputs) == 0 {
		return "", prompt.ErrAborted
	}
	next := d.inputs[0]
	d.inputs = d.inputs[1:]
	return next, nil
}

func (d *scriptedDriver) Select(_ context.Context, _ prompt.SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		return 0, prompt.ErrAborted
	}
	next := d.selects[0]
	d.selects = d.selects[1:]
	return next, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

type harness struct {
	out       bytes.Buffer
	errOut    bytes.Buffer
	clipboard bytes.Buffer
	driver    *scriptedDriver
	config    string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{driver: &scriptedDriver{}}
	h.config = filepath.Join(t.TempDir(), "ideaplan.yaml")
	body := "analysis:\n  delay: 0s\nexport:\n  output_dir: " + filepath.Join(t.TempDir(), "out") + "\n"
	if err := os.WriteFile(h.config, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return h
}

func (h *harness) run(args ...string) error {
	root := NewRootCommand(
		WithStreams(&h.out, &h.errOut),
		WithPromptDriver(h.driver),
		WithClipboard(&export.WriterClipboard{W: &h.clipboard}),
	)
	root.SetArgs(append([]string{"--config", h.config}, args...))
	return root.ExecuteContext(context.Background())
}

func TestAnalyzeJSON(t *testing.T) {
	h := newHarness(t)
	if err := h.run("analyze", "--json", "an", "online", "store"); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	var got analysis.ProjectAnalysis
	if err := json.Unmarshal(h.out.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, h.out.String())
	}
	if got.Archetype != analysis.ArchetypeCommerce {
		t.Fatalf("expected commerce, got %q", got.Archetype)
	}
	if h.driver.asked != 0 {
		t.Fatalf("idea was given, prompt should not run")
	}
}

func TestAnalyzePromptsForMissingIdea(t *testing.T) {
	h := newHarness(t)
	h.driver.inputs = []string{"a chat community for chess players"}
	if err := h.run("analyze"); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if h.driver.asked != 1 {
		t.Fatalf("expected one prompt, got %d", h.driver.asked)
	}
	if !strings.Contains(h.out.String(), "Project Analysis") || !strings.Contains(h.out.String(), "social") {
		t.Fatalf("unexpected output:\n%s", h.out.String())
	}
}

func TestBlankIdeaFails(t *testing.T) {
	h := newHarness(t)
	if err := h.run("analyze", "   "); !errors.Is(err, export.ErrEmptyIdea) {
		t.Fatalf("expected ErrEmptyIdea, got %v", err)
	}

	h.driver.inputs = []string{""}
	if err := h.run("render"); !errors.Is(err, export.ErrEmptyIdea) {
		t.Fatalf("expected ErrEmptyIdea from prompt, got %v", err)
	}
	if h.out.Len() != 0 {
		t.Fatalf("nothing should be printed, got %q", h.out.String())
	}
}

func TestRenderToStdoutFileAndClipboard(t *testing.T) {
	h := newHarness(t)
	if err := h.run("render", "team analytics dashboard", "-r", "mermaid"); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := h.out.String()
	if !strings.HasPrefix(out, "%%{init: {'theme': 'dark'") {
		t.Fatalf("expected theme init directive, got %q", out)
	}
	if !strings.Contains(out, "}}%%\nflowchart TD\n") {
		t.Fatalf("expected mermaid source after the directive, got %q", out)
	}

	target := filepath.Join(t.TempDir(), "nested", "deck.html")
	h.out.Reset()
	if err := h.run("render", "team analytics dashboard", "-r", "deck-html", "-o", target, "--variant", "light"); err != nil {
		t.Fatalf("render to file: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Contains(data, []byte("<section")) {
		t.Fatalf("expected deck html")
	}
	if !strings.Contains(h.out.String(), "Output written to") {
		t.Fatalf("unexpected output %q", h.out.String())
	}

	if err := h.run("render", "team analytics dashboard", "-r", "scaffold", "--copy"); err != nil {
		t.Fatalf("render copy: %v", err)
	}
	if h.clipboard.Len() == 0 {
		t.Fatalf("expected scaffold on the clipboard")
	}
}

func TestRenderUnknownRenderer(t *testing.T) {
	h := newHarness(t)
	err := h.run("render", "an online store", "-r", "pdf")
	if err == nil || !strings.Contains(err.Error(), `"pdf"`) {
		t.Fatalf("expected unknown renderer error, got %v", err)
	}
}

func TestExportWritesConventionalFiles(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()
	if err := h.run("export", "My Shop", "-d", dir); err != nil {
		t.Fatalf("export: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	want := []string{
		"my-shop-project-analysis.html",
		"project-diagram.mmd",
		"project-flowchart.txt",
		"project-openapi.json",
		"project-scaffold.txt",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("exported files mismatch (-want +got):\n%s", diff)
	}
	if got := strings.Count(h.out.String(), "Wrote "); got != len(want) {
		t.Fatalf("expected %d success lines, got %d", len(want), got)
	}
}

func TestRenderersCommand(t *testing.T) {
	h := newHarness(t)
	if err := h.run("renderers"); err != nil {
		t.Fatalf("renderers: %v", err)
	}
	for _, name := range []string{"deck-html", "deck-markdown", "mermaid", "openapi", "scaffold", "slides-json", "* summary"} {
		if !strings.Contains(h.out.String(), name) {
			t.Fatalf("listing missing %q:\n%s", name, h.out.String())
		}
	}
}

func TestSlidesSessionUsesInitialIdea(t *testing.T) {
	h := newHarness(t)
	h.driver.selects = []int{6}
	if err := h.run("slides", "an", "online", "store"); err != nil {
		t.Fatalf("slides: %v", err)
	}
	if h.driver.asked != 0 {
		t.Fatalf("initial idea should skip the prompt")
	}
	joined := strings.Join(h.driver.infos, "\n")
	if !strings.Contains(joined, "Analysis ready") {
		t.Fatalf("expected results message, got:\n%s", joined)
	}
}

func TestBadConfigFails(t *testing.T) {
	h := newHarness(t)
	if err := os.WriteFile(h.config, []byte("render:\n  default_renderer: \"\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := h.run("renderers"); err == nil {
		t.Fatalf("expected validation error")
	}
}
