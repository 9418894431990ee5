package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goliatone/go-ideaplan/pkg/render"
	"github.com/goliatone/go-ideaplan/pkg/testsupport"
)

func TestStatusLinesArePlainOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Success("wrote %d files", 3)
	p.Error("failed: %s", "disk full")
	p.Warn("careful")
	p.Info("plain info")

	want := "✓ wrote 3 files\n✗ failed: disk full\n! careful\nplain info\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%q\nwant\n%q", got, want)
	}
}

func TestRawKeepsDocumentsVerbatim(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Raw([]byte("line one\nline two"))
	p.Raw([]byte("already terminated\n"))
	p.Raw(nil)

	if got := buf.String(); got != "line one\nline two\nalready terminated\n" {
		t.Fatalf("unexpected raw output %q", got)
	}
}

func TestRenderersMarksDefault(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Renderers([]render.Info{
		{Name: "mermaid", ContentType: "text/plain"},
		{Name: "summary", ContentType: "text/plain; charset=utf-8"},
	}, "summary")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "  mermaid") || !strings.HasPrefix(lines[1], "* summary") {
		t.Fatalf("unexpected renderer listing %q", lines)
	}
}

func TestAnalysisListsEverySection(t *testing.T) {
	var buf bytes.Buffer
	a := testsupport.CommerceAnalysis()
	New(&buf).Analysis(a)

	out := buf.String()
	for _, want := range []string{"Project Analysis", "Goals", "Key Features", "Tech Stack", a.Timeline, a.TeamSize} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	for _, feature := range a.Features {
		if !strings.Contains(out, "• "+feature) {
			t.Fatalf("missing feature %q", feature)
		}
	}
}

func TestTerminalHelpersOnBuffers(t *testing.T) {
	var buf bytes.Buffer
	if IsTerminal(&buf) {
		t.Fatalf("buffer is not a terminal")
	}
	if got := TerminalWidth(&buf); got != 80 {
		t.Fatalf("expected default width, got %d", got)
	}
}

func TestBoxWrapsBody(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Box("hello\n")
	out := buf.String()
	if !strings.Contains(out, "hello") || !strings.Contains(out, "┌") {
		t.Fatalf("expected bordered box, got %q", out)
	}
}
