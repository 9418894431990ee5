package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ideaplan/pkg/analysis"
)

// CommerceIdea is the idea used by most end-to-end fixtures.
const CommerceIdea = "A marketplace for used books"

// CommerceAnalysis mirrors the commerce archetype of the embedded catalogue.
// It is built in code so generator tests do not depend on the classifier.
func CommerceAnalysis() analysis.ProjectAnalysis {
	return analysis.ProjectAnalysis{
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
}

// SparseAnalysis has fewer goals, features and tech entries than any diagram
// or slide slot expects, so fallbacks kick in.
func SparseAnalysis() analysis.ProjectAnalysis {
	return analysis.ProjectAnalysis{
		Goals:    []string{"Ship it"},
		Features: []string{"User Profiles"},
		TechStack: []analysis.TechStack{
			{Category: "Frontend", Technologies: []string{"Vue"}, Reason: "Small footprint"},
		},
		Timeline:   "1 month",
		Complexity: analysis.ComplexityLow,
		TeamSize:   "1 developer",
	}
}

// ReferenceTime is the instant fixtures and golden files are stamped with.
var ReferenceTime = time.Date(2025, time.March, 4, 10, 0, 0, 0, time.UTC)

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// LoadAnalysis reads a JSON fixture into a ProjectAnalysis.
func LoadAnalysis(path string) (analysis.ProjectAnalysis, error) {
	if path == "" {
		return analysis.ProjectAnalysis{}, errors.New("testsupport: analysis path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return analysis.ProjectAnalysis{}, fmt.Errorf("testsupport: read analysis: %w", err)
	}
	var out analysis.ProjectAnalysis
	if err := json.Unmarshal(data, &out); err != nil {
		return analysis.ProjectAnalysis{}, fmt.Errorf("testsupport: unmarshal analysis: %w", err)
	}
	return out, nil
}

// MustLoadAnalysis is LoadAnalysis for tests.
func MustLoadAnalysis(t *testing.T, path string) analysis.ProjectAnalysis {
	t.Helper()

	out, err := LoadAnalysis(path)
	if err != nil {
		t.Fatalf("load analysis: %v", err)
	}
	return out
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	WriteMaybeGolden(t, path, payload)
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file as a string.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
