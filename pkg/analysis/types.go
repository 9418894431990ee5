package analysis

import (
	"errors"
	"fmt"
	"strings"
)

// Complexity is the closed effort scale attached to an analysis.
type Complexity string

const (
	ComplexityLow    Complexity = "Low"
	ComplexityMedium Complexity = "Medium"
	ComplexityHigh   Complexity = "High"
)

// Valid reports whether c is one of the three known levels.
func (c Complexity) Valid() bool {
	switch c {
	case ComplexityLow, ComplexityMedium, ComplexityHigh:
		return true
	}
	return false
}

// Archetype names the catalogue template that produced an analysis.
type Archetype string

const (
	ArchetypeCommerce  Archetype = "commerce"
	ArchetypeSocial    Archetype = "social"
	ArchetypeAnalytics Archetype = "analytics"
	ArchetypeGeneric   Archetype = "generic"
)

// TechStack groups the technologies recommended for one concern.
type TechStack struct {
	Category     string   `json:"category" yaml:"category"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	Reason       string   `json:"reason" yaml:"reason"`
}

// Primary returns the first technology or fallback when the entry is empty.
func (t TechStack) Primary(fallback string) string {
	if len(t.Technologies) == 0 {
		return fallback
	}
	return t.Technologies[0]
}

// ProjectAnalysis is the structured plan derived from an idea. Values are
// treated as immutable once produced; use Clone before handing a copy to code
// that might mutate slices.
type ProjectAnalysis struct {
	Archetype  Archetype   `json:"archetype,omitempty"`
	Goals      []string    `json:"goals"`
	Features   []string    `json:"features"`
	TechStack  []TechStack `json:"techStack"`
	Timeline   string      `json:"timeline"`
	Complexity Complexity  `json:"complexity"`
	TeamSize   string      `json:"teamSize"`
}

// Clone returns a deep copy so generators never share backing arrays.
func (a ProjectAnalysis) Clone() ProjectAnalysis {
	out := a
	out.Goals = append([]string(nil), a.Goals...)
	out.Features = append([]string(nil), a.Features...)
	if a.TechStack != nil {
		out.TechStack = make([]TechStack, len(a.TechStack))
		for i, entry := range a.TechStack {
			entry.Technologies = append([]string(nil), entry.Technologies...)
			out.TechStack[i] = entry
		}
	}
	return out
}

// FindTechStack returns the first entry whose category contains needle,
// compared case-insensitively.
func (a ProjectAnalysis) FindTechStack(needle string) (TechStack, bool) {
	target := strings.ToLower(needle)
	for _, entry := range a.TechStack {
		if strings.Contains(strings.ToLower(entry.Category), target) {
			return entry, true
		}
	}
	return TechStack{}, false
}

// TechAt returns the entry at index i, or false when out of range.
func (a ProjectAnalysis) TechAt(i int) (TechStack, bool) {
	if i < 0 || i >= len(a.TechStack) {
		return TechStack{}, false
	}
	return a.TechStack[i], true
}

// ErrEmptyIdea reports an idea that is blank after trimming whitespace.
// Classifiers never see such input; callers check first.
var ErrEmptyIdea = errors.New("analysis: idea is empty")

// IsBlank reports whether idea has no non-whitespace content.
func IsBlank(idea string) bool {
	return strings.TrimSpace(idea) == ""
}

var (
	ErrNoGoals       = errors.New("analysis: goals are required")
	ErrNoFeatures    = errors.New("analysis: features are required")
	ErrNoTechStack   = errors.New("analysis: at least one tech stack entry is required")
	ErrBadComplexity = errors.New("analysis: complexity must be Low, Medium or High")
)

// Validate checks the structural invariants every archetype must satisfy.
func (a ProjectAnalysis) Validate() error {
	var errs []error
	if len(a.Goals) == 0 {
		errs = append(errs, ErrNoGoals)
	}
	if len(a.Features) == 0 {
		errs = append(errs, ErrNoFeatures)
	}
	if len(a.TechStack) == 0 {
		errs = append(errs, ErrNoTechStack)
	}
	if !a.Complexity.Valid() {
		errs = append(errs, fmt.Errorf("%w (got %q)", ErrBadComplexity, a.Complexity))
	}
	return errors.Join(errs...)
}
