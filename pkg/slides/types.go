package slides

import (
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-ideaplan/pkg/analysis"
)

// Kind tags a slide with its role in the deck.
type Kind string

const (
	KindTitle     Kind = "title"
	KindSummary   Kind = "summary"
	KindGoals     Kind = "goals"
	KindFeatures  Kind = "features"
	KindTechStack Kind = "techstack"
	KindTimeline  Kind = "timeline"
	KindCode      Kind = "code"
	KindRoadmap   Kind = "roadmap"
	KindRisks     Kind = "risks"
	KindNextSteps Kind = "nextsteps"
	KindResources Kind = "resources"
)

// Order lists every kind in deck order.
func Order() []Kind {
	return []Kind{
		KindTitle, KindSummary, KindGoals, KindFeatures, KindTechStack, KindTimeline,
		KindCode, KindRoadmap, KindRisks, KindNextSteps, KindResources,
	}
}

// Content is implemented only by the variants declared in this package.
type Content interface {
	content()
}

type TitleContent struct {
	Subtitle  string `json:"subtitle"`
	Generated string `json:"generated"`
}

type SummaryRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type SummaryContent struct {
	Rows []SummaryRow `json:"rows"`
}

// ListContent backs the goals, features, timeline, roadmap and next-steps
// slides.
type ListContent struct {
	Items []string `json:"items"`
}

type TechStackContent struct {
	Entries []analysis.TechStack `json:"entries"`
}

type CodeContent struct {
	Frontend  string `json:"frontend"`
	Backend   string `json:"backend"`
	Structure string `json:"structure"`
}

type RiskRow struct {
	Risk       string `json:"risk"`
	Impact     string `json:"impact"`
	Mitigation string `json:"mitigation"`
}

type RiskContent struct {
	Rows []RiskRow `json:"rows"`
}

type ResourcesContent struct {
	Subtitle string   `json:"subtitle"`
	Includes []string `json:"includes"`
}

func (TitleContent) content()     {}
func (SummaryContent) content()   {}
func (ListContent) content()      {}
func (TechStackContent) content() {}
func (CodeContent) content()      {}
func (RiskContent) content()      {}
func (ResourcesContent) content() {}

// Slide is one page of the deck.
type Slide struct {
	Title   string  `json:"title"`
	Kind    Kind    `json:"type"`
	Content Content `json:"content"`
}

// UnmarshalJSON decodes the content variant selected by the slide type.
func (s *Slide) UnmarshalJSON(data []byte) error {
	var raw struct {
		Title   string          `json:"title"`
		Kind    Kind            `json:"type"`
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	content, err := decodeContent(raw.Kind, raw.Content)
	if err != nil {
		return err
	}
	s.Title = raw.Title
	s.Kind = raw.Kind
	s.Content = content
	return nil
}

func decodeContent(kind Kind, data json.RawMessage) (Content, error) {
	switch kind {
	case KindTitle:
		return decodeInto[TitleContent](data)
	case KindSummary:
		return decodeInto[SummaryContent](data)
	case KindGoals, KindFeatures, KindTimeline, KindRoadmap, KindNextSteps:
		return decodeInto[ListContent](data)
	case KindTechStack:
		return decodeInto[TechStackContent](data)
	case KindCode:
		return decodeInto[CodeContent](data)
	case KindRisks:
		return decodeInto[RiskContent](data)
	case KindResources:
		return decodeInto[ResourcesContent](data)
	default:
		return nil, fmt.Errorf("slides: unknown slide type %q", kind)
	}
}

func decodeInto[T Content](data json.RawMessage) (Content, error) {
	var out T
	if len(data) == 0 || string(data) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("slides: decode content: %w", err)
	}
	return out, nil
}

// Find returns the first slide of the given kind.
func Find(deck []Slide, kind Kind) (Slide, bool) {
	for _, slide := range deck {
		if slide.Kind == kind {
			return slide, true
		}
	}
	return Slide{}, false
}
