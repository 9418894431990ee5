package diagram

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-ideaplan/pkg/analysis"
)

const (
	IdeaLimit    = 50
	GoalLimit    = 30
	FeatureLimit = 25

	goalLeaves    = 3
	featureLeaves = 4
)

// techLeaf describes one of the three fixed tech-stack leaves. The caption is
// positional and does not depend on the entry's category.
type techLeaf struct {
	id       string
	caption  string
	fallback string
}

var techLeaves = []techLeaf{
	{id: "E1", caption: "Frontend:", fallback: "React, TypeScript"},
	{id: "E2", caption: "Backend:", fallback: "Node.js, Express"},
	{id: "E3", caption: "Database:", fallback: "PostgreSQL, Redis"},
}

var defaultClasses = []ClassDef{
	{Name: ClassGoal, Fill: "#06b6d4", Stroke: "#0891b2", Color: "#fff"},
	{Name: ClassFeature, Fill: "#8b5cf6", Stroke: "#7c3aed", Color: "#fff"},
	{Name: ClassTech, Fill: "#10b981", Stroke: "#059669", Color: "#fff"},
	{Name: ClassTimeline, Fill: "#f59e0b", Stroke: "#d97706", Color: "#fff"},
	{Name: ClassPhase, Fill: "#ef4444", Stroke: "#dc2626", Color: "#fff"},
}

// Generate builds the diagram description for an analysis and the idea text
// it was derived from. The result depends only on its inputs.
func Generate(a analysis.ProjectAnalysis, idea string) Description {
	b := &builder{}

	b.node(Node{ID: "A", Prefix: "Project Idea:", Label: clip(idea, IdeaLimit), Suffix: "...", Shape: ShapeRect})
	b.node(Node{ID: "B", Label: "Analysis Phase", Shape: ShapeDecision})
	b.edge("A", "B")

	branches := []struct{ id, label string }{
		{"C", "Goals Definition"},
		{"D", "Feature Planning"},
		{"E", "Tech Stack Selection"},
		{"F", "Timeline Planning"},
	}
	for _, branch := range branches {
		b.node(Node{ID: branch.id, Label: branch.label, Shape: ShapeRect})
		b.edge("B", branch.id)
	}

	var feeders []string

	for i := 0; i < goalLeaves; i++ {
		id := fmt.Sprintf("C%d", i+1)
		b.node(Node{ID: id, Label: leafText(a.Goals, i, GoalLimit, "Goal"), Shape: ShapeRect, Class: ClassGoal})
		b.edge("C", id)
		feeders = append(feeders, id)
	}

	for i := 0; i < featureLeaves; i++ {
		id := fmt.Sprintf("D%d", i+1)
		b.node(Node{ID: id, Label: leafText(a.Features, i, FeatureLimit, "Feature"), Shape: ShapeRect, Class: ClassFeature})
		b.edge("D", id)
		feeders = append(feeders, id)
	}

	for i, leaf := range techLeaves {
		b.node(Node{ID: leaf.id, Prefix: leaf.caption, Label: techLabel(a, i, leaf.fallback), Shape: ShapeRect, Class: ClassTech})
		b.edge("E", leaf.id)
		feeders = append(feeders, leaf.id)
	}

	timeline := []Node{
		{ID: "F1", Label: "Timeline: " + a.Timeline},
		{ID: "F2", Label: "Complexity: " + string(a.Complexity)},
		{ID: "F3", Label: "Team: " + a.TeamSize},
	}
	for _, node := range timeline {
		node.Shape = ShapeRect
		node.Class = ClassTimeline
		b.node(node)
		b.edge("F", node.ID)
	}

	b.node(Node{ID: "G", Label: "Development Phase", Shape: ShapeRect, Class: ClassPhase})
	for _, id := range feeders {
		b.edge(id, "G")
	}
	b.pipeline()

	return Description{
		Direction: "TD",
		Nodes:     b.nodes,
		Edges:     b.edges,
		Classes:   append([]ClassDef(nil), defaultClasses...),
	}
}

// pipeline appends the archetype-independent delivery tail after G.
func (b *builder) pipeline() {
	phases := []Node{
		{ID: "H", Label: "MVP Development"},
		{ID: "I", Label: "Testing & QA"},
		{ID: "J", Label: "Deployment"},
		{ID: "K", Label: "Launch"},
		{ID: "L", Label: "Post-Launch"},
		{ID: "M", Label: "Monitoring"},
		{ID: "N", Label: "Iterations"},
		{ID: "O", Label: "Scaling"},
	}
	for _, node := range phases {
		node.Shape = ShapeRect
		node.Class = ClassPhase
		b.node(node)
	}

	for _, id := range []string{"H", "I", "J"} {
		b.edge("G", id)
	}
	for _, id := range []string{"H", "I", "J"} {
		b.edge(id, "K")
	}
	b.edge("K", "L")
	for _, id := range []string{"M", "N", "O"} {
		b.edge("L", id)
	}
}

func leafText(items []string, idx, limit int, fallback string) string {
	if idx < len(items) {
		if text := clip(items[idx], limit); text != "" {
			return text
		}
	}
	return fmt.Sprintf("%s %d", fallback, idx+1)
}

// clip sanitizes text, cuts it to limit runes and drops a space left dangling
// by the cut.
func clip(text string, limit int) string {
	return strings.TrimRight(Truncate(Sanitize(text), limit), " ")
}

func techLabel(a analysis.ProjectAnalysis, idx int, fallback string) string {
	entry, ok := a.TechAt(idx)
	if !ok || len(entry.Technologies) == 0 {
		return fallback
	}
	techs := entry.Technologies
	if len(techs) > 2 {
		techs = techs[:2]
	}
	return strings.Join(techs, ", ")
}

type builder struct {
	nodes []Node
	edges []Edge
}

func (b *builder) node(n Node) {
	b.nodes = append(b.nodes, n)
}

func (b *builder) edge(from, to string) {
	b.edges = append(b.edges, Edge{From: from, To: to})
}
