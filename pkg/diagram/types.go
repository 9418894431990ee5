package diagram

// Shape describes how a renderer should outline a node.
type Shape string

const (
	ShapeRect     Shape = "rect"
	ShapeDecision Shape = "decision"
)

// ClassName identifies one of the style classes used for colour coding.
type ClassName string

const (
	ClassGoal     ClassName = "goalClass"
	ClassFeature  ClassName = "featureClass"
	ClassTech     ClassName = "techClass"
	ClassTimeline ClassName = "timelineClass"
	ClassPhase    ClassName = "phaseClass"
)

// Node is a graph vertex. Label carries the variable text; Prefix and Suffix
// are fixed decorations a renderer may place around it (for example a caption
// line above the label).
type Node struct {
	ID     string    `json:"id"`
	Prefix string    `json:"prefix,omitempty"`
	Label  string    `json:"label"`
	Suffix string    `json:"suffix,omitempty"`
	Shape  Shape     `json:"shape"`
	Class  ClassName `json:"class,omitempty"`
}

// Edge is a directed connection between two node IDs.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ClassDef holds the colours for a style class.
type ClassDef struct {
	Name   ClassName `json:"name"`
	Fill   string    `json:"fill"`
	Stroke string    `json:"stroke"`
	Color  string    `json:"color"`
}

// Description is the full graph handed to a graph renderer.
type Description struct {
	Direction string     `json:"direction"`
	Nodes     []Node     `json:"nodes"`
	Edges     []Edge     `json:"edges"`
	Classes   []ClassDef `json:"classes"`
}

// Node returns the node with the given ID.
func (d Description) Node(id string) (Node, bool) {
	for _, node := range d.Nodes {
		if node.ID == id {
			return node, true
		}
	}
	return Node{}, false
}

// Children returns the IDs of every node id points to, in edge order.
func (d Description) Children(id string) []string {
	var out []string
	for _, edge := range d.Edges {
		if edge.From == id {
			out = append(out, edge.To)
		}
	}
	return out
}

// ClassMembers returns node IDs assigned to class, in node order.
func (d Description) ClassMembers(class ClassName) []string {
	var out []string
	for _, node := range d.Nodes {
		if node.Class == class {
			out = append(out, node.ID)
		}
	}
	return out
}
