package diagram

import (
	"strings"
)

const indent = "    "

// Mermaid encodes d as flowchart source. Node declarations come first, then
// edges, class definitions and class assignments, each in description order.
func Mermaid(d Description) string {
	var b strings.Builder

	direction := d.Direction
	if direction == "" {
		direction = "TD"
	}
	b.WriteString("flowchart ")
	b.WriteString(direction)
	b.WriteString("\n")

	for _, node := range d.Nodes {
		b.WriteString(indent)
		b.WriteString(node.ID)
		b.WriteString(shapeOpen(node.Shape))
		b.WriteString(`"`)
		b.WriteString(escapeLabel(nodeText(node)))
		b.WriteString(`"`)
		b.WriteString(shapeClose(node.Shape))
		b.WriteString("\n")
	}

	if len(d.Edges) > 0 {
		b.WriteString("\n")
	}
	for _, edge := range d.Edges {
		b.WriteString(indent)
		b.WriteString(edge.From)
		b.WriteString(" --> ")
		b.WriteString(edge.To)
		b.WriteString("\n")
	}

	if len(d.Classes) > 0 {
		b.WriteString("\n")
	}
	for _, class := range d.Classes {
		b.WriteString(indent)
		b.WriteString("classDef ")
		b.WriteString(string(class.Name))
		b.WriteString(" fill:")
		b.WriteString(class.Fill)
		b.WriteString(",stroke:")
		b.WriteString(class.Stroke)
		b.WriteString(",stroke-width:2px,color:")
		b.WriteString(class.Color)
		b.WriteString("\n")
	}
	for _, class := range d.Classes {
		members := d.ClassMembers(class.Name)
		if len(members) == 0 {
			continue
		}
		b.WriteString(indent)
		b.WriteString("class ")
		b.WriteString(strings.Join(members, ","))
		b.WriteString(" ")
		b.WriteString(string(class.Name))
		b.WriteString("\n")
	}

	return b.String()
}

// nodeText joins the caption, label and suffix the way the flowchart shows
// them: a prefix sits on its own line above the label.
func nodeText(n Node) string {
	text := n.Label + n.Suffix
	if n.Prefix == "" {
		return text
	}
	return n.Prefix + "<br/>" + text
}

func escapeLabel(text string) string {
	return strings.ReplaceAll(text, `"`, "#quot;")
}

func shapeOpen(s Shape) string {
	if s == ShapeDecision {
		return "{"
	}
	return "["
}

func shapeClose(s Shape) string {
	if s == ShapeDecision {
		return "}"
	}
	return "]"
}
