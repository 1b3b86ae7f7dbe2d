package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/arbor/pkg/tree"
)

// GraphOverlay highlights nodes on the generated graph.
type GraphOverlay struct {
	// Highlighted holds the labels of nodes to mark, e.g. a decision path.
	Highlighted []string
}

// mermaidVisitor emits one Mermaid statement per node and edge.
// Node IDs are assigned in pre-order (n0 is the root).
type mermaidVisitor struct {
	sb     *strings.Builder
	ids    map[tree.Node]string
	labels map[string][]string
}

func (m *mermaidVisitor) id(n tree.Node) string {
	if id, ok := m.ids[n]; ok {
		return id
	}
	id := fmt.Sprintf("n%d", len(m.ids))
	m.ids[n] = id
	m.labels[n.Label()] = append(m.labels[n.Label()], id)
	return id
}

// VisitDecision renders decisions as rhombi with numbered edges to each child.
func (m *mermaidVisitor) VisitDecision(d *tree.Decision) {
	self := m.id(d)
	fmt.Fprintf(m.sb, "    %s{\"%s\"}\n", self, escapeLabel(d.Condition()))
	for i, child := range d.Children() {
		fmt.Fprintf(m.sb, "    %s -- \"%s\" --> %s\n", self, edgeLabel(i, d.Len()), m.id(child))
		tree.Accept(child, m)
	}
}

// VisitLeaf renders leaves as rounded boxes.
func (m *mermaidVisitor) VisitLeaf(l *tree.Leaf) {
	fmt.Fprintf(m.sb, "    %s([\"%s\"])\n", m.id(l), escapeLabel(l.Value()))
}

// GenerateMermaid produces a Mermaid flowchart for the tree rooted at root.
// It applies semantic styling:
// - Decision: {Rhombus}
// - Leaf: ([Stadium])
// Edges of binary decisions are labelled yes/no, others by child index.
func GenerateMermaid(root tree.Node, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	m := &mermaidVisitor{
		sb:     &sb,
		ids:    make(map[tree.Node]string),
		labels: make(map[string][]string),
	}
	tree.Accept(root, m)

	if overlay != nil && len(overlay.Highlighted) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef highlighted fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, label := range overlay.Highlighted {
			for _, id := range m.labels[label] {
				if !seen[id] {
					seen[id] = true
					sb.WriteString(fmt.Sprintf("    class %s highlighted;\n", id))
				}
			}
		}
	}

	return sb.String()
}

func edgeLabel(i, n int) string {
	if n == 2 {
		if i == 0 {
			return "yes"
		}
		return "no"
	}
	return fmt.Sprintf("%d", i+1)
}

// escapeLabel swaps characters that would end a quoted Mermaid label.
func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
