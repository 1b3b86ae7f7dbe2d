package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/arbor/pkg/tree"
)

// outlineVisitor writes the tree as a nested Markdown list.
type outlineVisitor struct {
	sb    *strings.Builder
	depth int
}

func (o *outlineVisitor) VisitDecision(d *tree.Decision) {
	fmt.Fprintf(o.sb, "%s- **if** `%s`\n", strings.Repeat("  ", o.depth), d.Condition())
	o.depth++
	tree.AcceptChildren(d, o)
	o.depth--
}

func (o *outlineVisitor) VisitLeaf(l *tree.Leaf) {
	fmt.Fprintf(o.sb, "%s- %s\n", strings.Repeat("  ", o.depth), l.Value())
}

// GenerateMarkdown renders the tree as a Markdown document titled title.
func GenerateMarkdown(title string, root tree.Node) string {
	var sb strings.Builder
	if title != "" {
		fmt.Fprintf(&sb, "# %s\n\n", title)
	}
	tree.Accept(root, &outlineVisitor{sb: &sb})
	return sb.String()
}
