package testutils

import (
	"github.com/aretw0/arbor/pkg/dsl"
	"github.com/aretw0/arbor/pkg/report"
	"github.com/aretw0/arbor/pkg/tree"
)

// ScenarioA builds D1 -> [D2 -> [A, B], C] with every node reporting to r.
func ScenarioA(r report.Reporter) *tree.Decision {
	return dsl.If("D1").
		Reporter(r).
		Then(dsl.If("D2").Leaves("A", "B")).
		Leaf("C").
		MustBuild()
}

// Labels maps nodes to their labels.
func Labels(nodes []tree.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Label()
	}
	return out
}

// ReferencePreOrder is the plain recursive pre-order the cursor must agree with.
func ReferencePreOrder(root tree.Node) []tree.Node {
	var out []tree.Node
	var walk func(tree.Node)
	walk = func(n tree.Node) {
		out = append(out, n)
		if d, ok := n.(*tree.Decision); ok {
			for _, c := range d.Children() {
				walk(c)
			}
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}

// CountKind counts the nodes of kind k reachable from root.
func CountKind(root tree.Node, k tree.Kind) int {
	count := 0
	for n := range tree.Walk(root) {
		if n.Kind() == k {
			count++
		}
	}
	return count
}
