package dsl

import (
	"fmt"

	"github.com/aretw0/arbor/pkg/report"
	"github.com/aretw0/arbor/pkg/tree"
)

// NodeBuilder provides a fluent API for describing a decision node.
type NodeBuilder struct {
	condition string
	children  []childDef
	reporter  report.Reporter
}

// childDef is either a nested decision or a leaf value.
type childDef struct {
	decision *NodeBuilder
	value    string
}

// If starts the description of a decision node.
func If(condition string) *NodeBuilder {
	return &NodeBuilder{condition: condition}
}

// Leaf appends a leaf child with the given value.
func (n *NodeBuilder) Leaf(value string) *NodeBuilder {
	n.children = append(n.children, childDef{value: value})
	return n
}

// Leaves appends one leaf child per value, in order.
func (n *NodeBuilder) Leaves(values ...string) *NodeBuilder {
	for _, v := range values {
		n.Leaf(v)
	}
	return n
}

// Then appends a nested decision child. A nil child is ignored.
func (n *NodeBuilder) Then(child *NodeBuilder) *NodeBuilder {
	if child != nil {
		n.children = append(n.children, childDef{decision: child})
	}
	return n
}

// Reporter sets the warning sink of every node built from this description
// that has no reporter of its own.
func (n *NodeBuilder) Reporter(r report.Reporter) *NodeBuilder {
	n.reporter = r
	return n
}

// Build creates the described tree.
func (n *NodeBuilder) Build() (*tree.Decision, error) {
	return n.build(report.Nop, make(map[*NodeBuilder]bool))
}

func (n *NodeBuilder) build(inherited report.Reporter, active map[*NodeBuilder]bool) (*tree.Decision, error) {
	if active[n] {
		return nil, fmt.Errorf("%w: %q nests itself", tree.ErrCycle, n.condition)
	}
	active[n] = true
	defer delete(active, n)

	rep := inherited
	if n.reporter != nil {
		rep = n.reporter
	}
	opt := tree.WithReporter(rep)

	node := tree.NewDecision(n.condition, opt)
	for i, c := range n.children {
		var child tree.Node
		if c.decision != nil {
			d, err := c.decision.build(rep, active)
			if err != nil {
				return nil, err
			}
			child = d
		} else {
			child = tree.NewLeaf(c.value, opt)
		}
		if err := node.AddChild(child); err != nil {
			return nil, fmt.Errorf("failed to attach child %d of %q: %w", i, n.condition, err)
		}
	}
	return node, nil
}

// MustBuild is like Build but panics on error. It is meant for fixtures.
func (n *NodeBuilder) MustBuild() *tree.Decision {
	d, err := n.Build()
	if err != nil {
		panic(err)
	}
	return d
}
