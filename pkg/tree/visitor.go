package tree

import "fmt"

// Visitor is a tree-wide operation with one method per node variant.
type Visitor interface {
	VisitDecision(*Decision)
	VisitLeaf(*Leaf)
}

// Accept dispatches on the dynamic variant of n and calls exactly one method of v.
// A nil node is ignored.
func Accept(n Node, v Visitor) {
	switch node := n.(type) {
	case nil:
		return
	case *Decision:
		if node != nil {
			v.VisitDecision(node)
		}
	case *Leaf:
		if node != nil {
			v.VisitLeaf(node)
		}
	default:
		panic(fmt.Sprintf("tree: unhandled node variant %T", n))
	}
}

// AcceptChildren dispatches every child of d to v, in order.
func AcceptChildren(d *Decision, v Visitor) {
	for _, child := range d.children {
		Accept(child, v)
	}
}

// VisitorFuncs adapts a pair of functions to the Visitor interface.
// Nil fields are no-ops.
type VisitorFuncs struct {
	Decision func(*Decision)
	Leaf     func(*Leaf)
}

func (f VisitorFuncs) VisitDecision(d *Decision) {
	if f.Decision != nil {
		f.Decision(d)
	}
}

func (f VisitorFuncs) VisitLeaf(l *Leaf) {
	if f.Leaf != nil {
		f.Leaf(l)
	}
}
