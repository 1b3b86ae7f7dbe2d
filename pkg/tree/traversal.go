package tree

import "iter"

// PreOrder is a depth-first, parent-before-children cursor over a tree.
// It owns its stack, so independent cursors over the same tree do not interfere.
// A cursor is single-use; call NewPreOrder again to start over.
type PreOrder struct {
	stack []Node
}

// NewPreOrder creates a cursor positioned before root. A nil root yields nothing.
func NewPreOrder(root Node) *PreOrder {
	p := &PreOrder{}
	if root != nil && !isNilNode(root) {
		p.stack = append(p.stack, root)
	}
	return p
}

// Next returns the next node in pre-order, or (nil, false) once the tree is exhausted.
func (p *PreOrder) Next() (Node, bool) {
	if len(p.stack) == 0 {
		return nil, false
	}

	top := len(p.stack) - 1
	n := p.stack[top]
	p.stack[top] = nil
	p.stack = p.stack[:top]

	if d, ok := n.(*Decision); ok {
		// Reverse push: the first child ends up on top.
		for i := len(d.children) - 1; i >= 0; i-- {
			p.stack = append(p.stack, d.children[i])
		}
	}
	return n, true
}

// Pending returns the number of nodes waiting on the stack.
func (p *PreOrder) Pending() int {
	return len(p.stack)
}

// Walk returns the pre-order sequence of the tree rooted at root.
// Each range over the sequence uses a new cursor.
func Walk(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		cur := NewPreOrder(root)
		for {
			n, ok := cur.Next()
			if !ok || !yield(n) {
				return
			}
		}
	}
}

// Collect returns the pre-order traversal of root as a slice.
func Collect(root Node) []Node {
	var out []Node
	for n := range Walk(root) {
		out = append(out, n)
	}
	return out
}
