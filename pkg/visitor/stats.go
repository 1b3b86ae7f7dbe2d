package visitor

import "github.com/aretw0/arbor/pkg/tree"

// Stats summarises the shape of a tree.
type Stats struct {
	Decisions int
	Leaves    int
	// Depth is the number of edges on the longest root-to-leaf path.
	Depth int

	level int
}

// Nodes returns the total number of nodes seen.
func (s *Stats) Nodes() int {
	return s.Decisions + s.Leaves
}

func (s *Stats) VisitDecision(d *tree.Decision) {
	s.Decisions++
	s.observe()
	s.level++
	tree.AcceptChildren(d, s)
	s.level--
}

func (s *Stats) VisitLeaf(*tree.Leaf) {
	s.Leaves++
	s.observe()
}

func (s *Stats) observe() {
	if s.level > s.Depth {
		s.Depth = s.level
	}
}

// Measure collects Stats for the tree rooted at root.
func Measure(root tree.Node) Stats {
	var s Stats
	tree.Accept(root, &s)
	return s
}
