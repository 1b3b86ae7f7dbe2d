package visitor

import (
	"github.com/aretw0/arbor/pkg/report"
	"github.com/aretw0/arbor/pkg/tree"
)

// LeafCounter counts the leaves reachable from the node it is accepted by.
type LeafCounter struct {
	Count    int
	reporter report.Reporter
}

// NewLeafCounter creates a counter that announces each leaf to r.
func NewLeafCounter(r report.Reporter) *LeafCounter {
	return &LeafCounter{reporter: report.OrNop(r)}
}

// VisitDecision recurses into every child in order without counting.
func (c *LeafCounter) VisitDecision(d *tree.Decision) {
	tree.AcceptChildren(d, c)
}

// VisitLeaf counts the leaf and reports it.
func (c *LeafCounter) VisitLeaf(l *tree.Leaf) {
	c.Count++
	c.rep().Report(report.NewEvent(report.EventLeafFound, l.Value(), "Leaf found: %s", l.Value()))
}

// rep covers counters built as zero values.
func (c *LeafCounter) rep() report.Reporter {
	return report.OrNop(c.reporter)
}

// CountLeaves runs a fresh LeafCounter over root.
func CountLeaves(root tree.Node) int {
	c := NewLeafCounter(nil)
	tree.Accept(root, c)
	return c.Count
}
