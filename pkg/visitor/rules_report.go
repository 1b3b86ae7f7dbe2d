package visitor

import (
	"github.com/aretw0/arbor/pkg/report"
	"github.com/aretw0/arbor/pkg/tree"
)

// RulesReport reports the condition of every decision node, in pre-order.
// Leaves carry no rule and are skipped.
type RulesReport struct {
	reporter report.Reporter
}

// NewRulesReport creates a report that sends each rule to r.
func NewRulesReport(r report.Reporter) *RulesReport {
	return &RulesReport{reporter: report.OrNop(r)}
}

func (v *RulesReport) VisitDecision(d *tree.Decision) {
	report.OrNop(v.reporter).Report(report.NewEvent(report.EventRuleFound, d.Condition(), "Rule identified: %s", d.Condition()))
	tree.AcceptChildren(d, v)
}

func (v *RulesReport) VisitLeaf(*tree.Leaf) {}
