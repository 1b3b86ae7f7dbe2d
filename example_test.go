package arbor_test

import (
	"fmt"
	"log"

	"github.com/aretw0/arbor/pkg/report"
	"github.com/aretw0/arbor/pkg/tree"
	"github.com/aretw0/arbor/pkg/visitor"
)

// Example_manual builds a tree by hand, walks it and runs both visitors.
func Example_manual() {
	root := tree.NewDecision("D1")
	left := tree.NewDecision("D2")
	for _, child := range []tree.Node{tree.NewLeaf("A"), tree.NewLeaf("B")} {
		if err := left.AddChild(child); err != nil {
			log.Fatal(err)
		}
	}
	_ = root.AddChild(left)
	_ = root.AddChild(tree.NewLeaf("C"))

	for n := range tree.Walk(root) {
		fmt.Println(n)
	}

	printer := report.ReporterFunc(func(e report.Event) { fmt.Println(e.Message) })

	counter := visitor.NewLeafCounter(report.Nop)
	root.Accept(counter)
	fmt.Println("Total leaves:", counter.Count)

	root.Accept(visitor.NewRulesReport(printer))
	// Output:
	// [Decision] D1
	// [Decision] D2
	// [Leaf] Result: A
	// [Leaf] Result: B
	// [Leaf] Result: C
	// Total leaves: 3
	// Rule identified: D1
	// Rule identified: D2
}
