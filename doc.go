/*
Package arbor models binary decision trees and the classic ways of working with them.

Internal nodes (tree.Decision) hold a condition and an ordered list of children;
leaves (tree.Leaf) hold a terminal outcome. Three independent capabilities are
layered on that structure:

  - Traversal: tree.Walk yields the nodes in pre-order from an explicit stack.
  - Visitors: tree.Accept dispatches to one method per node variant, so new
    tree-wide operations (visitor.LeafCounter, visitor.RulesReport, ...) need
    no change to the node types.
  - Construction: builder.TreeBuilder grows a complete binary tree with a small
    state machine (Splitting, Stopping, Pruning).

All diagnostics go to an injected report.Reporter instead of the console.

# Usage

	package main

	import (
		"fmt"
		"log"
		"os"

		"github.com/aretw0/arbor/pkg/builder"
		"github.com/aretw0/arbor/pkg/report"
		"github.com/aretw0/arbor/pkg/tree"
		"github.com/aretw0/arbor/pkg/visitor"
	)

	func main() {
		console := report.NewConsole(os.Stdout)

		root, err := builder.New(builder.WithReporter(console)).BuildTree(3)
		if err != nil {
			log.Fatal(err)
		}

		for n := range tree.Walk(root) {
			fmt.Println(n)
		}

		counter := visitor.NewLeafCounter(console)
		root.Accept(counter)
		fmt.Println("leaves:", counter.Count)
	}
*/
package arbor
