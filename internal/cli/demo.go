package cli

import (
	"fmt"

	"github.com/aretw0/arbor/pkg/builder"
	"github.com/aretw0/arbor/pkg/dsl"
	"github.com/aretw0/arbor/pkg/report"
	"github.com/aretw0/arbor/pkg/tree"
	"github.com/aretw0/arbor/pkg/visitor"
)

// ManualTree assembles the hand-built example tree:
//
//	Decision 1 (root)
//	├── Decision 2 (left)
//	│   ├── Leaf A
//	│   └── Leaf B
//	└── Class C (right)
func ManualTree(r report.Reporter) (*tree.Decision, error) {
	return dsl.If("Decision 1 (root)").
		Reporter(r).
		Then(dsl.If("Decision 2 (left)").Leaves("Leaf A", "Leaf B")).
		Leaf("Class C (right)").
		Build()
}

// RunDemo walks through manual construction, traversal and both visitors,
// then builds a tree automatically and reports its rules.
func RunDemo(opts Options) error {
	logger := createLogger(opts)
	rep := createReporter(opts, logger)

	printSection(opts.Out, "Manual construction")
	root, err := ManualTree(rep)
	if err != nil {
		return fmt.Errorf("failed to assemble demo tree: %w", err)
	}

	printSystemMessage(opts.Out, "Walking the tree:")
	for n := range tree.Walk(root) {
		fmt.Fprintln(opts.Out, n)
	}

	printSystemMessage(opts.Out, "Counting leaves:")
	counter := visitor.NewLeafCounter(rep)
	root.Accept(counter)
	fmt.Fprintf(opts.Out, "Total leaves: %d\n", counter.Count)

	printSystemMessage(opts.Out, "Rules report:")
	root.Accept(visitor.NewRulesReport(rep))

	printSystemMessage(opts.Out, "Attaching a child to a leaf:")
	leaf := root.Children()[1]
	if err := leaf.AddChild(tree.NewLeaf("orphan")); err != nil {
		logger.Debug("Child rejected", "node", leaf.String(), "error", err)
	}

	printSection(opts.Out, "Automated construction")
	b := builder.New(builder.WithReporter(rep), builder.WithLogger(logger))
	built, err := b.BuildTree(opts.MaxDepth)
	if err != nil {
		return err
	}
	printSystemMessage(opts.Out, "Rules report:")
	built.Accept(visitor.NewRulesReport(rep))
	return nil
}
