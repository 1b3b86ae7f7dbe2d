/*
Package dsl provides a fluent Go DSL for writing decision trees by hand.

It is a thin layer over the tree package: a NodeBuilder records a condition and
its children, and Build turns the description into fresh tree nodes, checking
every attachment along the way.

Example usage:

	root, err := dsl.If("Decision 1 (root)").
		Then(dsl.If("Decision 2 (left)").
			Leaf("Leaf A").
			Leaf("Leaf B")).
		Leaf("Class C (right)").
		Build()

Each call to Build produces a new tree, so one description can be built many
times without the results sharing nodes.
*/
package dsl
