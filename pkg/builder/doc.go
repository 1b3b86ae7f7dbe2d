/*
Package builder grows decision trees procedurally with a small state machine.

A TreeBuilder holds exactly one current State. Building starts in Splitting:
every Splitting step creates a decision node and grows a left and a right
subtree one level deeper. When the Policy moves the builder to a terminal
state the step produces a leaf instead.

	b := builder.New(builder.WithReporter(report.NewConsole(os.Stdout)))
	root, err := b.BuildTree(3) // 8 leaves, 7 decisions

With DefaultPolicy the result is a complete binary tree of depth maxDepth.
Pruning is never entered by DefaultPolicy. It is reserved for custom policies,
which own the termination contract of the trees they grow; WithRecursionLimit
bounds how far past maxDepth such a policy may recurse.
*/
package builder
