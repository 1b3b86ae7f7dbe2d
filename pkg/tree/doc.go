/*
Package tree contains the decision tree data structure and the two generic ways
of walking it.

# Nodes

A tree is built from exactly two node variants: Decision, an internal node with
a condition and an ordered list of children, and Leaf, a terminal outcome. The
Node interface is sealed, so every consumer can switch exhaustively over the
two variants.

Children are append-only and owned by exactly one parent. AddChild refuses
anything that would break this (nil children, children that already have a
parent, cycles) and leaves the tree unchanged. Leaves refuse every child; the
refusal is returned as an error and also reported to the leaf's reporter as a
child_rejected warning.

# Traversal

PreOrder is an explicit-stack cursor over a tree, so its depth is bounded by
memory rather than the call stack. Walk wraps it as an iter.Seq: every range
over the sequence starts a fresh cursor.

# Visitors

Accept dispatches on the node's dynamic variant and calls exactly one of the
Visitor methods. New tree-wide operations are added as new visitors, without
touching the node types.

Trees are assumed to be read-only while a traversal or a visitor runs over
them. Any number of concurrent read-only traversals is fine; appending children
during a traversal is not supported.
*/
package tree
