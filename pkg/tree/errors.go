package tree

import "errors"

// ErrLeafChildren is returned when a child is attached to a leaf.
var ErrLeafChildren = errors.New("leaf nodes have no children")

// ErrNilChild is returned when a nil child is attached.
var ErrNilChild = errors.New("child is nil")

// ErrAlreadyAttached is returned when the child is already owned by another node.
var ErrAlreadyAttached = errors.New("child already has a parent")

// ErrCycle is returned when attaching the child would make a node its own descendant.
var ErrCycle = errors.New("attaching child would create a cycle")
