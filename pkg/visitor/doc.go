// Package visitor provides the tree-wide operations that ship with arbor.
//
// Each visitor drives its own recursion through tree.AcceptChildren, so the
// walk depth equals the tree depth on the call stack.
package visitor
