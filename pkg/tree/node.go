package tree

import (
	"fmt"

	"github.com/aretw0/arbor/pkg/report"
)

// Kind identifies the node variant.
type Kind int

const (
	KindDecision Kind = iota // internal node with a condition
	KindLeaf                 // terminal outcome
)

func (k Kind) String() string {
	switch k {
	case KindDecision:
		return "decision"
	case KindLeaf:
		return "leaf"
	default:
		return "unknown"
	}
}

// Node is either a *Decision or a *Leaf.
type Node interface {
	// Kind returns the node variant.
	Kind() Kind
	// Label returns the condition of a decision or the value of a leaf.
	Label() string
	// String returns the tagged display form of the node.
	String() string
	// AddChild appends child to the node. Rejections leave the node unchanged.
	AddChild(child Node) error
	// Parent returns the owning decision node, or nil for a root.
	Parent() Node
	// Accept calls the visit method matching the node's variant.
	Accept(v Visitor)

	// base seals the interface to this package.
	base() *nodeBase
}

// Option configures a node at construction time.
type Option func(*nodeBase)

// WithReporter sets the sink that receives the node's warnings.
func WithReporter(r report.Reporter) Option {
	return func(b *nodeBase) {
		b.reporter = report.OrNop(r)
	}
}

type nodeBase struct {
	parent   *Decision
	reporter report.Reporter
}

func newBase(opts []Option) nodeBase {
	b := nodeBase{reporter: report.Nop}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b *nodeBase) base() *nodeBase { return b }

// Parent returns the owning decision node, or nil for a root.
func (b *nodeBase) Parent() Node {
	if b.parent == nil {
		return nil
	}
	return b.parent
}

func (b *nodeBase) reject(subject string, err error) error {
	b.reporter.Report(report.NewEvent(report.EventChildRejected, subject, "Cannot attach child to %q: %v", subject, err))
	return err
}

// Decision is an internal node: a condition and its ordered children.
type Decision struct {
	nodeBase
	condition string
	children  []Node
}

// NewDecision creates a decision node without children.
func NewDecision(condition string, opts ...Option) *Decision {
	return &Decision{
		nodeBase:  newBase(opts),
		condition: condition,
	}
}

// Kind returns KindDecision.
func (d *Decision) Kind() Kind { return KindDecision }

// Label returns the condition.
func (d *Decision) Label() string { return d.condition }

// Condition returns the decision condition. It is an opaque display string.
func (d *Decision) Condition() string { return d.condition }

func (d *Decision) String() string {
	return fmt.Sprintf("[Decision] %s", d.condition)
}

// Children returns the live child ordering. Callers must not modify it.
func (d *Decision) Children() []Node {
	return d.children
}

// Len returns the number of children.
func (d *Decision) Len() int { return len(d.children) }

// AddChild appends child to the end of the children list.
// The child must be a detached root that is neither d nor one of d's ancestors.
func (d *Decision) AddChild(child Node) error {
	if child == nil || isNilNode(child) {
		return d.reject(d.condition, ErrNilChild)
	}
	cb := child.base()
	if cb.parent != nil {
		return d.reject(d.condition, fmt.Errorf("%w: %s", ErrAlreadyAttached, child))
	}
	// A detached decision can only be an ancestor of d if it is d itself or
	// the root of d's tree, and such a root always has children.
	if other, ok := child.(*Decision); ok && (other == d || len(other.children) > 0) {
		for n := d; n != nil; n = n.parent {
			if n == other {
				return d.reject(d.condition, fmt.Errorf("%w: %s", ErrCycle, child))
			}
		}
	}

	cb.parent = d
	d.children = append(d.children, child)
	return nil
}

// Accept calls v.VisitDecision(d).
func (d *Decision) Accept(v Visitor) { Accept(d, v) }

// Leaf is a terminal node holding an outcome value.
type Leaf struct {
	nodeBase
	value string
}

// NewLeaf creates a leaf node.
func NewLeaf(value string, opts ...Option) *Leaf {
	return &Leaf{
		nodeBase: newBase(opts),
		value:    value,
	}
}

// Kind returns KindLeaf.
func (l *Leaf) Kind() Kind { return KindLeaf }

// Label returns the value.
func (l *Leaf) Label() string { return l.value }

// Value returns the outcome value. It is an opaque display string.
func (l *Leaf) Value() string { return l.value }

func (l *Leaf) String() string {
	return fmt.Sprintf("[Leaf] Result: %s", l.value)
}

// AddChild never attaches anything: it reports a warning and returns ErrLeafChildren.
func (l *Leaf) AddChild(Node) error {
	return l.reject(l.value, ErrLeafChildren)
}

// Accept calls v.VisitLeaf(l).
func (l *Leaf) Accept(v Visitor) { Accept(l, v) }

// isNilNode catches typed nil pointers hidden inside a non-nil interface.
func isNilNode(n Node) bool {
	switch v := n.(type) {
	case *Decision:
		return v == nil
	case *Leaf:
		return v == nil
	}
	return false
}
