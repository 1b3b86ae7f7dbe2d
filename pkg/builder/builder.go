package builder

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/report"
	"github.com/aretw0/arbor/pkg/tree"
)

// TreeBuilder is the state machine context. It is not safe for concurrent use,
// and a build leaves it in a terminal state: call Reset before building again.
type TreeBuilder struct {
	state          State
	maxDepth       int
	policy         Policy
	conditionLabel LabelFunc
	leafLabel      LabelFunc
	recursionLimit int
	reporter       report.Reporter
	logger         *slog.Logger
}

// New creates a builder in the Splitting state.
func New(opts ...Option) *TreeBuilder {
	b := &TreeBuilder{
		state:          StateSplitting,
		policy:         DefaultPolicy,
		conditionLabel: DefaultConditionLabel,
		leafLabel:      DefaultLeafLabel,
		recursionLimit: DefaultRecursionLimit,
		reporter:       report.Nop,
		logger:         logging.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// State returns the current state.
func (b *TreeBuilder) State() State {
	return b.state
}

// SetState forces the current state, e.g. to start a build in Pruning.
func (b *TreeBuilder) SetState(s State) error {
	if !s.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidState, s)
	}
	b.transition(b.state, s, 0)
	return nil
}

// Reset puts the builder back in the Splitting state without reporting it.
func (b *TreeBuilder) Reset() {
	b.state = StateSplitting
}

// BuildTree grows a tree of at most maxDepth decision levels, starting from
// the current state. A negative maxDepth is rejected with ErrInvalidDepth.
func (b *TreeBuilder) BuildTree(maxDepth int) (tree.Node, error) {
	if maxDepth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, maxDepth)
	}
	b.maxDepth = maxDepth

	b.logger.Debug("Building tree", "max_depth", maxDepth, "state", b.state)
	root, err := b.handle(b.state, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to build tree: %w", err)
	}
	return root, nil
}

// handle runs one step for the executing state. The policy may hand the step
// to another state; the switch is recorded on the context before the new
// state's handler runs.
func (b *TreeBuilder) handle(executing State, depth int) (tree.Node, error) {
	next := b.policy(executing, depth, b.maxDepth)
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: policy returned %q at depth %d", ErrInvalidState, next, depth)
	}
	if next != executing {
		b.transition(executing, next, depth)
	}

	switch next {
	case StateSplitting:
		return b.split(depth)
	case StateStopping:
		return tree.NewLeaf(b.leafLabel(depth), tree.WithReporter(b.reporter)), nil
	case StatePruning:
		return tree.NewLeaf(PrunedValue, tree.WithReporter(b.reporter)), nil
	default:
		panic(fmt.Sprintf("builder: unhandled state %q", next))
	}
}

// split builds a decision node whose left and right subtrees are grown by the
// Splitting handler itself, regardless of the context's current state.
func (b *TreeBuilder) split(depth int) (tree.Node, error) {
	if depth > b.maxDepth+b.recursionLimit {
		return nil, fmt.Errorf("%w: depth %d with max depth %d", ErrRecursionLimit, depth, b.maxDepth)
	}

	node := tree.NewDecision(b.conditionLabel(depth), tree.WithReporter(b.reporter))
	for _, side := range [...]string{"left", "right"} {
		child, err := b.handle(StateSplitting, depth+1)
		if err != nil {
			return nil, err
		}
		b.logger.Debug("Attaching child", "side", side, "depth", depth+1, "node", child.String())
		if err := node.AddChild(child); err != nil {
			return nil, fmt.Errorf("failed to attach %s child at depth %d: %w", side, depth+1, err)
		}
	}
	return node, nil
}

func (b *TreeBuilder) transition(from, to State, depth int) {
	b.state = to
	b.logger.Debug("State changed", "from", from, "to", to, "depth", depth)
	b.reporter.Report(report.NewEvent(report.EventStateChange, to.String(),
		"State changed: %s -> %s (depth %d)", from, to, depth))
}
