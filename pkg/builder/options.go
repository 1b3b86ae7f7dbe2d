package builder

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/arbor/pkg/report"
)

// PrunedValue is the value of leaves produced by the Pruning state.
const PrunedValue = "Pruned"

// DefaultRecursionLimit is how many levels past maxDepth a policy may split.
const DefaultRecursionLimit = 64

// LabelFunc synthesises a node label from its depth.
type LabelFunc func(depth int) string

// DefaultConditionLabel names the split tested at depth.
func DefaultConditionLabel(depth int) string {
	return fmt.Sprintf("feature_%d <= 0.5", depth)
}

// DefaultLeafLabel names the class assigned at depth.
func DefaultLeafLabel(depth int) string {
	return fmt.Sprintf("class_%d", depth)
}

// Option defines a functional option for configuring the TreeBuilder.
type Option func(*TreeBuilder)

// WithReporter sets the sink for state change notices. Nodes built by the
// builder report their own warnings to the same sink.
func WithReporter(r report.Reporter) Option {
	return func(b *TreeBuilder) {
		b.reporter = report.OrNop(r)
	}
}

// WithLogger sets a structured logger for debug traces.
func WithLogger(logger *slog.Logger) Option {
	return func(b *TreeBuilder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithPolicy replaces DefaultPolicy.
func WithPolicy(p Policy) Option {
	return func(b *TreeBuilder) {
		if p != nil {
			b.policy = p
		}
	}
}

// WithConditionLabel sets how decision conditions are named.
func WithConditionLabel(fn LabelFunc) Option {
	return func(b *TreeBuilder) {
		if fn != nil {
			b.conditionLabel = fn
		}
	}
}

// WithLeafLabel sets how leaf values are named.
func WithLeafLabel(fn LabelFunc) Option {
	return func(b *TreeBuilder) {
		if fn != nil {
			b.leafLabel = fn
		}
	}
}

// WithRecursionLimit sets how many levels past maxDepth a policy may keep splitting.
func WithRecursionLimit(levels int) Option {
	return func(b *TreeBuilder) {
		if levels >= 0 {
			b.recursionLimit = levels
		}
	}
}
