package builder

// State is the builder's current construction mode.
type State string

const (
	StateSplitting State = "splitting" // grow a decision node with two subtrees
	StateStopping  State = "stopping"  // terminal: emit a class leaf
	StatePruning   State = "pruning"   // terminal: emit the pruned sentinel leaf
)

// IsTerminal returns true if the state produces leaves.
func (s State) IsTerminal() bool {
	return s == StateStopping || s == StatePruning
}

// IsValid returns true if s is one of the known states.
func (s State) IsValid() bool {
	switch s {
	case StateSplitting, StateStopping, StatePruning:
		return true
	default:
		return false
	}
}

func (s State) String() string {
	return string(s)
}

// Policy is the pure transition function of the builder: given the current
// state and position it returns the state that must handle the step.
type Policy func(current State, depth, maxDepth int) State

// DefaultPolicy stops splitting once depth reaches maxDepth and otherwise
// keeps the current state.
func DefaultPolicy(current State, depth, maxDepth int) State {
	if current == StateSplitting && depth >= maxDepth {
		return StateStopping
	}
	return current
}
