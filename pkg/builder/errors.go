package builder

import "errors"

// ErrInvalidDepth is returned for a negative maximum depth.
var ErrInvalidDepth = errors.New("max depth must not be negative")

// ErrInvalidState is returned when a state outside the known set is used.
var ErrInvalidState = errors.New("invalid builder state")

// ErrRecursionLimit is returned when a policy keeps splitting past the recursion limit.
var ErrRecursionLimit = errors.New("recursion limit exceeded")
