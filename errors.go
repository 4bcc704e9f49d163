package radix

import "errors"

// Sentinel errors.
var (
	// ErrSelfReference is returned when Union or Difference is called with
	// the receiver as its own argument; this is treated as a
	// precondition violation.
	ErrSelfReference = errors.New("radix: tree cannot be combined with itself")

	// ErrInvariantViolation is the sentinel wrapped by InvariantError when
	// a debug-mode structural check fails.
	ErrInvariantViolation = errors.New("radix: structural invariant violated")
)

// InvariantError is a structured error describing which invariant failed
// and at which vertex: a typed error carrying diagnostic context rather
// than a bare string.
type InvariantError struct {
	// Rule names the violated invariant, e.g. "no empty edge label".
	Rule string
	// Key is the representation of the offending vertex, if known.
	Key []byte
}

func (e *InvariantError) Error() string {
	if e.Key == nil {
		return "radix: " + e.Rule
	}
	return "radix: " + e.Rule + " (at key " + string(e.Key) + ")"
}

func (e *InvariantError) Unwrap() error { return ErrInvariantViolation }
