package radix

import "log/slog"

// Option configures a Tree at construction time via the functional-options
// pattern: a single function type wrapping a closure that mutates the
// Tree being built.
type Option interface {
	apply(*Tree)
}

type optionFunc func(*Tree)

func (o optionFunc) apply(t *Tree) { o(t) }

// WithInvariantChecks enables debug-mode structural verification after
// every mutating operation. Disabled by default; intended for tests and
// development, not hot paths, since each check walks the whole tree.
func WithInvariantChecks(enabled bool) Option {
	return optionFunc(func(t *Tree) { t.checkInvariants = enabled })
}

// WithLogger sets the logger used for invariant-violation diagnostics: an
// Error record is written when an enabled invariant check fails. Split and
// merge operations are not logged. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return optionFunc(func(t *Tree) {
		if logger != nil {
			t.logger = logger
		}
	})
}
