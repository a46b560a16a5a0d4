package pathfinder

import (
	"context"
	"fmt"
)

// unbounded is the default for every path budget: effectively "never
// trip" without overflow risk in the counters.
const unbounded = 1 << 31

// Option configures a FindPaths call via functional arguments. An
// invalid Option is recorded and surfaced as ErrOptionViolation from
// FindPaths.
type Option func(*Limits)

// Limits bounds the search. All three budgets compare against the
// running count of paths presented to the pipeline.
type Limits struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Absolute stops the whole search once this many paths have been
	// examined.
	Absolute int

	// NoWeak drops any path already carrying open splits once this
	// many paths have been examined.
	NoWeak int

	// NoNewWeak refuses to open any further split obligations once
	// this many paths have been examined.
	NoNewWeak int

	// Filters overrides the default filter pipeline. Nil uses the
	// canonical ten-stage pipeline.
	Filters []*Filter

	err error
}

// DefaultLimits returns the Limits a search uses absent any Option:
// effectively unbounded budgets, a background context, and the default
// pipeline.
func DefaultLimits() Limits {
	return Limits{
		Ctx:       context.Background(),
		Absolute:  unbounded,
		NoWeak:    unbounded,
		NoNewWeak: unbounded,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(l *Limits) {
		if ctx != nil {
			l.Ctx = ctx
		}
	}
}

// WithAbsoluteLimit caps the total number of paths examined. n <= 0 is
// invalid.
func WithAbsoluteLimit(n int) Option {
	return func(l *Limits) {
		if n <= 0 {
			l.err = fmt.Errorf("%w: absolute limit must be positive (%d)", ErrOptionViolation, n)
			return
		}
		l.Absolute = n
	}
}

// WithWeakLimit sets the path budget past which split-carrying paths
// are dropped. n <= 0 is invalid.
func WithWeakLimit(n int) Option {
	return func(l *Limits) {
		if n <= 0 {
			l.err = fmt.Errorf("%w: weak limit must be positive (%d)", ErrOptionViolation, n)
			return
		}
		l.NoWeak = n
	}
}

// WithNewWeakLimit sets the path budget past which no further split
// obligations may be opened. n <= 0 is invalid.
func WithNewWeakLimit(n int) Option {
	return func(l *Limits) {
		if n <= 0 {
			l.err = fmt.Errorf("%w: new-weak limit must be positive (%d)", ErrOptionViolation, n)
			return
		}
		l.NoNewWeak = n
	}
}

// WithFilters replaces the default filter pipeline.
func WithFilters(filters []*Filter) Option {
	return func(l *Limits) {
		if filters != nil {
			l.Filters = filters
		}
	}
}
