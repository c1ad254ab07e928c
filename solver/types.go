// Package solver - options, result type, and sentinel errors.
package solver

import (
	"errors"
	"time"

	"github.com/okulov/hamipath/graph"
)

// Sentinel errors for malformed solver inputs. Puzzle-level outcomes
// (no completion within budget) are never errors; see Result.Found.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to Solve.
	ErrNilGraph = errors.New("solver: graph is nil")

	// ErrGraphMismatch indicates the journey state is bound to a different
	// graph than the one being solved.
	ErrGraphMismatch = errors.New("solver: state is bound to a different graph")

	// ErrBadTimeLimit indicates a negative time budget.
	ErrBadTimeLimit = errors.New("solver: time limit must be non-negative")
)

// Options holds configurable parameters for a solve.
type Options struct {
	// TimeLimit is the wall-clock budget for the whole search.
	// Zero means unlimited. Negative values are rejected with
	// ErrBadTimeLimit.
	TimeLimit time.Duration
}

// Option configures optional behavior of Solve.
type Option func(*Options)

// DefaultOptions returns Options with an unlimited time budget.
func DefaultOptions() Options {
	return Options{TimeLimit: 0}
}

// WithTimeLimit returns an Option bounding the search to d of wall-clock
// time. Zero disables the bound.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// Result holds the outcome of a solve.
type Result struct {
	// Path is the complete visiting sequence over all N nodes, reusing the
	// journey's prefix. Nil when Found is false.
	Path []graph.NodeID

	// Found reports whether a Hamiltonian completion was found within the
	// time budget. False is a normal outcome, not a fault.
	Found bool
}
