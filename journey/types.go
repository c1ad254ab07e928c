// Package journey - state type and sentinel errors.
package journey

import (
	"errors"

	"github.com/okulov/hamipath/graph"
)

// ErrInvalidPath is returned by FromPath when the supplied sequence violates
// a journey invariant: an identifier outside the graph, a duplicate visit,
// or a step between non-adjacent nodes.
var ErrInvalidPath = errors.New("journey: invalid path")

// State is an immutable snapshot of puzzle progress bound to one graph.
//
// The zero value is not usable; obtain a State from Empty or FromPath and
// derive further values through Extend and Retract. States are cheap to
// copy and safe to share: the underlying path slice and visited set are
// never mutated after the State is produced.
type State struct {
	g       *graph.Graph
	path    []graph.NodeID
	visited map[graph.NodeID]struct{}
}

// Empty returns the blank State for g: no node visited yet. It doubles as
// "reset progress" — selecting a different graph or clearing the board both
// come down to replacing the current value with Empty(g).
func Empty(g *graph.Graph) State {
	return State{g: g}
}
