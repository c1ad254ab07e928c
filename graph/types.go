// Package graph - core types and sentinel errors for the puzzle graph.
package graph

import (
	"errors"
	"fmt"
)

// ErrMalformedGraph is the umbrella sentinel for every construction failure.
// All fine-grained sentinels below wrap it, so callers that only care about
// "this graph is unusable" can test errors.Is(err, ErrMalformedGraph).
var ErrMalformedGraph = errors.New("graph: malformed graph")

// Fine-grained construction sentinels. Each wraps ErrMalformedGraph.
var (
	// ErrNoNodes indicates that the declared node set is empty.
	ErrNoNodes = fmt.Errorf("%w: node set is empty", ErrMalformedGraph)

	// ErrNegativeID indicates a negative node identifier in the node set.
	ErrNegativeID = fmt.Errorf("%w: negative node identifier", ErrMalformedGraph)

	// ErrDuplicateNode indicates the same identifier was declared twice.
	ErrDuplicateNode = fmt.Errorf("%w: duplicate node identifier", ErrMalformedGraph)

	// ErrUnknownNode indicates adjacency references an undeclared identifier.
	ErrUnknownNode = fmt.Errorf("%w: adjacency references unknown node", ErrMalformedGraph)

	// ErrSelfLoop indicates a node listed as adjacent to itself.
	ErrSelfLoop = fmt.Errorf("%w: self-loop", ErrMalformedGraph)

	// ErrAsymmetricAdjacency indicates b ∈ adj[a] without a ∈ adj[b].
	ErrAsymmetricAdjacency = fmt.Errorf("%w: asymmetric adjacency", ErrMalformedGraph)
)

// NodeID identifies a node within one Graph. Identifiers are small
// non-negative integers with no ordering significance beyond identity.
type NodeID int

// Graph is the immutable puzzle graph: node identifiers plus a symmetric,
// loop-free adjacency relation. Zero value is unusable; construct via New.
//
// The declared node order (the order of the slice passed to New) is
// preserved and observable through Nodes and First; the solver uses it as
// the default starting convention when a journey is empty.
type Graph struct {
	// order preserves the declared node sequence.
	order []NodeID

	// index is the membership set.
	index map[NodeID]struct{}

	// adj holds the symmetric adjacency sets.
	adj map[NodeID]map[NodeID]struct{}

	// nbrs caches ascending neighbor lists, precomputed at construction so
	// map iteration order never leaks into query results or the solver.
	nbrs map[NodeID][]NodeID
}
