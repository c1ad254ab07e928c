// Package boards - board type, layout point, and sentinel errors.
package boards

import (
	"errors"

	"github.com/okulov/hamipath/graph"
)

// ErrBadDimension indicates a generator was asked for an impossible size
// (e.g. a cycle of fewer than three nodes, a grid with a zero side).
var ErrBadDimension = errors.New("boards: bad board dimension")

// Point is a planar position for one node, in arbitrary board units.
// Renderers scale it to their canvas; the engine never reads it.
type Point struct {
	X, Y float64
}

// Board is a puzzle definition: named nodes, symmetric edges, and a planar
// layout. It is immutable once built; treat all fields as read-only.
type Board struct {
	// Name identifies the board in menus and logs.
	Name string

	// Nodes lists the node identifiers in declared order. The first entry
	// is the solver's default starting node for an empty journey.
	Nodes []graph.NodeID

	// Edges lists each undirected edge exactly once as an {a, b} pair.
	Edges [][2]graph.NodeID

	// Layout maps every node to its planar position.
	Layout map[graph.NodeID]Point
}

// Graph materializes the board into an immutable puzzle graph, expanding the
// edge list into the symmetric adjacency mapping graph.New expects.
//
// Complexity: O(V + E).
func (b Board) Graph() (*graph.Graph, error) {
	adjacency := make(map[graph.NodeID][]graph.NodeID, len(b.Nodes))
	for _, e := range b.Edges {
		adjacency[e[0]] = append(adjacency[e[0]], e[1])
		adjacency[e[1]] = append(adjacency[e[1]], e[0])
	}

	return graph.New(b.Nodes, adjacency)
}
