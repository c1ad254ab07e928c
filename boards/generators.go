package boards

import (
	"fmt"
	"math"

	"github.com/okulov/hamipath/graph"
)

// Cycle builds a ring of n nodes (n ≥ 3) laid out evenly on a unit circle,
// node 0 at the top, proceeding clockwise.
func Cycle(n int) (Board, error) {
	if n < 3 {
		return Board{}, ErrBadDimension
	}
	b := Board{
		Name:   fmt.Sprintf("cycle-%d", n),
		Nodes:  make([]graph.NodeID, n),
		Edges:  make([][2]graph.NodeID, n),
		Layout: make(map[graph.NodeID]Point, n),
	}
	for i := 0; i < n; i++ {
		id := graph.NodeID(i)
		b.Nodes[i] = id
		angle := 2 * math.Pi * float64(i) / float64(n)
		b.Layout[id] = Point{X: math.Sin(angle), Y: math.Cos(angle)}
		b.Edges[i] = [2]graph.NodeID{id, graph.NodeID((i + 1) % n)}
	}

	return b, nil
}

// Chain builds a path of n nodes (n ≥ 1) laid out on a horizontal line.
// A single-node chain has no edges.
func Chain(n int) (Board, error) {
	if n < 1 {
		return Board{}, ErrBadDimension
	}
	b := Board{
		Name:   fmt.Sprintf("chain-%d", n),
		Nodes:  make([]graph.NodeID, n),
		Edges:  make([][2]graph.NodeID, 0, n-1),
		Layout: make(map[graph.NodeID]Point, n),
	}
	for i := 0; i < n; i++ {
		id := graph.NodeID(i)
		b.Nodes[i] = id
		b.Layout[id] = Point{X: float64(i), Y: 0}
		if i > 0 {
			b.Edges = append(b.Edges, [2]graph.NodeID{id - 1, id})
		}
	}

	return b, nil
}

// Complete builds the complete graph on n nodes (n ≥ 1) laid out on a unit
// circle. Every pair of distinct nodes is connected.
func Complete(n int) (Board, error) {
	if n < 1 {
		return Board{}, ErrBadDimension
	}
	b := Board{
		Name:   fmt.Sprintf("complete-%d", n),
		Nodes:  make([]graph.NodeID, n),
		Edges:  make([][2]graph.NodeID, 0, n*(n-1)/2),
		Layout: make(map[graph.NodeID]Point, n),
	}
	for i := 0; i < n; i++ {
		id := graph.NodeID(i)
		b.Nodes[i] = id
		angle := 2 * math.Pi * float64(i) / float64(n)
		b.Layout[id] = Point{X: math.Sin(angle), Y: math.Cos(angle)}
		for j := 0; j < i; j++ {
			b.Edges = append(b.Edges, [2]graph.NodeID{graph.NodeID(j), id})
		}
	}

	return b, nil
}

// Grid builds a rows×cols orthogonal lattice (both ≥ 1), node identifiers
// assigned row-major from the top-left, laid out on integer coordinates.
func Grid(rows, cols int) (Board, error) {
	if rows < 1 || cols < 1 {
		return Board{}, ErrBadDimension
	}
	n := rows * cols
	b := Board{
		Name:   fmt.Sprintf("grid-%dx%d", rows, cols),
		Nodes:  make([]graph.NodeID, n),
		Edges:  make([][2]graph.NodeID, 0, 2*n),
		Layout: make(map[graph.NodeID]Point, n),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := graph.NodeID(r*cols + c)
			b.Nodes[r*cols+c] = id
			b.Layout[id] = Point{X: float64(c), Y: float64(r)}
			if c > 0 {
				b.Edges = append(b.Edges, [2]graph.NodeID{id - 1, id})
			}
			if r > 0 {
				b.Edges = append(b.Edges, [2]graph.NodeID{id - graph.NodeID(cols), id})
			}
		}
	}

	return b, nil
}
