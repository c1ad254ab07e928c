package boards

import "github.com/okulov/hamipath/graph"

// Triquetra is a 6-node hexagon ring with two crossing chords — the entry
// board: dense enough that greedy tapping can dead-end, small enough to
// retract out of any corner.
//
//	    0
//	  5   1
//	  4   2
//	    3
//
// Chords: 0—2 and 3—5.
func Triquetra() Board {
	return Board{
		Name:  "triquetra",
		Nodes: []graph.NodeID{0, 1, 2, 3, 4, 5},
		Edges: [][2]graph.NodeID{
			{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0},
			{0, 2}, {3, 5},
		},
		Layout: map[graph.NodeID]Point{
			0: {X: 0, Y: 2},
			1: {X: 1.7, Y: 1},
			2: {X: 1.7, Y: -1},
			3: {X: 0, Y: -2},
			4: {X: -1.7, Y: -1},
			5: {X: -1.7, Y: 1},
		},
	}
}

// Lantern is the 8-node cube skeleton drawn as a square within a square:
// outer ring 0—1—2—3, inner ring 4—5—6—7, and a spoke from each outer
// corner to its inner counterpart.
func Lantern() Board {
	return Board{
		Name:  "lantern",
		Nodes: []graph.NodeID{0, 1, 2, 3, 4, 5, 6, 7},
		Edges: [][2]graph.NodeID{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
		},
		Layout: map[graph.NodeID]Point{
			0: {X: -2, Y: 2},
			1: {X: 2, Y: 2},
			2: {X: 2, Y: -2},
			3: {X: -2, Y: -2},
			4: {X: -1, Y: 1},
			5: {X: 1, Y: 1},
			6: {X: 1, Y: -1},
			7: {X: -1, Y: -1},
		},
	}
}

// Courtyard is the 3×3 orthogonal grid — the classic nine-dot board.
func Courtyard() Board {
	b, _ := Grid(3, 3) // dimensions are static and valid
	b.Name = "courtyard"

	return b
}
