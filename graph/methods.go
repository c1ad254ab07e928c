package graph

// N reports the number of nodes in the graph.
// Complexity: O(1).
func (g *Graph) N() int { return len(g.order) }

// Nodes returns the node identifiers in their declared order.
// The returned slice is a copy; mutating it does not affect the graph.
// Complexity: O(V).
func (g *Graph) Nodes() []NodeID {
	out := make([]NodeID, len(g.order))
	copy(out, g.order)

	return out
}

// First returns the first node in the declared order. It is the seed the
// solver falls back to when asked to complete an empty journey — a
// documented convention, not a contract; pre-seed the journey to override.
// Complexity: O(1).
func (g *Graph) First() NodeID { return g.order[0] }

// Has reports whether id is a node of the graph.
// Complexity: O(1).
func (g *Graph) Has(id NodeID) bool {
	_, ok := g.index[id]

	return ok
}

// Adjacent reports whether an edge a—b exists. Unknown identifiers are
// simply not adjacent to anything.
// Complexity: O(1).
func (g *Graph) Adjacent(a, b NodeID) bool {
	_, ok := g.adj[a][b]

	return ok
}

// Neighbors returns the identifiers directly reachable from id in ascending
// order. The returned slice is a copy. Unknown or isolated identifiers yield
// an empty slice.
// Complexity: O(degree).
func (g *Graph) Neighbors(id NodeID) []NodeID {
	row := g.nbrs[id]
	out := make([]NodeID, len(row))
	copy(out, row)

	return out
}

// Degree reports how many neighbors id has. Unknown identifiers have
// degree zero.
// Complexity: O(1).
func (g *Graph) Degree(id NodeID) int { return len(g.nbrs[id]) }
