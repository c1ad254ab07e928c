package graph

import "sort"

// New builds an immutable Graph from a declared node set and a symmetric
// adjacency mapping. Callers (board presets) are responsible for supplying a
// symmetric, loop-free relation; New validates anyway and fails fast with a
// sentinel wrapping ErrMalformedGraph on any structural violation.
//
// Adjacency keys with no entry (or a nil slice) declare an isolated node.
// Duplicate neighbor entries within one slice are collapsed silently.
//
// Complexity: O(V + E·log E) time (neighbor-list sort), O(V + E) space.
func New(nodes []NodeID, adjacency map[NodeID][]NodeID) (*Graph, error) {
	// Stage 1: node set — non-empty, non-negative, unique.
	if len(nodes) == 0 {
		return nil, ErrNoNodes
	}
	var (
		g = &Graph{
			order: make([]NodeID, len(nodes)),
			index: make(map[NodeID]struct{}, len(nodes)),
			adj:   make(map[NodeID]map[NodeID]struct{}, len(nodes)),
			nbrs:  make(map[NodeID][]NodeID, len(nodes)),
		}
		id NodeID
		ok bool
	)
	for i := range nodes {
		id = nodes[i]
		if id < 0 {
			return nil, ErrNegativeID
		}
		if _, ok = g.index[id]; ok {
			return nil, ErrDuplicateNode
		}
		g.index[id] = struct{}{}
		g.order[i] = id
	}

	// Stage 2: adjacency — declared endpoints only, no self-loops.
	var (
		from NodeID
		tos  []NodeID
		to   NodeID
	)
	for from, tos = range adjacency {
		if _, ok = g.index[from]; !ok {
			return nil, ErrUnknownNode
		}
		set := make(map[NodeID]struct{}, len(tos))
		for _, to = range tos {
			if to == from {
				return nil, ErrSelfLoop
			}
			if _, ok = g.index[to]; !ok {
				return nil, ErrUnknownNode
			}
			set[to] = struct{}{}
		}
		g.adj[from] = set
	}

	// Stage 3: symmetry — b ∈ adj[a] requires a ∈ adj[b].
	for from, set := range g.adj {
		for to = range set {
			if _, ok = g.adj[to][from]; !ok {
				return nil, ErrAsymmetricAdjacency
			}
		}
	}

	// Stage 4: precompute ascending neighbor lists for cheap, deterministic
	// iteration (map order would leak nondeterminism into the solver).
	for _, id = range g.order {
		set := g.adj[id]
		row := make([]NodeID, 0, len(set))
		for to = range set {
			row = append(row, to)
		}
		sort.Slice(row, func(i, j int) bool { return row[i] < row[j] })
		g.nbrs[id] = row
	}

	return g, nil
}
