package journey

import "github.com/okulov/hamipath/graph"

// FromPath adopts an externally produced visiting sequence (typically a
// solver result) as a State, re-validating every journey invariant.
// An empty path yields Empty(g). Returns ErrInvalidPath on any violation.
//
// Complexity: O(len(path)).
func FromPath(g *graph.Graph, path []graph.NodeID) (State, error) {
	if len(path) == 0 {
		return Empty(g), nil
	}
	var (
		p       = make([]graph.NodeID, len(path))
		visited = make(map[graph.NodeID]struct{}, len(path))
		id      graph.NodeID
		ok      bool
	)
	for i := range path {
		id = path[i]
		if !g.Has(id) {
			return State{}, ErrInvalidPath
		}
		if _, ok = visited[id]; ok {
			return State{}, ErrInvalidPath
		}
		if i > 0 && !g.Adjacent(path[i-1], id) {
			return State{}, ErrInvalidPath
		}
		visited[id] = struct{}{}
		p[i] = id
	}

	return State{g: g, path: p, visited: visited}, nil
}

// Graph returns the graph this State is bound to.
func (s State) Graph() *graph.Graph { return s.g }

// Path returns the visited sequence in visiting order. The returned slice
// is a copy; an empty journey yields an empty (non-nil) slice.
func (s State) Path() []graph.NodeID {
	out := make([]graph.NodeID, len(s.path))
	copy(out, s.path)

	return out
}

// MoveCount reports how many nodes have been visited so far.
func (s State) MoveCount() int { return len(s.path) }

// IsComplete reports whether every node of the graph has been visited,
// i.e. the journey is a full Hamiltonian path.
func (s State) IsComplete() bool { return len(s.path) == s.g.N() }

// Current returns the most recently visited node, or ok=false when the
// journey has not started.
func (s State) Current() (id graph.NodeID, ok bool) {
	if len(s.path) == 0 {
		return 0, false
	}

	return s.path[len(s.path)-1], true
}

// Visited reports whether id has already been visited on this journey.
func (s State) Visited(id graph.NodeID) bool {
	_, ok := s.visited[id]

	return ok
}

// IsLegalMove reports whether target may be visited next: it must be a node
// of the graph, not yet visited, and either the journey is empty (any node
// may start it) or target is adjacent to the current node. No side effects.
//
// Complexity: O(1).
func (s State) IsLegalMove(target graph.NodeID) bool {
	if !s.g.Has(target) {
		return false
	}
	if s.Visited(target) {
		return false
	}
	if len(s.path) == 0 {
		return true
	}

	return s.g.Adjacent(s.path[len(s.path)-1], target)
}

// Extend returns a new State with target appended to the journey. If the
// move is illegal the receiver is returned unchanged — illegal taps are an
// expected user action, so this is a silent no-op, never an error.
//
// Complexity: O(len(path)) for the copy.
func (s State) Extend(target graph.NodeID) State {
	if !s.IsLegalMove(target) {
		return s
	}
	path := make([]graph.NodeID, len(s.path)+1)
	copy(path, s.path)
	path[len(s.path)] = target

	visited := make(map[graph.NodeID]struct{}, len(path))
	for id := range s.visited {
		visited[id] = struct{}{}
	}
	visited[target] = struct{}{}

	return State{g: s.g, path: path, visited: visited}
}

// Retract returns a new State with the last visited node removed — one level
// of undo. Repeated calls walk back arbitrarily far; on an empty journey the
// receiver is returned unchanged. Retracting the only node yields Empty, so
// a fully retracted journey is indistinguishable from a fresh one.
//
// Complexity: O(len(path)).
func (s State) Retract() State {
	switch len(s.path) {
	case 0:
		return s
	case 1:
		return Empty(s.g)
	}
	path := make([]graph.NodeID, len(s.path)-1)
	copy(path, s.path[:len(s.path)-1])

	visited := make(map[graph.NodeID]struct{}, len(path))
	for _, id := range path {
		visited[id] = struct{}{}
	}

	return State{g: s.g, path: path, visited: visited}
}
