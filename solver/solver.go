package solver

import (
	"sort"
	"time"

	"github.com/okulov/hamipath/graph"
	"github.com/okulov/hamipath/journey"
)

// engine holds all search data for one Solve invocation. A dedicated struct
// (instead of closures over Solve locals) keeps the hot-path state explicit
// and the recursion signature minimal; nothing here outlives the call, so
// Solve stays re-entrant.
type engine struct {
	n     int
	ids   []graph.NodeID       // index → identifier, declared order
	index map[graph.NodeID]int // identifier → index
	adj   [][]int              // index → neighbor indexes, ascending by identifier

	visited []bool
	path    []int // path[:depth] is the working sequence
	depth   int

	useDeadline bool
	deadline    time.Time
	timedOut    bool
}

// newEngine indexes the graph into dense arrays so the recursion touches
// slices only. Neighbor rows are ordered by identifier, which later lets a
// stable sort on onward counts inherit the identifier tie-break.
func newEngine(g *graph.Graph) *engine {
	var (
		ids = g.Nodes()
		n   = len(ids)
		e   = &engine{
			n:       n,
			ids:     ids,
			index:   make(map[graph.NodeID]int, n),
			adj:     make([][]int, n),
			visited: make([]bool, n),
			path:    make([]int, n),
		}
	)
	for i, id := range ids {
		e.index[id] = i
	}
	for i, id := range ids {
		row := g.Neighbors(id) // ascending by identifier
		idxs := make([]int, len(row))
		for j, nb := range row {
			idxs[j] = e.index[nb]
		}
		e.adj[i] = idxs
	}

	return e
}

// expired reports whether the wall-clock budget has run out.
func (e *engine) expired() bool {
	return e.useDeadline && time.Now().After(e.deadline)
}

// onward counts the unvisited neighbors of v — the candidate's remaining
// options if we were to move there next.
func (e *engine) onward(v int) int {
	var c int
	for _, u := range e.adj[v] {
		if !e.visited[u] {
			c++
		}
	}

	return c
}

// dfs extends the working path from its tip until it covers all n nodes,
// backtracking on dead ends. Returns true on the first completion; false
// means exhausted below this point, or timed out (e.timedOut set).
func (e *engine) dfs(last int) bool {
	// Single guarded entry point for the deadline: once exceeded, failure
	// propagates up the stack with no further exploration.
	if e.expired() {
		e.timedOut = true

		return false
	}
	if e.depth == e.n {
		return true
	}

	// Candidates: unvisited neighbors of the tip. The row is ordered by
	// identifier, so the stable sort below breaks onward-count ties by
	// identifier — fully deterministic branching.
	cands := make([]int, 0, len(e.adj[last]))
	for _, v := range e.adj[last] {
		if !e.visited[v] {
			cands = append(cands, v)
		}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return e.onward(cands[i]) < e.onward(cands[j])
	})

	for _, v := range cands {
		e.visited[v] = true
		e.path[e.depth] = v
		e.depth++
		if e.dfs(v) {
			return true
		}
		e.depth--
		e.visited[v] = false
		if e.timedOut {
			return false
		}
	}

	return false
}

// Solve completes the journey st into a full Hamiltonian path over g,
// reusing st's prefix. An empty journey is seeded from g.First() — the first
// node in the declared order; pre-seed the journey to start elsewhere.
//
// The first completion found is returned; absence of a completion within the
// budget is reported as Result{Found: false} with a nil error. The caller's
// state is never mutated — adopt a success wholesale via journey.FromPath.
//
// Errors: ErrNilGraph, ErrGraphMismatch, ErrBadTimeLimit.
//
// Complexity: worst case exponential in V; O(V + E) setup.
func Solve(g *graph.Graph, st journey.State, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if st.Graph() != g {
		return Result{}, ErrGraphMismatch
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.TimeLimit < 0 {
		return Result{}, ErrBadTimeLimit
	}

	e := newEngine(g)
	if o.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(o.TimeLimit)
	}

	// Seed the working path from the journey's prefix, or from the first
	// declared node when the journey has not started.
	prefix := st.Path()
	if len(prefix) == 0 {
		prefix = []graph.NodeID{g.First()}
	}
	var last int
	for i, id := range prefix {
		last = e.index[id]
		e.visited[last] = true
		e.path[i] = last
	}
	e.depth = len(prefix)

	if !e.dfs(last) {
		return Result{Found: false}, nil
	}

	out := make([]graph.NodeID, e.n)
	for i, v := range e.path {
		out[i] = e.ids[v]
	}

	return Result{Path: out, Found: true}, nil
}
