package journey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okulov/hamipath/graph"
	"github.com/okulov/hamipath/journey"
)

// mkSquare builds the 4-cycle 0-1-2-3-0.
func mkSquare(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(
		[]graph.NodeID{0, 1, 2, 3},
		map[graph.NodeID][]graph.NodeID{
			0: {1, 3},
			1: {0, 2},
			2: {1, 3},
			3: {2, 0},
		},
	)
	require.NoError(t, err)

	return g
}

// checkInvariants asserts the four state invariants: membership, uniqueness,
// consecutive adjacency, and visited-set/path agreement.
func checkInvariants(t *testing.T, g *graph.Graph, s journey.State) {
	t.Helper()
	path := s.Path()
	seen := make(map[graph.NodeID]struct{}, len(path))
	for i, id := range path {
		assert.True(t, g.Has(id), "path node %v must belong to the graph", id)
		_, dup := seen[id]
		assert.False(t, dup, "path must not repeat %v", id)
		seen[id] = struct{}{}
		if i > 0 {
			assert.True(t, g.Adjacent(path[i-1], id),
				"consecutive pair (%v,%v) must be an edge", path[i-1], id)
		}
		assert.True(t, s.Visited(id))
	}
	assert.Equal(t, len(path), s.MoveCount())
	for _, id := range g.Nodes() {
		if _, ok := seen[id]; !ok {
			assert.False(t, s.Visited(id))
		}
	}
}

func TestEmpty(t *testing.T) {
	g := mkSquare(t)
	s := journey.Empty(g)

	assert.Same(t, g, s.Graph())
	assert.Equal(t, 0, s.MoveCount())
	assert.False(t, s.IsComplete())
	assert.Empty(t, s.Path())

	_, ok := s.Current()
	assert.False(t, ok, "empty journey has no current node")
}

func TestIsLegalMove(t *testing.T) {
	g := mkSquare(t)
	s := journey.Empty(g)

	// Any node may start the journey; unknown identifiers never may.
	for _, id := range g.Nodes() {
		assert.True(t, s.IsLegalMove(id))
	}
	assert.False(t, s.IsLegalMove(42))

	s = s.Extend(0)
	assert.True(t, s.IsLegalMove(1), "adjacent and unvisited")
	assert.True(t, s.IsLegalMove(3))
	assert.False(t, s.IsLegalMove(2), "not adjacent to current")
	assert.False(t, s.IsLegalMove(0), "already visited")
}

func TestExtend_LegalAndIllegal(t *testing.T) {
	g := mkSquare(t)
	s := journey.Empty(g).Extend(0)

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, graph.NodeID(0), cur)

	// Illegal target (non-adjacent): silent no-op, state unchanged.
	same := s.Extend(2)
	assert.Equal(t, s, same)
	assert.Equal(t, []graph.NodeID{0}, same.Path())

	// Illegal target (visited): same story.
	assert.Equal(t, s, s.Extend(0))

	// Legal extension produces a new value and leaves the receiver intact.
	next := s.Extend(1)
	assert.Equal(t, []graph.NodeID{0, 1}, next.Path())
	assert.Equal(t, []graph.NodeID{0}, s.Path(), "receiver must not mutate")
	checkInvariants(t, g, next)
}

func TestRetract(t *testing.T) {
	g := mkSquare(t)
	s := journey.Empty(g)

	// No-op on an empty journey.
	assert.Equal(t, s, s.Retract())

	// Undo symmetry: retracting a legal extension restores the prior value.
	one := s.Extend(0)
	assert.Equal(t, s, one.Retract())

	two := one.Extend(1)
	assert.Equal(t, one, two.Retract())

	// Repeated retraction walks all the way back to empty.
	assert.Equal(t, s, two.Retract().Retract())
}

func TestInvariants_AcrossTransitionScript(t *testing.T) {
	g := mkSquare(t)
	s := journey.Empty(g)

	// A scripted mix of legal moves, illegal attempts, and undos.
	script := []func(journey.State) journey.State{
		func(s journey.State) journey.State { return s.Extend(0) },
		func(s journey.State) journey.State { return s.Extend(2) }, // illegal
		func(s journey.State) journey.State { return s.Extend(1) },
		func(s journey.State) journey.State { return s.Retract() },
		func(s journey.State) journey.State { return s.Extend(3) },
		func(s journey.State) journey.State { return s.Extend(3) }, // illegal
		func(s journey.State) journey.State { return s.Extend(2) },
		func(s journey.State) journey.State { return s.Extend(1) },
	}
	for _, step := range script {
		s = step(s)
		checkInvariants(t, g, s)
	}

	assert.True(t, s.IsComplete())
	assert.Equal(t, []graph.NodeID{0, 3, 2, 1}, s.Path())
}

func TestIsComplete(t *testing.T) {
	g := mkSquare(t)
	s := journey.Empty(g).Extend(0).Extend(1).Extend(2)
	assert.False(t, s.IsComplete())

	s = s.Extend(3)
	assert.True(t, s.IsComplete())
	assert.Equal(t, g.N(), s.MoveCount())

	// A complete path must contain every node exactly once.
	seen := make(map[graph.NodeID]struct{})
	for _, id := range s.Path() {
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, g.N())
}

func TestFromPath(t *testing.T) {
	g := mkSquare(t)

	s, err := journey.FromPath(g, []graph.NodeID{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []graph.NodeID{0, 1, 2}, s.Path())
	checkInvariants(t, g, s)

	// Empty path adopts as the blank state.
	s, err = journey.FromPath(g, nil)
	require.NoError(t, err)
	assert.Equal(t, journey.Empty(g), s)

	// Violations: unknown node, duplicate, non-adjacent step.
	_, err = journey.FromPath(g, []graph.NodeID{0, 42})
	assert.ErrorIs(t, err, journey.ErrInvalidPath)

	_, err = journey.FromPath(g, []graph.NodeID{0, 1, 0})
	assert.ErrorIs(t, err, journey.ErrInvalidPath)

	_, err = journey.FromPath(g, []graph.NodeID{0, 2})
	assert.ErrorIs(t, err, journey.ErrInvalidPath)
}

func TestPath_ReturnsCopy(t *testing.T) {
	g := mkSquare(t)
	s := journey.Empty(g).Extend(0).Extend(1)

	p := s.Path()
	p[0] = 3
	assert.Equal(t, []graph.NodeID{0, 1}, s.Path())
}
