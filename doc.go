// Package hamipath is a small engine for the "visit every node exactly once"
// puzzle: given an undirected graph embedded in the plane, trace a path that
// covers all nodes, moving only along edges and never revisiting a node.
//
// The module is pure logic over an immutable graph and is meant to be
// embedded by a presentation layer (canvas rendering, tap hit-testing, menus
// are all callers' concerns). It is organized in four subpackages:
//
//	graph/   — immutable node set + symmetric adjacency, validated on
//	           construction (fail-fast on malformed input)
//	journey/ — immutable progress state: the visited sequence plus legality
//	           checks and the extend/retract transitions
//	solver/  — bounded-time backtracking completion of a partial journey
//	           into a full Hamiltonian path, with a Warnsdorff-style
//	           fewest-onward-options move ordering
//	boards/  — ready-made puzzle boards with planar layouts, plus
//	           parametric generators (cycle, chain, complete, grid)
//
// Typical flow: materialize a boards.Board into a graph.Graph, start from
// journey.Empty, apply Extend/Retract as the player moves, and hand the
// current state to solver.Solve when auto-completion is requested. A solve
// that finds nothing within its time budget is an ordinary outcome, not an
// error; only structurally malformed graphs fail hard.
package hamipath
