// Package boards supplies ready-made puzzle boards and parametric board
// generators for the hamipath engine.
//
// A Board couples a node set and symmetric edge list with a planar layout
// (one Point per node) so a presentation layer can draw it directly; the
// engine itself only consumes the Graph materialized by Board.Graph.
//
// Three hand-laid presets ship with the package:
//
//	Triquetra — 6-node hexagon ring with two crossing chords
//	Lantern   — 8-node cube skeleton (outer square, inner square, spokes)
//	Courtyard — 3×3 orthogonal grid
//
// All presets are Hamiltonian-path solvable and sized for the engine's
// target range (V ≤ ~12).
//
// Generators build parametric families in the same shape: Cycle, Chain,
// Complete, and Grid. Invalid sizes are rejected with ErrBadDimension.
package boards
