// Package journey models the player's progress through a puzzle: the ordered
// sequence of visited nodes, the legality rules for the next tap, and the
// two transitions that move the sequence forward (Extend) or back (Retract).
//
// A State is an immutable value. Transitions never mutate the receiver; they
// return a fresh State, and illegal transitions return the receiver
// unchanged. Undo therefore costs nothing beyond discarding the latest
// value, and reset is journey.Empty for the same graph.
//
// Invariants held by every State:
//
//  1. every identifier on the path belongs to the bound graph;
//  2. the path contains no duplicates;
//  3. every consecutive pair on the path is an edge of the graph;
//  4. the visited set equals exactly the set of path elements.
//
// Illegal moves are an expected, recoverable user action, not a fault:
// Extend with an illegal target is a silent no-op, and Retract on an empty
// path likewise. The only error in this package is ErrInvalidPath, returned
// by FromPath when a caller adopts an externally produced sequence (such as
// a solver result) that violates the invariants above.
package journey
