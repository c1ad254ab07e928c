// Package solver completes a partial journey into a full Hamiltonian path
// via depth-first backtracking under a wall-clock budget.
//
// Algorithm:
//
//  1. Seed: an empty journey starts from the graph's first declared node
//     (a documented convention — pre-seed the journey to choose the start).
//  2. At each step the candidates are the unvisited neighbors of the tip,
//     ordered ascending by their own count of unvisited neighbors, ties
//     broken by node identifier. This is Warnsdorff's rule generalized from
//     knight's-tour grids to arbitrary graphs: burning high-constraint nodes
//     early avoids dead-ending on them later.
//  3. Classic backtracking: tentatively extend, recurse, retract on failure.
//     The first completion wins; no optimality claim is made.
//  4. The deadline is checked at the top of every expansion; once exceeded,
//     the whole search is abandoned and "not found" is reported. The search
//     is not resumable — a fresh call redoes all work.
//
// Absence of a solution (exhausted search or timeout) is an ordinary
// outcome, reported through Result.Found, never through an error. Errors are
// reserved for malformed inputs: ErrNilGraph, ErrGraphMismatch,
// ErrBadTimeLimit.
//
// Complexity: worst case exponential in V (Hamiltonian path is NP-hard);
// the ordering heuristic and the time budget bound practical latency on the
// small boards (V ≤ ~12) this engine targets, with no formal guarantee.
//
// Concurrency: Solve is synchronous and CPU-bound — invoke it off any
// latency-sensitive goroutine. It is re-entrant (all working state is local
// to one invocation) but callers must keep at most one solve in flight per
// journey; the time budget is the only cancellation mechanism.
//
// Determinism: with an unlimited budget the result is a pure function of the
// inputs — identifier tie-breaks remove all randomness. A finite budget makes
// only the failure case time-dependent; any success is always the same path.
package solver
