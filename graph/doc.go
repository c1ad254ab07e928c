// Package graph defines the immutable puzzle graph: a set of node
// identifiers plus a symmetric, loop-free adjacency relation.
//
// A Graph is built once per puzzle instance via New and never mutated
// afterwards, so it can be shared freely between the interactive state in
// package journey and the search in package solver without locking.
//
// Construction is fail-fast: New validates the node set and adjacency
// mapping and rejects structural violations with sentinel errors, all of
// which wrap ErrMalformedGraph:
//
//	ErrNoNodes             — the node set is empty
//	ErrNegativeID          — a node identifier is negative
//	ErrDuplicateNode       — the same identifier is declared twice
//	ErrUnknownNode         — adjacency references an undeclared identifier
//	ErrSelfLoop            — a node is adjacent to itself
//	ErrAsymmetricAdjacency — b ∈ adj[a] but a ∉ adj[b]
//
// Queries never allocate beyond the returned copy and run in O(1) or
// O(degree); identifiers passed to Neighbors/Degree that are not part of the
// graph yield empty results rather than errors, since membership is already
// observable through Has.
package graph
