// Package csr provides a read-only compressed-sparse-row (CSR) graph view
// and the edge normalization used to compare graphs as undirected edge sets.
//
// What
//
//   - Graph: RowPtr (n+1 offsets) + ColIDs (neighbor ids) + optional TypeCodes.
//   - Validate: hardened structural checks (offsets, bounds, parallel arrays).
//   - Edge / EdgeSet: unordered pairs normalized as {min, max}.
//   - Edges: set-based extraction, robust to direction, order and duplicates.
//   - Canonical: the same edge set as an upper-triangular CSR with strictly
//     ascending rows, built with two counting sorts and no hashing.
//
// Conventions
//
//	Vertex ids are zero-based. An adjacency entry (i→j) stands for the
//	unordered edge {i, j}; storing both (i→j) and (j→i) still yields one
//	edge. A self-loop (i→i) is the ordinary edge {i, i}.
//
// Errors
//
//   - ErrStructuralMismatch  for every CSR invariant violation and for
//     graphs of different vertex counts (reported as *ValidationError).
//   - ErrNilGraph            for a nil *Graph (also matches ErrStructuralMismatch).
//
// Complexity (n = vertices, m = stored entries)
//
//   - Validate:  O(n + m) time, O(1) memory.
//   - Edges:     O(n + m) expected time, O(m) memory.
//   - Canonical: O(n + m) time and memory.
package csr
