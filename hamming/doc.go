// Package hamming computes the structural Hamming distance between two
// graphs on the same vertex set: the number of unordered edges present in
// exactly one of them.
//
// What
//
//   - Distance(g1, g2, opts...)  → int
//   - Compute(g1, g2, opts...)   → *Result (count, normalized count, diff)
//   - Aligned(g1, names1, g2, names2, opts...) → *Result after matching
//     vertices by name instead of position.
//
// Both graphs are csr.Graph values read as undirected edge sets: an entry
// (i→j) is the edge {i, j}, both directions of a symmetric adjacency name one
// edge, and repeated entries count once. Self-loops are ordinary edges.
//
// Strategies
//
//   - SetBased (default): hash both normalized edge sets and count the
//     symmetric difference. The reference result.
//   - SortedMerge: canonicalize both graphs (each edge once, in the row of
//     its smaller endpoint, rows ascending) and merge rows vertex by vertex.
//     Agrees with SetBased on every valid input, sorted or not, symmetric or
//     not. WithWorkers(k) splits the vertex range across k goroutines.
//
// Usage
//
//	d, err := hamming.Distance(learned, reference)
//	if errors.Is(err, csr.ErrStructuralMismatch) {
//		// inputs not comparable
//	}
//
//	res, err := hamming.Compute(
//		learned, reference,
//		hamming.WithStrategy(hamming.SortedMerge),
//		hamming.WithWorkers(runtime.NumCPU()),
//		hamming.WithEdgeDiff(),
//		hamming.WithLogger(logger),   // zerolog, debug-level trace
//		hamming.WithMetrics(metrics), // prometheus collectors
//	)
//
// Errors
//
//   - csr.ErrStructuralMismatch  vertex counts differ, a CSR invariant is
//     violated, or (Aligned) the name lists do not form a bijection.
//   - csr.ErrNilGraph            a nil graph (also a structural mismatch).
//   - ErrOptionViolation         an invalid Option.
//
// Errors are reported before any comparison work; there are no partial
// results.
//
// Complexity (n = vertices, m = stored entries of both graphs)
//
//   - SetBased:    O(n + m) expected time, O(m) memory.
//   - SortedMerge: O(n + m) time and memory, no hashing.
package hamming
