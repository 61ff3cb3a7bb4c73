// SPDX-License-Identifier: MIT

package csr

// Canonical returns a new Graph on the same vertex set in which every logical
// edge {u, v} (u <= v) is stored exactly once, in row u, and every row is
// strictly ascending. Direction, entry order and duplicates in g do not
// affect the result, so two graphs have equal canonical forms iff their
// normalized edge sets are equal.
//
// Implementation:
//   - Stage 1: counting sort of the normalized pairs by their larger endpoint.
//   - Stage 2: stable counting sort by the smaller endpoint; rows come out
//     ascending because Stage 1 already ordered them by the larger endpoint.
//   - Stage 3: in-place removal of adjacent duplicates per row.
//
// TypeCodes are not carried over. g must be valid; see Graph.Validate.
// Complexity: O(n + m) time, O(n + m) memory, no hashing.
func Canonical(g *Graph) *Graph {
	n, m := g.N(), g.Entries()

	// Stage 1: bucket by larger endpoint.
	next := make([]int, n+1)
	for i := 0; i < n; i++ {
		for _, j := range g.Row(i) {
			next[max(i, j)+1]++
		}
	}
	for v := 0; v < n; v++ {
		next[v+1] += next[v]
	}
	lo := make([]int, m)
	hi := make([]int, m)
	for i := 0; i < n; i++ {
		for _, j := range g.Row(i) {
			e := NewEdge(i, j)
			p := next[e.V]
			next[e.V]++
			lo[p], hi[p] = e.U, e.V
		}
	}

	// Stage 2: stable bucket by smaller endpoint.
	rowPtr := make([]int, n+1)
	for _, u := range lo {
		rowPtr[u+1]++
	}
	for u := 0; u < n; u++ {
		rowPtr[u+1] += rowPtr[u]
	}
	copy(next, rowPtr)
	colIDs := make([]int, m)
	for k, u := range lo {
		colIDs[next[u]] = hi[k]
		next[u]++
	}

	// Stage 3: drop adjacent duplicates; w never overtakes k.
	out := make([]int, n+1)
	w := 0
	for u := 0; u < n; u++ {
		start := w
		for k := rowPtr[u]; k < rowPtr[u+1]; k++ {
			if w > start && colIDs[w-1] == colIDs[k] {
				continue
			}
			colIDs[w] = colIDs[k]
			w++
		}
		out[u+1] = w
	}

	return &Graph{RowPtr: out, ColIDs: colIDs[:w:w]}
}

// IsCanonical reports whether g already has the shape Canonical produces:
// every entry j of row i satisfies j >= i and rows are strictly ascending.
func IsCanonical(g *Graph) bool {
	for i := 0; i < g.N(); i++ {
		row := g.Row(i)
		for k, j := range row {
			if j < i || (k > 0 && row[k-1] >= j) {
				return false
			}
		}
	}

	return true
}
