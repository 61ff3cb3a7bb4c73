// SPDX-License-Identifier: MIT

package csr

// Graph is a compressed-sparse-row adjacency over vertices 0..N()-1.
//
// The neighbors of vertex i are ColIDs[RowPtr[i]:RowPtr[i+1]]. TypeCodes, when
// non-nil, is parallel to ColIDs and carries an edge-type tag per entry; it is
// kept for callers that store typed edges and is never read by comparison.
//
// A Graph is a read-only view: nothing in this module mutates the slices.
type Graph struct {
	RowPtr    []int
	ColIDs    []int
	TypeCodes []int32
}

// N returns the vertex count, len(RowPtr)-1, or 0 for an empty RowPtr.
func (g *Graph) N() int {
	if len(g.RowPtr) == 0 {
		return 0
	}

	return len(g.RowPtr) - 1
}

// Entries returns the number of stored adjacency entries.
func (g *Graph) Entries() int {
	return len(g.ColIDs)
}

// Row returns the neighbor slice of vertex i without copying.
// The caller must not modify it. Row assumes g has been validated.
func (g *Graph) Row(i int) []int {
	return g.ColIDs[g.RowPtr[i]:g.RowPtr[i+1]]
}

// IsSorted reports whether every row is strictly ascending, i.e. sorted and
// free of duplicate entries.
func (g *Graph) IsSorted() bool {
	for i := 0; i < g.N(); i++ {
		row := g.Row(i)
		for k := 1; k < len(row); k++ {
			if row[k-1] >= row[k] {
				return false
			}
		}
	}

	return true
}

// HasSelfLoop reports whether any vertex lists itself as a neighbor.
func (g *Graph) HasSelfLoop() bool {
	for i := 0; i < g.N(); i++ {
		for _, j := range g.Row(i) {
			if j == i {
				return true
			}
		}
	}

	return false
}

// Validate checks the CSR invariants in a fixed order:
//
//  1. RowPtr is non-empty and RowPtr[0] == 0;
//  2. RowPtr is non-decreasing;
//  3. RowPtr[n] == len(ColIDs);
//  4. every ColIDs entry lies in [0, n);
//  5. TypeCodes is nil or len(TypeCodes) == len(ColIDs).
//
// The first violation is returned as a *ValidationError.
// Complexity: O(n + m).
func (g *Graph) Validate() error {
	if g == nil {
		return nilGraph(FieldGraph)
	}
	if len(g.RowPtr) == 0 {
		return Mismatch(FieldRowPtr, -1, "must hold n+1 entries, got none")
	}
	if g.RowPtr[0] != 0 {
		return Mismatch(FieldRowPtr, 0, "must be 0, got %d", g.RowPtr[0])
	}

	n := g.N()
	for i := 1; i <= n; i++ {
		if g.RowPtr[i] < g.RowPtr[i-1] {
			return Mismatch(FieldRowPtr, i, "decreases from %d to %d", g.RowPtr[i-1], g.RowPtr[i])
		}
	}
	if g.RowPtr[n] != len(g.ColIDs) {
		return Mismatch(FieldRowPtr, n, "is %d but col_ids holds %d entries", g.RowPtr[n], len(g.ColIDs))
	}

	for k, j := range g.ColIDs {
		if j < 0 || j >= n {
			return Mismatch(FieldColIDs, k, "vertex id %d outside [0, %d)", j, n)
		}
	}

	if g.TypeCodes != nil && len(g.TypeCodes) != len(g.ColIDs) {
		return Mismatch(FieldTypeCodes, -1, "length %d does not match col_ids length %d", len(g.TypeCodes), len(g.ColIDs))
	}

	return nil
}

// ValidateSameOrder validates both graphs and then checks that they describe
// the same vertex count. The vertex-count check comes last so that a broken
// graph is reported for what it is rather than as a size difference.
func ValidateSameOrder(a, b *Graph) error {
	if a == nil {
		return nilGraph("first graph")
	}
	if b == nil {
		return nilGraph("second graph")
	}
	if err := a.Validate(); err != nil {
		return err
	}
	if err := b.Validate(); err != nil {
		return err
	}
	if len(a.RowPtr) != len(b.RowPtr) {
		return Mismatch(FieldRowPtr, -1, "vertex counts differ: %d vs %d", a.N(), b.N())
	}

	return nil
}
