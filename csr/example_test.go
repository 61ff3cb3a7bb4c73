package csr_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphdist/csr"
)

// ExampleEdges shows that symmetric storage of 0–1 and 1–2 yields two edges.
func ExampleEdges() {
	//	0 ── 1 ── 2   stored in both directions
	g := &csr.Graph{
		RowPtr: []int{0, 1, 3, 4},
		ColIDs: []int{1, 0, 2, 1},
	}
	if err := g.Validate(); err != nil {
		fmt.Println("invalid:", err)
		return
	}
	fmt.Println(csr.Edges(g).Sorted())
	// Output:
	// [0-1 1-2]
}

// ExampleCanonical folds a one-directional, unsorted adjacency into the
// upper-triangular form.
func ExampleCanonical() {
	g := &csr.Graph{
		RowPtr: []int{0, 0, 1, 3},
		ColIDs: []int{0, 1, 0}, // 1→0, 2→1, 2→0
	}
	c := csr.Canonical(g)
	fmt.Println(c.RowPtr, c.ColIDs)
	// Output:
	// [0 2 3 3] [1 2 2]
}

// ExampleGraph_Validate inspects a structural error.
func ExampleGraph_Validate() {
	g := &csr.Graph{RowPtr: []int{0, 1, 2}, ColIDs: []int{1, 7}}

	var ve *csr.ValidationError
	if err := g.Validate(); errors.As(err, &ve) {
		fmt.Println(errors.Is(err, csr.ErrStructuralMismatch), ve.Field, ve.Index)
		fmt.Println(err)
	}
	// Output:
	// true col_ids 1
	// csr: structural mismatch: col_ids[1]: vertex id 7 outside [0, 2)
}
