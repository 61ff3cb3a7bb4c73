// SPDX-License-Identifier: MIT

package csr

import (
	"slices"
	"strconv"
)

// Edge is an unordered vertex pair stored with the smaller id first.
// Two edges are equal iff their normalized pairs are equal, so Edge can be
// used directly as a map key. A self-loop is the pair {i, i}.
type Edge struct {
	U, V int
}

// NewEdge returns the normalized edge {min(a,b), max(a,b)}.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{U: a, V: b}
}

// Less orders edges lexicographically by (U, V).
func (e Edge) Less(o Edge) bool {
	if e.U != o.U {
		return e.U < o.U
	}

	return e.V < o.V
}

// String renders the edge as "U-V".
func (e Edge) String() string {
	return strconv.Itoa(e.U) + "-" + strconv.Itoa(e.V)
}

func compareEdges(a, b Edge) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}

// EdgeSet is a deduplicated set of normalized edges.
type EdgeSet map[Edge]struct{}

// Has reports whether e (normalized or not) is in the set.
func (s EdgeSet) Has(e Edge) bool {
	_, ok := s[NewEdge(e.U, e.V)]
	return ok
}

// Len returns the number of distinct edges.
func (s EdgeSet) Len() int { return len(s) }

// Sorted returns the edges in ascending (U, V) order.
func (s EdgeSet) Sorted() []Edge {
	out := make([]Edge, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	slices.SortFunc(out, compareEdges)

	return out
}

// Edges extracts the normalized edge set of g: every adjacency entry (i→j)
// contributes {min(i,j), max(i,j)}, and entries mapping to the same pair
// (both directions of a symmetric row, repeated entries) collapse to one.
//
// g must be valid; see Graph.Validate.
// Complexity: O(n + m) expected time, O(m) memory.
func Edges(g *Graph) EdgeSet {
	set := make(EdgeSet, len(g.ColIDs))
	for i := 0; i < g.N(); i++ {
		for _, j := range g.Row(i) {
			set[NewEdge(i, j)] = struct{}{}
		}
	}

	return set
}

// SortEdges sorts es in place in ascending (U, V) order.
func SortEdges(es []Edge) {
	slices.SortFunc(es, compareEdges)
}
