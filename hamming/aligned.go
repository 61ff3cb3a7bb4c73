// SPDX-License-Identifier: MIT

package hamming

import (
	"github.com/katalvlaran/graphdist/csr"
)

// Aligned compares g1 and g2 after matching their vertices by name instead of
// by position: vertex i of g1 is the vertex of g2 whose name equals names1[i].
//
// Errors (all *csr.ValidationError, matching csr.ErrStructuralMismatch):
//   - graph size mismatch or an invalid CSR, as in Distance;
//   - len(names1) or len(names2) differs from the vertex count;
//   - a duplicate name in either list;
//   - a name of names1 missing from names2.
//
// The returned edges in OnlyInFirst/OnlyInSecond use g1's vertex ids.
func Aligned(g1 *csr.Graph, names1 []string, g2 *csr.Graph, names2 []string, opts ...Option) (*Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = csr.ValidateSameOrder(g1, g2); err != nil {
		o.Metrics.reject(o.Strategy)
		return nil, err
	}

	perm, err := permutation(g1.N(), names1, names2)
	if err != nil {
		o.Logger.Debug().Err(err).Msg("hamming: vertex names rejected")
		o.Metrics.reject(o.Strategy)
		return nil, err
	}

	return compute(g1, relabel(g2, perm), o)
}

// permutation returns perm with perm[i] = index in names2 of names1[i].
func permutation(n int, names1, names2 []string) ([]int, error) {
	if len(names1) != n {
		return nil, csr.Mismatch(csr.FieldNames, -1, "first list holds %d names for %d vertices", len(names1), n)
	}
	if len(names2) != n {
		return nil, csr.Mismatch(csr.FieldNames, -1, "second list holds %d names for %d vertices", len(names2), n)
	}

	idx2 := make(map[string]int, n)
	for j, name := range names2 {
		if _, dup := idx2[name]; dup {
			return nil, csr.Mismatch(csr.FieldNames, j, "duplicate name %q in second list", name)
		}
		idx2[name] = j
	}

	seen := make(map[string]struct{}, n)
	perm := make([]int, n)
	for i, name := range names1 {
		if _, dup := seen[name]; dup {
			return nil, csr.Mismatch(csr.FieldNames, i, "duplicate name %q in first list", name)
		}
		seen[name] = struct{}{}

		j, ok := idx2[name]
		if !ok {
			return nil, csr.Mismatch(csr.FieldNames, i, "name %q present in first list but not in second", name)
		}
		perm[i] = j
	}

	return perm, nil
}

// relabel rewrites g into the vertex order given by perm: row i of the result
// is row perm[i] of g, with every neighbor id mapped back through perm.
func relabel(g *csr.Graph, perm []int) *csr.Graph {
	n := len(perm)
	inv := make([]int, n)
	for i, j := range perm {
		inv[j] = i
	}

	out := &csr.Graph{RowPtr: make([]int, n+1), ColIDs: make([]int, 0, g.Entries())}
	for i := 0; i < n; i++ {
		for _, j := range g.Row(perm[i]) {
			out.ColIDs = append(out.ColIDs, inv[j])
		}
		out.RowPtr[i+1] = len(out.ColIDs)
	}

	return out
}
