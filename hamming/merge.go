// SPDX-License-Identifier: MIT

package hamming

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphdist/csr"
)

// mergePart is the outcome of merging one contiguous vertex range.
type mergePart struct {
	count        int
	onlyInFirst  []csr.Edge
	onlyInSecond []csr.Edge
}

// compareMerge canonicalizes both graphs and merges their rows vertex by
// vertex. Canonical rows hold each undirected edge once, in the row of its
// smaller endpoint, so an unmatched entry is exactly one differing edge.
//
// With Workers > 1 the vertex range is cut into contiguous chunks merged
// concurrently; the per-chunk counts are summed and the per-chunk diffs
// concatenated in chunk order, which keeps them sorted.
func compareMerge(g1, g2 *csr.Graph, o Options) *Result {
	var c1, c2 *csr.Graph
	if o.Workers > 1 {
		var eg errgroup.Group
		eg.Go(func() error { c1 = csr.Canonical(g1); return nil })
		eg.Go(func() error { c2 = csr.Canonical(g2); return nil })
		_ = eg.Wait()
	} else {
		c1, c2 = csr.Canonical(g1), csr.Canonical(g2)
	}
	o.Logger.Debug().Int("edges1", c1.Entries()).Int("edges2", c2.Entries()).Msg("hamming: canonical rows built")

	n := c1.N()
	k := max(1, min(o.Workers, n))
	parts := make([]mergePart, k)
	if k == 1 {
		parts[0] = mergeRange(c1, c2, 0, n, o.EdgeDiff)
	} else {
		chunk := (n + k - 1) / k
		var eg errgroup.Group
		for w := 0; w < k; w++ {
			w := w
			lo := min(w*chunk, n)
			hi := min(lo+chunk, n)
			eg.Go(func() error {
				parts[w] = mergeRange(c1, c2, lo, hi, o.EdgeDiff)
				return nil
			})
		}
		_ = eg.Wait()
	}

	res := &Result{}
	if o.EdgeDiff {
		res.OnlyInFirst, res.OnlyInSecond = []csr.Edge{}, []csr.Edge{}
	}
	for _, p := range parts {
		res.Count += p.count
		if o.EdgeDiff {
			res.OnlyInFirst = append(res.OnlyInFirst, p.onlyInFirst...)
			res.OnlyInSecond = append(res.OnlyInSecond, p.onlyInSecond...)
		}
	}

	return res
}

// mergeRange walks the canonical rows of vertices [lo, hi) in lockstep like
// the merge step of merge sort.
func mergeRange(c1, c2 *csr.Graph, lo, hi int, diff bool) mergePart {
	var p mergePart
	for i := lo; i < hi; i++ {
		a, b := c1.Row(i), c2.Row(i)
		x, y := 0, 0
		for x < len(a) && y < len(b) {
			switch {
			case a[x] == b[y]:
				x++
				y++
			case a[x] < b[y]:
				p.count++
				if diff {
					p.onlyInFirst = append(p.onlyInFirst, csr.Edge{U: i, V: a[x]})
				}
				x++
			default:
				p.count++
				if diff {
					p.onlyInSecond = append(p.onlyInSecond, csr.Edge{U: i, V: b[y]})
				}
				y++
			}
		}

		// one side is exhausted; the rest of the other is unmatched
		p.count += len(a) - x + len(b) - y
		if diff {
			for ; x < len(a); x++ {
				p.onlyInFirst = append(p.onlyInFirst, csr.Edge{U: i, V: a[x]})
			}
			for ; y < len(b); y++ {
				p.onlyInSecond = append(p.onlyInSecond, csr.Edge{U: i, V: b[y]})
			}
		}
	}

	return p
}
