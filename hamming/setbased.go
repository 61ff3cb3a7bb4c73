// SPDX-License-Identifier: MIT

package hamming

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphdist/csr"
)

// compareSets extracts both normalized edge sets and counts
// |E1 \ E2| + |E2 \ E1|. With more than one worker the two extractions run
// concurrently; the graphs are only read.
func compareSets(g1, g2 *csr.Graph, o Options) *Result {
	var e1, e2 csr.EdgeSet
	if o.Workers > 1 {
		var eg errgroup.Group
		eg.Go(func() error { e1 = csr.Edges(g1); return nil })
		eg.Go(func() error { e2 = csr.Edges(g2); return nil })
		_ = eg.Wait() // extraction cannot fail on validated input
	} else {
		e1, e2 = csr.Edges(g1), csr.Edges(g2)
	}
	o.Logger.Debug().Int("edges1", e1.Len()).Int("edges2", e2.Len()).Msg("hamming: edge sets extracted")

	res := &Result{}
	shared := 0
	for e := range e1 {
		if _, ok := e2[e]; ok {
			shared++
			continue
		}
		if o.EdgeDiff {
			res.OnlyInFirst = append(res.OnlyInFirst, e)
		}
	}
	res.Count = (e1.Len() - shared) + (e2.Len() - shared)

	if o.EdgeDiff {
		for e := range e2 {
			if _, ok := e1[e]; !ok {
				res.OnlyInSecond = append(res.OnlyInSecond, e)
			}
		}
		csr.SortEdges(res.OnlyInFirst)
		csr.SortEdges(res.OnlyInSecond)
		res.OnlyInFirst = nonNil(res.OnlyInFirst)
		res.OnlyInSecond = nonNil(res.OnlyInSecond)
	}

	return res
}

// nonNil turns a nil slice into an empty one so a requested diff is never nil.
func nonNil(es []csr.Edge) []csr.Edge {
	if es == nil {
		return []csr.Edge{}
	}

	return es
}
