// SPDX-License-Identifier: MIT

package hamming

import (
	"time"

	"github.com/katalvlaran/graphdist/csr"
)

// Distance returns the number of unordered edges present in exactly one of
// g1 and g2. Adjacency entries are read as undirected: (i→j) and (j→i) name
// the same edge, and duplicates count once.
//
// Returns a *csr.ValidationError (matching csr.ErrStructuralMismatch) when the
// vertex counts differ or either graph breaks a CSR invariant, and
// ErrOptionViolation for bad options. Inputs are never modified.
func Distance(g1, g2 *csr.Graph, opts ...Option) (int, error) {
	res, err := Compute(g1, g2, opts...)
	if err != nil {
		return 0, err
	}

	return res.Count, nil
}

// Compute is Distance with the full Result: normalized distance, the
// strategy used and, with WithEdgeDiff, the differing edges.
func Compute(g1, g2 *csr.Graph, opts ...Option) (*Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	return compute(g1, g2, o)
}

func compute(g1, g2 *csr.Graph, o Options) (*Result, error) {
	start := time.Now()
	if err := csr.ValidateSameOrder(g1, g2); err != nil {
		o.Logger.Debug().Err(err).Stringer("strategy", o.Strategy).Msg("hamming: inputs rejected")
		o.Metrics.reject(o.Strategy)
		return nil, err
	}
	o.Logger.Debug().
		Int("vertices", g1.N()).
		Int("entries1", g1.Entries()).
		Int("entries2", g2.Entries()).
		Stringer("strategy", o.Strategy).
		Int("workers", o.Workers).
		Msg("hamming: inputs validated")

	var res *Result
	switch o.Strategy {
	case SortedMerge:
		res = compareMerge(g1, g2, o)
	default:
		res = compareSets(g1, g2, o)
	}
	res.Strategy = o.Strategy
	res.Normalized = normalize(res.Count, g1.N(), g1.HasSelfLoop() || g2.HasSelfLoop())

	elapsed := time.Since(start)
	o.Metrics.observe(o.Strategy, res.Count, elapsed)
	o.Logger.Debug().
		Int("count", res.Count).
		Float64("normalized", res.Normalized).
		Dur("elapsed", elapsed).
		Msg("hamming: distance computed")

	return res, nil
}

// normalize divides count by the number of vertex pairs that can hold an edge.
func normalize(count, n int, loops bool) float64 {
	pairs := n * (n - 1) / 2
	if loops {
		pairs += n
	}
	if pairs == 0 {
		return 0
	}

	return float64(count) / float64(pairs)
}
