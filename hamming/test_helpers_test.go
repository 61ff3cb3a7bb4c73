// SPDX-License-Identifier: MIT
package hamming_test

import (
	"math/rand"
	"slices"

	"github.com/katalvlaran/graphdist/csr"
	"github.com/katalvlaran/graphdist/hamming"
)

// strategies lists every strategy under test.
var strategies = []hamming.Strategy{hamming.SetBased, hamming.SortedMerge}

// fromAdjacency packs per-vertex neighbor lists into a csr.Graph.
func fromAdjacency(rows [][]int) *csr.Graph {
	g := &csr.Graph{RowPtr: make([]int, len(rows)+1)}
	for i, row := range rows {
		g.ColIDs = append(g.ColIDs, row...)
		g.RowPtr[i+1] = len(g.ColIDs)
	}

	return g
}

// fromEdges stores each pair once, as the entry pair[0]→pair[1].
func fromEdges(n int, pairs ...[2]int) *csr.Graph {
	rows := make([][]int, n)
	for _, p := range pairs {
		rows[p[0]] = append(rows[p[0]], p[1])
	}

	return fromAdjacency(rows)
}

// symmetric stores each pair in both directions with ascending rows.
func symmetric(n int, pairs ...[2]int) *csr.Graph {
	rows := make([][]int, n)
	for _, p := range pairs {
		rows[p[0]] = append(rows[p[0]], p[1])
		if p[0] != p[1] {
			rows[p[1]] = append(rows[p[1]], p[0])
		}
	}
	for _, row := range rows {
		slices.Sort(row)
	}

	return fromAdjacency(rows)
}

// randomGraph builds an n-vertex graph with m entries in random order and
// direction, duplicates and self-loops included.
func randomGraph(rng *rand.Rand, n, m int) *csr.Graph {
	rows := make([][]int, n)
	if n == 0 {
		return fromAdjacency(rows)
	}
	for k := 0; k < m; k++ {
		i, j := rng.Intn(n), rng.Intn(n)
		rows[i] = append(rows[i], j)
	}

	return fromAdjacency(rows)
}

// perturb returns a copy of g with about flips entries added or removed.
func perturb(rng *rand.Rand, g *csr.Graph, flips int) *csr.Graph {
	n := g.N()
	rows := make([][]int, n)
	for i := 0; i < n; i++ {
		rows[i] = append([]int(nil), g.Row(i)...)
	}
	if n == 0 {
		return fromAdjacency(rows)
	}
	for k := 0; k < flips; k++ {
		i := rng.Intn(n)
		if len(rows[i]) > 0 && rng.Intn(2) == 0 {
			rows[i] = rows[i][:len(rows[i])-1]
			continue
		}
		rows[i] = append(rows[i], rng.Intn(n))
	}

	return fromAdjacency(rows)
}
