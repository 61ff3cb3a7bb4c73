// SPDX-License-Identifier: MIT
package csr_test

import (
	"math/rand"

	"github.com/katalvlaran/graphdist/csr"
)

// fromAdjacency packs per-vertex neighbor lists into a csr.Graph, keeping the
// given entry order.
func fromAdjacency(rows [][]int) *csr.Graph {
	g := &csr.Graph{RowPtr: make([]int, len(rows)+1)}
	for i, row := range rows {
		g.ColIDs = append(g.ColIDs, row...)
		g.RowPtr[i+1] = len(g.ColIDs)
	}

	return g
}

// randomGraph builds an n-vertex graph with up to m entries in random order
// and random direction, duplicates and self-loops included.
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
