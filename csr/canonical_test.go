// SPDX-License-Identifier: MIT
package csr_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphdist/csr"
)

// TestCanonical_Shape checks a hand-built mixed-direction graph.
func TestCanonical_Shape(t *testing.T) {
	// 0→2, 0→1, 1→0 (mirror), 2→1, 2→2 (loop), 3→0
	g := fromAdjacency([][]int{{2, 1}, {0}, {1, 2}, {0}})
	require.NoError(t, g.Validate())

	c := csr.Canonical(g)
	require.NoError(t, c.Validate())
	assert.Equal(t, []int{0, 3, 4, 5, 5}, c.RowPtr)
	assert.Equal(t, []int{1, 2, 3, 2, 2}, c.ColIDs)
	assert.True(t, csr.IsCanonical(c))
	assert.False(t, csr.IsCanonical(g))
	assert.Equal(t, []int{2, 1}, g.Row(0), "input must not be mutated")
}

// TestCanonical_Empty covers zero vertices and zero entries.
func TestCanonical_Empty(t *testing.T) {
	c := csr.Canonical(&csr.Graph{RowPtr: []int{0}})
	assert.Equal(t, []int{0}, c.RowPtr)
	assert.Empty(t, c.ColIDs)

	c = csr.Canonical(fromAdjacency([][]int{{}, {}}))
	assert.Equal(t, []int{0, 0, 0}, c.RowPtr)
	assert.True(t, csr.IsCanonical(c))
}

// TestCanonical_MatchesEdgeSet compares Canonical against the set-based
// extraction on random graphs with duplicates, loops and mixed direction.
func TestCanonical_MatchesEdgeSet(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(12)
		g := randomGraph(rng, n, rng.Intn(40))
		require.NoError(t, g.Validate())

		c := csr.Canonical(g)
		require.NoError(t, c.Validate())
		require.True(t, csr.IsCanonical(c), "trial %d", trial)
		require.Equal(t, csr.Edges(g).Sorted(), csr.Edges(c).Sorted(), "trial %d", trial)
		require.Equal(t, csr.Edges(g).Len(), c.Entries(), "trial %d: one entry per edge", trial)

		// Idempotence.
		again := csr.Canonical(c)
		require.Equal(t, c.RowPtr, again.RowPtr)
		require.Equal(t, c.ColIDs, again.ColIDs)
	}
}
