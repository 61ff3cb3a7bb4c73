// Package graphdist compares graphs that share a vertex set by counting the
// edges present in exactly one of them (the structural Hamming distance).
//
// What is graphdist?
//
//	A small, dependency-light library built around two packages:
//		• csr/     — read-only compressed-sparse-row graphs, validation,
//		             edge normalization, canonical upper-triangular rows
//		• hamming/ — Distance / Compute / Aligned with set-based and
//		             sorted-merge strategies, optional trace and metrics
//
// Typical use: score a learned or inferred graph against a reference.
//
//	reference: 0───1───2        learned: 0───1   2
//
//	d, err := hamming.Distance(learned, reference) // d == 1
//
// Inputs are plain CSR arrays (row_ptr, col_ids). Building them from a host
// object model is left to the caller.
//
//	go get github.com/katalvlaran/graphdist
package graphdist
