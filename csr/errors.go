// SPDX-License-Identifier: MIT
// Package csr: sentinel errors and the structured ValidationError.
//
// Every structural problem with a CSR input is reported as a *ValidationError
// whose Unwrap returns ErrStructuralMismatch, so callers match the whole
// family with errors.Is(err, csr.ErrStructuralMismatch) and inspect details
// with errors.As when they need the offending field or index.

package csr

import (
	"errors"
	"fmt"
)

var (
	// ErrStructuralMismatch is the single error kind for inputs that cannot be
	// compared: vertex counts differ or a CSR invariant is violated.
	ErrStructuralMismatch = errors.New("csr: structural mismatch")

	// ErrNilGraph is returned when a nil *Graph is passed. It is reported
	// through a ValidationError as well, so it also matches ErrStructuralMismatch.
	ErrNilGraph = errors.New("csr: graph is nil")
)

// Field names used in ValidationError.Field.
const (
	FieldGraph     = "graph"
	FieldRowPtr    = "row_ptr"
	FieldColIDs    = "col_ids"
	FieldTypeCodes = "type_codes"
	FieldNames     = "names"
)

// ValidationError describes one violated structural precondition.
//
// Index is the offending position inside Field, or -1 when the problem is
// not tied to a single position (e.g. a length mismatch).
type ValidationError struct {
	Field  string
	Index  int
	Reason string

	cause error
}

// Error implements error.
func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%v: %s[%d]: %s", ErrStructuralMismatch, e.Field, e.Index, e.Reason)
	}

	return fmt.Sprintf("%v: %s: %s", ErrStructuralMismatch, e.Field, e.Reason)
}

// Unwrap returns ErrStructuralMismatch, plus the narrower cause if any.
func (e *ValidationError) Unwrap() []error {
	if e.cause != nil {
		return []error{ErrStructuralMismatch, e.cause}
	}

	return []error{ErrStructuralMismatch}
}

// Mismatch builds a ValidationError for field at index (-1 for none).
func Mismatch(field string, index int, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Index: index, Reason: fmt.Sprintf(format, args...)}
}

func nilGraph(which string) *ValidationError {
	return &ValidationError{Field: FieldGraph, Index: -1, Reason: which + " is nil", cause: ErrNilGraph}
}
