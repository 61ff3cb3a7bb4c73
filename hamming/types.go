// SPDX-License-Identifier: MIT

package hamming

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/graphdist/csr"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("hamming: invalid option supplied")

// Strategy selects the comparison algorithm. Both strategies return the same
// count for every valid input; they differ in memory and time profile.
type Strategy int

const (
	// SetBased builds a hashed edge set per graph and counts the symmetric
	// difference. It is the reference result.
	SetBased Strategy = iota

	// SortedMerge canonicalizes both graphs with counting sorts and merges
	// their rows vertex by vertex. No hashing; parallelizes with WithWorkers.
	SortedMerge
)

// String returns the label used in traces and metrics.
func (s Strategy) String() string {
	switch s {
	case SetBased:
		return "set_based"
	case SortedMerge:
		return "sorted_merge"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Defaults.
const (
	DefaultStrategy = SetBased
	DefaultWorkers  = 1
)

// Option configures a comparison via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation before
// the inputs are looked at.
type Option func(*Options)

// Options holds the effective configuration of one call.
type Options struct {
	// Strategy picks the comparison algorithm.
	Strategy Strategy

	// Workers bounds the goroutines used by one call. SortedMerge splits the
	// vertex range across them; SetBased extracts the two edge sets
	// concurrently when Workers > 1.
	Workers int

	// EdgeDiff asks for the differing edges in Result.OnlyInFirst/OnlyInSecond.
	EdgeDiff bool

	// Logger receives debug-level trace events. Nop by default.
	Logger zerolog.Logger

	// Metrics, if non-nil, records every call.
	Metrics *Metrics

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns SetBased, one worker, no edge diff, a Nop logger
// and no metrics.
func DefaultOptions() Options {
	return Options{
		Strategy: DefaultStrategy,
		Workers:  DefaultWorkers,
		Logger:   zerolog.Nop(),
	}
}

// WithStrategy selects the comparison algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case SetBased, SortedMerge:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
		}
	}
}

// WithWorkers sets the number of goroutines for one call.
//
//	k >= 1: use up to k goroutines
//	k < 1:  invalid option → ErrOptionViolation
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.Workers = k
	}
}

// WithEdgeDiff fills Result.OnlyInFirst and Result.OnlyInSecond.
func WithEdgeDiff() Option {
	return func(o *Options) { o.EdgeDiff = true }
}

// WithLogger injects a trace sink. Events are emitted at debug level, so the
// logger's own level decides whether anything is written.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics records every call into m. A nil m disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

// Result is the outcome of one comparison.
type Result struct {
	// Count is the number of unordered edges present in exactly one graph.
	Count int

	// Normalized is Count divided by the number of vertex pairs that could
	// hold an edge: n(n-1)/2, or n(n+1)/2 when either graph has a self-loop.
	// It is 0 when no pair exists.
	Normalized float64

	// Strategy is the algorithm that produced Count.
	Strategy Strategy

	// OnlyInFirst and OnlyInSecond list the differing edges in ascending
	// order. Nil unless WithEdgeDiff was given.
	OnlyInFirst  []csr.Edge
	OnlyInSecond []csr.Edge
}
