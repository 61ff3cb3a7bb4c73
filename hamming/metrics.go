// SPDX-License-Identifier: MIT

package hamming

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors updated by each comparison.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Comparisons counts calls by strategy and result ("ok" or "invalid").
	Comparisons *prometheus.CounterVec

	// Distance observes the returned edge counts.
	Distance prometheus.Histogram

	// Duration observes the wall time of successful comparisons.
	Duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg
// (prometheus.DefaultRegisterer when reg is nil).
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		Comparisons: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graphdist_comparisons_total",
				Help: "Total number of graph distance comparisons.",
			},
			[]string{"strategy", "result"}, // result: ok, invalid
		),
		Distance: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "graphdist_distance",
				Help:    "Number of differing edges returned by a comparison.",
				Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 1000, 10000},
			},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "graphdist_compare_duration_seconds",
				Help:    "Execution time of graph distance comparisons.",
				Buckets: []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
			[]string{"strategy"},
		),
	}

	for _, c := range []prometheus.Collector{m.Comparisons, m.Distance, m.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observe(s Strategy, count int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Comparisons.WithLabelValues(s.String(), "ok").Inc()
	m.Distance.Observe(float64(count))
	m.Duration.WithLabelValues(s.String()).Observe(elapsed.Seconds())
}

func (m *Metrics) reject(s Strategy) {
	if m == nil {
		return
	}
	m.Comparisons.WithLabelValues(s.String(), "invalid").Inc()
}
