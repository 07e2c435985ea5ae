// Package metrics records pathfinder search statistics as Prometheus metrics.
package metrics

import (
	"github.com/pdrpinto/pathfinder"
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder implements pathfinder.Recorder.
type Recorder struct {
	searches *prometheus.CounterVec
	expanded *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

var _ pathfinder.Recorder = (*Recorder)(nil)

// NewRecorder creates the search metrics and registers them with registerer.
func NewRecorder(registerer prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathfinder_searches_total",
				Help: "Total number of searches by query and outcome",
			},
			[]string{"query", "outcome"},
		),
		expanded: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pathfinder_expanded_nodes",
				Help:    "Nodes expanded per search",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"query"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pathfinder_search_duration_seconds",
				Help:    "Duration of searches",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
			},
			[]string{"query"},
		),
	}
	for _, c := range []prometheus.Collector{r.searches, r.expanded, r.duration} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recorder) RecordSearch(stats pathfinder.SearchStats) {
	query := string(stats.Query)
	r.searches.WithLabelValues(query, string(stats.Outcome)).Inc()
	if stats.Outcome == pathfinder.OutcomeInvalid {
		return
	}
	r.expanded.WithLabelValues(query).Observe(float64(stats.ExpandedNodes))
	r.duration.WithLabelValues(query).Observe(stats.Duration.Seconds())
}
