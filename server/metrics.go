package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics groups the collectors of one Server.
type metrics struct {
	searches *prometheus.CounterVec   // by movement and result (found, none, error)
	duration *prometheus.HistogramVec // search latency by movement
	expanded *prometheus.HistogramVec // closed cells per search by movement
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_searches_total",
			Help: "Total path searches by movement and result",
		}, []string{"movement", "result"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_search_duration_seconds",
			Help:    "Path search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"movement"}),
		expanded: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_expanded_cells",
			Help:    "Number of cells closed per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 11),
		}, []string{"movement"}),
	}
}
