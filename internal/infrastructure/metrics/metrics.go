package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// LookupCounter counts full directory lookups by outcome.
	LookupCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "compatibility_lookups_total",
			Help: "Total number of compatibility lookups",
		},
		[]string{"outcome"},
	)

	// LookupDurationHistogram records lookup duration in seconds.
	LookupDurationHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "compatibility_lookup_duration_seconds",
			Help:    "Duration of compatibility lookups in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// RequestCounter counts HTTP requests with labels.
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// SnapshotProducts gauges the size of the published catalog snapshot.
	SnapshotProducts = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_snapshot_products",
			Help: "Number of products in the published catalog snapshot",
		},
	)
)

// Register registers all collectors with the default registry. Call once at
// startup.
func Register() {
	prometheus.MustRegister(
		LookupCounter,
		LookupDurationHistogram,
		RequestCounter,
		SnapshotProducts,
	)
}
