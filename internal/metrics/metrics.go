package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the sync counters exposed on the /metrics listener.
type Metrics struct {
	ItemsTotal  *prometheus.CounterVec
	PagesTotal  *prometheus.CounterVec
	JobErrors   *prometheus.CounterVec
	LastRunUnix prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ItemsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "migu_sync_items_total",
			Help: "Catalog items processed, by category and outcome.",
		}, []string{"category", "outcome"}),
		PagesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "migu_sync_pages_total",
			Help: "Catalog pages fetched, by category.",
		}, []string{"category"}),
		JobErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "migu_sync_job_errors_total",
			Help: "Jobs that ended in the error state, by category.",
		}, []string{"category"}),
		LastRunUnix: factory.NewGauge(prometheus.GaugeOpts{
			Name: "migu_sync_last_run_timestamp_seconds",
			Help: "Unix time of the last completed sync run.",
		}),
	}
}
