package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

// Namespace prefixes every metric name.
const Namespace = "rein_stock"

// SyncSample describes one finished sync attempt.
type SyncSample struct {
	// Status is "success" or "failed".
	Status     string
	Duration   time.Duration
	FinishedAt time.Time
	Pages      int
	New        int
	Updated    int
	Removed    int
	TotalSKUs  int
}

// Recorder exposes sync metrics on its own registry.
//
// Thread Safety: Safe for concurrent use by multiple goroutines.
type Recorder struct {
	registry *prometheus.Registry

	syncsTotal      *prometheus.CounterVec
	syncDuration    prometheus.Histogram
	changesTotal    *prometheus.CounterVec
	pages           prometheus.Gauge
	skus            prometheus.Gauge
	lastSuccessTime prometheus.Gauge
}

// NewRecorder creates a recorder with a private registry.
func NewRecorder() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}

	r.syncsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "syncs_total",
			Help:      "Full catalog syncs by outcome.",
		},
		[]string{"status"},
	)

	// A full walk is at least one second per page, so the buckets start there.
	r.syncDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "sync_duration_seconds",
			Help:      "Duration of full catalog syncs.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	r.changesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "sku_changes_total",
			Help:      "SKUs reported as new, updated or removed by successful syncs.",
		},
		[]string{"kind"},
	)

	r.pages = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "last_sync_pages",
		Help:      "Pages fetched by the last successful sync.",
	})

	r.skus = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "snapshot_skus",
		Help:      "Unique SKUs in the persisted snapshot.",
	})

	r.lastSuccessTime = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "last_success_timestamp_seconds",
		Help:      "Unix time of the last successful sync.",
	})

	r.registry.MustRegister(r.syncsTotal, r.syncDuration, r.changesTotal, r.pages, r.skus, r.lastSuccessTime)
	return r
}

// ObserveSync records a finished sync. Snapshot gauges only move on success.
func (r *Recorder) ObserveSync(s SyncSample) {
	r.syncsTotal.WithLabelValues(s.Status).Inc()
	r.syncDuration.Observe(s.Duration.Seconds())

	if s.Status != "success" {
		return
	}
	r.changesTotal.WithLabelValues("new").Add(float64(s.New))
	r.changesTotal.WithLabelValues("updated").Add(float64(s.Updated))
	r.changesTotal.WithLabelValues("removed").Add(float64(s.Removed))
	r.pages.Set(float64(s.Pages))
	r.skus.Set(float64(s.TotalSKUs))
	r.lastSuccessTime.Set(float64(s.FinishedAt.Unix()))
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Gather returns the current metric families.
func (r *Recorder) Gather() ([]*dto.MetricFamily, error) {
	return r.registry.Gather()
}
