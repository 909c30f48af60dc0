// Package metrics holds the catalog's Prometheus instruments. A nil *Metrics
// is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Loads           *prometheus.CounterVec
	LoadDuration    prometheus.Histogram
	PollCycles      *prometheus.CounterVec
	DeferredTracked *prometheus.GaugeVec
	DocumentsShown  prometheus.Gauge
	Deletions       *prometheus.CounterVec
}

// New creates the catalog instruments and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Loads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_loads_total",
			Help: "Document catalog loads by outcome",
		}, []string{"outcome"}),
		LoadDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "catalog_load_duration_seconds",
			Help:    "Time spent fetching and deriving the catalog view",
			Buckets: prometheus.DefBuckets,
		}),
		PollCycles: f.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_deferred_poll_cycles_total",
			Help: "Deferred issuance poll cycles by outcome",
		}, []string{"outcome"}),
		DeferredTracked: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "catalog_deferred_documents",
			Help: "Deferred documents currently tracked, by state",
		}, []string{"state"}),
		DocumentsShown: f.NewGauge(prometheus.GaugeOpts{
			Name: "catalog_documents_shown",
			Help: "Documents in the current derived view",
		}),
		Deletions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_deletions_total",
			Help: "Document deletions by outcome",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) ObserveLoad(outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.Loads.WithLabelValues(outcome).Inc()
	m.LoadDuration.Observe(took.Seconds())
}

func (m *Metrics) IncPollCycle(outcome string) {
	if m == nil {
		return
	}
	m.PollCycles.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SetTracked(pending, failed int) {
	if m == nil {
		return
	}
	m.DeferredTracked.WithLabelValues("pending").Set(float64(pending))
	m.DeferredTracked.WithLabelValues("failed").Set(float64(failed))
}

func (m *Metrics) SetShown(n int) {
	if m == nil {
		return
	}
	m.DocumentsShown.Set(float64(n))
}

func (m *Metrics) IncDeletion(outcome string) {
	if m == nil {
		return
	}
	m.Deletions.WithLabelValues(outcome).Inc()
}
