// Package metrics exposes Prometheus collectors for the ledger.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"adledger/internal/core/domain"
	"adledger/internal/core/port"
)

// Ledger implements port.LedgerMetrics.
type Ledger struct {
	tracks     *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	placements *prometheus.CounterVec
}

var _ port.LedgerMetrics = (*Ledger)(nil)

// NewLedger creates the collectors and registers them with reg.
func NewLedger(reg prometheus.Registerer) *Ledger {
	m := &Ledger{
		tracks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "adledger",
			Name:      "track_total",
			Help:      "Tracked interaction calls by event type and outcome.",
		}, []string{"event_type", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "adledger",
			Name:      "track_duration_seconds",
			Help:      "Duration of tracking units of work.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"event_type"}),
		placements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "adledger",
			Name:      "placements_served_total",
			Help:      "Placement responses by number of slots filled.",
		}, []string{"slots"}),
	}
	reg.MustRegister(m.tracks, m.duration, m.placements)
	return m
}

// ObserveTrack records one tracking call.
func (m *Ledger) ObserveTrack(eventType domain.EventType, outcome string, d time.Duration) {
	m.tracks.WithLabelValues(string(eventType), outcome).Inc()
	m.duration.WithLabelValues(string(eventType)).Observe(d.Seconds())
}

// ObservePlacements records one placement response.
func (m *Ledger) ObservePlacements(served int) {
	m.placements.WithLabelValues(strconv.Itoa(served)).Inc()
}
