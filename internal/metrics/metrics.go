// Package metrics provides Prometheus instruments for bidding and settlement.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Bid results
const (
	BidAccepted          = "accepted"
	BidLotNotFound       = "lot_not_found"
	BidAuctionClosed     = "auction_closed"
	BidInvalidAmount     = "invalid_amount"
	BidTooLow            = "bid_too_low"
	BidNotAuthenticated  = "not_authenticated"
	BidInsufficientFunds = "insufficient_funds"
	BidPersistenceFailed = "persistence_failed"
	BidError             = "error"
)

// Settlement results
const (
	SettlementIssued          = "issued"
	SettlementDuplicate       = "duplicate"
	SettlementNoBids          = "no_bids"
	SettlementAlreadyIssued   = "already_issued"
	SettlementIssuanceFailed  = "issuance_failed"
	SettlementMarkIssuedError = "mark_issued_failed"
)

// Metrics holds all Prometheus metrics for the application.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	BidsTotal        *prometheus.CounterVec
	SettlementsTotal *prometheus.CounterVec
	SweepsTotal      *prometheus.CounterVec
	SweepDuration    prometheus.Histogram
	ScheduledTimers  prometheus.Gauge
	LotsChanged      prometheus.Counter
}

// New creates a Metrics instance with its own registry.
func New(namespace string) *Metrics {
	if namespace == "" {
		namespace = "sneaker_auction"
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		BidsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bids_total",
			Help:      "Bid attempts by result.",
		}, []string{"result"}),
		SettlementsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlements_total",
			Help:      "Settlement attempts by result.",
		}, []string{"result"}),
		SweepsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweeps_total",
			Help:      "Settlement sweeps by outcome.",
		}, []string{"outcome"}),
		SweepDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sweep_duration_seconds",
			Help:      "Duration of a full settlement sweep.",
			Buckets:   prometheus.DefBuckets,
		}),
		ScheduledTimers: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "scheduled_settlement_timers",
			Help:      "Open lots with a pending settlement timer.",
		}),
		LotsChanged: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lots_changed_notifications_total",
			Help:      "Lot change notifications published.",
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveBid(result string) {
	if m == nil {
		return
	}
	m.BidsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveSettlement(result string) {
	if m == nil {
		return
	}
	m.SettlementsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveSweep(d time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "load_failed"
	}
	m.SweepsTotal.WithLabelValues(outcome).Inc()
	m.SweepDuration.Observe(d.Seconds())
}

func (m *Metrics) SetScheduledTimers(n int) {
	if m == nil {
		return
	}
	m.ScheduledTimers.Set(float64(n))
}

func (m *Metrics) ObserveLotsChanged() {
	if m == nil {
		return
	}
	m.LotsChanged.Inc()
}
