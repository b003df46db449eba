package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Ledger metrics
	TransactionsCreated *prometheus.CounterVec
	TransactionsDeleted prometheus.Counter
	TransfersCreated    prometheus.Counter

	// Recurrence sweep metrics
	SweepRuns      prometheus.Counter
	SweepProcessed prometheus.Counter
	SweepFailed    prometheus.Counter
	SweepDuration  prometheus.Histogram

	// Invoice metrics
	InvoicesPaid prometheus.Counter

	// Notification metrics
	PushesSent   prometheus.Counter
	PushesFailed prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		TransactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nexo_transactions_created_total",
				Help: "Total number of transactions created, by attribution",
			},
			[]string{"target"},
		),
		TransactionsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nexo_transactions_deleted_total",
			Help: "Total number of transactions deleted",
		}),
		TransfersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nexo_transfers_created_total",
			Help: "Total number of transfers created",
		}),

		SweepRuns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nexo_recurrence_sweep_runs_total",
			Help: "Total number of recurrence sweep runs",
		}),
		SweepProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nexo_recurrence_sweep_processed_total",
			Help: "Total recurring definitions materialized by the sweep",
		}),
		SweepFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nexo_recurrence_sweep_failed_total",
			Help: "Total recurring definitions the sweep failed to process",
		}),
		SweepDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "nexo_recurrence_sweep_duration_seconds",
			Help:    "Duration of recurrence sweep runs",
			Buckets: prometheus.DefBuckets,
		}),

		InvoicesPaid: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nexo_invoices_paid_total",
			Help: "Total number of credit card invoices paid",
		}),

		PushesSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nexo_pushes_sent_total",
			Help: "Total push notifications delivered",
		}),
		PushesFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nexo_pushes_failed_total",
			Help: "Total push notification delivery failures",
		}),
	}
}

// RecurrenceProcessed implements usecase.SweepMetrics.
func (m *Metrics) RecurrenceProcessed() {
	m.SweepProcessed.Inc()
}

// RecurrenceFailed implements usecase.SweepMetrics.
func (m *Metrics) RecurrenceFailed() {
	m.SweepFailed.Inc()
}

// PushSent implements notification.PushMetrics.
func (m *Metrics) PushSent() {
	m.PushesSent.Inc()
}

// PushFailed implements notification.PushMetrics.
func (m *Metrics) PushFailed() {
	m.PushesFailed.Inc()
}
