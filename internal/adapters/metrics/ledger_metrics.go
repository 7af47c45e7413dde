// Package metrics exposes ledger telemetry as Prometheus instruments.
package metrics

import (
	"expense_tracker/internal/core/domain/repository"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "expense_ledger"

// LedgerMetrics tracks ledger size, highlighted rows, notifications and API outcomes.
// It is registered with the transaction store as a listener.
type LedgerMetrics struct {
	transactions  prometheus.Gauge
	matched       prometheus.Gauge
	notifications prometheus.Counter
	requests      *prometheus.CounterVec
}

// Compile-time check to ensure LedgerMetrics implements repository.Listener
var _ repository.Listener = (*LedgerMetrics)(nil)

// NewLedgerMetrics constructs the instruments and registers them against reg.
func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &LedgerMetrics{
		transactions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "transactions",
			Help:      "Number of transactions currently recorded.",
		}),
		matched: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "matched_rows",
			Help:      "Number of rows highlighted by the last filter application.",
		}),
		notifications: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Total number of change notifications received from the store.",
		}),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "api",
				Name:      "requests_total",
				Help:      "Total number of API requests by operation and outcome.",
			},
			[]string{"operation", "outcome"},
		),
	}
	reg.MustRegister(m.transactions, m.matched, m.notifications, m.requests)
	return m
}

// Update refreshes the gauges from store.
func (m *LedgerMetrics) Update(store repository.TransactionStore) {
	if m == nil {
		return
	}
	m.notifications.Inc()
	m.transactions.Set(float64(len(store.Transactions())))
	m.matched.Set(float64(len(store.MatchedFilterIndices())))
}

// ObserveRequest counts one API call of operation ending with outcome.
func (m *LedgerMetrics) ObserveRequest(operation, outcome string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(operation, outcome).Inc()
}

// TransactionsGauge exposes the transactions gauge for inspection.
func (m *LedgerMetrics) TransactionsGauge() prometheus.Gauge {
	return m.transactions
}

// MatchedGauge exposes the matched rows gauge for inspection.
func (m *LedgerMetrics) MatchedGauge() prometheus.Gauge {
	return m.matched
}

// NotificationsCounter exposes the notifications counter for inspection.
func (m *LedgerMetrics) NotificationsCounter() prometheus.Counter {
	return m.notifications
}

// RequestsCounter returns the request counter for operation and outcome.
func (m *LedgerMetrics) RequestsCounter(operation, outcome string) prometheus.Counter {
	return m.requests.WithLabelValues(operation, outcome)
}
