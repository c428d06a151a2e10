// Package metrics exposes the engine's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transactionsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_transactions_recorded_total",
			Help: "Total number of ledger entries appended by transaction type",
		},
		[]string{"type"},
	)

	accountsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledger_accounts_created_total",
		Help: "Total number of accounts created",
	})

	recordRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledger_record_retries_total",
		Help: "Total number of append retries after concurrent modification",
	})

	balanceDrift = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledger_balance_drift_detected_total",
		Help: "Total number of reconciliation runs that found a drifted balance",
	})

	recordDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ledger_record_duration_seconds",
		Help:    "Duration of transaction appends",
		Buckets: prometheus.DefBuckets,
	})
)

// TransactionRecorded counts one appended entry.
func TransactionRecorded(txType string) {
	transactionsRecorded.WithLabelValues(txType).Inc()
}

// AccountCreated counts one created account.
func AccountCreated() {
	accountsCreated.Inc()
}

// RecordRetry counts one append retry.
func RecordRetry() {
	recordRetries.Inc()
}

// BalanceDriftDetected counts one drifted account.
func BalanceDriftDetected() {
	balanceDrift.Inc()
}

// ObserveRecordDuration records how long one append took.
func ObserveRecordDuration(seconds float64) {
	recordDuration.Observe(seconds)
}
