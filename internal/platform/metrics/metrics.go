package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the vault.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Operations         *prometheus.CounterVec
	OperationDuration  *prometheus.HistogramVec
	AuditEventsRelayed prometheus.Counter
	AuditRelayFailures prometheus.Counter
	TotalValueLocked   prometheus.Gauge
}

// New creates the collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer in main and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vault_operations_total",
			Help: "Operations handled by the vault, by operation and outcome",
		}, []string{"operation", "outcome"}),
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vault_operation_duration_seconds",
			Help:    "Duration of vault operations including the external asset transfer",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
		AuditEventsRelayed: factory.NewCounter(prometheus.CounterOpts{
			Name: "vault_audit_events_relayed_total",
			Help: "Audit events delivered to the configured sinks",
		}),
		AuditRelayFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "vault_audit_relay_failures_total",
			Help: "Failed attempts to deliver a batch of audit events",
		}),
		TotalValueLocked: factory.NewGauge(prometheus.GaugeOpts{
			Name: "vault_total_value_locked",
			Help: "Last computed total value locked across whitelisted assets",
		}),
	}
}

// ObserveOperation records the outcome and duration of one operation.
// Call with time.Now() taken at the start of the operation.
func (m *Metrics) ObserveOperation(operation, outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(operation, outcome).Inc()
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// AddAuditEventsRelayed counts delivered audit events.
func (m *Metrics) AddAuditEventsRelayed(n int) {
	if m == nil {
		return
	}
	m.AuditEventsRelayed.Add(float64(n))
}

// IncAuditRelayFailures counts one failed delivery attempt.
func (m *Metrics) IncAuditRelayFailures() {
	if m == nil {
		return
	}
	m.AuditRelayFailures.Inc()
}

// SetTotalValueLocked publishes the latest valuation.
func (m *Metrics) SetTotalValueLocked(value float64) {
	if m == nil {
		return
	}
	m.TotalValueLocked.Set(value)
}
