package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the registry orchestrator.
type Metrics struct {
	// Operation latency by operation name
	OperationLatency *prometheus.HistogramVec

	// Operation outcomes by operation and result code ("ok" on success)
	OperationOutcome *prometheus.CounterVec

	// Authorization denials by operation and required role
	Denied *prometheus.CounterVec

	// Current handle generation by storage kind
	HandleGeneration *prometheus.GaugeVec

	// Policy upgrades
	Upgrades prometheus.Counter
}

// New registers the registry metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		OperationLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "opendid_registry_operation_duration_seconds",
			Help:    "Duration of registry operations including the store call",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),

		OperationOutcome: f.NewCounterVec(prometheus.CounterOpts{
			Name: "opendid_registry_operations_total",
			Help: "Registry operations by outcome code",
		}, []string{"operation", "outcome"}),

		Denied: f.NewCounterVec(prometheus.CounterOpts{
			Name: "opendid_registry_authorization_denied_total",
			Help: "Calls rejected because the caller lacked the required role",
		}, []string{"operation", "role"}),

		HandleGeneration: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "opendid_registry_handle_generation",
			Help: "Generation of the active store handle; increments on every swap",
		}, []string{"kind"}),

		Upgrades: f.NewCounter(prometheus.CounterOpts{
			Name: "opendid_registry_policy_upgrades_total",
			Help: "Policy upgrades applied",
		}),
	}
}

// ObserveOperation records latency and outcome of one operation.
func (m *Metrics) ObserveOperation(op, outcome string, d time.Duration) {
	if m != nil {
		m.OperationLatency.WithLabelValues(op).Observe(d.Seconds())
		m.OperationOutcome.WithLabelValues(op, outcome).Inc()
	}
}

func (m *Metrics) IncrementDenied(op, role string) {
	if m != nil {
		m.Denied.WithLabelValues(op, role).Inc()
	}
}

func (m *Metrics) SetGeneration(kind string, gen uint64) {
	if m != nil {
		m.HandleGeneration.WithLabelValues(kind).Set(float64(gen))
	}
}

func (m *Metrics) IncrementUpgrades() {
	if m != nil {
		m.Upgrades.Inc()
	}
}
