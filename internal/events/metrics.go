package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics for event emission and relay. A nil *Metrics is valid and records nothing.
type Metrics struct {
	Emitted   *prometheus.CounterVec
	Dropped   prometheus.Counter
	Failed    prometheus.Counter
	Relayed   prometheus.Counter
	RelayErrs prometheus.Counter
	RelayLag  prometheus.Gauge
}

// NewMetrics registers event metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Emitted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "opendid_events_emitted_total",
			Help: "Events appended to the event log, by category",
		}, []string{"category"}),
		Dropped: f.NewCounter(prometheus.CounterOpts{
			Name: "opendid_events_dropped_total",
			Help: "Events dropped because the async buffer was full",
		}),
		Failed: f.NewCounter(prometheus.CounterOpts{
			Name: "opendid_events_append_failures_total",
			Help: "Events that could not be appended to the event log",
		}),
		Relayed: f.NewCounter(prometheus.CounterOpts{
			Name: "opendid_events_relayed_total",
			Help: "Events delivered to the external sink",
		}),
		RelayErrs: f.NewCounter(prometheus.CounterOpts{
			Name: "opendid_events_relay_failures_total",
			Help: "Failed relay batches",
		}),
		RelayLag: f.NewGauge(prometheus.GaugeOpts{
			Name: "opendid_events_relay_lag",
			Help: "Events appended but not yet relayed",
		}),
	}
}

func (m *Metrics) incEmitted(e Event) {
	if m == nil {
		return
	}
	m.Emitted.WithLabelValues(string(e.Category)).Inc()
}

func (m *Metrics) incDropped() {
	if m == nil {
		return
	}
	m.Dropped.Inc()
}

func (m *Metrics) incFailed() {
	if m == nil {
		return
	}
	m.Failed.Inc()
}

func (m *Metrics) addRelayed(n int) {
	if m == nil {
		return
	}
	m.Relayed.Add(float64(n))
}

func (m *Metrics) incRelayErr() {
	if m == nil {
		return
	}
	m.RelayErrs.Inc()
}

func (m *Metrics) setLag(n int) {
	if m == nil {
		return
	}
	m.RelayLag.Set(float64(n))
}
