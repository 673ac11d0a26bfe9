package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "medtracker"

// Metrics implementa doses.Recorder sobre contadores de Prometheus.
type Metrics struct {
	DosesRecorded   *prometheus.CounterVec
	LoadFailures    prometheus.Counter
	PersistFailures *prometheus.CounterVec
}

// New crea y registra las métricas en reg (prometheus.DefaultRegisterer en main).
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		DosesRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "doses_recorded_total",
			Help:      "Total number of doses recorded, by medication.",
		}, []string{"medication"}),
		LoadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "log_load_failures_total",
			Help:      "Persisted dose logs that could not be read and were replaced by an empty log.",
		}),
		PersistFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "log_persist_failures_total",
			Help:      "Failed writes to the persisted dose log, by operation.",
		}, []string{"op"}),
	}

	reg.MustRegister(m.DosesRecorded, m.LoadFailures, m.PersistFailures)
	return m
}

func (m *Metrics) DoseRecorded(medication string) {
	m.DosesRecorded.WithLabelValues(medication).Inc()
}

func (m *Metrics) LoadFailed() {
	m.LoadFailures.Inc()
}

func (m *Metrics) PersistFailed(op string) {
	m.PersistFailures.WithLabelValues(op).Inc()
}
