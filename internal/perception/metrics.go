package perception

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics собирает метрики запросов восприятия.
// Метрики:
// * perception_queries_total{op} — counter
// * perception_query_duration_seconds{op} — histogram
type Metrics struct {
	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics создаёт метрики и регистрирует их в дефолтном регистре
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "perception_queries_total",
			Help:      "Общее число запросов восприятия.",
		}, []string{"op"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "perception_query_duration_seconds",
			Help:      "Длительность запросов восприятия.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2},
		}, []string{"op"}),
	}

	prometheus.MustRegister(m.queries, m.duration)
	return m
}

// Observe фиксирует один выполненный запрос
func (m *Metrics) Observe(op string, d time.Duration) {
	m.queries.WithLabelValues(op).Inc()
	m.duration.WithLabelValues(op).Observe(d.Seconds())
}
