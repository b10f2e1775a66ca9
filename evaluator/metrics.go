package evaluator

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/gridpath/search"
)

const (
	metricsNamespace = "gridpath"
	metricsSubsystem = "evaluator"
)

// metrics holds the evaluator collectors. A nil *metrics records nothing.
type metrics struct {
	batches  prometheus.Counter
	duration *prometheus.HistogramVec
	explored *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		batches: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "batches_total",
			Help:      "Total number of evaluation batches.",
		}),
		// Labels: algorithm, success (true, false)
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "algorithm_duration_seconds",
			Help:      "Wall-clock duration of one algorithm run.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12),
		}, []string{"algorithm", "success"}),
		explored: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "explored_nodes",
			Help:      "Distinct nodes explored by one algorithm run.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		}, []string{"algorithm"}),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "algorithm_failures_total",
			Help:      "Algorithm runs that panicked and were replaced by a failed placeholder.",
		}, []string{"algorithm"}),
	}
}

func (m *metrics) batch() {
	if m == nil {
		return
	}
	m.batches.Inc()
}

func (m *metrics) observe(r search.Result, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(r.Name, strconv.FormatBool(r.Success)).Observe(elapsed.Seconds())
	m.explored.WithLabelValues(r.Name).Observe(float64(r.ExploredNodes))
}

func (m *metrics) failure(name string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(name).Inc()
}
