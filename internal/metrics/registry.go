package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "vec32check"

// RunMetrics holds the Prometheus collectors for one vec32check run. It uses
// its own registry so that repeated runs in one process do not collide.
type RunMetrics struct {
	registry *prometheus.Registry

	trials   *prometheus.CounterVec
	ops      *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.GaugeVec
	peakHeap prometheus.Gauge
}

// NewRunMetrics creates the run collectors, labelled with the run ID, seed
// and profile, together with the Go runtime collector.
func NewRunMetrics(runID, seed, profile string) *RunMetrics {
	constLabels := prometheus.Labels{"run_id": runID, "seed": seed, "profile": profile}
	m := &RunMetrics{
		registry: prometheus.NewRegistry(),
		trials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "trials_total",
			Help: "Trials completed, by suite.", ConstLabels: constLabels,
		}, []string{"suite"}),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "ops_total",
			Help: "Kernel results checked or produced, by suite.", ConstLabels: constLabels,
		}, []string{"suite"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "failures_total",
			Help: "Mismatches found, by suite.", ConstLabels: constLabels,
		}, []string{"suite"}),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "suite_duration_seconds",
			Help: "Wall time of the last run of each suite.", ConstLabels: constLabels,
		}, []string{"suite"}),
		peakHeap: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "peak_heap_bytes",
			Help: "Largest heap observed during the run.", ConstLabels: constLabels,
		}),
	}
	m.registry.MustRegister(m.trials, m.ops, m.failures, m.duration, m.peakHeap,
		collectors.NewGoCollector())
	return m
}

// ObserveSuite records the outcome of one suite.
func (m *RunMetrics) ObserveSuite(suite string, trials, ops, failures int, elapsed time.Duration) {
	m.trials.WithLabelValues(suite).Add(float64(trials))
	m.ops.WithLabelValues(suite).Add(float64(ops))
	m.failures.WithLabelValues(suite).Add(float64(failures))
	m.duration.WithLabelValues(suite).Set(elapsed.Seconds())
}

// SetPeakHeap records the peak heap of the run.
func (m *RunMetrics) SetPeakHeap(bytes uint64) {
	m.peakHeap.Set(float64(bytes))
}

// Registry exposes the underlying registry, e.g. for tests.
func (m *RunMetrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes the metrics in the text exposition format, suitable
// for the node exporter's textfile collector.
func (m *RunMetrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
