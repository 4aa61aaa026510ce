// Package metrics provides Prometheus counters for a balancing run.
//
// A run is one-shot, so there is no scrape endpoint; the registry can be
// dumped to a textfile in exposition format after the run instead.
package metrics

import (
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const defaultNamespace = "teamsplit"

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithRegistry sets a custom Prometheus registry.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(m *Manager) {
		if registry != nil {
			m.registry = registry
		}
	}
}

// WithHistogramBuckets sets custom buckets for the strategy duration
// histogram.
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.buckets = buckets
		}
	}
}

// Manager owns the run's metrics on a private registry.
type Manager struct {
	namespace string
	registry  *prometheus.Registry
	buckets   []float64

	partitionsEvaluated prometheus.Counter
	swapsAccepted       prometheus.Counter
	swapsRejected       prometheus.Counter
	rowsSkipped         *prometheus.CounterVec
	strategyDuration    *prometheus.HistogramVec
}

// NewManager creates a Manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: defaultNamespace,
		registry:  prometheus.NewRegistry(),
		buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)
	m.partitionsEvaluated = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "partitions_evaluated_total",
		Help:      "Number of partition evaluations performed.",
	})
	m.swapsAccepted = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "swaps_accepted_total",
		Help:      "Number of candidate swaps accepted by the optimizer.",
	})
	m.swapsRejected = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "swaps_rejected_total",
		Help:      "Number of candidate swaps rejected by the optimizer.",
	})
	m.rowsSkipped = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "roster_rows_skipped_total",
		Help:      "Roster rows skipped during loading, by reason.",
	}, []string{"reason"})
	m.strategyDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "strategy_duration_seconds",
		Help:      "Wall time per strategy, including optimization.",
		Buckets:   m.buckets,
	}, []string{"strategy"})

	return m
}

// RecordEvaluation counts one partition evaluation.
func (m *Manager) RecordEvaluation() { m.partitionsEvaluated.Inc() }

// RecordSwapAccepted counts one accepted optimizer swap.
func (m *Manager) RecordSwapAccepted() { m.swapsAccepted.Inc() }

// RecordSwapRejected counts one rejected optimizer swap.
func (m *Manager) RecordSwapRejected() { m.swapsRejected.Inc() }

// RecordRowSkipped counts one skipped roster row by reason.
func (m *Manager) RecordRowSkipped(reason string) {
	m.rowsSkipped.WithLabelValues(reason).Inc()
}

// ObserveStrategyDuration records the wall time of one strategy run.
func (m *Manager) ObserveStrategyDuration(strategy string, d time.Duration) {
	m.strategyDuration.WithLabelValues(strategy).Observe(d.Seconds())
}

// WriteTextfile dumps the registry to path in Prometheus text exposition
// format, suitable for the node_exporter textfile collector.
func (m *Manager) WriteTextfile(path string) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create metrics file: %w", err)
	}
	defer f.Close()

	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(f, family); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return nil
}
