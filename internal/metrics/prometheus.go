package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/crawlshard/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metrics are registered lazily on first use so that constructing a collector
// never panics on duplicate registration in tests.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	ownershipChecks *prometheus.CounterVec
	statsKeys       prometheus.Counter
	statsDuration   prometheus.Histogram
	imbalanceRatio  prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "crawlshard" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "crawlshard"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.ownershipChecks = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "partitioner",
			Name:      "ownership_checks_total",
			Help:      "Total ShouldProcess decisions by result (owned/skipped).",
		}, []string{"result"})

		p.statsKeys = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "stats",
			Name:      "keys_total",
			Help:      "Total keys tallied by statistics collection passes.",
		})

		p.statsDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "stats",
			Name:      "collection_seconds",
			Help:      "Latency of statistics collection passes in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs .. ~26s
		})

		p.imbalanceRatio = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "stats",
			Name:      "imbalance_ratio",
			Help:      "Most recently observed partition load-skew ratio (0.0-1.0).",
		})

		for _, c := range []prometheus.Collector{
			p.ownershipChecks, p.statsKeys, p.statsDuration, p.imbalanceRatio,
		} {
			// AlreadyRegisteredError is tolerated so multiple collectors can
			// share a registry within one process.
			if err := p.reg.Register(c); err != nil {
				if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
					panic(err)
				}
			}
		}
	})
}

// RecordOwnershipCheck records one ShouldProcess decision.
func (p *PrometheusCollector) RecordOwnershipCheck(owned bool) {
	p.ensureRegistered()

	result := "skipped"
	if owned {
		result = "owned"
	}
	p.ownershipChecks.WithLabelValues(result).Inc()
}

// RecordStatsCollection records a completed statistics pass.
func (p *PrometheusCollector) RecordStatsCollection(keys uint64, seconds float64) {
	p.ensureRegistered()

	p.statsKeys.Add(float64(keys))
	p.statsDuration.Observe(seconds)
}

// RecordImbalance sets the most recently observed load-skew ratio.
func (p *PrometheusCollector) RecordImbalance(ratio float64) {
	p.ensureRegistered()

	p.imbalanceRatio.Set(ratio)
}
