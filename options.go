package crawlshard

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/crawlshard/internal/metrics"
)

// Option configures a Partitioner with optional dependencies.
type Option func(*partitionerOptions)

// partitionerOptions holds optional Partitioner configuration.
type partitionerOptions struct {
	assigner Assigner
	logger   Logger
	metrics  MetricsCollector
}

// WithAssigner sets a custom partition assigner.
//
// The default is the baseline modulo assigner. Every worker in the pool must
// use the same assigner with the same configuration, or the pool no longer
// partitions the key space.
//
// Parameters:
//   - a: Assigner implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	a := assigner.NewRing(assigner.WithVirtualNodes(300))
//	p, err := crawlshard.New(&cfg, crawlshard.WithAssigner(a))
func WithAssigner(a Assigner) Option {
	return func(o *partitionerOptions) {
		o.assigner = a
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	logger := zap.NewExample().Sugar()
//	p, err := crawlshard.New(&cfg, crawlshard.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *partitionerOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	p, err := crawlshard.New(&cfg, crawlshard.WithMetrics(myCollector))
func WithMetrics(collector MetricsCollector) Option {
	return func(o *partitionerOptions) {
		o.metrics = collector
	}
}

// WithPrometheus sets the built-in Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (prometheus.DefaultRegisterer if nil)
//   - namespace: Metrics namespace ("crawlshard" if empty)
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	p, err := crawlshard.New(&cfg, crawlshard.WithPrometheus(nil, "crawler"))
func WithPrometheus(reg prometheus.Registerer, namespace string) Option {
	return func(o *partitionerOptions) {
		o.metrics = metrics.NewPrometheus(reg, namespace)
	}
}
