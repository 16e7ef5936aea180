// Package metrics provides MetricsCollector implementations for the
// crawlshard library.
package metrics

import "github.com/arloliu/crawlshard/types"

// NopMetrics is a no-op metrics collector that discards all measurements.
//
// Used as the default when no collector is configured, so call sites never
// need a nil check.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: Collector that performs no operations
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordOwnershipCheck discards the measurement.
func (n *NopMetrics) RecordOwnershipCheck(_ /* owned */ bool) {}

// RecordStatsCollection discards the measurement.
func (n *NopMetrics) RecordStatsCollection(_ /* keys */ uint64, _ /* seconds */ float64) {}

// RecordImbalance discards the measurement.
func (n *NopMetrics) RecordImbalance(_ /* ratio */ float64) {}
