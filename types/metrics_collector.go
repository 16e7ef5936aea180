package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// All methods may be called concurrently from caller goroutines and must be
// thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	OwnershipMetrics
	StatisticsMetrics
}

// OwnershipMetrics defines metrics for per-key ownership checks.
type OwnershipMetrics interface {
	// RecordOwnershipCheck records one ShouldProcess decision.
	//
	// Parameters:
	//   - owned: true if the key belongs to this worker's partition
	RecordOwnershipCheck(owned bool)
}

// StatisticsMetrics defines metrics for partition statistics collection.
type StatisticsMetrics interface {
	// RecordStatsCollection records a completed statistics pass.
	//
	// Parameters:
	//   - keys: Number of keys tallied in the pass
	//   - seconds: Time taken in seconds
	RecordStatsCollection(keys uint64, seconds float64)

	// RecordImbalance sets the most recently observed load-skew ratio (gauge metric).
	//
	// Parameters:
	//   - ratio: Histogram imbalance in [0.0, 1.0]
	RecordImbalance(ratio float64)
}
