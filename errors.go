package crawlshard

import "github.com/arloliu/crawlshard/types"

// Sentinel errors returned by the Partitioner.
//
// Re-exported from the types package so callers can check errors without an
// extra import.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrInvalidPoolSize is returned when a pool size is zero or negative.
	ErrInvalidPoolSize = types.ErrInvalidPoolSize

	// ErrInvalidWorkerID is returned when a worker identity is empty.
	ErrInvalidWorkerID = types.ErrInvalidWorkerID

	// ErrAssignerRequired is returned when a nil Assigner is supplied.
	ErrAssignerRequired = types.ErrAssignerRequired
)
