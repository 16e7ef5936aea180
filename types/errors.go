package types

import "errors"

// Sentinel errors for the crawlshard library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).

// Configuration errors - the only error kind the partitioning core itself raises.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidPoolSize is returned when a pool size is zero or negative.
	// A non-positive pool size is a deployment-level misconfiguration; there
	// is no sane silent default, so it always fails fast.
	ErrInvalidPoolSize = errors.New("pool size must be >= 1")

	// ErrInvalidWorkerID is returned when a worker identity is empty.
	ErrInvalidWorkerID = errors.New("invalid worker ID")

	// ErrAssignerRequired is returned when a nil Assigner is supplied.
	ErrAssignerRequired = errors.New("assigner is required")
)

// Membership source errors - raised by pool membership source implementations.
var (
	// ErrNoAvailableOrdinal is returned when every identity in a source's
	// ordinal range is already claimed.
	ErrNoAvailableOrdinal = errors.New("no available worker ordinal in pool")

	// ErrNotClaimed is returned when an operation requires a claimed identity.
	ErrNotClaimed = errors.New("worker identity not claimed")
)
