package types

import "context"

// Membership describes one worker's view of the pool: its own declared
// identity and the total number of workers expected to share the key space.
//
// Both fields are externally sourced (by the worker pool manager) and
// immutable for the lifetime of a Partitioner instance. Changing the pool
// size means constructing a new Partitioner, never mutating the old one.
type Membership struct {
	// WorkerID is the opaque identity token naming this worker
	// (e.g. "crawler-3"). Must be non-empty.
	WorkerID string `json:"workerId"`

	// PoolSize is the total number of workers sharing the key space.
	// Must be >= 1.
	PoolSize int `json:"poolSize"`
}

// PoolSource supplies a worker's pool membership.
//
// Sources abstract where identity and pool size come from: static
// configuration, environment, or a membership service such as a NATS
// JetStream KV bucket. The partitioning core consumes the Membership value
// and performs no I/O of its own.
type PoolSource interface {
	// Membership returns this worker's identity and the pool size.
	//
	// Implementations backed by remote services may block on first call
	// (e.g. to claim an identity) and should honor ctx cancellation.
	//
	// Parameters:
	//   - ctx: Context for timeout/cancellation
	//
	// Returns:
	//   - Membership: The worker's identity and pool size
	//   - error: Source-specific claim or connectivity error
	Membership(ctx context.Context) (Membership, error)
}
