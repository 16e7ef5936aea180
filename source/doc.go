// Package source provides built-in pool membership source implementations.
//
// Pool sources supply a worker's identity and the pool's total size at
// startup. The package includes:
//
//   - Static: Fixed identity and pool size (local runs, tests)
//   - KVClaimer: Claims a stable "prefix-N" identity from a NATS JetStream
//     KV bucket with TTL-based leases
//
// Custom sources can be implemented by satisfying the types.PoolSource interface.
package source
