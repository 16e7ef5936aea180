// Package assigner provides built-in partition assigner implementations.
//
// Assigners determine which partition owns a candidate key for a given pool
// size. The package includes two built-in assigners:
//
//   - Modulo: hash(key) mod poolSize (the baseline; bit-identical across any
//     implementation of the partitioning contract, in any language)
//   - Ring: consistent hashing over ordinals with virtual nodes (minimizes
//     reassignment churn when the pool is resized)
//
// # Assigner Selection Guide
//
// Modulo:
//   - Use when all workers in the pool must agree byte-for-byte, including
//     workers running non-Go implementations of the same contract
//   - Resizing the pool reassigns close to (n-1)/n of all keys
//   - No configuration
//
// Ring:
//   - Use when the pool resizes often and per-key locality (politeness state,
//     DNS caches, frontier affinity) is worth preserving across resizes
//   - All workers must run the same ring parameters (virtual nodes, seed)
//   - Configuration: virtual nodes, hash seed
//
// Custom assigners can be implemented by satisfying the types.Assigner interface.
package assigner
