package types

// Assigner calculates which partition owns a candidate key.
//
// Assigners implement different ownership algorithms:
//   - Modulo: hash(key) mod poolSize (baseline; deterministic across languages)
//   - Ring: consistent hashing over ordinals (minimizes reassignment on resize)
//   - Custom: User-defined algorithms
//
// The crawl frontier calls Owner (through Partitioner.ShouldProcess) once per
// freshly discovered URL, and the statistics collector calls it once per
// sampled key, so implementations sit on a hot path.
//
// Assigner implementations must:
//   - Be deterministic (same key and pool size → same partition, across
//     calls, processes, and runs)
//   - Be exhaustive (every key maps to exactly one partition in [0, poolSize))
//   - Be safe for concurrent use without external synchronization
//   - Return an error wrapping ErrInvalidPoolSize when poolSize < 1, and
//     never fail for any finite key, including the empty string
type Assigner interface {
	// Owner returns the partition number in [0, poolSize) that owns key.
	//
	// Parameters:
	//   - key: Candidate key (a URL, treated as an opaque byte sequence)
	//   - poolSize: Total number of workers sharing the key space
	//
	// Returns:
	//   - int: Owning partition number
	//   - error: ErrInvalidPoolSize (wrapped) when poolSize < 1
	Owner(key string, poolSize int) (int, error)
}
