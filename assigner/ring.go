package assigner

import (
	"fmt"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arloliu/crawlshard/internal/hash"
	"github.com/arloliu/crawlshard/types"
)

// Ring implements a consistent-hashing partition assigner.
//
// It satisfies the same contract as Modulo but maps keys onto a hash ring of
// virtual nodes, so resizing the pool moves only ~1/n of the key space
// instead of nearly all of it. Every worker in the pool must be configured
// with identical virtual node count and hash seed, or Invariant I2 (each key
// owned by exactly one worker) is silently violated.
type Ring struct {
	virtualNodes int
	hashSeed     uint64

	// rings caches one immutable ring per pool size. The assigner contract
	// takes poolSize per call, and building a ring is too expensive for the
	// frontier's per-URL hot path.
	rings *xsync.Map[int, *hash.Ring]
}

var _ types.Assigner = (*Ring)(nil)

// RingOption configures a Ring assigner.
type RingOption func(*Ring)

// NewRing creates a new consistent-hashing assigner.
//
// Parameters:
//   - opts: Optional configuration (WithVirtualNodes, WithHashSeed)
//
// Returns:
//   - *Ring: Initialized ring assigner
//
// Example:
//
//	a := assigner.NewRing(assigner.WithVirtualNodes(300))
//	p, err := crawlshard.New(&cfg, crawlshard.WithAssigner(a))
func NewRing(opts ...RingOption) *Ring {
	r := &Ring{
		virtualNodes: 150, // default
		hashSeed:     0,
		rings:        xsync.NewMap[int, *hash.Ring](),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithVirtualNodes sets the number of virtual nodes per ordinal.
//
// Higher values give better distribution but increase memory usage.
// Recommended range: 100-300 (default: 150).
//
// Parameters:
//   - nodes: Number of virtual nodes per ordinal
//
// Returns:
//   - RingOption: Configuration option
func WithVirtualNodes(nodes int) RingOption {
	return func(r *Ring) {
		r.virtualNodes = nodes
	}
}

// WithHashSeed sets a custom hash seed for the ring.
//
// Parameters:
//   - seed: Hash seed value (0 means unseeded)
//
// Returns:
//   - RingOption: Configuration option
func WithHashSeed(seed uint64) RingOption {
	return func(r *Ring) {
		r.hashSeed = seed
	}
}

// Owner returns the partition that owns key under a pool of poolSize workers.
//
// Rings are built lazily, once per distinct pool size, and reused across
// calls; concurrent callers may race to build the first ring for a size but
// observe a single canonical instance afterwards.
//
// Parameters:
//   - key: Candidate key (a URL, treated as an opaque byte sequence)
//   - poolSize: Total number of workers sharing the key space
//
// Returns:
//   - int: Owning partition number in [0, poolSize)
//   - error: types.ErrInvalidPoolSize (wrapped) when poolSize < 1
func (r *Ring) Owner(key string, poolSize int) (int, error) {
	if poolSize < 1 {
		return 0, fmt.Errorf("%w: got %d", types.ErrInvalidPoolSize, poolSize)
	}

	ring, _ := r.rings.LoadOrCompute(poolSize, func() (*hash.Ring, bool) {
		return hash.NewRing(poolSize, r.virtualNodes, r.hashSeed), false
	})

	return ring.Owner(key), nil
}
