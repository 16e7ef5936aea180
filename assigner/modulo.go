package assigner

import (
	"fmt"

	"github.com/arloliu/crawlshard/internal/hash"
	"github.com/arloliu/crawlshard/types"
)

// Modulo implements the baseline hash-mod-N partition assigner.
type Modulo struct{}

var _ types.Assigner = (*Modulo)(nil)

// NewModulo creates a new modulo assigner.
//
// The assigner maps a key to hash(key) mod poolSize using the stable 32-bit
// partition digest. Any two processes sharing the same pool size compute the
// same owner for the same key, regardless of language or runtime.
//
// Note that resizing the pool reassigns close to (n-1)/n of all keys; use
// Ring when minimizing that churn matters more than cross-implementation
// portability.
//
// Returns:
//   - *Modulo: Initialized modulo assigner
//
// Example:
//
//	p, err := crawlshard.New(&cfg, crawlshard.WithAssigner(assigner.NewModulo()))
func NewModulo() *Modulo {
	return &Modulo{}
}

// Owner returns the partition that owns key under a pool of poolSize workers.
//
// Parameters:
//   - key: Candidate key (a URL, treated as an opaque byte sequence)
//   - poolSize: Total number of workers sharing the key space
//
// Returns:
//   - int: hash(key) mod poolSize
//   - error: types.ErrInvalidPoolSize (wrapped) when poolSize < 1
func (m *Modulo) Owner(key string, poolSize int) (int, error) {
	if poolSize < 1 {
		return 0, fmt.Errorf("%w: got %d", types.ErrInvalidPoolSize, poolSize)
	}

	return int(hash.Sum32(key) % uint32(poolSize)), nil //nolint:gosec // poolSize >= 1 checked above
}
