package crawlshard

import (
	"fmt"
	"strconv"

	"github.com/arloliu/crawlshard/internal/hash"
	"github.com/arloliu/crawlshard/types"
)

// ResolveOrdinal derives a worker's stable ordinal in [0, poolSize) from its
// declared identity.
//
// Resolution is two-tiered, in priority order:
//
//  1. If identity ends in a run of decimal digits, that suffix (parsed as a
//     non-negative integer) is taken mod poolSize. Operational deployments
//     commonly name workers "crawler-0", "crawler-1", ..., and the intended
//     ordinal should be read directly rather than re-derived through a hash.
//  2. Otherwise the identity is hashed with the partition key digest and
//     taken mod poolSize, so every identity resolves to some stable ordinal.
//
// A digit suffix too large to fit in an int falls back to the hash path.
//
// Parameters:
//   - identity: The worker's declared identity token
//   - poolSize: Total number of workers sharing the key space
//
// Returns:
//   - int: Stable ordinal in [0, poolSize)
//   - error: ErrInvalidPoolSize (wrapped) when poolSize < 1
//
// Example:
//
//	crawlshard.ResolveOrdinal("crawler-7", 4) // 3 (7 mod 4)
//	crawlshard.ResolveOrdinal("alpha", 4)     // hash("alpha") mod 4
func ResolveOrdinal(identity string, poolSize int) (int, error) {
	if poolSize < 1 {
		return 0, fmt.Errorf("%w: got %d", types.ErrInvalidPoolSize, poolSize)
	}

	if n, ok := trailingOrdinal(identity); ok {
		return n % poolSize, nil
	}

	return int(hash.Sum32(identity) % uint32(poolSize)), nil //nolint:gosec // poolSize >= 1 checked above
}

// trailingOrdinal parses the run of decimal digits at the end of identity.
func trailingOrdinal(identity string) (int, bool) {
	i := len(identity)
	for i > 0 && identity[i-1] >= '0' && identity[i-1] <= '9' {
		i--
	}
	if i == len(identity) {
		return 0, false
	}

	n, err := strconv.Atoi(identity[i:])
	if err != nil {
		// Suffix overflows int; treat the identity as suffix-less.
		return 0, false
	}

	return n, true
}
