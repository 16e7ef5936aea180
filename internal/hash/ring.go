package hash

import (
	"encoding/binary"
	"slices"
	"strconv"

	"github.com/zeebo/xxh3"
)

// Ring implements a consistent hash ring over partition ordinals with
// virtual nodes.
//
// The ring maps candidate keys to ordinals in [0, poolSize) using consistent
// hashing, which keeps most assignments stable when the pool is resized,
// unlike the plain modulo mapping which reassigns close to (n-1)/n of all
// keys.
type Ring struct {
	// nodes contains all virtual nodes on the ring, sorted by hash
	nodes []virtualNode

	// poolSize is the number of ordinals placed on the ring
	poolSize int

	// seed for hash function (0 means unseeded)
	seed uint64
}

// virtualNode represents a virtual node on the hash ring.
type virtualNode struct {
	hash    uint64 // Position on the ring
	ordinal int    // Partition ordinal owning this virtual node
}

// NewRing creates a consistent hash ring with poolSize ordinals.
//
// Parameters:
//   - poolSize: Number of ordinals to place on the ring (must be >= 1)
//   - virtualNodesPerOrdinal: Virtual nodes per ordinal (higher = better distribution)
//   - seed: Seed for the hash function (0 for unseeded, non-zero for a custom keyspace)
//
// Returns:
//   - *Ring: Initialized hash ring
//
// Example:
//
//	ring := hash.NewRing(8, 150, 0)
//	ordinal := ring.Owner("http://example.com/page/2")
func NewRing(poolSize int, virtualNodesPerOrdinal int, seed uint64) *Ring {
	ring := &Ring{
		nodes:    make([]virtualNode, 0, poolSize*virtualNodesPerOrdinal),
		poolSize: poolSize,
		seed:     seed,
	}

	for ordinal := range poolSize {
		ring.addOrdinal(ordinal, virtualNodesPerOrdinal)
	}

	// Sort nodes by hash for binary search
	slices.SortFunc(ring.nodes, func(a, b virtualNode) int {
		if a.hash < b.hash {
			return -1
		}
		if a.hash > b.hash {
			return 1
		}

		return 0
	})

	return ring
}

// Owner finds the ordinal responsible for a candidate key.
//
// Uses binary search to find the first virtual node whose hash is >= the key
// hash. If no such node exists (key hash > all nodes), wraps around to the
// first node.
//
// Parameters:
//   - key: Candidate key (typically a URL)
//
// Returns:
//   - int: Ordinal in [0, poolSize) responsible for this key, or -1 for an empty ring
func (r *Ring) Owner(key string) int {
	if len(r.nodes) == 0 {
		return -1
	}

	h := r.hash(key)

	idx, found := slices.BinarySearchFunc(r.nodes, h, func(node virtualNode, t uint64) int {
		if node.hash < t {
			return -1
		}
		if node.hash > t {
			return 1
		}

		return 0
	})

	// If idx points past the last node, wrap around to the first one
	if !found && idx >= len(r.nodes) {
		idx = 0
	}

	return r.nodes[idx].ordinal
}

// PoolSize returns the number of ordinals placed on the ring.
func (r *Ring) PoolSize() int {
	return r.poolSize
}

// Size returns the total number of virtual nodes on the ring.
func (r *Ring) Size() int {
	return len(r.nodes)
}

// addOrdinal adds virtual nodes for one ordinal to the ring.
func (r *Ring) addOrdinal(ordinal int, virtualNodes int) {
	label := strconv.Itoa(ordinal)

	for i := range virtualNodes {
		// Fold the ordinal label, then the vnode index using the previous
		// hash as seed. Avoids building a concatenated string per vnode.
		var h uint64
		if r.seed != 0 {
			h = xxh3.HashStringSeed(label, r.seed)
		} else {
			h = xxh3.HashString(label)
		}

		var ib [8]byte
		binary.LittleEndian.PutUint64(ib[:], uint64(i)) //nolint:gosec
		h = xxh3.HashSeed(ib[:], h)

		r.nodes = append(r.nodes, virtualNode{hash: h, ordinal: ordinal})
	}
}

// hash computes a 64-bit hash of the key using XXH3.
func (r *Ring) hash(key string) uint64 {
	if r.seed != 0 {
		return xxh3.HashStringSeed(key, r.seed)
	}

	return xxh3.HashString(key)
}
