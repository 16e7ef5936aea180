package hash

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRing(t *testing.T) {
	t.Parallel()

	ring := NewRing(3, 100, 0)

	require.NotNil(t, ring)
	require.Equal(t, 300, ring.Size()) // 3 ordinals * 100 virtual nodes
	require.Equal(t, 3, ring.PoolSize())
}

func TestRing_Owner(t *testing.T) {
	t.Parallel()

	t.Run("assigns keys consistently", func(t *testing.T) {
		t.Parallel()

		ring := NewRing(2, 150, 0)

		for _, key := range []string{"http://a.com/1", "another-key", "xyz", ""} {
			first := ring.Owner(key)
			require.GreaterOrEqual(t, first, 0)
			require.Less(t, first, 2)
			require.Equal(t, first, ring.Owner(key), "key %q not consistent", key)
			require.Equal(t, first, ring.Owner(key), "key %q not consistent", key)
		}
	})

	t.Run("distributes keys across ordinals", func(t *testing.T) {
		t.Parallel()

		const poolSize = 3
		ring := NewRing(poolSize, 150, 0)

		counts := make(map[int]int)
		for i := range 1000 {
			counts[ring.Owner(fmt.Sprintf("http://site-%d.com/index", i))]++
		}

		// Each ordinal should get roughly 1/3 of keys (allow 40% variance;
		// consistent hashing is lumpier than plain modulo)
		expected := 1000 / poolSize
		tolerance := expected * 40 / 100

		for ordinal := range poolSize {
			count := counts[ordinal]
			require.GreaterOrEqual(t, count, expected-tolerance, "ordinal %d under-assigned", ordinal)
			require.LessOrEqual(t, count, expected+tolerance, "ordinal %d over-assigned", ordinal)
		}
	})

	t.Run("returns -1 for empty ring", func(t *testing.T) {
		t.Parallel()

		ring := NewRing(0, 150, 0)
		require.Equal(t, -1, ring.Owner("any-key"))
	})
}

func TestRing_Affinity(t *testing.T) {
	t.Parallel()

	// Growing the pool from 2 to 3 should keep most keys on their old
	// ordinal. The theoretical minimum move is 1/3 of keys; allow down to
	// 45% retained to account for small sample lumpiness.
	ring2 := NewRing(2, 150, 12345)
	ring3 := NewRing(3, 150, 12345)

	const keys = 1000
	same := 0
	for i := range keys {
		key := fmt.Sprintf("http://example.com/p/%d", i)
		if ring2.Owner(key) == ring3.Owner(key) {
			same++
		}
	}

	affinityPercent := same * 100 / keys
	require.GreaterOrEqual(t, affinityPercent, 45,
		"affinity %d%% too low when growing pool", affinityPercent)

	t.Logf("affinity when adding ordinal: %d%% (%d/%d)", affinityPercent, same, keys)
}

func TestRing_Seeds(t *testing.T) {
	t.Parallel()

	ring1 := NewRing(3, 150, 0)
	ring2 := NewRing(3, 150, 12345)
	ring3 := NewRing(3, 150, 12345) // same seed as ring2

	different := 0
	for i := range 100 {
		key := fmt.Sprintf("http://example.com/%d", i)

		// Same seed must produce the same assignment
		require.Equal(t, ring2.Owner(key), ring3.Owner(key))

		if ring1.Owner(key) != ring2.Owner(key) {
			different++
		}
	}

	// Different seeds will usually produce different distributions
	require.GreaterOrEqual(t, different, 30,
		"different seeds should produce different distributions")
}
