package crawlshard

import (
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectStats(t *testing.T) {
	t.Parallel()

	t.Run("dense histogram for empty input", func(t *testing.T) {
		t.Parallel()

		hist, err := CollectStats(slices.Values([]string(nil)), 5)
		require.NoError(t, err)
		require.Len(t, hist, 5)
		for i, c := range hist {
			require.Zero(t, c, "partition %d must start at zero", i)
		}
	})

	t.Run("every key counted exactly once", func(t *testing.T) {
		t.Parallel()

		keys := []string{"http://a.com/1", "http://a.com/2", "http://b.com/1"}
		hist, err := CollectStats(slices.Values(keys), 3)
		require.NoError(t, err)
		require.Len(t, hist, 3)
		require.Equal(t, uint64(3), hist.Total())
	})

	t.Run("matches per-key ownership", func(t *testing.T) {
		t.Parallel()

		const poolSize = 4
		keys := make([]string, 200)
		want := make(Histogram, poolSize)
		for i := range keys {
			keys[i] = fmt.Sprintf("http://site-%d.com/", i)
			owner, err := OwnerOf(keys[i], poolSize)
			require.NoError(t, err)
			want[owner]++
		}

		hist, err := CollectStats(slices.Values(keys), poolSize)
		require.NoError(t, err)
		require.Equal(t, want, hist)
	})

	t.Run("fails fast on invalid pool size", func(t *testing.T) {
		t.Parallel()

		hist, err := CollectStats(slices.Values([]string{"a", "b"}), -1)
		require.ErrorIs(t, err, ErrInvalidPoolSize)
		require.Nil(t, hist, "no partial histogram on invalid configuration")
	})

	t.Run("streaming sequence consumed once", func(t *testing.T) {
		t.Parallel()

		produced := 0
		seq := func(yield func(string) bool) {
			for i := range 1000 {
				produced++
				if !yield(fmt.Sprintf("http://lazy.com/%d", i)) {
					return
				}
			}
		}

		hist, err := CollectStats(seq, 7)
		require.NoError(t, err)
		require.Equal(t, 1000, produced)
		require.Equal(t, uint64(1000), hist.Total())
	})
}

func TestStatsCollector(t *testing.T) {
	t.Parallel()

	t.Run("invalid pool size", func(t *testing.T) {
		t.Parallel()

		_, err := NewStatsCollector(0, nil)
		require.ErrorIs(t, err, ErrInvalidPoolSize)
	})

	t.Run("incremental accumulation", func(t *testing.T) {
		t.Parallel()

		sc, err := NewStatsCollector(3, nil)
		require.NoError(t, err)

		sc.Add("http://a.com/1")
		sc.Add("http://a.com/2")
		require.Equal(t, uint64(2), sc.Total())

		// Snapshots are copies: later adds must not mutate them.
		snapshot := sc.Histogram()
		sc.Add("http://b.com/1")
		require.Equal(t, uint64(2), snapshot.Total())
		require.Equal(t, uint64(3), sc.Total())
	})

	t.Run("concurrent producers", func(t *testing.T) {
		t.Parallel()

		sc, err := NewStatsCollector(5, nil)
		require.NoError(t, err)

		var wg sync.WaitGroup
		for g := range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range 500 {
					sc.Add(fmt.Sprintf("http://worker-%d.com/%d", g, i))
				}
			}()
		}
		wg.Wait()

		require.Equal(t, uint64(8*500), sc.Total())
	})
}

func TestPartitioner_CollectStats(t *testing.T) {
	t.Parallel()

	cfg := Config{WorkerID: "crawler-0", PoolSize: 3}
	p, err := New(&cfg)
	require.NoError(t, err)

	keys := []string{"http://a.com/1", "http://a.com/2", "http://b.com/1"}
	hist := p.CollectStats(slices.Values(keys))

	require.Len(t, hist, 3)
	require.Equal(t, uint64(3), hist.Total())

	// Re-running over the same keys yields the identical histogram.
	require.Equal(t, hist, p.CollectStats(slices.Values(keys)))
}
