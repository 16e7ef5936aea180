package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistogram_Total(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint64(0), Histogram{}.Total())
	require.Equal(t, uint64(0), Histogram{0, 0, 0}.Total())
	require.Equal(t, uint64(6), Histogram{1, 2, 3}.Total())
}

func TestHistogram_Partitions(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, Histogram{}.Partitions())
	require.Equal(t, 5, make(Histogram, 5).Partitions())
}

func TestHistogram_Imbalance(t *testing.T) {
	t.Parallel()

	t.Run("empty and single partition", func(t *testing.T) {
		t.Parallel()

		require.Zero(t, Histogram{}.Imbalance())
		require.Zero(t, Histogram{42}.Imbalance())
	})

	t.Run("all zero counts", func(t *testing.T) {
		t.Parallel()

		require.Zero(t, Histogram{0, 0, 0}.Imbalance())
	})

	t.Run("perfectly balanced", func(t *testing.T) {
		t.Parallel()

		require.Zero(t, Histogram{10, 10, 10}.Imbalance())
	})

	t.Run("fully skewed", func(t *testing.T) {
		t.Parallel()

		// One partition owns every key: (10-0)/10 = 1.0
		require.InDelta(t, 1.0, Histogram{10, 0}.Imbalance(), 1e-9)
	})

	t.Run("moderate skew", func(t *testing.T) {
		t.Parallel()

		// (6-2)/12 = 0.333...
		require.InDelta(t, 1.0/3.0, Histogram{6, 4, 2}.Imbalance(), 1e-9)
	})
}
