package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatic_Membership(t *testing.T) {
	t.Parallel()

	src := NewStatic("crawler-3", 8)

	m, err := src.Membership(context.Background())
	require.NoError(t, err)
	require.Equal(t, "crawler-3", m.WorkerID)
	require.Equal(t, 8, m.PoolSize)

	// Repeated calls return the same membership.
	again, err := src.Membership(context.Background())
	require.NoError(t, err)
	require.Equal(t, m, again)
}
