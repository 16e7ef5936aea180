package source

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	shardtest "github.com/arloliu/crawlshard/testing"
	"github.com/arloliu/crawlshard/types"
)

// Unit tests that do not require a real KV backend.

func TestKVClaimer_StartRenewal_WithoutClaim(t *testing.T) {
	t.Parallel()

	c := NewKVClaimer(nil, "crawler", 10, time.Second, nil) // kv nil is fine for this path
	err := c.StartRenewal(context.Background())
	require.ErrorIs(t, err, types.ErrNotClaimed)
}

func TestKVClaimer_Release_WithoutClaim(t *testing.T) {
	t.Parallel()

	c := NewKVClaimer(nil, "crawler", 10, time.Second, nil)
	err := c.Release(context.Background())
	require.ErrorIs(t, err, types.ErrNotClaimed)
}

func TestKVClaimer_WorkerID_DefaultEmpty(t *testing.T) {
	t.Parallel()

	c := NewKVClaimer(nil, "crawler", 10, time.Second, nil)
	require.Equal(t, "", c.WorkerID())
}

func TestKVClaimer_Claim_InvalidPoolSize(t *testing.T) {
	t.Parallel()

	c := NewKVClaimer(nil, "crawler", 0, time.Second, nil)
	_, err := c.Claim(context.Background())
	require.ErrorIs(t, err, types.ErrInvalidPoolSize)
}

// Integration tests against an embedded JetStream KV bucket.

func TestKVClaimer_ClaimsSequentialOrdinals(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, nc := shardtest.StartEmbeddedNATS(t)
	kv := shardtest.CreateJetStreamKV(t, nc, "claim-sequential")

	logger := shardtest.NewTestLogger(t)

	first := NewKVClaimer(kv, "crawler", 3, 30*time.Second, logger)
	second := NewKVClaimer(kv, "crawler", 3, 30*time.Second, logger)

	wid, err := first.Claim(ctx)
	require.NoError(t, err)
	require.Equal(t, "crawler-0", wid)
	require.Equal(t, "crawler-0", first.WorkerID())

	wid, err = second.Claim(ctx)
	require.NoError(t, err)
	require.Equal(t, "crawler-1", wid)
}

func TestKVClaimer_Membership(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, nc := shardtest.StartEmbeddedNATS(t)
	kv := shardtest.CreateJetStreamKV(t, nc, "claim-membership")

	c := NewKVClaimer(kv, "crawler", 5, 30*time.Second, nil)

	m, err := c.Membership(ctx)
	require.NoError(t, err)
	require.Equal(t, "crawler-0", m.WorkerID)
	require.Equal(t, 5, m.PoolSize)

	// Second call reuses the held claim instead of claiming another ordinal.
	again, err := c.Membership(ctx)
	require.NoError(t, err)
	require.Equal(t, m, again)
}

func TestKVClaimer_PoolExhausted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, nc := shardtest.StartEmbeddedNATS(t)
	kv := shardtest.CreateJetStreamKV(t, nc, "claim-exhausted")

	a := NewKVClaimer(kv, "crawler", 1, 30*time.Second, nil)
	b := NewKVClaimer(kv, "crawler", 1, 30*time.Second, nil)

	_, err := a.Claim(ctx)
	require.NoError(t, err)

	_, err = b.Claim(ctx)
	require.ErrorIs(t, err, types.ErrNoAvailableOrdinal)
}

func TestKVClaimer_ReleaseFreesOrdinal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, nc := shardtest.StartEmbeddedNATS(t)
	kv := shardtest.CreateJetStreamKV(t, nc, "claim-release")

	a := NewKVClaimer(kv, "crawler", 1, 30*time.Second, nil)
	wid, err := a.Claim(ctx)
	require.NoError(t, err)
	require.Equal(t, "crawler-0", wid)

	require.NoError(t, a.Release(ctx))
	require.Equal(t, "", a.WorkerID())

	// Second release returns ErrNotClaimed.
	require.ErrorIs(t, a.Release(ctx), types.ErrNotClaimed)

	// The freed ordinal is claimable again.
	b := NewKVClaimer(kv, "crawler", 1, 30*time.Second, nil)
	wid, err = b.Claim(ctx)
	require.NoError(t, err)
	require.Equal(t, "crawler-0", wid)
}

func TestKVClaimer_RenewalKeepsLease(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, nc := shardtest.StartEmbeddedNATS(t)

	js := shardtest.CreateJetStreamKV(t, nc, "claim-renewal")

	c := NewKVClaimer(js, "crawler", 1, 600*time.Millisecond, nil)
	wid, err := c.Claim(ctx)
	require.NoError(t, err)

	require.NoError(t, c.StartRenewal(ctx))

	// Hold the lease across several renewal intervals; the key must survive.
	time.Sleep(1 * time.Second)

	entry, err := js.Get(ctx, wid)
	require.NoError(t, err)
	require.NotEmpty(t, entry.Value())

	require.NoError(t, c.Release(ctx))
}
