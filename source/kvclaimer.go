package source

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/arloliu/crawlshard/internal/logging"
	"github.com/arloliu/crawlshard/types"
)

// KVClaimer claims a stable worker identity from a NATS JetStream KV bucket.
//
// It scans the ordinal range sequentially and claims the first free identity
// "prefix-N" with an atomic KV Create, then renews the TTL lease in the
// background. Because claimed identities carry a numeric suffix, the ordinal
// resolver reads the intended ordinal directly instead of hashing.
//
// The pool size is the configured ordinal range: a claimer configured for
// poolSize 8 hands out identities crawler-0 through crawler-7 and reports
// PoolSize 8 to every worker, which is the cross-process agreement the
// partitioning invariants depend on.
type KVClaimer struct {
	kv       jetstream.KeyValue
	prefix   string
	poolSize int
	ttl      time.Duration

	mu       sync.Mutex
	workerID string        // Claimed identity, empty until Claim succeeds
	stopCh   chan struct{} // Signal to stop renewal goroutine
	doneCh   chan struct{} // Signal that renewal has stopped
	renewing bool

	logger types.Logger
}

var _ types.PoolSource = (*KVClaimer)(nil)

// NewKVClaimer creates a new KV-backed pool source.
//
// Parameters:
//   - kv: NATS JetStream KV bucket for identity claims
//   - prefix: Identity prefix (e.g. "crawler" produces "crawler-0", "crawler-1", ...)
//   - poolSize: Total number of workers; ordinals range over [0, poolSize)
//   - ttl: Lease duration for identity claims (renewed at ttl/3)
//   - logger: Logger for claim diagnostics (nop if nil)
//
// Returns:
//   - *KVClaimer: New claimer instance
//
// Example:
//
//	kv, _ := js.CreateKeyValue(ctx, jetstream.KeyValueConfig{Bucket: "crawl-workers", TTL: 30 * time.Second})
//	src := source.NewKVClaimer(kv, "crawler", 8, 30*time.Second, logger)
//	p, err := crawlshard.NewFromSource(ctx, src)
func NewKVClaimer(kv jetstream.KeyValue, prefix string, poolSize int, ttl time.Duration, logger types.Logger) *KVClaimer {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &KVClaimer{
		kv:       kv,
		prefix:   prefix,
		poolSize: poolSize,
		ttl:      ttl,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		logger:   logger,
	}
}

// Membership claims an identity if none is held yet and returns this worker's
// membership.
//
// Parameters:
//   - ctx: Context for timeout/cancellation of the claim
//
// Returns:
//   - types.Membership: Claimed identity and the configured pool size
//   - error: Claim failure (see Claim)
func (c *KVClaimer) Membership(ctx context.Context) (types.Membership, error) {
	c.mu.Lock()
	claimed := c.workerID
	c.mu.Unlock()

	if claimed == "" {
		var err error
		claimed, err = c.Claim(ctx)
		if err != nil {
			return types.Membership{}, err
		}
	}

	return types.Membership{WorkerID: claimed, PoolSize: c.poolSize}, nil
}

// Claim attempts to claim a stable worker identity from the pool.
//
// Sequentially tries ordinals 0..poolSize-1 until finding an available one.
// Uses the KV CREATE operation for atomic claiming, so two workers racing for
// the same ordinal cannot both win it.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//
// Returns:
//   - string: Claimed identity (e.g. "crawler-5")
//   - error: types.ErrNoAvailableOrdinal if the pool is exhausted, context error, or KV error
func (c *KVClaimer) Claim(ctx context.Context) (string, error) {
	if c.poolSize < 1 {
		return "", fmt.Errorf("%w: got %d", types.ErrInvalidPoolSize, c.poolSize)
	}

	c.logger.Debug("identity claim starting", "prefix", c.prefix, "pool_size", c.poolSize, "ttl", c.ttl)

	for ordinal := range c.poolSize {
		select {
		case <-ctx.Done():
			c.logger.Debug("identity claim cancelled", "tried", ordinal)
			return "", ctx.Err()
		default:
		}

		workerID := fmt.Sprintf("%s-%d", c.prefix, ordinal)

		// Value carries the claim timestamp for operator inspection.
		value := time.Now().Format(time.RFC3339)

		revision, err := c.kv.Create(ctx, workerID, []byte(value))
		if err == nil {
			c.mu.Lock()
			c.workerID = workerID
			c.mu.Unlock()

			c.logger.Info("identity claimed", "worker_id", workerID, "revision", revision, "attempts", ordinal+1)

			return workerID, nil
		}

		if !errors.Is(err, jetstream.ErrKeyExists) {
			c.logger.Error("identity claim failed", "worker_id", workerID, "error", err)
			return "", fmt.Errorf("failed to claim identity %s: %w", workerID, err)
		}

		// Ordinal already claimed, try the next one.
	}

	c.logger.Error("no available identities in pool", "prefix", c.prefix, "pool_size", c.poolSize)

	return "", types.ErrNoAvailableOrdinal
}

// StartRenewal starts background renewal of the claimed identity's lease.
//
// Renews at ttl/3 intervals to keep a safety margin. Must be called after a
// successful Claim. The renewal loop runs until Release is called or ctx is
// cancelled.
//
// Parameters:
//   - ctx: Context bounding the renewal loop
//
// Returns:
//   - error: types.ErrNotClaimed if no identity is held
func (c *KVClaimer) StartRenewal(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.workerID == "" {
		return types.ErrNotClaimed
	}
	if c.renewing {
		return nil
	}
	c.renewing = true

	go c.renewalLoop(ctx)

	return nil
}

// renewalLoop periodically renews the identity lease until stopped.
func (c *KVClaimer) renewalLoop(ctx context.Context) {
	defer close(c.doneCh)

	ticker := time.NewTicker(c.ttl / 3)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.stopCh:
			return
		case <-ticker.C:
			if err := c.renew(ctx); err != nil {
				c.logger.Warn("identity lease renewal failed", "worker_id", c.WorkerID(), "error", err)
			}
		}
	}
}

// renew refreshes the claimed identity's timestamp to maintain the lease.
func (c *KVClaimer) renew(ctx context.Context) error {
	workerID := c.WorkerID()
	if workerID == "" {
		return types.ErrNotClaimed
	}

	value := time.Now().Format(time.RFC3339)

	// Put rather than Update: renewal must succeed regardless of revision so
	// a lease that briefly expired and was recreated still recovers.
	if _, err := c.kv.Put(ctx, workerID, []byte(value)); err != nil {
		return fmt.Errorf("failed to renew identity %s: %w", workerID, err)
	}

	return nil
}

// Release releases the claimed identity and stops renewal.
//
// Should be called during graceful shutdown to free the ordinal for reuse.
//
// Parameters:
//   - ctx: Context for timeout
//
// Returns:
//   - error: types.ErrNotClaimed if no identity is held, or the KV delete error
func (c *KVClaimer) Release(ctx context.Context) error {
	c.mu.Lock()
	workerID := c.workerID
	renewing := c.renewing
	c.workerID = ""
	c.renewing = false
	c.mu.Unlock()

	if workerID == "" {
		return types.ErrNotClaimed
	}

	if renewing {
		close(c.stopCh)

		select {
		case <-c.doneCh:
			// Renewal stopped cleanly
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
			// Renewal didn't stop, continue anyway
		}
	}

	if err := c.kv.Delete(ctx, workerID); err != nil {
		return fmt.Errorf("failed to release identity %s: %w", workerID, err)
	}

	c.logger.Info("identity released", "worker_id", workerID)

	return nil
}

// WorkerID returns the currently claimed identity.
//
// Returns:
//   - string: Claimed identity (empty if not claimed)
func (c *KVClaimer) WorkerID() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.workerID
}
