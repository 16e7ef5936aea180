package crawlshard

import (
	"context"
	"fmt"

	"github.com/arloliu/crawlshard/assigner"
	"github.com/arloliu/crawlshard/internal/logging"
	"github.com/arloliu/crawlshard/internal/metrics"
	"github.com/arloliu/crawlshard/types"
)

// Partitioner answers ownership questions for one worker in a fixed-size pool.
//
// A Partitioner is constructed once per worker process from the worker's
// declared identity and the pool's total size, both externally sourced. It
// holds no mutable state after construction: ShouldProcess, Owner, and
// CollectStats are pure functions of their arguments plus the captured
// identity and pool size, and are safe for concurrent use from any number of
// goroutines without synchronization.
type Partitioner struct {
	workerID string
	poolSize int
	ordinal  int

	assigner types.Assigner
	logger   types.Logger
	metrics  types.MetricsCollector
}

// New creates a Partitioner for one worker.
//
// The worker's ordinal is resolved from cfg.WorkerID at construction (see
// ResolveOrdinal) and fixed for the Partitioner's lifetime. Configuration is
// validated eagerly: a zero or negative pool size fails here rather than on
// first use.
//
// Parameters:
//   - cfg: Worker identity and pool size (must be non-nil and valid)
//   - opts: Optional dependencies (WithAssigner, WithLogger, WithMetrics, WithPrometheus)
//
// Returns:
//   - *Partitioner: Initialized partitioner
//   - error: ErrInvalidConfig, ErrInvalidWorkerID, or ErrInvalidPoolSize (wrapped)
//
// Example:
//
//	cfg := crawlshard.Config{WorkerID: "crawler-3", PoolSize: 8}
//	p, err := crawlshard.New(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
func New(cfg *Config, opts ...Option) (*Partitioner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", types.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &partitionerOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.assigner == nil {
		options.assigner = assigner.NewModulo()
	}
	if options.logger == nil {
		options.logger = logging.NewNop()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}

	ordinal, err := ResolveOrdinal(cfg.WorkerID, cfg.PoolSize)
	if err != nil {
		return nil, err
	}

	p := &Partitioner{
		workerID: cfg.WorkerID,
		poolSize: cfg.PoolSize,
		ordinal:  ordinal,
		assigner: options.assigner,
		logger:   options.logger,
		metrics:  options.metrics,
	}

	p.logger.Info("partitioner created",
		"worker_id", p.workerID,
		"pool_size", p.poolSize,
		"ordinal", p.ordinal,
	)

	return p, nil
}

// NewFromSource creates a Partitioner from a pool membership source.
//
// The source supplies the worker's identity and the pool size; sources backed
// by a membership service (e.g. source.KVClaimer) may block while claiming an
// identity, bounded by ctx.
//
// Parameters:
//   - ctx: Context for the source's Membership call
//   - src: Pool membership source
//   - opts: Optional dependencies, as for New
//
// Returns:
//   - *Partitioner: Initialized partitioner
//   - error: Source error, or any error New returns
//
// Example:
//
//	src := source.NewStatic("crawler-3", 8)
//	p, err := crawlshard.NewFromSource(ctx, src)
func NewFromSource(ctx context.Context, src PoolSource, opts ...Option) (*Partitioner, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: pool source is nil", types.ErrInvalidConfig)
	}

	m, err := src.Membership(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve pool membership: %w", err)
	}

	cfg := Config{WorkerID: m.WorkerID, PoolSize: m.PoolSize}

	return New(&cfg, opts...)
}

// WorkerID returns the worker identity captured at construction.
func (p *Partitioner) WorkerID() string {
	return p.workerID
}

// PoolSize returns the pool size captured at construction.
func (p *Partitioner) PoolSize() int {
	return p.poolSize
}

// Ordinal returns this worker's resolved partition number in [0, PoolSize).
func (p *Partitioner) Ordinal() int {
	return p.ordinal
}

// Owner returns the partition number that owns key.
//
// Parameters:
//   - key: Candidate key (a URL, treated as an opaque byte sequence; the
//     core performs no normalization — that is the frontier's job)
//
// Returns:
//   - int: Owning partition in [0, PoolSize)
func (p *Partitioner) Owner(key string) int {
	owner, err := p.assigner.Owner(key, p.poolSize)
	if err != nil {
		// Unreachable with a conforming assigner: pool size was validated at
		// construction and assigners have no other failure mode.
		p.logger.Error("assigner violated its contract", "key", key, "error", err)
		return 0
	}

	return owner
}

// ShouldProcess reports whether this worker owns key.
//
// The crawl frontier calls this once per freshly discovered URL before
// enqueueing it for fetch. A false result means the URL is silently left for
// the owning partition's worker to discover and claim independently; it is
// not re-queued or retried here.
//
// Parameters:
//   - key: Candidate key (a URL)
//
// Returns:
//   - bool: true if Owner(key) equals this worker's ordinal
func (p *Partitioner) ShouldProcess(key string) bool {
	owned := p.Owner(key) == p.ordinal
	p.metrics.RecordOwnershipCheck(owned)

	return owned
}

// OwnerOf returns the partition that owns key in a pool of poolSize workers,
// using the baseline modulo assigner.
//
// This is the package-level pure form of Partitioner.Owner for callers that
// do not hold a constructed instance.
//
// Parameters:
//   - key: Candidate key
//   - poolSize: Total number of workers sharing the key space
//
// Returns:
//   - int: Owning partition in [0, poolSize)
//   - error: ErrInvalidPoolSize (wrapped) when poolSize < 1
func OwnerOf(key string, poolSize int) (int, error) {
	return defaultAssigner.Owner(key, poolSize)
}

// ShouldProcess reports whether the worker named by identity owns key in a
// pool of poolSize workers, using the baseline modulo assigner.
//
// Parameters:
//   - identity: The worker's declared identity token
//   - poolSize: Total number of workers sharing the key space
//   - key: Candidate key
//
// Returns:
//   - bool: true if OwnerOf(key, poolSize) equals ResolveOrdinal(identity, poolSize)
//   - error: ErrInvalidPoolSize (wrapped) when poolSize < 1
func ShouldProcess(identity string, poolSize int, key string) (bool, error) {
	ordinal, err := ResolveOrdinal(identity, poolSize)
	if err != nil {
		return false, err
	}

	owner, err := defaultAssigner.Owner(key, poolSize)
	if err != nil {
		return false, err
	}

	return owner == ordinal, nil
}

// defaultAssigner backs the package-level pure functions. Modulo is
// stateless, so a single shared instance is safe.
var defaultAssigner types.Assigner = assigner.NewModulo()
