package crawlshard

import (
	"fmt"
	"iter"
	"time"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arloliu/crawlshard/types"
)

// StatsCollector accumulates per-partition key counts incrementally.
//
// The collector supports streaming accumulation: the frontier can feed it an
// unbounded key sequence one key at a time while memory stays bounded by the
// pool size, not by the number of keys. Counters are lock-free, so multiple
// producer goroutines may call Add concurrently.
type StatsCollector struct {
	poolSize int
	assigner types.Assigner
	counts   []*xsync.Counter
}

// NewStatsCollector creates a new statistics collector.
//
// Parameters:
//   - poolSize: Total number of workers; the histogram will have exactly this many entries
//   - a: Assigner used to resolve key ownership (the baseline modulo assigner if nil)
//
// Returns:
//   - *StatsCollector: Initialized collector with all counts at zero
//   - error: ErrInvalidPoolSize (wrapped) when poolSize < 1
//
// Example:
//
//	sc, err := crawlshard.NewStatsCollector(5, nil)
//	if err != nil { /* handle */ }
//	for url := range frontier.Sample() {
//	    sc.Add(url)
//	}
//	hist := sc.Histogram()
func NewStatsCollector(poolSize int, a types.Assigner) (*StatsCollector, error) {
	if poolSize < 1 {
		return nil, fmt.Errorf("%w: got %d", types.ErrInvalidPoolSize, poolSize)
	}
	if a == nil {
		a = defaultAssigner
	}

	counts := make([]*xsync.Counter, poolSize)
	for i := range counts {
		counts[i] = xsync.NewCounter()
	}

	return &StatsCollector{
		poolSize: poolSize,
		assigner: a,
		counts:   counts,
	}, nil
}

// Add tallies one key against its owning partition.
//
// Safe for concurrent use.
//
// Parameters:
//   - key: Candidate key
func (sc *StatsCollector) Add(key string) {
	owner, err := sc.assigner.Owner(key, sc.poolSize)
	if err != nil {
		// Unreachable with a conforming assigner: poolSize was validated at
		// construction. Dropping the key would silently skew the histogram,
		// so panic on contract violation instead.
		panic(fmt.Sprintf("crawlshard: assigner failed for validated pool size %d: %v", sc.poolSize, err))
	}

	sc.counts[owner].Inc()
}

// AddSeq tallies every key produced by seq, one pass, in iteration order.
//
// Parameters:
//   - seq: Key sequence (may be lazily produced and arbitrarily large)
func (sc *StatsCollector) AddSeq(seq iter.Seq[string]) {
	for key := range seq {
		sc.Add(key)
	}
}

// Histogram returns a dense snapshot of the per-partition counts.
//
// The histogram has exactly poolSize entries, including zero counts, so
// callers can detect starved partitions without a presence check. The
// returned slice is a fresh copy; later Add calls do not mutate it.
//
// Returns:
//   - types.Histogram: Per-partition counts indexed by partition number
func (sc *StatsCollector) Histogram() types.Histogram {
	h := make(types.Histogram, sc.poolSize)
	for i, c := range sc.counts {
		h[i] = uint64(c.Value()) //nolint:gosec // counters only ever increment
	}

	return h
}

// Total returns the number of keys tallied so far.
func (sc *StatsCollector) Total() uint64 {
	return sc.Histogram().Total()
}

// CollectStats tallies how many keys from seq each partition would own in a
// pool of poolSize workers, using the baseline modulo assigner.
//
// The sequence is iterated exactly once and may be lazily produced; memory is
// bounded by poolSize. The pool size is validated before any key is consumed,
// so no partial histogram is ever returned.
//
// Parameters:
//   - seq: Key sequence (use slices.Values for a materialized batch)
//   - poolSize: Total number of workers sharing the key space
//
// Returns:
//   - types.Histogram: Dense histogram with poolSize entries
//   - error: ErrInvalidPoolSize (wrapped) when poolSize < 1
//
// Example:
//
//	hist, err := crawlshard.CollectStats(slices.Values(urls), 3)
func CollectStats(seq iter.Seq[string], poolSize int) (types.Histogram, error) {
	sc, err := NewStatsCollector(poolSize, nil)
	if err != nil {
		return nil, err
	}

	sc.AddSeq(seq)

	return sc.Histogram(), nil
}

// CollectStats tallies how many keys from seq each partition in this
// worker's pool would own, using this Partitioner's assigner.
//
// The scheduling layer uses the result to verify load balance across the
// pool; the imbalance ratio is also forwarded to the configured metrics
// collector. Rebalancing policy itself is an external decision.
//
// Parameters:
//   - seq: Key sequence (may be lazily produced and arbitrarily large)
//
// Returns:
//   - types.Histogram: Dense histogram with PoolSize entries
func (p *Partitioner) CollectStats(seq iter.Seq[string]) types.Histogram {
	start := time.Now()

	sc, err := NewStatsCollector(p.poolSize, p.assigner)
	if err != nil {
		// Unreachable: p.poolSize was validated at construction.
		p.logger.Error("stats collector rejected validated pool size", "pool_size", p.poolSize, "error", err)
		return make(types.Histogram, 0)
	}

	sc.AddSeq(seq)
	hist := sc.Histogram()

	imbalance := hist.Imbalance()
	p.metrics.RecordStatsCollection(hist.Total(), time.Since(start).Seconds())
	p.metrics.RecordImbalance(imbalance)
	p.logger.Debug("partition statistics collected",
		"keys", hist.Total(),
		"pool_size", p.poolSize,
		"imbalance", imbalance,
	)

	return hist
}
