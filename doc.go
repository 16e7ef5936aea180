// Package crawlshard provides coordinator-free work partitioning for
// distributed crawlers.
//
// Crawlshard answers exactly one question for a worker in a fixed-size pool:
// "does this worker own this URL right now?" Ownership is a pure function of
// the key's bytes and the pool size, so arbitrarily many independent
// processes agree on the partitioning without a central coordinator tracking
// per-URL ownership.
//
// # Quick Start
//
// Each worker process constructs one Partitioner from its declared identity
// and the pool's total size:
//
//	import "github.com/arloliu/crawlshard"
//
//	cfg := crawlshard.Config{
//	    WorkerID: "crawler-3",
//	    PoolSize: 8,
//	}
//
//	p, err := crawlshard.New(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for url := range frontier.Discovered() {
//	    if p.ShouldProcess(url) {
//	        fetchQueue.Enqueue(url)
//	    }
//	}
//
// # Key Features
//
//   - Deterministic Ownership: hash(key) mod poolSize with a stable 32-bit
//     digest; identical across processes, languages, and runs
//   - Ordinal Resolution: worker identities with numeric suffixes
//     ("crawler-3") map directly to ordinal 3 for human-auditable ownership;
//     any other identity resolves through the hash fallback
//   - Partition Statistics: dense per-partition histograms over arbitrarily
//     large key batches with memory bounded by the pool size
//   - Pluggable Assigners: the baseline modulo mapping, or a consistent-hash
//     ring that minimizes reassignment churn on pool resizes
//
// # Architecture
//
// The core holds no mutable shared state. Every operation recomputes its
// answer from its arguments plus the two immutable fields captured at
// construction (worker identity, pool size), so ShouldProcess and
// CollectStats are safe to call concurrently from any number of goroutines
// without locking. The only cross-process agreement required is the pool
// size and assigner configuration, enforced at deployment time by the worker
// pool manager; crawlshard cannot detect a mismatch locally.
//
// # Advanced Usage
//
// Custom assigner with options:
//
//	import (
//	    "github.com/arloliu/crawlshard"
//	    "github.com/arloliu/crawlshard/assigner"
//	)
//
//	a := assigner.NewRing(
//	    assigner.WithVirtualNodes(300),
//	)
//
//	p, err := crawlshard.New(&cfg,
//	    crawlshard.WithAssigner(a),
//	    crawlshard.WithLogger(logger),
//	)
//
// Pool membership can also be supplied by a source, such as the NATS
// JetStream KV claimer in the source package:
//
//	src := source.NewKVClaimer(kv, "crawler", 8, 30*time.Second, logger)
//	p, err := crawlshard.NewFromSource(ctx, src)
//
// See the examples/ directory for complete working examples.
package crawlshard
