// Package types provides core type definitions and interfaces for the crawlshard library.
//
// This package contains shared types that are used across multiple packages in the
// crawlshard library. By keeping these types in a separate package, we avoid import
// cycles between the main crawlshard package and its internal implementations.
//
// Key types:
//   - Assigner: Key ownership calculation interface
//   - Histogram: Dense per-partition key counts
//   - Membership: A worker's identity and pool size
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
