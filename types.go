package crawlshard

import "github.com/arloliu/crawlshard/types"

// Re-export types from the internal types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root crawlshard
// package, while still providing a convenient `crawlshard.Histogram`,
// `crawlshard.Logger`, etc. for users.
type (
	Histogram  = types.Histogram
	Membership = types.Membership
)

// Re-export interfaces from the internal types package for convenience.
type (
	Assigner         = types.Assigner
	PoolSource       = types.PoolSource
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
)
