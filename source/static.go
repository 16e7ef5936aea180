package source

import (
	"context"

	"github.com/arloliu/crawlshard/types"
)

// Static implements a pool source with a fixed identity and pool size.
type Static struct {
	membership types.Membership
}

var _ types.PoolSource = (*Static)(nil)

// NewStatic creates a new static pool source.
//
// The source returns a fixed membership that never changes. Useful for tests
// and deployments where identity and pool size come from flags or the
// environment.
//
// Parameters:
//   - workerID: This worker's declared identity
//   - poolSize: Total number of workers sharing the key space
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic("crawler-3", 8)
//	p, err := crawlshard.NewFromSource(ctx, src)
func NewStatic(workerID string, poolSize int) *Static {
	return &Static{
		membership: types.Membership{
			WorkerID: workerID,
			PoolSize: poolSize,
		},
	}
}

// Membership returns the fixed membership.
//
// Returns:
//   - types.Membership: The configured identity and pool size
//   - error: Always nil (never fails)
func (s *Static) Membership(_ context.Context) (types.Membership, error) {
	return s.membership, nil
}
