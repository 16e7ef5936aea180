package crawlshard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/crawlshard/types"
)

// Config is the configuration for a Partitioner.
//
// Both fields are supplied by the external worker pool manager (e.g. from a
// membership or config service) and are immutable for the lifetime of the
// Partitioner. Scaling the pool means constructing a new Partitioner with a
// new PoolSize, never mutating an existing one — and note that with the
// baseline modulo assigner a resize reassigns close to (n-1)/n of all keys.
type Config struct {
	// WorkerID is this worker's declared identity (e.g. "crawler-3").
	//
	// Identities ending in a run of decimal digits map directly to that
	// ordinal (mod PoolSize), which gives operators predictable,
	// human-auditable ownership. Any other non-empty string resolves through
	// the hash fallback. Two identities that resolve to the same ordinal
	// collide and are indistinguishable to the assigner; avoiding that is the
	// pool manager's responsibility.
	WorkerID string `yaml:"workerId"`

	// PoolSize is the total number of workers sharing the key space.
	// Must be >= 1. All workers in the pool must agree on this value, or
	// keys are dropped or duplicated across the pool without any worker
	// being able to detect it locally.
	PoolSize int `yaml:"poolSize"`
}

// DefaultConfig returns the single-worker configuration used for local runs
// and tests: every key is owned by partition 0.
//
// Returns:
//   - Config: Configuration with WorkerID "worker-0" and PoolSize 1
func DefaultConfig() Config {
	return Config{
		WorkerID: "worker-0",
		PoolSize: 1,
	}
}

// LoadConfig reads a YAML configuration file.
//
// Parameters:
//   - path: Path to the YAML file
//
// Returns:
//   - Config: Parsed configuration (not yet validated)
//   - error: File or YAML parse error
//
// Example:
//
//	cfg, err := crawlshard.LoadConfig("crawlshard.yaml")
//	if err != nil { /* handle */ }
//	p, err := crawlshard.New(&cfg)
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration constraints and returns an error for invalid values.
//
// Hard Validation Rules:
//   - WorkerID must be non-empty
//   - PoolSize must be >= 1 (a zero or negative pool size is a deployment
//     misconfiguration with no sane silent default)
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.WorkerID == "" {
		return fmt.Errorf("%w: WorkerID must be non-empty", types.ErrInvalidWorkerID)
	}

	if cfg.PoolSize < 1 {
		return fmt.Errorf("%w: got %d", types.ErrInvalidPoolSize, cfg.PoolSize)
	}

	return nil
}
