package crawlshard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 1, cfg.PoolSize)
	require.Equal(t, "worker-0", cfg.WorkerID)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		cfg := Config{WorkerID: "crawler-3", PoolSize: 8}
		require.NoError(t, cfg.Validate())
	})

	t.Run("empty worker ID", func(t *testing.T) {
		t.Parallel()

		cfg := Config{WorkerID: "", PoolSize: 8}
		require.ErrorIs(t, cfg.Validate(), ErrInvalidWorkerID)
	})

	t.Run("zero pool size", func(t *testing.T) {
		t.Parallel()

		cfg := Config{WorkerID: "crawler-3", PoolSize: 0}
		require.ErrorIs(t, cfg.Validate(), ErrInvalidPoolSize)
	})

	t.Run("negative pool size", func(t *testing.T) {
		t.Parallel()

		cfg := Config{WorkerID: "crawler-3", PoolSize: -2}
		require.ErrorIs(t, cfg.Validate(), ErrInvalidPoolSize)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "crawlshard.yaml")
		data := "workerId: crawler-5\npoolSize: 12\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, "crawler-5", cfg.WorkerID)
		require.Equal(t, 12, cfg.PoolSize)
		require.NoError(t, cfg.Validate())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("workerId: [unclosed"), 0o600))

		_, err := LoadConfig(path)
		require.Error(t, err)
	})
}
