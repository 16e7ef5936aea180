package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum32_Determinism(t *testing.T) {
	t.Parallel()

	keys := []string{"", "a", "http://a.com/1", "http://a.com/2", "http://b.com/1"}
	for _, key := range keys {
		first := Sum32(key)
		for range 10 {
			require.Equal(t, first, Sum32(key), "key %q not stable", key)
		}
	}
}

func TestSum32_KnownValues(t *testing.T) {
	t.Parallel()

	// First 4 bytes of the MD5 digest, big-endian. Pinned so that any change
	// to the digest silently reassigning every key fails loudly here.
	// md5("") = d41d8cd98f00b204e9800998ecf8427e
	require.Equal(t, uint32(0xd41d8cd9), Sum32(""))
	// md5("alpha") = 2c1743a391305fbf367df8e4f069f9f9
	require.Equal(t, uint32(0x2c1743a3), Sum32("alpha"))
	// md5("abc") = 900150983cd24fb0d6963f7d28e17f72
	require.Equal(t, uint32(0x90015098), Sum32("abc"))
}

func TestSum32_Avalanche(t *testing.T) {
	t.Parallel()

	// Sequentially similar URLs (paginated links) must not produce
	// sequentially similar hashes.
	a := Sum32("http://example.com/list?page=1")
	b := Sum32("http://example.com/list?page=2")
	require.NotEqual(t, a, b)
	require.NotEqual(t, a+1, b)
}
