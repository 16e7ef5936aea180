// Package hash provides the key hashing primitives used by the assigners.
package hash

import (
	"crypto/md5" //nolint:gosec // non-cryptographic partitioning digest, stable across languages
	"encoding/binary"
)

// Sum32 maps an arbitrary string to a uniformly distributed 32-bit integer.
//
// The digest is the first four bytes of the MD5 checksum of the key's raw
// bytes, interpreted as a big-endian unsigned integer. MD5 is used for its
// ubiquity, not its cryptographic strength: independent worker processes in
// any language compute bit-identical values for the same input, which is what
// keeps partition ownership consistent across a heterogeneous pool. The
// avalanche behavior also scatters sequentially similar URLs (paginated links
// sharing a prefix) across partitions.
//
// Sum32 has no failure modes for any finite input, including the empty string.
func Sum32(key string) uint32 {
	sum := md5.Sum([]byte(key)) //nolint:gosec // see package note above

	return binary.BigEndian.Uint32(sum[:4])
}
