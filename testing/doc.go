// Package testing provides test utilities for the crawlshard library.
//
// This package offers helpers for setting up test environments, particularly
// embedded NATS servers for exercising the KV-backed pool source. It follows
// Go's convention of providing testing utilities in a dedicated package
// (similar to net/http/httptest).
//
// Key utilities:
//   - StartEmbeddedNATS: Single NATS server with JetStream
//   - CreateJetStreamKV: Convenience wrapper for KV bucket creation
//   - NewTestLogger: types.Logger writing through testing.T
//
// Example usage:
//
//	import (
//	    "testing"
//	    shardtest "github.com/arloliu/crawlshard/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    _, nc := shardtest.StartEmbeddedNATS(t)
//	    // Use nc for your tests
//	}
package testing
