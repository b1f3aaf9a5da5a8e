// Package blobstore provides storage abstraction for index snapshots.
//
// Store is the interface for reading and writing snapshot blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem with atomic replace
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3 via aws-sdk-go-v2
//   - minio.Store: MinIO and S3-compatible storage
//
// # Wrappers
//
//   - ThrottledStore: caps read/write throughput with a token bucket
//
// # Custom Implementations
//
// Implement the Store interface to support custom storage backends:
//
//	type Store interface {
//	    Open(ctx, name) (io.ReadCloser, error)
//	    Put(ctx, name, data) error
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
package blobstore
