// Package blobstore provides storage abstraction for Topogo's matrix and
// diagram files.
//
// BlobStore is the interface for reading and writing data blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem with atomic rename writes
//   - MemoryStore: In-memory store for tests
//   - Throttled: Byte-rate limited wrapper around any store
//   - s3.Store: Amazon S3 with range reads and streaming uploads
//   - minio.Store: MinIO and S3-compatible storage
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom storage backends:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)            // Open for reading
//	    Create(ctx, name) (WritableBlob, error)  // Create for streaming writes
//	    Put(ctx, name, data) error               // Atomic write
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
package blobstore
