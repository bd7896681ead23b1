// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(s3.NewFromConfig(cfg), "my-bucket", "diagrams/")
//
//	err := topogo.SaveMatrix(ctx, store, "complex.bin", m)
//
// # Features
//
//   - Range reads for efficient partial fetches
//   - Multipart uploads for large matrices
//   - CRC32C integrity validation
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
