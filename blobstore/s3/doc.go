// Package s3 provides an S3 implementation of the blobstore.BlobStore interface
// for serving mirrored dataset dumps.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("imdb/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//
//	st, err := storage.Open(ctx, storage.Config{CacheDir: dir, Source: store})
//
// # Features
//
//   - Range reads through blobstore.Blob
//   - Parallel whole-object downloads via Download
//   - Configurable prefix
package s3
