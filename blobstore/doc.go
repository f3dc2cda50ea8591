// Package blobstore abstracts where the compressed dataset dumps come from.
//
// A BlobStore only needs to open named blobs and serve byte ranges from them;
// the storage package streams each dump through a ranged read, decompresses
// it and keeps the result in a local cache directory.
//
// # Built-in Implementations
//
//   - LocalStore: pre-downloaded files, memory mapped
//   - MemoryStore: in-memory blobs for tests
//   - HTTPStore: the public dataset endpoint or any mirror serving Range requests
//   - s3.Store: Amazon S3 via aws-sdk-go-v2
//   - minio.Store: MinIO and other S3-compatible services
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	}
//
//	type Blob interface {
//	    io.Closer
//	    Size() int64
//	    ReadRange(ctx, off, n int64) (io.ReadCloser, error)
//	}
//
// Blobs backed by addressable memory may also implement Mappable.
package blobstore
