// Package minio provides a BlobStore implementation using the MinIO client.
//
// It serves dataset dumps mirrored into MinIO or any other S3-compatible
// system (Ceph, SeaweedFS, Garage) without pulling in the AWS SDK.
//
// # Basic Usage
//
//	store, err := minio.Connect(minio.Config{
//	    Endpoint:  "localhost:9000",
//	    AccessKey: "minioadmin",
//	    SecretKey: "minioadmin",
//	    Bucket:    "datasets",
//	    Prefix:    "imdb/",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	st, err := storage.Open(ctx, storage.Config{CacheDir: dir, Source: store})
package minio
