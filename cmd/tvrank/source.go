package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/tvrank/blobstore"
	"github.com/hupe1980/tvrank/blobstore/minio"
	"github.com/hupe1980/tvrank/blobstore/s3"
)

var errUnknownSource = errors.New("unknown source")

func newSource(ctx context.Context, cfg *Config) (blobstore.BlobStore, error) {
	switch cfg.Source {
	case "", "http":
		return blobstore.NewHTTPStore(cfg.SourceURL)
	case "local":
		if cfg.LocalDir == "" {
			return nil, errors.New("local source requires TVRANK_LOCAL_DIR")
		}
		return blobstore.NewLocalStore(cfg.LocalDir), nil
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, errors.New("s3 source requires TVRANK_S3_BUCKET")
		}
		return s3.New(ctx, cfg.S3Bucket, s3.WithPrefix(cfg.S3Prefix), s3.WithRegion(cfg.S3Region))
	case "minio":
		if cfg.MinioEndpoint == "" || cfg.MinioBucket == "" {
			return nil, errors.New("minio source requires TVRANK_MINIO_ENDPOINT and TVRANK_MINIO_BUCKET")
		}
		return minio.Connect(minio.Config{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Secure:    cfg.MinioSecure,
			Bucket:    cfg.MinioBucket,
			Prefix:    cfg.MinioPrefix,
		})
	}
	return nil, fmt.Errorf("%w %q", errUnknownSource, cfg.Source)
}
