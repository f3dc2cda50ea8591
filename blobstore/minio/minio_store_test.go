package minio

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/hupe1980/tvrank/blobstore"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	assert.Equal(t, blobstore.ErrNotFound, mapError(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.Equal(t, blobstore.ErrNotFound, mapError(minio.ErrorResponse{Code: "NotFound"}))

	other := errors.New("boom")
	assert.Equal(t, other, mapError(other))
}

func TestConnect(t *testing.T) {
	store, err := Connect(Config{Endpoint: "localhost:9000", Bucket: "b", Prefix: "imdb"})
	require.NoError(t, err)
	assert.Equal(t, "imdb/title.basics.tsv.gz", store.key("title.basics.tsv.gz"))

	_, err = Connect(Config{Endpoint: ""})
	assert.Error(t, err)
}

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	bucket := "test-tvrank"

	store, err := Connect(Config{
		Endpoint:  "localhost:9000",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Bucket:    bucket,
		Prefix:    "test-prefix/",
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()

	// Check if MinIO is reachable
	if _, err := store.client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	exists, err := store.client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, store.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	data := []byte("tconst\taverageRating\tnumVotes\n")
	require.NoError(t, store.Put(ctx, "title.ratings.tsv", data))

	blob, err := store.Open(ctx, "title.ratings.tsv")
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), blob.Size())

	rc, err := blob.ReadRange(ctx, 7, 13)
	require.NoError(t, err)
	part, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "averageRating", string(part))
	require.NoError(t, blob.Close())

	require.NoError(t, store.Delete(ctx, "title.ratings.tsv"))

	_, err = store.Open(ctx, "title.ratings.tsv")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
