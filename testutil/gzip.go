package testutil

import (
	"bytes"

	"github.com/klauspost/compress/gzip"

	"github.com/hupe1980/tvrank/blobstore"
)

// Gzip compresses b the way the dataset endpoint serves dumps.
func Gzip(b []byte) []byte {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(b); err != nil {
		panic(err)
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// Publish stores the gzipped dumps under their dataset names.
func (d *Dump) Publish(store *blobstore.MemoryStore) {
	store.Put("title.basics.tsv.gz", Gzip(d.Titles()))
	store.Put("title.ratings.tsv.gz", Gzip(d.Ratings()))
}
