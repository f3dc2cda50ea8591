// Package storage keeps decompressed copies of the title and ratings dumps in
// a local cache directory and exposes them as byte buffers for loading.
//
// Cached files are refreshed from a blobstore.BlobStore when they are
// missing, older than Config.MaxAge, or when Config.ForceUpdate is set.
// Uncompressed caches are memory mapped; LZ4 and Zstandard caches trade disk
// space for a decompression pass into memory accounted against the
// resource.Controller.
package storage
