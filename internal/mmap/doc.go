// Package mmap maps cached dump files read-only into memory.
//
// The title dump is close to a gigabyte once decompressed. Mapping it lets
// the load workers slice lines straight out of the page cache instead of
// copying the file into the Go heap first.
//
// Bytes must not be used after Close. Everything decoded from a mapping that
// has to outlive it must be copied.
//
// Unix uses mmap(2) and madvise(2); Windows uses MapViewOfFile and ignores
// access hints.
package mmap
