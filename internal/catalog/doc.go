// Package catalog implements one shard of the title index.
//
// A Catalog owns two arenas of titles, one per classification, and for each
// of them an index from lowercased name to start year to cookies, an index
// from identifier to cookie and one roaring bitmap of cookies per genre.
//
// A Catalog is filled by exactly one goroutine through Insert. Once loading
// has finished it is never mutated again and every lookup is safe for
// concurrent use without locking.
package catalog
