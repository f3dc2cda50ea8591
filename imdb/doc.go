// Package imdb decodes the tab-separated IMDb dataset dumps.
//
// Two record kinds are supported: title basics (title.basics.tsv) and
// ratings (title.ratings.tsv). Parsing is pure: each function takes one
// newline-stripped line and returns the decoded value or an error that
// matches one of the sentinel errors of this package via errors.Is.
//
// Text fields are copied out of the input line, so decoded values never
// alias the caller's buffer.
package imdb
