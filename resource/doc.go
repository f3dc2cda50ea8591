// Package resource bounds what fetching and decompressing the dumps may
// consume: memory for decompressed buffers, concurrent downloads and
// download bandwidth.
//
// A nil *Controller imposes no limits, so callers never need to check for one.
package resource
