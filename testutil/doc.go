// Package testutil generates synthetic IMDb dumps for tests and benchmarks.
//
// All randomness goes through RNG, so a seed reproduces the same dump.
package testutil
