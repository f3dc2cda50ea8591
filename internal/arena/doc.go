// Package arena provides a sealed, append-only container that hands out
// dense integer cookies.
//
// # Safety
//
// A Cookie is only ever created by Push, and nothing can be removed from an
// Arena, so every cookie an Arena issued stays valid for the Arena's lifetime.
// Get still bounds-checks and reports foreign cookies instead of panicking.
//
// Items are stored in fixed-size chunks: growing the arena never moves an
// existing item, so pointers returned by Get remain stable while loading.
package arena
