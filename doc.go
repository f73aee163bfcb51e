// Package slices provides generic utility functions for working with slices in Go.
//
// It extends the standard library with in-place mutation helpers
// (ReplaceFirst, RemoveFirst, RemoveAll, Reverse), shuffling and sampling
// (Shuffle, SecureShuffle, Pick), and uniqueness helpers (ToSet, ToSetBy,
// Uniq) next to the usual membership queries.
//
// Every operation treats a nil slice as empty: degenerate inputs are silent
// no-ops, never errors. The single error condition across the package is a
// nil predicate, reported as ErrNilPredicate before anything is mutated.
package slices
