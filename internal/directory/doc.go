// Package directory implements the artist directory core: profile
// resolution, validated updates, popularity ranking, synthetic catalog
// generation, and genre-similarity recommendations.
//
// The central abstraction is [Engine], which orchestrates reads and writes
// across the profile cache, the authoritative relational store, and the
// hand-authored baseline set. Resolution is a read-through chain
// (cache → store+baseline merge → baseline) where every dependency failure
// degrades to the next-lower-fidelity source; only total absence across all
// tiers surfaces as [shared.ErrArtistNotFound].
//
// Catalog generation and similarity scoring are pure computations over
// resolved profiles; they never touch storage.
package directory
