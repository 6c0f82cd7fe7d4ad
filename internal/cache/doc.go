// Package cache implements the fast key-value store holding resolved artist
// profiles.
//
// Profiles are JSON-encoded values under one key per profile in the
// "artist_profile:" namespace. The [Store] interface is the seam the
// directory components depend on; [BadgerStore] is the production
// implementation (file-backed or fully in memory). Once a profile has been
// promoted into the cache it is treated as the source of truth for reads.
package cache
