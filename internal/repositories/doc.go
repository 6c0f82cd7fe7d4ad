// Package repositories provides the persistence layer over the authoritative
// relational store.
//
// The store is the system of record for a subset of profile fields: any
// column may be NULL, meaning the store holds no authoritative value for
// that field. Lookups are keyed by the artist's contact email (the stable
// natural key) and return a [models.ProfilePatch] so the resolver can merge
// authoritative fields over the baseline with the same machinery profile
// updates use.
package repositories
