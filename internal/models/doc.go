// Package models defines domain entities for the Backstage artist directory service.
//
// The package contains two categories of types:
//
// 1. Stored entities: records that live in the profile cache and the relational store
//   - [ArtistProfile] : the full artist record, merged across storage tiers
//   - [ProfilePatch] : a typed partial update; nil fields mean "not provided"
//
// 2. Derived projections: shapes computed on demand and never persisted
//   - [PublicProfile] : the listing/recommendation projection of a profile
//   - [ArtistStats] : the lightweight stats-only projection
//   - [CatalogTrack] : a synthesized track from the catalog generator
//   - [SimilarityResult] : a candidate profile with its match score
//
// ArtistProfile carries a fixed-key social handle map ([SocialLinks]); Normalize
// guarantees every platform key is present so consumers never see a partially
// populated map.
package models
