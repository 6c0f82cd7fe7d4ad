package models

import (
	"fmt"
	"strings"
	"time"
)

// SocialPlatforms enumerates the fixed key set of the social handle map.
// Every profile carries all of these keys; unset platforms hold an empty string.
var SocialPlatforms = []string{"instagram", "twitter", "youtube", "tiktok", "soundcloud", "spotify"}

// SocialLinks maps a platform name to an artist's handle on that platform.
type SocialLinks map[string]string

// Normalized returns a copy of the map with every platform key present.
//
// Unknown keys are dropped so the map stays fixed-shape regardless of input.
func (s SocialLinks) Normalized() SocialLinks {
	out := make(SocialLinks, len(SocialPlatforms))
	for _, platform := range SocialPlatforms {
		out[platform] = s[platform]
	}
	return out
}

// Merge overlays the given handles onto the map per key.
//
// Only platforms present in overlay override; all other keys keep their
// current value. The result is always fully keyed.
func (s SocialLinks) Merge(overlay SocialLinks) SocialLinks {
	out := s.Normalized()
	for _, platform := range SocialPlatforms {
		if v, ok := overlay[platform]; ok {
			out[platform] = v
		}
	}
	return out
}

// ArtistProfile is the full artist record resolved across storage tiers.
//
// The identifier is immutable once assigned. Numeric aggregates are never
// negative and the social handle map is never partially populated; Normalize
// enforces both before a profile is stored or returned.
type ArtistProfile struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Bio        string      `json:"bio"`
	Avatar     string      `json:"avatar"`
	Location   string      `json:"location"`
	Genres     []string    `json:"genres"`
	Plays      int64       `json:"plays"`
	Followers  int64       `json:"followers"`
	Concerts   int64       `json:"concerts"`
	TrackCount int64       `json:"track_count"`
	Rating     float64     `json:"rating"`
	Balance    float64     `json:"balance"`
	Verified   bool        `json:"verified"`
	Socials    SocialLinks `json:"socials"`
	CreatedAt  time.Time   `json:"created_at"`
}

// Normalize enforces the profile invariants in place: non-negative aggregates
// and a fully keyed social handle map.
func (p *ArtistProfile) Normalize() {
	if p.Plays < 0 {
		p.Plays = 0
	}
	if p.Followers < 0 {
		p.Followers = 0
	}
	if p.Concerts < 0 {
		p.Concerts = 0
	}
	if p.TrackCount < 0 {
		p.TrackCount = 0
	}
	if p.Rating < 0 {
		p.Rating = 0
	}
	if p.Balance < 0 {
		p.Balance = 0
	}
	p.Socials = p.Socials.Normalized()
}

// Validate checks that the profile satisfies its storable invariants.
func (p *ArtistProfile) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("profile ID is required")
	}
	if p.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	if p.Email != "" && !strings.Contains(p.Email, "@") {
		return fmt.Errorf("invalid contact email: %s", p.Email)
	}
	if p.Plays < 0 || p.Followers < 0 || p.Concerts < 0 || p.TrackCount < 0 {
		return fmt.Errorf("numeric aggregates must be non-negative")
	}
	return nil
}

// PrimaryGenre returns the first genre, or "Music" when the list is empty.
func (p *ArtistProfile) PrimaryGenre() string {
	if len(p.Genres) == 0 {
		return "Music"
	}
	return p.Genres[0]
}

// SecondaryGenre returns the second genre, or "" when there is none.
func (p *ArtistProfile) SecondaryGenre() string {
	if len(p.Genres) < 2 {
		return ""
	}
	return p.Genres[1]
}

// Public projects the profile to its listing shape.
func (p *ArtistProfile) Public() PublicProfile {
	return PublicProfile{
		ID:           p.ID,
		Name:         p.Name,
		PrimaryGenre: p.PrimaryGenre(),
		Genres:       p.Genres,
		City:         p.Location,
		Followers:    p.Followers,
		Plays:        p.Plays,
		TrackCount:   p.TrackCount,
		Rating:       p.Rating,
		Avatar:       p.Avatar,
		Verified:     p.Verified,
	}
}

// Stats projects the profile to its stats-only shape.
func (p *ArtistProfile) Stats() ArtistStats {
	return ArtistStats{
		ID:         p.ID,
		Plays:      p.Plays,
		Followers:  p.Followers,
		Concerts:   p.Concerts,
		TrackCount: p.TrackCount,
		Rating:     p.Rating,
		Verified:   p.Verified,
	}
}

// PublicProfile is the reshaped subset of profile fields exposed to listing
// and recommendation consumers.
type PublicProfile struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	PrimaryGenre string   `json:"primary_genre"`
	Genres       []string `json:"genres"`
	City         string   `json:"city"`
	Followers    int64    `json:"followers"`
	Plays        int64    `json:"plays"`
	TrackCount   int64    `json:"track_count"`
	Rating       float64  `json:"rating"`
	Avatar       string   `json:"avatar"`
	Verified     bool     `json:"verified"`
}

// ArtistStats is the lightweight stats-only projection of a profile.
type ArtistStats struct {
	ID         string  `json:"id"`
	Plays      int64   `json:"plays"`
	Followers  int64   `json:"followers"`
	Concerts   int64   `json:"concerts"`
	TrackCount int64   `json:"track_count"`
	Rating     float64 `json:"rating"`
	Verified   bool    `json:"verified"`
}

// CatalogTrack is a synthesized track. Catalogs are generated on demand from
// a profile snapshot and never stored.
type CatalogTrack struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ArtistID    string `json:"artist_id"`
	ArtistName  string `json:"artist_name"`
	Duration    string `json:"duration"`
	Plays       int64  `json:"plays"`
	Likes       int64  `json:"likes"`
	Genre       string `json:"genre"`
	ReleaseDate string `json:"release_date"`
	Explicit    bool   `json:"explicit"`
}

// SimilarityResult pairs a candidate projection with its match score,
// rounded to one decimal place for display.
type SimilarityResult struct {
	Artist     PublicProfile `json:"artist"`
	MatchScore float64       `json:"match_score"`
}
