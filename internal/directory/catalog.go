package directory

import (
	"fmt"
	"strings"

	"github.com/desertthunder/backstage/internal/models"
)

// Catalog length bounds: profiles without a track count get a small default
// catalog, and no catalog exceeds ten tracks regardless of track count.
const (
	defaultCatalogLength = 6
	maxCatalogLength     = 10
	defaultTotalPlays    = 100000
	fallbackAnchorYear   = 2024
)

// titlePools holds curated track titles per genre label (lowercased key).
// Genres without a curated pool fall back to the generic numbered pool.
var titlePools = map[string][]string{
	"electronic": {"Neon Circuit", "Voltage Dreams", "Midnight Protocol", "Static Bloom", "Signal Chase", "Afterglow Engine"},
	"synth-pop":  {"Chrome Hearts", "Polaroid Summer", "Arcade Romance", "Violet Static", "Runaway Frame"},
	"house":      {"Warehouse Dawn", "Four on the Floor", "Sugar Rush", "Deep End", "Velvet Loop"},
	"lo-fi":      {"Rainy Window", "Coffee Ring", "Paper Planes", "Slow Orbit", "Dust and Vinyl"},
	"chillout":   {"Low Tide", "Golden Hour", "Drifting", "Soft Focus", "Harbor Lights"},
	"rock":       {"Gasoline Sunrise", "Wrecking Season", "Hollow Crown", "Last Exit", "Thunder County"},
	"alternative": {"Glass Teeth", "Quiet Riot Act", "Fading West", "Porcelain", "Second Skin"},
	"indie":      {"Attic Tapes", "Sunday Parade", "Ghost Town Picnic", "Wallflower Waltz", "Open Road Letters"},
	"folk":       {"River Stone", "Harvest Moon Song", "Wayfarer", "Old Pine", "Lantern Light"},
	"hip-hop":    {"Concrete Poetry", "Crown Heavy", "Midnight Run", "No Ceilings Here", "Vela's Theme", "Pressure Makes"},
	"rap":        {"Sixteen Bars Deep", "Paper Chase", "Backblock Stories", "Ventilation", "Cold Open"},
	"r&b":        {"Velvet Hour", "Slow Burn", "Honey and Smoke", "Midnight Call", "Satin Moon"},
	"jazz":       {"Blue Hour Stroll", "Uptown Sketch", "Night Cab", "Brass Garden", "Minor Detour"},
	"pop":        {"Confetti Rain", "Heartbeat Radio", "Supernova Kiss", "Technicolor", "Weekend Forever"},
}

// fallbackTitles is the generic numbered pool for uncurated genres.
var fallbackTitles = []string{
	"Track No. 1", "Track No. 2", "Track No. 3", "Track No. 4",
	"Track No. 5", "Track No. 6", "Track No. 7", "Track No. 8",
}

// GenerateCatalog synthesizes a plausible track list from a profile
// snapshot. Pure function: no I/O, no mutable randomness, so two calls on an
// identical snapshot yield identical output.
//
// Per-track variability derives entirely from (profile id, track index): the
// id's character codes sum to a seed, and each track's variant value is
// (seed × (i+1) × 7) mod 100.
func GenerateCatalog(profile *models.ArtistProfile) []models.CatalogTrack {
	length := int(profile.TrackCount)
	if length <= 0 {
		length = defaultCatalogLength
	}
	if length > maxCatalogLength {
		length = maxCatalogLength
	}

	totalPlays := profile.Plays
	if totalPlays <= 0 {
		totalPlays = defaultTotalPlays
	}

	seed := catalogSeed(profile.ID)
	primary := profile.PrimaryGenre()
	secondary := profile.SecondaryGenre()

	anchorYear := fallbackAnchorYear
	if !profile.CreatedAt.IsZero() {
		anchorYear = profile.CreatedAt.Year()
	}

	tracks := make([]models.CatalogTrack, 0, length)
	for i := 0; i < length; i++ {
		s := trackVariant(seed, i)

		// The secondary genre surfaces on every third track when present.
		genre := primary
		if secondary != "" && i%3 == 2 {
			genre = secondary
		}
		pool := poolFor(genre)
		title := pool[i%len(pool)]

		plays := int64(float64(totalPlays) / float64(length) * (1 - float64(i)*0.06))
		likes := int64(float64(plays) * (0.03 + float64(s%5)*0.01))

		tracks = append(tracks, models.CatalogTrack{
			ID:          fmt.Sprintf("%s-track-%d", profile.ID, i+1),
			Title:       title,
			ArtistID:    profile.ID,
			ArtistName:  profile.Name,
			Duration:    fmt.Sprintf("%d:%02d", 2+s%3, 10+s%50),
			Plays:       plays,
			Likes:       likes,
			Genre:       genre,
			ReleaseDate: fmt.Sprintf("%04d-%02d-%02d", anchorYear-i/3, 1+s%12, 1+s%28),
			Explicit:    s%7 == 0,
		})
	}

	return tracks
}

// catalogSeed sums the character codes of an artist id.
func catalogSeed(id string) int {
	seed := 0
	for _, r := range id {
		seed += int(r)
	}
	return seed
}

// trackVariant derives the sole per-track variability value from (seed, index).
func trackVariant(seed, i int) int {
	return (seed * (i + 1) * 7) % 100
}

// poolFor returns the curated title pool for a genre label, or the generic
// numbered fallback for uncurated genres.
func poolFor(genre string) []string {
	if pool, ok := titlePools[strings.ToLower(genre)]; ok {
		return pool
	}
	return fallbackTitles
}
