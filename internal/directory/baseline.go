package directory

import (
	"sort"
	"time"

	"github.com/desertthunder/backstage/internal/models"
)

// Baselines returns the hand-authored default profiles used when no live
// data exists for an artist. The map is rebuilt on every call so callers can
// mutate their copy freely.
func Baselines() map[string]models.ArtistProfile {
	seeded := []models.ArtistProfile{
		{
			ID:         "nova-era",
			Name:       "Nova Era",
			Email:      "nova@backstage.fm",
			Bio:        "Analog synths, digital hearts. Berlin-based electronic duo.",
			Avatar:     "https://cdn.backstage.fm/avatars/nova-era.jpg",
			Location:   "Berlin",
			Genres:     []string{"Electronic", "Synth-pop"},
			Plays:      412000,
			Followers:  18200,
			Concerts:   34,
			TrackCount: 45,
			Rating:     4.7,
			Verified:   true,
			Socials:    models.SocialLinks{"instagram": "@novaera", "spotify": "novaera"},
			CreatedAt:  time.Date(2021, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         "june-harbor",
			Name:       "June Harbor",
			Email:      "june@backstage.fm",
			Bio:        "Folk songs for long drives and short summers.",
			Avatar:     "https://cdn.backstage.fm/avatars/june-harbor.jpg",
			Location:   "Portland",
			Genres:     []string{"Folk", "Indie"},
			Plays:      158000,
			Followers:  9400,
			Concerts:   52,
			TrackCount: 28,
			Rating:     4.5,
			Socials:    models.SocialLinks{"instagram": "@juneharbor", "youtube": "juneharbormusic"},
			CreatedAt:  time.Date(2020, 7, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         "mc-vela",
			Name:       "MC Vela",
			Email:      "vela@backstage.fm",
			Bio:        "Bars over boom bap. São Paulo to the world.",
			Avatar:     "https://cdn.backstage.fm/avatars/mc-vela.jpg",
			Location:   "São Paulo",
			Genres:     []string{"Hip-Hop", "Rap"},
			Plays:      623000,
			Followers:  41000,
			Concerts:   61,
			TrackCount: 38,
			Rating:     4.8,
			Verified:   true,
			Socials:    models.SocialLinks{"instagram": "@mcvela", "tiktok": "@mcvela", "soundcloud": "mcvela"},
			CreatedAt:  time.Date(2019, 11, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         "glass-atlas",
			Name:       "Glass Atlas",
			Email:      "glass@backstage.fm",
			Bio:        "Shoegaze walls and whispered choruses.",
			Avatar:     "https://cdn.backstage.fm/avatars/glass-atlas.jpg",
			Location:   "Manchester",
			Genres:     []string{"Rock", "Alternative"},
			Plays:      287000,
			Followers:  15600,
			Concerts:   47,
			TrackCount: 33,
			Rating:     4.4,
			Socials:    models.SocialLinks{"twitter": "@glassatlas", "spotify": "glassatlas"},
			CreatedAt:  time.Date(2020, 1, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         "lumen-koi",
			Name:       "Lumen Koi",
			Email:      "lumen@backstage.fm",
			Bio:        "Lo-fi beats to label demos to.",
			Avatar:     "https://cdn.backstage.fm/avatars/lumen-koi.jpg",
			Location:   "Seoul",
			Genres:     []string{"Lo-fi", "Chillout"},
			Plays:      96000,
			Followers:  7200,
			Concerts:   12,
			TrackCount: 19,
			Rating:     4.2,
			Socials:    models.SocialLinks{"youtube": "lumenkoi", "soundcloud": "lumenkoi"},
			CreatedAt:  time.Date(2022, 5, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         "ada-quinn",
			Name:       "Ada Quinn",
			Email:      "ada@backstage.fm",
			Bio:        "Jazz piano, late sets, later nights.",
			Avatar:     "https://cdn.backstage.fm/avatars/ada-quinn.jpg",
			Location:   "New Orleans",
			Genres:     []string{"Jazz"},
			Plays:      74000,
			Followers:  5100,
			Concerts:   88,
			TrackCount: 24,
			Rating:     4.9,
			Verified:   true,
			Socials:    models.SocialLinks{"instagram": "@adaquinnjazz"},
			CreatedAt:  time.Date(2018, 9, 17, 0, 0, 0, 0, time.UTC),
		},
	}

	baselines := make(map[string]models.ArtistProfile, len(seeded))
	for _, profile := range seeded {
		profile.Normalize()
		baselines[profile.ID] = profile
	}

	return baselines
}

// BaselineIDs returns the baseline identifiers in a stable order.
func BaselineIDs(baselines map[string]models.ArtistProfile) []string {
	ids := make([]string, 0, len(baselines))
	for id := range baselines {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
