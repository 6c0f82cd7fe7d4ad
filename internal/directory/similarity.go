package directory

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/desertthunder/backstage/internal/cache"
	"github.com/desertthunder/backstage/internal/models"
)

// DefaultSimilarLimit is the recommendation size when the caller passes no limit.
const DefaultSimilarLimit = 6

// Scoring weights for genre similarity.
const (
	exactMatchWeight  = 2.0
	familyBonusWeight = 0.5
	popularityWeight  = 0.1
)

// genreFamilies partitions genre labels into curated groupings used to
// compute soft similarity beyond exact string match. A genre may belong to
// multiple families; bonuses from different families accumulate.
var genreFamilies = map[string][]string{
	"electronic": {"electronic", "synth-pop", "house", "techno", "edm", "trance", "ambient", "drum and bass"},
	"rock":       {"rock", "alternative", "indie", "punk", "metal", "grunge", "shoegaze"},
	"urban":      {"hip-hop", "rap", "r&b", "trap", "soul", "funk"},
	"acoustic":   {"folk", "indie", "acoustic", "singer-songwriter", "country", "bluegrass"},
	"chill":      {"lo-fi", "chillout", "ambient", "downtempo", "jazz", "bossa nova"},
}

// Similar recommends artists related to the queried id by genre similarity.
//
// The candidate pool is the baseline set merged with every cache-resolvable
// profile (cache wins on collision), minus the queried artist. Candidates
// must share at least one exact genre or one genre family with the query;
// the popularity term alone never qualifies a candidate. Scores are sorted
// descending, truncated to topN, and rounded to one decimal for display.
func (e *Engine) Similar(ctx context.Context, id string, topN int) ([]models.SimilarityResult, error) {
	if topN <= 0 {
		topN = DefaultSimilarLimit
	}

	query, _, err := e.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	queryGenres := genreSet(query.Genres)
	queryFamilies := familySet(queryGenres)

	results := make([]models.SimilarityResult, 0)
	for _, candidate := range e.candidatePool(id) {
		overlap := 0
		for genre := range genreSet(candidate.Genres) {
			if _, ok := queryGenres[genre]; ok {
				overlap++
			}
		}

		familyBonus := 0.0
		for family := range familySet(genreSet(candidate.Genres)) {
			if _, ok := queryFamilies[family]; ok {
				familyBonus += familyBonusWeight
			}
		}

		// Relatedness requires genre or family overlap; popularity only
		// breaks ties among genuinely related artists.
		if overlap == 0 && familyBonus == 0 {
			continue
		}

		score := exactMatchWeight*float64(overlap) +
			familyBonus +
			popularityWeight*math.Log10(math.Max(float64(candidate.Plays), 1))

		results = append(results, models.SimilarityResult{
			Artist:     candidate.Public(),
			MatchScore: score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	if len(results) > topN {
		results = results[:topN]
	}

	for i := range results {
		results[i].MatchScore = math.Round(results[i].MatchScore*10) / 10
	}

	return results, nil
}

// candidatePool merges the baseline set with every cached profile (cache
// wins on collision) and removes the queried id. A failed cache scan
// degrades to the baseline set alone.
func (e *Engine) candidatePool(excludeID string) []models.ArtistProfile {
	working := make(map[string]models.ArtistProfile, len(e.baselines))
	order := BaselineIDs(e.baselines)
	for _, id := range order {
		working[id] = e.baselines[id]
	}

	cached, err := cache.ScanProfiles(e.cache)
	if err != nil {
		e.logger.Warn("cache scan failed, recommending from baseline set only", "error", err)
	} else {
		for _, profile := range cached {
			if _, seen := working[profile.ID]; !seen {
				order = append(order, profile.ID)
			}
			working[profile.ID] = profile
		}
	}

	pool := make([]models.ArtistProfile, 0, len(order))
	for _, id := range order {
		if id == excludeID {
			continue
		}
		pool = append(pool, working[id])
	}

	return pool
}

// genreSet lowercases a genre list into a set for case-insensitive matching.
func genreSet(genres []string) map[string]struct{} {
	set := make(map[string]struct{}, len(genres))
	for _, genre := range genres {
		set[strings.ToLower(genre)] = struct{}{}
	}
	return set
}

// familySet returns the names of every family containing at least one of
// the given (lowercased) genres.
func familySet(genres map[string]struct{}) map[string]struct{} {
	families := make(map[string]struct{})
	for family, members := range genreFamilies {
		for _, member := range members {
			if _, ok := genres[member]; ok {
				families[family] = struct{}{}
				break
			}
		}
	}
	return families
}
