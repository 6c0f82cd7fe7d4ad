package directory

import (
	"context"
	"sort"

	"github.com/desertthunder/backstage/internal/cache"
	"github.com/desertthunder/backstage/internal/models"
)

// DefaultChartLimit is the listing size when the caller passes no limit.
const DefaultChartLimit = 12

// List builds the ranked public listing of artists.
//
// The working set is seeded with every baseline profile, then overlaid with
// every profile found in the cache namespace; cache entries win on id
// collision since the cache represents live state. Cache entries missing an
// avatar borrow the baseline's while overlaying. The merged set is sorted by
// total play count descending (stable on ties) and truncated to limit.
//
// A failed cache scan degrades to the baseline set alone; the call never
// errors when baselines exist.
func (e *Engine) List(ctx context.Context, limit int) []models.PublicProfile {
	if limit <= 0 {
		limit = DefaultChartLimit
	}

	working := make(map[string]models.ArtistProfile, len(e.baselines))
	order := BaselineIDs(e.baselines)
	for _, id := range order {
		working[id] = e.baselines[id]
	}

	cached, err := cache.ScanProfiles(e.cache)
	if err != nil {
		e.logger.Warn("cache scan failed, ranking baseline set only", "error", err)
	} else {
		for _, profile := range cached {
			if ctx.Err() != nil {
				break
			}

			if baseline, ok := e.baselines[profile.ID]; ok && profile.Avatar == "" {
				profile.Avatar = baseline.Avatar
			}
			if _, seen := working[profile.ID]; !seen {
				order = append(order, profile.ID)
			}
			working[profile.ID] = profile
		}
	}

	ranked := make([]models.ArtistProfile, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, working[id])
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Plays > ranked[j].Plays
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	listing := make([]models.PublicProfile, 0, len(ranked))
	for _, profile := range ranked {
		listing = append(listing, profile.Public())
	}

	return listing
}
