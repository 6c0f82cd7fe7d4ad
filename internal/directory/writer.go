package directory

import (
	"context"
	"fmt"

	"github.com/desertthunder/backstage/internal/cache"
	"github.com/desertthunder/backstage/internal/models"
	"github.com/desertthunder/backstage/internal/shared"
)

// Update applies a validated partial update to a profile.
//
// The patch is already allow-listed by construction ([models.ProfilePatch];
// use [models.PatchFromMap] for map-shaped input). An empty patch fails with
// [shared.ErrEmptyPatch] and nothing is mutated. The current profile is
// loaded through the same chain as Get, the patch is merged on top, and the
// result is persisted to the cache; that write must succeed for the call to
// succeed. Propagation to the authoritative store is best-effort; the cache
// remains the source of truth for subsequent reads.
func (e *Engine) Update(ctx context.Context, id string, patch models.ProfilePatch) (*models.ArtistProfile, error) {
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: artist %s", shared.ErrEmptyPatch, id)
	}

	current, _, err := e.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := patch.Apply(*current)

	if err := cache.PutProfile(e.cache, &merged); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrCacheWrite, err)
	}

	e.propagate(ctx, &merged, patch)

	return &merged, nil
}

// propagate forwards the patch fields to the authoritative store. Failures
// are logged and swallowed; the cache already holds the merged record.
func (e *Engine) propagate(ctx context.Context, profile *models.ArtistProfile, patch models.ProfilePatch) {
	if e.store == nil || profile.Email == "" {
		return
	}

	saveCtx, cancel := context.WithTimeout(ctx, e.storeTimeout)
	defer cancel()

	if err := e.store.SaveFields(saveCtx, profile.Email, patch); err != nil {
		e.logger.Warn("store propagation failed, cache remains source of truth",
			"artist", profile.ID, "error", err)
	}
}
