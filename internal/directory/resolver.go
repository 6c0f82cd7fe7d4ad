package directory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/backstage/internal/cache"
	"github.com/desertthunder/backstage/internal/models"
	"github.com/desertthunder/backstage/internal/shared"
)

// Source tags where a resolved profile came from. Informational only.
type Source string

const (
	SourceCache    Source = "cache"
	SourceMerged   Source = "merged"
	SourceBaseline Source = "baseline"
)

// AuthoritativeStore is the relational system of record for a subset of
// profile fields, keyed by the artist's contact email.
//
// FindByEmail returns (nil, nil) when no row exists; transport failures
// surface as errors and are always recovered locally by the resolver.
type AuthoritativeStore interface {
	FindByEmail(ctx context.Context, email string) (*models.ProfilePatch, error)
	SaveFields(ctx context.Context, email string, patch models.ProfilePatch) error
}

// Engine orchestrates profile resolution, updates, ranking, and
// recommendations across the cache, the authoritative store, and the
// baseline set.
type Engine struct {
	cache        cache.Store
	store        AuthoritativeStore
	baselines    map[string]models.ArtistProfile
	logger       *log.Logger
	storeTimeout time.Duration

	repairs sync.WaitGroup
}

// EngineOpts contains configuration options for creating an [Engine].
type EngineOpts struct {
	Cache        cache.Store
	Store        AuthoritativeStore
	Baselines    map[string]models.ArtistProfile
	Logger       *log.Logger
	StoreTimeout time.Duration
}

// NewEngine creates a new Engine with the provided dependencies.
func NewEngine(opts EngineOpts) *Engine {
	if opts.Baselines == nil {
		opts.Baselines = Baselines()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.StoreTimeout <= 0 {
		opts.StoreTimeout = 2 * time.Second
	}

	return &Engine{
		cache:        opts.Cache,
		store:        opts.Store,
		baselines:    opts.Baselines,
		logger:       opts.Logger,
		storeTimeout: opts.StoreTimeout,
	}
}

// tierResult is the explicit found/not-found outcome of one resolution tier.
// "No data at this tier" is not an error; tiers reserve errors for transport
// failures, which the chain recovers from by falling through.
type tierResult struct {
	profile *models.ArtistProfile
	source  Source
	found   bool
}

// Get resolves a profile by id through the tier chain, short-circuiting on
// the first hit: cache, then authoritative-store-over-baseline merge, then
// pure baseline. Lower-tier hits are written back to the cache best-effort.
//
// Returns [shared.ErrArtistNotFound] only when no tier holds any data.
func (e *Engine) Get(ctx context.Context, id string) (*models.ArtistProfile, Source, error) {
	tiers := []func(ctx context.Context, id string) tierResult{
		e.fromCache,
		e.fromStoreMerge,
		e.fromBaseline,
	}

	for _, tier := range tiers {
		res := tier(ctx, id)
		if !res.found {
			continue
		}

		res.profile.Normalize()
		if res.source != SourceCache {
			e.writeBack(res.profile)
		}
		return res.profile, res.source, nil
	}

	return nil, "", fmt.Errorf("%w: %s", shared.ErrArtistNotFound, id)
}

// fromCache is tier 1: direct cache lookup with opportunistic repair.
//
// A cached entry missing its avatar is repaired from the baseline and the
// repair is written back asynchronously so it never blocks the read.
func (e *Engine) fromCache(_ context.Context, id string) tierResult {
	profile, err := cache.GetProfile(e.cache, id)
	if err != nil {
		if !errors.Is(err, shared.ErrCacheMiss) {
			e.logger.Warn("cache read failed, falling through", "artist", id, "error", err)
		}
		return tierResult{}
	}

	if baseline, ok := e.baselines[id]; ok && profile.Avatar == "" && baseline.Avatar != "" {
		profile.Avatar = baseline.Avatar
		e.repairAsync(*profile)
	}

	return tierResult{profile: profile, source: SourceCache, found: true}
}

// fromStoreMerge is tier 2: authoritative fields merged over the baseline.
//
// Runs only when a baseline exists for the id, since the baseline supplies
// the natural key for the store lookup. Transport failures are logged and
// recovered by falling through to the pure-baseline tier.
func (e *Engine) fromStoreMerge(ctx context.Context, id string) tierResult {
	baseline, ok := e.baselines[id]
	if !ok || e.store == nil {
		return tierResult{}
	}

	lookupCtx, cancel := context.WithTimeout(ctx, e.storeTimeout)
	defer cancel()

	patch, err := e.store.FindByEmail(lookupCtx, baseline.Email)
	if err != nil {
		e.logger.Warn("authoritative store degraded, using baseline", "artist", id, "error", err)
		return tierResult{}
	}
	if patch == nil {
		return tierResult{}
	}

	merged := patch.Apply(baseline)
	return tierResult{profile: &merged, source: SourceMerged, found: true}
}

// fromBaseline is tier 3: the pure hand-authored default.
func (e *Engine) fromBaseline(_ context.Context, id string) tierResult {
	baseline, ok := e.baselines[id]
	if !ok {
		return tierResult{}
	}

	profile := baseline
	return tierResult{profile: &profile, source: SourceBaseline, found: true}
}

// writeBack promotes a lower-tier hit into the cache. Best-effort: a cache
// write failure must not fail the read it accompanies.
func (e *Engine) writeBack(profile *models.ArtistProfile) {
	if err := cache.PutProfile(e.cache, profile); err != nil {
		e.logger.Warn("cache write-back failed", "artist", profile.ID, "error", err)
	}
}

// repairAsync persists a read-path repair without blocking the response.
func (e *Engine) repairAsync(profile models.ArtistProfile) {
	e.repairs.Add(1)
	go func() {
		defer e.repairs.Done()
		if err := cache.PutProfile(e.cache, &profile); err != nil {
			e.logger.Warn("cache repair failed", "artist", profile.ID, "error", err)
		}
	}()
}

// waitRepairs blocks until in-flight repair writes settle. Test hook.
func (e *Engine) waitRepairs() {
	e.repairs.Wait()
}

// Stats resolves a profile and projects it to the stats-only shape.
func (e *Engine) Stats(ctx context.Context, id string) (*models.ArtistStats, Source, error) {
	profile, source, err := e.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}

	stats := profile.Stats()
	return &stats, source, nil
}
