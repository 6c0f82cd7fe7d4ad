package directory

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// WarmOpts contains configuration for bulk cache warming.
type WarmOpts struct {
	NumWorkers int     // Concurrent workers (default: 4)
	RateLimit  float64 // Resolutions per second (default: 20)
}

// WarmEntry records the outcome of warming a single profile.
type WarmEntry struct {
	ArtistID string
	Source   Source
	Error    error
}

// WarmResult summarizes a bulk cache warm.
type WarmResult struct {
	Total   int
	Warmed  int
	Failed  int
	Entries []WarmEntry
}

// Warm resolves every baseline profile through the tier chain so the cache
// holds a live entry for each, using a worker pool with rate limiting and
// non-blocking progress reporting.
//
// Individual failures are recorded, not fatal; the returned error is non-nil
// only when the context is cancelled before all ids are enqueued.
func (e *Engine) Warm(ctx context.Context, progress chan<- ProgressUpdate, opts WarmOpts) (*WarmResult, error) {
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 4
	}
	if opts.NumWorkers > 10 {
		opts.NumWorkers = 10
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 20
	}

	ids := BaselineIDs(e.baselines)
	result := &WarmResult{
		Total:   len(ids),
		Entries: make([]WarmEntry, 0, len(ids)),
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan string, len(ids))
	entries := make(chan WarmEntry, len(ids))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go e.warmWorker(ctx, &wg, jobs, entries)
	}

	var enqueueErr error
	for i, id := range ids {
		if err := limiter.Wait(ctx); err != nil {
			enqueueErr = err
			break
		}
		e.sendProgress(progress, warmStartUpdate(i+1, len(ids), id))
		jobs <- id
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(entries)
	}()

	completed := 0
	for entry := range entries {
		completed++
		result.Entries = append(result.Entries, entry)

		if entry.Error != nil {
			result.Failed++
			e.sendProgress(progress, warmFailedUpdate(completed, len(ids), entry.ArtistID, entry.Error))
		} else {
			result.Warmed++
			e.sendProgress(progress, warmDoneUpdate(completed, len(ids), entry.ArtistID, entry.Source))
		}
	}

	return result, enqueueErr
}

// warmWorker resolves ids from the jobs channel until it closes or the
// context is cancelled.
func (e *Engine) warmWorker(ctx context.Context, wg *sync.WaitGroup, jobs <-chan string, entries chan<- WarmEntry) {
	defer wg.Done()

	for id := range jobs {
		select {
		case <-ctx.Done():
			entries <- WarmEntry{ArtistID: id, Error: ctx.Err()}
			continue
		default:
		}

		_, source, err := e.Get(ctx, id)
		entries <- WarmEntry{ArtistID: id, Source: source, Error: err}
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *Engine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}
