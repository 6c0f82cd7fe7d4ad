package directory

import (
	"context"
	"testing"
)

func TestWarm(t *testing.T) {
	t.Run("warms every baseline into the cache", func(t *testing.T) {
		engine, _ := newTestEngine(nil)

		progress := make(chan ProgressUpdate, 64)
		result, err := engine.Warm(context.Background(), progress, WarmOpts{RateLimit: 1000})
		if err != nil {
			t.Fatalf("Warm failed: %v", err)
		}

		if result.Total != 6 || result.Warmed != 6 || result.Failed != 0 {
			t.Fatalf("Unexpected result: %+v", result)
		}

		for _, id := range BaselineIDs(engine.baselines) {
			_, source, err := engine.Get(context.Background(), id)
			if err != nil {
				t.Fatalf("Get %s after warm failed: %v", id, err)
			}
			if source != SourceCache {
				t.Errorf("Expected %s to resolve from cache after warm, got %q", id, source)
			}
		}
	})

	t.Run("reports progress without blocking", func(t *testing.T) {
		engine, _ := newTestEngine(nil)

		// A tiny buffer forces the non-blocking send path to drop updates.
		progress := make(chan ProgressUpdate, 1)
		if _, err := engine.Warm(context.Background(), progress, WarmOpts{RateLimit: 1000}); err != nil {
			t.Fatalf("Warm failed: %v", err)
		}

		select {
		case update := <-progress:
			if update.Message == "" {
				t.Error("Expected a populated progress message")
			}
		default:
			t.Error("Expected at least one progress update")
		}
	})

	t.Run("accepts a nil progress channel", func(t *testing.T) {
		engine, _ := newTestEngine(nil)

		if _, err := engine.Warm(context.Background(), nil, WarmOpts{RateLimit: 1000}); err != nil {
			t.Fatalf("Warm failed: %v", err)
		}
	})

	t.Run("stops enqueueing on cancellation", func(t *testing.T) {
		engine, _ := newTestEngine(nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := engine.Warm(ctx, nil, WarmOpts{RateLimit: 0.001})
		if err == nil {
			t.Fatal("Expected an error from a cancelled warm")
		}
		if result.Warmed == result.Total {
			t.Error("Expected the warm to stop short of the full set")
		}
	})
}
