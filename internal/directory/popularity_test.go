package directory

import (
	"context"
	"testing"

	"github.com/desertthunder/backstage/internal/cache"
	"github.com/desertthunder/backstage/internal/models"
	tu "github.com/desertthunder/backstage/internal/testing"
)

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the full pool when smaller than the limit", func(t *testing.T) {
		engine, _ := newTestEngine(nil)

		listing := engine.List(ctx, 0)
		if len(listing) != 6 {
			t.Fatalf("Expected all 6 baseline artists, got %d", len(listing))
		}
	})

	t.Run("sorts by play count descending", func(t *testing.T) {
		engine, _ := newTestEngine(nil)

		listing := engine.List(ctx, 0)
		for i := 1; i < len(listing); i++ {
			if listing[i].Plays > listing[i-1].Plays {
				t.Fatalf("Listing out of order at %d: %d > %d", i, listing[i].Plays, listing[i-1].Plays)
			}
		}
		if listing[0].ID != "mc-vela" {
			t.Errorf("Expected mc-vela on top, got %s", listing[0].ID)
		}
	})

	t.Run("truncates to the limit", func(t *testing.T) {
		engine, _ := newTestEngine(nil)

		listing := engine.List(ctx, 3)
		if len(listing) != 3 {
			t.Fatalf("Expected 3 entries, got %d", len(listing))
		}
	})

	t.Run("cache entries override baselines in the ranking", func(t *testing.T) {
		engine, _ := newTestEngine(nil)

		plays := int64(900000)
		if _, err := engine.Update(ctx, "lumen-koi", models.ProfilePatch{Bio: strPtr("big month")}); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		// Push the cached copy's play count past every baseline.
		boosted, _, err := engine.Get(ctx, "lumen-koi")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		boosted.Plays = plays
		engine.writeBack(boosted)

		listing := engine.List(ctx, 0)
		if listing[0].ID != "lumen-koi" {
			t.Errorf("Expected cached lumen-koi to rank first, got %s", listing[0].ID)
		}
		if listing[0].Plays != plays {
			t.Errorf("Expected cached play count %d, got %d", plays, listing[0].Plays)
		}
	})

	t.Run("includes cache-only artists", func(t *testing.T) {
		engine, mem := newTestEngine(nil)

		newcomer := models.ArtistProfile{
			ID:     "fresh-face",
			Name:   "Fresh Face",
			Genres: []string{"Pop"},
			Plays:  500000,
		}
		if err := cache.PutProfile(mem, &newcomer); err != nil {
			t.Fatalf("Failed to seed cache: %v", err)
		}

		listing := engine.List(ctx, 0)
		if len(listing) != 7 {
			t.Fatalf("Expected 7 artists, got %d", len(listing))
		}
		if listing[1].ID != "fresh-face" {
			t.Errorf("Expected fresh-face ranked second, got %s", listing[1].ID)
		}
	})

	t.Run("cache scan failure degrades to baselines", func(t *testing.T) {
		engine := NewEngine(EngineOpts{Cache: &tu.FailingStore{}})

		listing := engine.List(ctx, 0)
		if len(listing) != 6 {
			t.Fatalf("Expected the baseline set, got %d entries", len(listing))
		}
	})
}
