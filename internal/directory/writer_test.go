package directory

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/desertthunder/backstage/internal/models"
	"github.com/desertthunder/backstage/internal/shared"
	tu "github.com/desertthunder/backstage/internal/testing"
)

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("empty patch is rejected and nothing is mutated", func(t *testing.T) {
		engine, _ := newTestEngine(nil)

		before, _, err := engine.Get(ctx, "nova-era")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}

		_, err = engine.Update(ctx, "nova-era", models.ProfilePatch{})
		if !errors.Is(err, shared.ErrEmptyPatch) {
			t.Fatalf("Expected ErrEmptyPatch, got %v", err)
		}

		after, _, err := engine.Get(ctx, "nova-era")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !reflect.DeepEqual(before, after) {
			t.Error("Expected profile to be untouched after rejected update")
		}
	})

	t.Run("changes exactly the provided fields", func(t *testing.T) {
		engine, _ := newTestEngine(nil)

		before, _, err := engine.Get(ctx, "june-harbor")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}

		updated, err := engine.Update(ctx, "june-harbor", models.ProfilePatch{
			Bio:      strPtr("New EP out now."),
			Location: strPtr("Seattle"),
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		if updated.Bio != "New EP out now." {
			t.Errorf("Expected updated bio, got %q", updated.Bio)
		}
		if updated.Location != "Seattle" {
			t.Errorf("Expected updated location, got %q", updated.Location)
		}
		if updated.Name != before.Name || updated.Plays != before.Plays {
			t.Error("Expected unspecified fields to keep their values")
		}
		if updated.Email != before.Email || updated.ID != before.ID {
			t.Error("Expected id and email to be immutable")
		}

		after, source, err := engine.Get(ctx, "june-harbor")
		if err != nil {
			t.Fatalf("Get after update failed: %v", err)
		}
		if source != SourceCache {
			t.Errorf("Expected read-back from cache, got %q", source)
		}
		if !reflect.DeepEqual(updated, after) {
			t.Error("Expected Get to return exactly the updated profile")
		}
	})

	t.Run("merges social handles per platform", func(t *testing.T) {
		engine, _ := newTestEngine(nil)

		updated, err := engine.Update(ctx, "nova-era", models.ProfilePatch{
			Socials: models.SocialLinks{"tiktok": "@novaera.official"},
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		if updated.Socials["tiktok"] != "@novaera.official" {
			t.Errorf("Expected tiktok handle to be set, got %q", updated.Socials["tiktok"])
		}
		if updated.Socials["instagram"] != "@novaera" {
			t.Errorf("Expected instagram handle to survive, got %q", updated.Socials["instagram"])
		}
	})

	t.Run("replaces the genre list wholesale", func(t *testing.T) {
		engine, _ := newTestEngine(nil)

		updated, err := engine.Update(ctx, "glass-atlas", models.ProfilePatch{
			Genres: []string{"Shoegaze"},
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if !reflect.DeepEqual(updated.Genres, []string{"Shoegaze"}) {
			t.Errorf("Expected genres [Shoegaze], got %v", updated.Genres)
		}
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		engine, _ := newTestEngine(nil)

		_, err := engine.Update(ctx, "ghost", models.ProfilePatch{Bio: strPtr("hi")})
		if !errors.Is(err, shared.ErrArtistNotFound) {
			t.Errorf("Expected ErrArtistNotFound, got %v", err)
		}
	})

	t.Run("cache write failure fails the update", func(t *testing.T) {
		engine := NewEngine(EngineOpts{Cache: &tu.FailingStore{}})

		_, err := engine.Update(ctx, "nova-era", models.ProfilePatch{Bio: strPtr("hi")})
		if !errors.Is(err, shared.ErrCacheWrite) {
			t.Errorf("Expected ErrCacheWrite, got %v", err)
		}
	})

	t.Run("propagates patched fields to the store by email", func(t *testing.T) {
		mock := &tu.MockStore{}
		engine, _ := newTestEngine(mock)

		if _, err := engine.Update(ctx, "ada-quinn", models.ProfilePatch{Bio: strPtr("Residency announced.")}); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if len(mock.SaveCalls) != 1 || mock.SaveCalls[0] != "ada@backstage.fm" {
			t.Errorf("Expected one SaveFields call keyed by email, got %v", mock.SaveCalls)
		}
	})

	t.Run("store propagation failure does not fail the update", func(t *testing.T) {
		mock := &tu.MockStore{SaveErr: errors.New("connection refused")}
		engine, _ := newTestEngine(mock)

		updated, err := engine.Update(ctx, "mc-vela", models.ProfilePatch{Location: strPtr("Rio de Janeiro")})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.Location != "Rio de Janeiro" {
			t.Errorf("Expected cache to hold the update, got %q", updated.Location)
		}
	})
}
