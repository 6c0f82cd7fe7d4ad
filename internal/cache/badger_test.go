package cache

import (
	"errors"
	"testing"

	"github.com/desertthunder/backstage/internal/models"
	"github.com/desertthunder/backstage/internal/shared"
)

// newTestStore opens an in-memory badger store
func newTestStore(t *testing.T) *BadgerStore {
	t.Helper()

	store, err := NewBadgerStore("")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestBadgerStore(t *testing.T) {
	t.Run("Get on missing key returns cache miss", func(t *testing.T) {
		store := newTestStore(t)

		_, err := store.Get("artist_profile:missing")
		if !errors.Is(err, shared.ErrCacheMiss) {
			t.Errorf("expected ErrCacheMiss, got %v", err)
		}
	})

	t.Run("Set then Get round-trips", func(t *testing.T) {
		store := newTestStore(t)

		if err := store.Set("k", []byte("v")); err != nil {
			t.Fatalf("failed to set: %v", err)
		}

		value, err := store.Get("k")
		if err != nil {
			t.Fatalf("failed to get: %v", err)
		}
		if string(value) != "v" {
			t.Errorf("expected v, got %q", value)
		}
	})

	t.Run("GetByPrefix returns only namespaced keys", func(t *testing.T) {
		store := newTestStore(t)

		store.Set("artist_profile:a", []byte("1"))
		store.Set("artist_profile:b", []byte("2"))
		store.Set("other:c", []byte("3"))

		values, err := store.GetByPrefix(ProfilePrefix)
		if err != nil {
			t.Fatalf("failed to scan: %v", err)
		}
		if len(values) != 2 {
			t.Errorf("expected 2 values, got %d", len(values))
		}
	})
}

func TestProfileHelpers(t *testing.T) {
	t.Run("PutProfile then GetProfile", func(t *testing.T) {
		store := newTestStore(t)

		profile := &models.ArtistProfile{
			ID:     "a1",
			Name:   "Nova",
			Genres: []string{"Electronic"},
			Plays:  5000,
		}

		if err := PutProfile(store, profile); err != nil {
			t.Fatalf("failed to put profile: %v", err)
		}

		got, err := GetProfile(store, "a1")
		if err != nil {
			t.Fatalf("failed to get profile: %v", err)
		}

		if got.Name != "Nova" || got.Plays != 5000 {
			t.Errorf("unexpected profile: %+v", got)
		}
		if len(got.Socials) != len(models.SocialPlatforms) {
			t.Errorf("expected normalized socials, got %d keys", len(got.Socials))
		}
	})

	t.Run("ScanProfiles skips corrupt entries", func(t *testing.T) {
		store := newTestStore(t)

		PutProfile(store, &models.ArtistProfile{ID: "a1", Name: "Nova"})
		store.Set(ProfileKey("broken"), []byte("{not json"))

		profiles, err := ScanProfiles(store)
		if err != nil {
			t.Fatalf("failed to scan: %v", err)
		}
		if len(profiles) != 1 {
			t.Errorf("expected 1 decodable profile, got %d", len(profiles))
		}
	})

	t.Run("GetProfile misses for unknown id", func(t *testing.T) {
		store := newTestStore(t)

		_, err := GetProfile(store, "ghost")
		if !errors.Is(err, shared.ErrCacheMiss) {
			t.Errorf("expected ErrCacheMiss, got %v", err)
		}
	})
}
