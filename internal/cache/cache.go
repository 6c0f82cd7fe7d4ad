package cache

import (
	"encoding/json"
	"fmt"

	"github.com/desertthunder/backstage/internal/models"
)

// ProfilePrefix is the key namespace for cached artist profiles.
const ProfilePrefix = "artist_profile:"

// ProfileKey returns the cache key for an artist id.
func ProfileKey(id string) string {
	return ProfilePrefix + id
}

// Store defines the key-value operations the directory layer depends on.
//
// Get returns [shared.ErrCacheMiss] (wrapped) when the key is absent.
// GetByPrefix returns the values of every key under the given prefix and is
// used by listing and recommendation scans.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	GetByPrefix(prefix string) ([][]byte, error)
}

// GetProfile loads and decodes a cached profile by artist id.
func GetProfile(s Store, id string) (*models.ArtistProfile, error) {
	data, err := s.Get(ProfileKey(id))
	if err != nil {
		return nil, err
	}

	var profile models.ArtistProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode cached profile %s: %w", id, err)
	}

	return &profile, nil
}

// PutProfile encodes and stores a profile under its id key.
//
// The profile is normalized first so the cache never holds a partially
// populated social map or negative aggregates.
func PutProfile(s Store, profile *models.ArtistProfile) error {
	profile.Normalize()

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile %s: %w", profile.ID, err)
	}

	if err := s.Set(ProfileKey(profile.ID), data); err != nil {
		return fmt.Errorf("failed to cache profile %s: %w", profile.ID, err)
	}

	return nil
}

// ScanProfiles decodes every cached profile in the namespace.
//
// Entries that fail to decode are skipped; a corrupt value should not take
// down a listing scan.
func ScanProfiles(s Store) ([]models.ArtistProfile, error) {
	values, err := s.GetByPrefix(ProfilePrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to scan profile namespace: %w", err)
	}

	profiles := make([]models.ArtistProfile, 0, len(values))
	for _, data := range values {
		var profile models.ArtistProfile
		if err := json.Unmarshal(data, &profile); err != nil {
			continue
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}
