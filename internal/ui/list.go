package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/backstage/internal/models"
)

var (
	_ list.Item = artistItem{}
	_ list.Item = trackItem{}
	_ list.Item = similarItem{}
)

// artistItem wraps [models.PublicProfile] to implement [list.Item].
type artistItem struct {
	artist models.PublicProfile
}

func (i artistItem) FilterValue() string { return i.artist.Name }
func (i artistItem) Title() string {
	if i.artist.Verified {
		return i.artist.Name + " ✓"
	}
	return i.artist.Name
}
func (i artistItem) Description() string {
	desc := fmt.Sprintf("%s • %d plays", i.artist.PrimaryGenre, i.artist.Plays)
	if i.artist.City != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.artist.City)
	}
	return desc
}

// trackItem wraps [models.CatalogTrack] to implement [list.Item].
type trackItem struct {
	track models.CatalogTrack
}

func (i trackItem) FilterValue() string { return i.track.Title }
func (i trackItem) Title() string {
	if i.track.Explicit {
		return i.track.Title + " (E)"
	}
	return i.track.Title
}
func (i trackItem) Description() string {
	return fmt.Sprintf("%s • %s • %d plays", i.track.Genre, i.track.Duration, i.track.Plays)
}

// similarItem wraps [models.SimilarityResult] to implement [list.Item].
type similarItem struct {
	result models.SimilarityResult
}

func (i similarItem) FilterValue() string { return i.result.Artist.Name }
func (i similarItem) Title() string       { return i.result.Artist.Name }
func (i similarItem) Description() string {
	return fmt.Sprintf("%s • match %.1f", i.result.Artist.PrimaryGenre, i.result.MatchScore)
}
