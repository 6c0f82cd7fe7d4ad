package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/backstage/internal/directory"
	"github.com/desertthunder/backstage/internal/formatter"
	"github.com/desertthunder/backstage/internal/models"
	"github.com/desertthunder/backstage/internal/shared"
	"github.com/urfave/cli/v3"
)

// ArtistGet resolves a profile through the tier chain and prints it.
func (r *Runner) ArtistGet(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: artist id", shared.ErrMissingArgument)
	}

	engine, err := r.Engine()
	if err != nil {
		return err
	}

	profile, source, err := engine.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to resolve artist: %w", err)
	}

	r.logger.Info("resolved artist", "id", id, "source", source)
	return r.writeJSON(profile, cmd.Bool("pretty"))
}

// ArtistUpdate applies a partial update built from the provided flags.
func (r *Runner) ArtistUpdate(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: artist id", shared.ErrMissingArgument)
	}

	fields := map[string]any{}
	for _, name := range []string{"name", "bio", "avatar", "location"} {
		if cmd.IsSet(name) {
			fields[name] = cmd.String(name)
		}
	}
	if cmd.IsSet("genre") {
		fields["genres"] = cmd.StringSlice("genre")
	}
	if cmd.IsSet("verified") {
		fields["verified"] = cmd.Bool("verified")
	}
	if cmd.IsSet("social") {
		socials, err := parseSocials(cmd.StringSlice("social"))
		if err != nil {
			return err
		}
		fields["socials"] = socials
	}

	patch, dropped := models.PatchFromMap(fields)
	if len(dropped) > 0 {
		r.logger.Warn("ignoring unsupported fields", "fields", dropped)
	}

	engine, err := r.Engine()
	if err != nil {
		return err
	}

	profile, err := engine.Update(ctx, id, patch)
	if err != nil {
		return fmt.Errorf("failed to update artist: %w", err)
	}

	r.writePlain("✓ Updated %s\n", profile.Name)
	return r.writeJSON(profile, true)
}

// ArtistStats prints an artist's aggregate stats.
func (r *Runner) ArtistStats(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: artist id", shared.ErrMissingArgument)
	}

	engine, err := r.Engine()
	if err != nil {
		return err
	}

	stats, source, err := engine.Stats(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to resolve artist: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(stats, true)
	}

	r.writePlainHeader(fmt.Sprintf("Stats for %s (%s)", id, source))
	r.writePlain("Plays:      %d\n", stats.Plays)
	r.writePlain("Followers:  %d\n", stats.Followers)
	r.writePlain("Concerts:   %d\n", stats.Concerts)
	r.writePlain("Tracks:     %d\n", stats.TrackCount)
	r.writePlain("Rating:     %.1f\n", stats.Rating)
	return nil
}

// ArtistCatalog generates and prints an artist's catalog, optionally
// exporting it as CSV.
func (r *Runner) ArtistCatalog(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: artist id", shared.ErrMissingArgument)
	}

	engine, err := r.Engine()
	if err != nil {
		return err
	}

	profile, _, err := engine.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to resolve artist: %w", err)
	}

	tracks := directory.GenerateCatalog(profile)

	if output := cmd.String("output"); output != "" {
		file, err := formatter.WriteCatalogExport(tracks, output)
		if err != nil {
			return fmt.Errorf("failed to export catalog: %w", err)
		}
		r.writePlain("✓ Catalog exported to %s\n", file)
		return nil
	}

	if cmd.Bool("json") {
		return r.writeJSON(tracks, true)
	}

	r.writePlainHeader(fmt.Sprintf("Catalog of %s", profile.Name))
	for i, track := range tracks {
		explicit := ""
		if track.Explicit {
			explicit = " (E)"
		}
		r.writePlain("%2d. %s%s [%s] %s, %d plays\n",
			i+1, track.Title, explicit, track.Duration, track.ReleaseDate, track.Plays)
	}
	return nil
}

// ArtistSimilar prints genre-based recommendations for an artist.
func (r *Runner) ArtistSimilar(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: artist id", shared.ErrMissingArgument)
	}

	engine, err := r.Engine()
	if err != nil {
		return err
	}

	top := cmd.Int("top")
	if top == 0 {
		top = r.config.Directory.SimilarLimit
	}

	results, err := engine.Similar(ctx, id, top)
	if err != nil {
		return fmt.Errorf("failed to compute recommendations: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(results, true)
	}

	r.writePlainHeader(fmt.Sprintf("Artists similar to %s", id))
	if len(results) == 0 {
		r.writePlain("No related artists found.\n")
		return nil
	}
	for i, result := range results {
		r.writePlain("%2d. %s (%s) match %.1f\n",
			i+1, result.Artist.Name, result.Artist.PrimaryGenre, result.MatchScore)
	}
	return nil
}

// parseSocials converts platform=handle pairs into a social handle map.
func parseSocials(pairs []string) (map[string]any, error) {
	socials := map[string]any{}
	for _, pair := range pairs {
		platform, handle, found := strings.Cut(pair, "=")
		if !found || platform == "" {
			return nil, fmt.Errorf("%w: social must be platform=handle, got %q", shared.ErrInvalidFlag, pair)
		}
		socials[platform] = handle
	}
	return socials, nil
}
