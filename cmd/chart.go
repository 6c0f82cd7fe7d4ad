package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/backstage/internal/formatter"
	"github.com/desertthunder/backstage/internal/shared"
	"github.com/urfave/cli/v3"
)

// ChartList prints the ranked popularity listing.
func (r *Runner) ChartList(ctx context.Context, cmd *cli.Command) error {
	engine, err := r.Engine()
	if err != nil {
		return err
	}

	limit := cmd.Int("limit")
	if limit == 0 {
		limit = r.config.Directory.ChartLimit
	}

	listing := engine.List(ctx, limit)

	if cmd.Bool("json") {
		return r.writeJSON(listing, true)
	}

	r.writePlainHeader("Popularity Chart")
	for i, artist := range listing {
		verified := ""
		if artist.Verified {
			verified = " ✓"
		}
		r.writePlain("%2d. %s%s (%s) %d plays\n",
			i+1, artist.Name, verified, artist.PrimaryGenre, artist.Plays)
	}
	return nil
}

// ChartExport writes the chart to a file in the requested format.
func (r *Runner) ChartExport(ctx context.Context, cmd *cli.Command) error {
	engine, err := r.Engine()
	if err != nil {
		return err
	}

	limit := cmd.Int("limit")
	if limit == 0 {
		limit = r.config.Directory.ChartLimit
	}

	listing := engine.List(ctx, limit)
	output := cmd.String("output")
	format := cmd.String("format")

	switch format {
	case "csv":
		result, err := formatter.WriteChartExport(listing, output)
		if err != nil {
			return fmt.Errorf("failed to export chart: %w", err)
		}
		r.writePlain("✓ Chart exported to %s\n", result.ChartFile)
		r.writePlain("  Metadata: %s\n", result.MetadataFile)

	case "markdown":
		data, err := formatter.ChartToMarkdown(listing)
		if err != nil {
			return fmt.Errorf("failed to render chart: %w", err)
		}
		file := output + ".md"
		if err := os.WriteFile(file, data, 0644); err != nil {
			return fmt.Errorf("failed to write chart file: %w", err)
		}
		r.writePlain("✓ Chart exported to %s\n", file)

	case "text":
		data, err := formatter.ChartToText(listing)
		if err != nil {
			return fmt.Errorf("failed to render chart: %w", err)
		}
		file := output + ".txt"
		if err := os.WriteFile(file, data, 0644); err != nil {
			return fmt.Errorf("failed to write chart file: %w", err)
		}
		r.writePlain("✓ Chart exported to %s\n", file)

	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}

	return nil
}
