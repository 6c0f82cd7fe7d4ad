package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/backstage/internal/directory"
	"github.com/urfave/cli/v3"
)

// CacheWarm resolves every baseline profile so the cache holds live entries.
func (r *Runner) CacheWarm(ctx context.Context, cmd *cli.Command) error {
	engine, err := r.Engine()
	if err != nil {
		return err
	}

	opts := directory.WarmOpts{
		NumWorkers: cmd.Int("workers"),
		RateLimit:  float64(cmd.Int("rate")),
	}

	progress := make(chan directory.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progress {
			r.logger.Info(update.Message, "phase", update.Phase.String(), "step", update.Step, "total", update.Total)
		}
	}()

	result, err := engine.Warm(ctx, progress, opts)
	close(progress)
	<-done
	if err != nil {
		return fmt.Errorf("cache warm interrupted: %w", err)
	}

	r.writePlain("✓ Warmed %d/%d profiles\n", result.Warmed, result.Total)
	if result.Failed > 0 {
		r.writePlain("  %d failed:\n", result.Failed)
		for _, entry := range result.Entries {
			if entry.Error != nil {
				r.writePlain("  • %s: %v\n", entry.ArtistID, entry.Error)
			}
		}
	}

	return nil
}
