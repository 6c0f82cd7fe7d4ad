package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/backstage/internal/directory"
	"github.com/desertthunder/backstage/internal/repositories"
	"github.com/desertthunder/backstage/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupDatabase initializes the database, runs migrations, and optionally
// seeds the authoritative store with the baseline artists.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	config := r.config
	if _, err := os.Stat(configPath); err == nil {
		if config, err = shared.LoadConfig(configPath); err != nil {
			r.logger.Warn("failed to load config, using defaults", "error", err)
			config = shared.DefaultConfig()
		}
	} else {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
			config = shared.DefaultConfig()
		} else {
			r.logger.Info("config file created", "path", configPath)
			if config, err = shared.LoadConfig(configPath); err != nil {
				r.logger.Warn("failed to load created config, using defaults", "error", err)
				config = shared.DefaultConfig()
			}
		}
	}
	r.config = config

	r.logger.Info("initializing database", "path", config.Database.Path)

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if cmd.Bool("rollback") {
		r.logger.Info("rolling back last migration")
		if err := shared.RollbackMigration(db); err != nil {
			return fmt.Errorf("failed to roll back migration: %w", err)
		}
		r.logger.Info("rollback complete")
		return nil
	}

	r.logger.Info("running database migrations")
	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if cmd.Bool("seed") {
		repo := repositories.NewArtistRepository(db)

		count, err := repo.Count()
		if err != nil {
			return fmt.Errorf("failed to inspect artists table: %w", err)
		}
		if count > 0 {
			r.logger.Info("artists table already seeded", "rows", count)
		} else {
			baselines := directory.Baselines()
			for _, id := range directory.BaselineIDs(baselines) {
				profile := baselines[id]
				if err := repo.Create(&profile); err != nil {
					return fmt.Errorf("failed to seed artist %s: %w", id, err)
				}
			}
			r.logger.Info("seeded baseline artists", "count", len(baselines))
		}
	}

	r.logger.Infof("setup complete for database: %v", config.Database.Path)
	return nil
}

func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize database and run migrations",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "seed",
				Usage: "Insert the baseline artists into the authoritative store",
			},
			&cli.BoolFlag{
				Name:  "rollback",
				Usage: "Roll back the most recent migration instead",
			},
		},
		Action: r.SetupDatabase,
	}
}
