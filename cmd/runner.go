package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/backstage/internal/cache"
	"github.com/desertthunder/backstage/internal/directory"
	"github.com/desertthunder/backstage/internal/repositories"
	"github.com/desertthunder/backstage/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
//
// The cache, database, and directory engine open lazily on first use so
// commands that never touch storage (setup, help) pay nothing for it.
type Runner struct {
	config *shared.Config
	logger *log.Logger
	output io.Writer

	store  *cache.BadgerStore
	db     *sql.DB
	engine *directory.Engine
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Logger *log.Logger
	Output io.Writer
	Engine *directory.Engine
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config: opts.Config,
		logger: opts.Logger,
		output: opts.Output,
		engine: opts.Engine,
	}
}

// SetLogger swaps the runner's logger, used when a TUI owns the terminal.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// Engine returns the directory engine, opening the cache and the
// authoritative store on first call.
func (r *Runner) Engine() (*directory.Engine, error) {
	if r.engine != nil {
		return r.engine, nil
	}

	cachePath := r.config.Cache.Path
	if r.config.Cache.InMemory {
		cachePath = ""
	}

	store, err := cache.NewBadgerStore(cachePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile cache: %w", err)
	}
	r.store = store

	var authoritative directory.AuthoritativeStore
	if _, err := os.Stat(r.config.Database.Path); err == nil {
		db, err := shared.NewDatabase(r.config.Database.Path)
		if err != nil {
			r.logger.Warn("failed to open authoritative store, resolving without it", "error", err)
		} else {
			shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)
			r.db = db
			authoritative = repositories.NewArtistRepository(db)
		}
	} else {
		r.logger.Debug("no database file, resolving without the authoritative store", "path", r.config.Database.Path)
	}

	r.engine = directory.NewEngine(directory.EngineOpts{
		Cache:        store,
		Store:        authoritative,
		Logger:       r.logger,
		StoreTimeout: time.Duration(r.config.Directory.StoreTimeoutMS) * time.Millisecond,
	})

	return r.engine, nil
}

// Close releases the lazily opened storage handles.
func (r *Runner) Close() {
	if r.store != nil {
		if err := r.store.Close(); err != nil {
			r.logger.Warn("failed to close cache", "error", err)
		}
	}
	if r.db != nil {
		if err := r.db.Close(); err != nil {
			r.logger.Warn("failed to close database", "error", err)
		}
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, artistCommand, chartCommand, cacheCommand, serveCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
