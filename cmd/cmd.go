// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// artistCommand handles single-artist operations
func artistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "artist",
		Aliases: []string{"a"},
		Usage:   "Artist profile operations",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Resolve an artist profile",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.ArtistGet,
			},
			{
				Name:  "update",
				Usage: "Apply a partial profile update",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "name", Usage: "Display name"},
					&cli.StringFlag{Name: "bio", Usage: "Profile bio"},
					&cli.StringFlag{Name: "avatar", Usage: "Avatar URL"},
					&cli.StringFlag{Name: "location", Usage: "City"},
					&cli.StringSliceFlag{Name: "genre", Usage: "Genre list (replaces existing, repeatable)"},
					&cli.StringSliceFlag{Name: "social", Usage: "Social handle as platform=handle (repeatable)"},
					&cli.BoolFlag{Name: "verified", Usage: "Verification status"},
				},
				Action: r.ArtistUpdate,
			},
			{
				Name:  "stats",
				Usage: "Show an artist's aggregate stats",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
				},
				Action: r.ArtistStats,
			},
			{
				Name:  "catalog",
				Usage: "Generate an artist's catalog",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Export the catalog as CSV to {output}_catalog.csv",
					},
				},
				Action: r.ArtistCatalog,
			},
			{
				Name:  "similar",
				Usage: "Recommend related artists",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:  "top",
						Usage: "Maximum number of recommendations",
					},
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
				},
				Action: r.ArtistSimilar,
			},
		},
	}
}

// chartCommand handles the popularity listing
func chartCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "chart",
		Usage: "Popularity chart operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Show the ranked artist listing",
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of artists to list",
					},
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
				},
				Action: r.ChartList,
			},
			{
				Name:  "export",
				Usage: "Export the chart to a file",
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of artists to export",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Base output path",
						Value:   "chart",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Export format: csv, markdown, or text",
						Value: "csv",
					},
				},
				Action: r.ChartExport,
			},
		},
	}
}

// cacheCommand handles profile cache maintenance
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Profile cache maintenance",
		Commands: []*cli.Command{
			{
				Name:  "warm",
				Usage: "Resolve every baseline profile into the cache",
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent resolution workers",
						Value: 4,
					},
					&cli.IntFlag{
						Name:  "rate",
						Usage: "Resolutions per second",
						Value: 20,
					},
				},
				Action: r.CacheWarm,
			},
		},
	}
}

// serveCommand runs the HTTP API
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the directory HTTP API",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{Name: "host", Usage: "Bind host (overrides config)"},
			&cli.IntFlag{Name: "port", Usage: "Bind port (overrides config)"},
		},
		Action: r.Serve,
	}
}

// tuiCommand launches the interactive browser
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Browse the directory interactively",
		Flags:  []cli.Flag{configFlag()},
		Action: r.TUI,
	}
}
