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

// setupCommand handles database setup and migration operations.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "database",
				Usage:  "Initialize database and run migrations",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupDatabase,
			},
			{
				Name:   "rollback",
				Usage:  "Roll back the most recently applied migration",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupRollback,
			},
		},
	}
}

// syncCommand runs one full catalog synchronization.
func syncCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "sync",
		Usage: "Fetch languages and skills from remote sources and upsert the catalog",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output the sync report as JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
			&cli.BoolFlag{
				Name:  "markdown",
				Usage: "Output the sync report as Markdown",
			},
		},
		Action: r.Sync,
	}
}

// areasCommand lists taxonomy areas.
func areasCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "areas",
		Usage: "List tech areas",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Areas,
	}
}

// nichesCommand lists taxonomy niches, optionally scoped to an area.
func nichesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "niches",
		Usage: "List tech niches",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "area",
				Aliases: []string{"a"},
				Usage:   "Only niches belonging to this area type",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Niches,
	}
}

// languagesCommand lists active programming languages.
func languagesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "languages",
		Aliases: []string{"langs"},
		Usage:   "List programming languages by popularity",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Languages,
	}
}

// skillsCommand lists active skills with optional niche and type filters.
func skillsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "skills",
		Usage: "List tech skills by popularity",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "niche",
				Aliases: []string{"n"},
				Usage:   "Only skills linked to this niche slug",
			},
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Only skills of this type (FRAMEWORK, LIBRARY, TOOL, ...)",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of skills to return with --type",
				Value: 50,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Skills,
	}
}

// searchCommand searches languages and skills together.
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search languages and skills by name, alias or keyword",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "query",
			},
		},
		Flags: []cli.Flag{
			configFlag(),
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of results",
				Value: 20,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Search,
	}
}

// exportCommand writes catalog listings to CSV files.
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export catalog listings as CSV",
		Commands: []*cli.Command{
			{
				Name:  "languages",
				Usage: "Export active languages",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (defaults to stdout)",
					},
				},
				Action: r.ExportLanguages,
			},
			{
				Name:  "skills",
				Usage: "Export active skills",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (defaults to stdout)",
					},
				},
				Action: r.ExportSkills,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive catalog browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive catalog browser",
		Flags:   []cli.Flag{configFlag()},
		Action:  r.TUI,
	}
}
