package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/octopus-synapse/techcatalog/internal/cache"
	"github.com/octopus-synapse/techcatalog/internal/catalog"
	"github.com/octopus-synapse/techcatalog/internal/repositories"
	"github.com/octopus-synapse/techcatalog/internal/shared"
	"github.com/octopus-synapse/techcatalog/internal/sources"
	"github.com/octopus-synapse/techcatalog/internal/taxonomy"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	db         *sql.DB
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
//
// DB is optional; when set the runner uses it instead of opening the
// database named in the configuration, which lets tests run against an
// in-memory handle.
type RunnerOpts struct {
	Config     *shared.Config
	DB         *sql.DB
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
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
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &Runner{
		config:     opts.Config,
		db:         opts.DB,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, syncCommand, areasCommand, nichesCommand, languagesCommand, skillsCommand, searchCommand, exportCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger swaps the runner's logger, used when the TUI redirects logs to a file.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// loadConfig reads the configuration at path, falling back to defaults
// when the file is absent or unreadable.
func (r *Runner) loadConfig(path string) *shared.Config {
	if _, err := os.Stat(path); err == nil {
		if config, err := shared.LoadConfig(path); err == nil {
			r.config = config
			return config
		} else {
			r.logger.Warn("failed to load config, using defaults", "path", path, "error", err)
		}
	}
	return r.config
}

// catalogStack bundles the repositories, sync engine and query layer built
// around one database handle.
type catalogStack struct {
	config  *shared.Config
	db      *sql.DB
	tables  *taxonomy.Tables
	engine  *catalog.SyncEngine
	queries *catalog.Queries
	owned   bool
}

// Close releases the database handle when the stack opened it itself.
func (c *catalogStack) Close() error {
	if c.owned {
		return c.db.Close()
	}
	return nil
}

// openCatalog loads configuration and wires the full catalog stack: sources,
// repositories, cache, sync engine and query layer.
func (r *Runner) openCatalog(configPath string) (*catalogStack, error) {
	config := r.loadConfig(configPath)

	db := r.db
	owned := false
	if db == nil {
		var err error
		db, err = shared.NewDatabase(config.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
		owned = true
	}

	tables := taxonomy.Load()

	areaRepo := repositories.NewAreaRepository(db)
	nicheRepo := repositories.NewNicheRepository(db)
	langRepo := repositories.NewLanguageRepository(db)
	skillRepo := repositories.NewSkillRepository(db)

	sourceClient := &http.Client{
		Timeout:   config.Sources.HTTPTimeout(),
		Transport: r.httpClient.Transport,
	}

	queries := catalog.NewQueries(catalog.QueriesOpts{
		Areas:     areaRepo,
		Niches:    nicheRepo,
		LangRepo:  langRepo,
		SkillRepo: skillRepo,
		Cache:     cache.New(),
		ListTTL:   config.Cache.ListTTL(),
		SearchTTL: config.Cache.SearchTTL(),
		Logger:    r.logger,
	})

	engine := catalog.NewSyncEngine(catalog.SyncEngineOpts{
		Tables:    tables,
		Languages: sources.NewLinguistSource(config.Sources.LinguistURL, sourceClient, tables, r.logger),
		Skills: sources.NewTagSource(sources.TagSourceOpts{
			BaseURL:        config.Sources.TagAPIBaseURL,
			Site:           config.Sources.TagSite,
			PageSize:       config.Sources.PageSize,
			MaxPages:       config.Sources.MaxPages,
			RequestsPerSec: config.Sources.RequestsPerSec,
			HTTPClient:     sourceClient,
			Tables:         tables,
			Logger:         r.logger,
		}),
		Areas:     areaRepo,
		Niches:    nicheRepo,
		LangRepo:  langRepo,
		SkillRepo: skillRepo,
		Cache:     queries,
		Logger:    r.logger,
	})

	return &catalogStack{
		config:  config,
		db:      db,
		tables:  tables,
		engine:  engine,
		queries: queries,
		owned:   owned,
	}, nil
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
