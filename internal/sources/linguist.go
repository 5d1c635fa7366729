package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/octopus-synapse/techcatalog/internal/models"
	"github.com/octopus-synapse/techcatalog/internal/shared"
	"github.com/octopus-synapse/techcatalog/internal/taxonomy"
	"gopkg.in/yaml.v3"
)

// linguistEntry is one language record from the remote dataset. Only the
// fields the catalog consumes are mapped; everything else is ignored.
type linguistEntry struct {
	Type       string   `yaml:"type"`
	Color      string   `yaml:"color"`
	Aliases    []string `yaml:"aliases"`
	Extensions []string `yaml:"extensions"`
}

// LinguistSource implements [LanguageSource] over the language classification
// YAML document published by the linguist project.
type LinguistSource struct {
	url        string
	httpClient *http.Client
	tables     *taxonomy.Tables
	logger     *log.Logger
}

// NewLinguistSource creates a LinguistSource for the given dataset URL.
func NewLinguistSource(url string, client *http.Client, tables *taxonomy.Tables, logger *log.Logger) *LinguistSource {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &LinguistSource{url: url, httpClient: client, tables: tables, logger: logger}
}

// Languages fetches the dataset, keeps entries typed "programming" and
// returns them normalized and sorted by popularity descending. The sorted
// order is a convenience for read consumers; persistence does not depend on it.
func (s *LinguistSource) Languages(ctx context.Context) ([]models.ParsedLanguage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: language dataset returned %d", shared.ErrBadStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var entries map[string]linguistEntry
	if err := yaml.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrSourceParse, err)
	}

	languages := make([]models.ParsedLanguage, 0, len(entries))
	for name, entry := range entries {
		if entry.Type != "programming" {
			continue
		}
		languages = append(languages, s.normalize(name, entry))
	}

	sort.SliceStable(languages, func(i, j int) bool {
		return languages[i].Popularity > languages[j].Popularity
	})

	s.logger.Info("parsed language dataset", "total", len(entries), "kept", len(languages))
	return languages, nil
}

// normalize maps one dataset entry onto a [models.ParsedLanguage], filling
// gaps from the static taxonomy tables.
func (s *LinguistSource) normalize(name string, entry linguistEntry) models.ParsedLanguage {
	meta := s.tables.LanguageMeta(name)

	aliases := entry.Aliases
	if aliases == nil {
		aliases = []string{}
	}
	extensions := entry.Extensions
	if extensions == nil {
		extensions = []string{}
	}
	paradigms := meta.Paradigms
	if paradigms == nil {
		paradigms = []string{}
	}

	return models.ParsedLanguage{
		Slug:           shared.Slugify(name),
		NameEn:         name,
		NameLocal:      s.tables.LanguageName(name),
		Color:          entry.Color,
		Website:        meta.Website,
		Aliases:        aliases,
		FileExtensions: extensions,
		Paradigms:      paradigms,
		Typing:         meta.Typing,
		Popularity:     s.tables.LanguagePopularity(name),
	}
}
