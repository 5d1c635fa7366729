package catalog

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/octopus-synapse/techcatalog/internal/models"
	"github.com/octopus-synapse/techcatalog/internal/repositories"
	"github.com/octopus-synapse/techcatalog/internal/shared"
	"github.com/octopus-synapse/techcatalog/internal/sources"
	"github.com/octopus-synapse/techcatalog/internal/taxonomy"
)

// Invalidator clears the read-side cache after a sync run.
type Invalidator interface {
	InvalidateCatalog()
}

// SyncEngine orchestrates one catalog synchronization run.
type SyncEngine struct {
	tables    *taxonomy.Tables
	languages sources.LanguageSource
	skills    sources.SkillSource
	areas     *repositories.AreaRepository
	niches    *repositories.NicheRepository
	langRepo  *repositories.LanguageRepository
	skillRepo *repositories.SkillRepository
	cache     Invalidator
	logger    *log.Logger
}

// SyncEngineOpts contains the collaborators for a [SyncEngine].
type SyncEngineOpts struct {
	Tables    *taxonomy.Tables
	Languages sources.LanguageSource
	Skills    sources.SkillSource
	Areas     *repositories.AreaRepository
	Niches    *repositories.NicheRepository
	LangRepo  *repositories.LanguageRepository
	SkillRepo *repositories.SkillRepository
	Cache     Invalidator
	Logger    *log.Logger
}

// NewSyncEngine creates a SyncEngine with the provided collaborators.
func NewSyncEngine(opts SyncEngineOpts) *SyncEngine {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	return &SyncEngine{
		tables:    opts.Tables,
		languages: opts.Languages,
		skills:    opts.Skills,
		areas:     opts.Areas,
		niches:    opts.Niches,
		langRepo:  opts.LangRepo,
		skillRepo: opts.SkillRepo,
		cache:     opts.Cache,
		logger:    opts.Logger,
	}
}

// Run executes the full sync pass. It never returns an error: each stage's
// failure is recorded in the result and the next stage still runs, so the
// result always reflects whatever actually completed. The caller inspects
// Errors to tell a full run from a partial one.
func (e *SyncEngine) Run(ctx context.Context) *models.SyncResult {
	result := &models.SyncResult{}

	if err := e.syncAreas(result); err != nil {
		e.fail(result, "areas", err)
	}
	if err := e.syncNiches(result); err != nil {
		e.fail(result, "niches", err)
	}
	if err := e.syncLanguages(ctx, result); err != nil {
		e.fail(result, "languages", err)
	}
	if err := e.syncSkills(ctx, result); err != nil {
		e.fail(result, "skills", err)
	}

	// Runs after every pass, failed stages included: any partial write must
	// not leave readers on stale combined data.
	e.cache.InvalidateCatalog()

	e.logger.Info("sync finished",
		"areas", result.AreasCreated,
		"niches", result.NichesCreated,
		"languages_inserted", result.LanguagesInserted,
		"languages_updated", result.LanguagesUpdated,
		"skills_inserted", result.SkillsInserted,
		"skills_updated", result.SkillsUpdated,
		"errors", len(result.Errors),
	)
	return result
}

func (e *SyncEngine) fail(result *models.SyncResult, stage string, err error) {
	e.logger.Error("sync stage failed", "stage", stage, "err", err)
	result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", stage, err))
}

// syncAreas upserts the static area seed list.
func (e *SyncEngine) syncAreas(result *models.SyncResult) error {
	for _, seed := range e.tables.Areas() {
		area := &models.TechArea{
			Type:   seed.Type,
			NameEn: seed.NameEn,
			NamePt: seed.NamePt,
			Icon:   seed.Icon,
			Color:  seed.Color,
			Order:  seed.Order,
		}
		inserted, err := e.areas.Upsert(area)
		if err != nil {
			return fmt.Errorf("upsert area %s: %w", seed.Type, err)
		}
		if inserted {
			result.AreasCreated++
		}
	}
	return nil
}

// syncNiches upserts the static niche seed list.
func (e *SyncEngine) syncNiches(result *models.SyncResult) error {
	for _, seed := range e.tables.Niches() {
		niche := &models.TechNiche{
			Slug:     seed.Slug,
			AreaType: seed.AreaType,
			NameEn:   seed.NameEn,
			NamePt:   seed.NamePt,
			Icon:     seed.Icon,
			Order:    seed.Order,
		}
		inserted, err := e.niches.Upsert(niche)
		if err != nil {
			return fmt.Errorf("upsert niche %s: %w", seed.Slug, err)
		}
		if inserted {
			result.NichesCreated++
		}
	}
	return nil
}

// syncLanguages fetches the language dataset and upserts every candidate.
func (e *SyncEngine) syncLanguages(ctx context.Context, result *models.SyncResult) error {
	parsed, err := e.languages.Languages(ctx)
	if err != nil {
		return err
	}

	for _, p := range parsed {
		lang := &models.ProgrammingLanguage{
			Slug:           p.Slug,
			NameEn:         p.NameEn,
			NameLocal:      p.NameLocal,
			Color:          p.Color,
			Website:        p.Website,
			Aliases:        p.Aliases,
			FileExtensions: p.FileExtensions,
			Paradigms:      p.Paradigms,
			Typing:         p.Typing,
			Popularity:     p.Popularity,
			IsActive:       true,
		}
		inserted, err := e.langRepo.Upsert(lang)
		if err != nil {
			return fmt.Errorf("upsert language %s: %w", p.Slug, err)
		}
		if inserted {
			result.LanguagesInserted++
		} else {
			result.LanguagesUpdated++
		}
	}
	return nil
}

// syncSkills fetches the tag source and upserts every candidate, resolving
// the niche link at write time.
func (e *SyncEngine) syncSkills(ctx context.Context, result *models.SyncResult) error {
	parsed, err := e.skills.Skills(ctx)
	if err != nil {
		return err
	}

	for _, p := range parsed {
		skill := &models.TechSkill{
			Slug:       p.Slug,
			NameEn:     p.NameEn,
			NamePt:     p.NamePt,
			Type:       p.Type,
			NicheID:    e.skillRepo.ResolveNiche(p.NicheSlug),
			Color:      p.Color,
			Aliases:    p.Aliases,
			Keywords:   p.Keywords,
			Popularity: p.Popularity,
			IsActive:   true,
		}
		inserted, err := e.skillRepo.Upsert(skill)
		if err != nil {
			return fmt.Errorf("upsert skill %s: %w", p.Slug, err)
		}
		if inserted {
			result.SkillsInserted++
		} else {
			result.SkillsUpdated++
		}
	}
	return nil
}
