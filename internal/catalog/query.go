package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/octopus-synapse/techcatalog/internal/cache"
	"github.com/octopus-synapse/techcatalog/internal/models"
	"github.com/octopus-synapse/techcatalog/internal/repositories"
	"github.com/octopus-synapse/techcatalog/internal/shared"
)

// Cache keys, one per query shape. Search keys append a truncated hash of
// the normalized query; invalidation sweeps the whole search prefix.
const (
	keyAreas        = "tech:areas"
	keyNiches       = "tech:niches"
	keyNichesByArea = "tech:niches:area:"
	keyLanguages    = "tech:languages"
	keySkills       = "tech:skills"
	keySkillsNiche  = "tech:skills:niche:"
	keySearchPrefix = "tech:search:"

	// DefaultSearchLimit caps free-text searches unless the caller asks
	// for less; DefaultTypeLimit applies to skills-by-type listings.
	DefaultSearchLimit = 20
	DefaultTypeLimit   = 50

	searchHashLen = 16
)

// Queries is the cache-aside read layer consumed by the presentation layer.
type Queries struct {
	areas     *repositories.AreaRepository
	niches    *repositories.NicheRepository
	langRepo  *repositories.LanguageRepository
	skillRepo *repositories.SkillRepository
	cache     *cache.Cache
	listTTL   time.Duration
	searchTTL time.Duration
	logger    *log.Logger
}

// QueriesOpts contains the collaborators for [Queries].
type QueriesOpts struct {
	Areas     *repositories.AreaRepository
	Niches    *repositories.NicheRepository
	LangRepo  *repositories.LanguageRepository
	SkillRepo *repositories.SkillRepository
	Cache     *cache.Cache
	ListTTL   time.Duration
	SearchTTL time.Duration
	Logger    *log.Logger
}

// NewQueries creates the read layer. TTLs default to an hour for listings
// and ten minutes for search results.
func NewQueries(opts QueriesOpts) *Queries {
	if opts.ListTTL <= 0 {
		opts.ListTTL = time.Hour
	}
	if opts.SearchTTL <= 0 {
		opts.SearchTTL = 10 * time.Minute
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	return &Queries{
		areas:     opts.Areas,
		niches:    opts.Niches,
		langRepo:  opts.LangRepo,
		skillRepo: opts.SkillRepo,
		cache:     opts.Cache,
		listTTL:   opts.ListTTL,
		searchTTL: opts.SearchTTL,
		logger:    opts.Logger,
	}
}

// InvalidateCatalog clears the fixed listing keys and sweeps all search keys.
// Called by the sync engine at the end of every run.
func (q *Queries) InvalidateCatalog() {
	q.cache.Delete(keyAreas, keyNiches, keyLanguages, keySkills)
	q.cache.DeletePrefix(keyNichesByArea)
	q.cache.DeletePrefix(keySkillsNiche)
	swept := q.cache.DeletePrefix(keySearchPrefix)
	q.logger.Debug("catalog cache invalidated", "search_keys_swept", swept)
}

// ListAreas returns all areas in display order.
func (q *Queries) ListAreas() ([]AreaView, error) {
	if cached, ok := q.cache.Get(keyAreas); ok {
		return cached.([]AreaView), nil
	}

	rows, err := q.areas.List()
	if err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}

	views := make([]AreaView, len(rows))
	for i, row := range rows {
		views[i] = toAreaView(row)
	}
	q.cache.Set(keyAreas, views, q.listTTL)
	return views, nil
}

// ListNiches returns all niches ordered by area order then own order.
func (q *Queries) ListNiches() ([]NicheView, error) {
	if cached, ok := q.cache.Get(keyNiches); ok {
		return cached.([]NicheView), nil
	}

	rows, err := q.niches.List()
	if err != nil {
		return nil, fmt.Errorf("list niches: %w", err)
	}

	views := make([]NicheView, len(rows))
	for i, row := range rows {
		views[i] = toNicheView(row)
	}
	q.cache.Set(keyNiches, views, q.listTTL)
	return views, nil
}

// ListNichesByArea returns the niches belonging to one area type.
func (q *Queries) ListNichesByArea(areaType string) ([]NicheView, error) {
	key := keyNichesByArea + areaType
	if cached, ok := q.cache.Get(key); ok {
		return cached.([]NicheView), nil
	}

	rows, err := q.niches.ListByArea(areaType)
	if err != nil {
		return nil, fmt.Errorf("list niches by area: %w", err)
	}

	views := make([]NicheView, len(rows))
	for i, row := range rows {
		views[i] = toNicheView(row)
	}
	q.cache.Set(key, views, q.listTTL)
	return views, nil
}

// ListLanguages returns all active languages, popularity descending.
func (q *Queries) ListLanguages() ([]LanguageView, error) {
	if cached, ok := q.cache.Get(keyLanguages); ok {
		return cached.([]LanguageView), nil
	}

	rows, err := q.langRepo.List()
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}

	views := make([]LanguageView, len(rows))
	for i, row := range rows {
		views[i] = toLanguageView(row)
	}
	q.cache.Set(keyLanguages, views, q.listTTL)
	return views, nil
}

// ListSkills returns all active skills, popularity descending.
func (q *Queries) ListSkills() ([]SkillView, error) {
	if cached, ok := q.cache.Get(keySkills); ok {
		return cached.([]SkillView), nil
	}

	rows, err := q.skillRepo.List()
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	views := make([]SkillView, len(rows))
	for i, row := range rows {
		views[i] = toSkillView(row)
	}
	q.cache.Set(keySkills, views, q.listTTL)
	return views, nil
}

// ListSkillsByNiche returns the active skills linked to a niche slug.
func (q *Queries) ListSkillsByNiche(nicheSlug string) ([]SkillView, error) {
	key := keySkillsNiche + nicheSlug
	if cached, ok := q.cache.Get(key); ok {
		return cached.([]SkillView), nil
	}

	rows, err := q.skillRepo.ListByNiche(nicheSlug)
	if err != nil {
		return nil, fmt.Errorf("list skills by niche: %w", err)
	}

	views := make([]SkillView, len(rows))
	for i, row := range rows {
		views[i] = toSkillView(row)
	}
	q.cache.Set(key, views, q.listTTL)
	return views, nil
}

// ListSkillsByType returns active skills of one classification type.
//
// Intentionally uncached: the type dimension is too granular to cache
// economically. Tunable, not a hard rule.
func (q *Queries) ListSkillsByType(skillType models.SkillType, limit int) ([]SkillView, error) {
	if limit <= 0 {
		limit = DefaultTypeLimit
	}

	rows, err := q.skillRepo.ListByType(skillType, limit)
	if err != nil {
		return nil, fmt.Errorf("list skills by type: %w", err)
	}

	views := make([]SkillView, len(rows))
	for i, row := range rows {
		views[i] = toSkillView(row)
	}
	return views, nil
}

// SearchLanguages returns active languages matching the query, popularity
// descending, capped at limit.
func (q *Queries) SearchLanguages(query string, limit int) ([]LanguageView, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	key := keySearchPrefix + "lang:" + searchHash(query)
	if cached, ok := q.cache.Get(key); ok {
		return capLanguages(cached.([]LanguageView), limit), nil
	}

	rows, err := q.langRepo.List()
	if err != nil {
		return nil, fmt.Errorf("search languages: %w", err)
	}

	folded := shared.Fold(query)
	var views []LanguageView
	for _, row := range rows {
		if languageMatches(row, folded) {
			views = append(views, toLanguageView(row))
		}
	}

	q.cache.Set(key, views, q.searchTTL)
	return capLanguages(views, limit), nil
}

// SearchSkills returns active skills matching the query, popularity
// descending, capped at limit.
func (q *Queries) SearchSkills(query string, limit int) ([]SkillView, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	key := keySearchPrefix + "skill:" + searchHash(query)
	if cached, ok := q.cache.Get(key); ok {
		return capSkills(cached.([]SkillView), limit), nil
	}

	rows, err := q.skillRepo.List()
	if err != nil {
		return nil, fmt.Errorf("search skills: %w", err)
	}

	folded := shared.Fold(query)
	var views []SkillView
	for _, row := range rows {
		if skillMatches(row, folded) {
			views = append(views, toSkillView(row))
		}
	}

	q.cache.Set(key, views, q.searchTTL)
	return capSkills(views, limit), nil
}

// Search runs the combined search, splitting the limit evenly between
// languages and skills. An odd limit gives the extra slot to languages; a
// limit of 1 yields languages only, so the combined total never exceeds the
// caller's cap.
func (q *Queries) Search(query string, limit int) (*SearchResult, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	langLimit := (limit + 1) / 2
	skillLimit := limit - langLimit

	languages, err := q.SearchLanguages(query, langLimit)
	if err != nil {
		return nil, err
	}
	skills := []SkillView{}
	if skillLimit > 0 {
		skills, err = q.SearchSkills(query, skillLimit)
		if err != nil {
			return nil, err
		}
	}

	return &SearchResult{Languages: languages, Skills: skills}, nil
}

// languageMatches reports whether a language matches an accent-folded query:
// substring on either display name or the slug, or containment in aliases.
func languageMatches(l *models.ProgrammingLanguage, folded string) bool {
	if strings.Contains(shared.Fold(l.NameEn), folded) ||
		strings.Contains(shared.Fold(l.NameLocal), folded) ||
		strings.Contains(l.Slug, folded) {
		return true
	}
	return setContains(l.Aliases, folded)
}

// skillMatches is the skill equivalent; keywords count as well as aliases.
func skillMatches(s *models.TechSkill, folded string) bool {
	if strings.Contains(shared.Fold(s.NameEn), folded) ||
		strings.Contains(shared.Fold(s.NamePt), folded) ||
		strings.Contains(s.Slug, folded) {
		return true
	}
	return setContains(s.Aliases, folded) || setContains(s.Keywords, folded)
}

func setContains(values []string, folded string) bool {
	for _, v := range values {
		if strings.Contains(shared.Fold(v), folded) {
			return true
		}
	}
	return false
}

// searchHash derives a bounded cache key segment from a free-text query.
func searchHash(query string) string {
	sum := sha256.Sum256([]byte(shared.Fold(strings.TrimSpace(query))))
	return hex.EncodeToString(sum[:])[:searchHashLen]
}

func capLanguages(views []LanguageView, limit int) []LanguageView {
	if len(views) > limit {
		return views[:limit]
	}
	return views
}

func capSkills(views []SkillView, limit int) []SkillView {
	if len(views) > limit {
		return views[:limit]
	}
	return views
}
