package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/octopus-synapse/techcatalog/internal/models"
	"github.com/octopus-synapse/techcatalog/internal/shared"
	"github.com/octopus-synapse/techcatalog/internal/taxonomy"
	"golang.org/x/time/rate"
)

// tagPage is one page of the tag popularity API response.
type tagPage struct {
	Items   []tagItem `json:"items"`
	HasMore bool      `json:"has_more"`
}

// tagItem is a single tag with its occurrence count and moderation flags.
type tagItem struct {
	Name            string `json:"name"`
	Count           int    `json:"count"`
	IsModeratorOnly bool   `json:"is_moderator_only"`
	IsRequired      bool   `json:"is_required"`
}

// skippedTags are popular tags that name concepts, not skills, and would
// pollute the catalog.
var skippedTags = map[string]bool{
	"arrays":         true,
	"string":         true,
	"list":           true,
	"dictionary":     true,
	"function":       true,
	"class":          true,
	"loops":          true,
	"if-statement":   true,
	"for-loop":       true,
	"while-loop":     true,
	"variables":      true,
	"object":         true,
	"pointers":       true,
	"recursion":      true,
	"sorting":        true,
	"algorithm":      true,
	"performance":    true,
	"debugging":      true,
	"error-handling": true,
	"validation":     true,
	"date":           true,
	"datetime":       true,
	"file":           true,
	"image":          true,
	"forms":          true,
	"button":         true,
	"syntax":         true,
	"printing":       true,
	"random":         true,
	"math":           true,
}

// versionOnlyTag matches tags that are bare version pins like "python-3.x"
// suffixes or "3.0"; the unversioned tag carries the skill.
var versionOnlyTag = regexp.MustCompile(`^[0-9]+(\.[0-9x]+)*$`)

// TagSource implements [SkillSource] over a paginated tag popularity API.
type TagSource struct {
	baseURL    string
	site       string
	pageSize   int
	maxPages   int
	httpClient *http.Client
	limiter    *rate.Limiter
	tables     *taxonomy.Tables
	logger     *log.Logger
}

// TagSourceOpts configures a [TagSource].
type TagSourceOpts struct {
	BaseURL        string
	Site           string
	PageSize       int
	MaxPages       int
	RequestsPerSec float64
	HTTPClient     *http.Client
	Tables         *taxonomy.Tables
	Logger         *log.Logger
}

// NewTagSource creates a TagSource. Zero option fields fall back to
// defaults: page size 100, ceiling 10 pages, 2 requests per second.
func NewTagSource(opts TagSourceOpts) *TagSource {
	if opts.PageSize <= 0 {
		opts.PageSize = 100
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = 10
	}
	if opts.RequestsPerSec <= 0 {
		opts.RequestsPerSec = 2
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &TagSource{
		baseURL:    opts.BaseURL,
		site:       opts.Site,
		pageSize:   opts.PageSize,
		maxPages:   opts.MaxPages,
		httpClient: opts.HTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(opts.RequestsPerSec), 1),
		tables:     opts.Tables,
		logger:     opts.Logger,
	}
}

// Skills pages through the tag API in descending popularity order and
// returns normalized, classified candidates deduplicated by slug.
//
// Pagination stops on has_more=false, on the page ceiling, or on a page
// failure. A mid-run failure keeps the pages already collected; only a
// failure before anything was fetched is returned as an error.
func (s *TagSource) Skills(ctx context.Context) ([]models.ParsedSkill, error) {
	var skills []models.ParsedSkill
	seen := make(map[string]bool)

	for page := 1; page <= s.maxPages; page++ {
		if page > 1 {
			if err := s.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("rate limiter interrupted: %w", err)
			}
		}

		result, err := s.fetchPage(ctx, page)
		if err != nil {
			if len(skills) == 0 {
				return nil, fmt.Errorf("tag API page %d: %w", page, err)
			}
			// Mid-run failure: we got what we got.
			s.logger.Warn("tag page fetch failed, keeping collected pages", "page", page, "err", err)
			break
		}

		for _, item := range result.Items {
			if !s.shouldInclude(item) {
				continue
			}
			slug := shared.Slugify(item.Name)
			if slug == "" || seen[slug] {
				// Pages arrive in descending popularity order, so the
				// first occurrence is always the authoritative one.
				continue
			}
			seen[slug] = true
			skills = append(skills, s.normalize(item, slug))
		}

		if !result.HasMore {
			break
		}
	}

	s.logger.Info("parsed tag source", "skills", len(skills))
	return skills, nil
}

// fetchPage requests a single page from the tag API.
func (s *TagSource) fetchPage(ctx context.Context, page int) (*tagPage, error) {
	u, err := url.Parse(s.baseURL + "/tags")
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("pagesize", strconv.Itoa(s.pageSize))
	q.Set("order", "desc")
	q.Set("sort", "popular")
	q.Set("site", s.site)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: tag API returned %d", shared.ErrBadStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var result tagPage
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrSourceParse, err)
	}

	return &result, nil
}

// shouldInclude filters out moderator-only, synonym-style and non-skill tags.
func (s *TagSource) shouldInclude(item tagItem) bool {
	if item.IsModeratorOnly || item.IsRequired {
		return false
	}
	if item.Count <= 0 {
		return false
	}
	if skippedTags[item.Name] {
		return false
	}
	if versionOnlyTag.MatchString(item.Name) {
		return false
	}
	return true
}

// normalize classifies and enriches a retained tag into a [models.ParsedSkill].
func (s *TagSource) normalize(item tagItem, slug string) models.ParsedSkill {
	cat := s.tables.Classify(item.Name, slug)

	nameEn := s.tables.SkillDisplayName(item.Name, slug)
	if nameEn == "" {
		nameEn = shared.FormatTagName(item.Name)
	}
	namePt := s.tables.SkillTranslation(item.Name, slug)
	if namePt == "" {
		namePt = nameEn
	}

	aliases := s.tables.SkillAliases(slug)
	if aliases == nil {
		aliases = []string{}
	}
	keywords := s.tables.SkillKeywords(slug)
	if keywords == nil {
		keywords = []string{}
	}

	return models.ParsedSkill{
		Slug:       slug,
		NameEn:     nameEn,
		NamePt:     namePt,
		Type:       cat.Type,
		NicheSlug:  cat.Niche,
		Color:      s.tables.SkillColor(item.Name, slug),
		Aliases:    aliases,
		Keywords:   keywords,
		Popularity: item.Count,
	}
}
