package catalog

import (
	"testing"
	"time"

	"github.com/octopus-synapse/techcatalog/internal/models"
)

func seedCatalog(t *testing.T, h *harness) {
	t.Helper()

	area := &models.TechArea{Type: "DEVELOPMENT", NameEn: "Development", NamePt: "Desenvolvimento", Order: 1}
	if _, err := h.areas.Upsert(area); err != nil {
		t.Fatalf("failed to seed area: %v", err)
	}

	niche := &models.TechNiche{Slug: "frontend", AreaType: "DEVELOPMENT", NameEn: "Frontend", NamePt: "Frontend", Order: 1}
	if _, err := h.niches.Upsert(niche); err != nil {
		t.Fatalf("failed to seed niche: %v", err)
	}

	languages := []*models.ProgrammingLanguage{
		{Slug: "go", NameEn: "Go", NameLocal: "Go", Aliases: []string{"golang"}, Popularity: 992, IsActive: true},
		{Slug: "python", NameEn: "Python", NameLocal: "Python", Popularity: 999, IsActive: true},
		{Slug: "cafeml", NameEn: "CaféML", NameLocal: "CaféML", Popularity: 10, IsActive: true},
	}
	for _, lang := range languages {
		if _, err := h.langs.Upsert(lang); err != nil {
			t.Fatalf("failed to seed language: %v", err)
		}
	}

	nicheID := h.skills.ResolveNiche("frontend")
	skills := []*models.TechSkill{
		{Slug: "reactjs", NameEn: "React", NamePt: "React", Type: models.SkillFramework, NicheID: nicheID, Aliases: []string{"react.js"}, Keywords: []string{"jsx"}, Popularity: 900, IsActive: true},
		{Slug: "docker", NameEn: "Docker", NamePt: "Docker", Type: models.SkillTool, Popularity: 800, IsActive: true},
		{Slug: "unit-testing", NameEn: "Unit Testing", NamePt: "Testes Unitários", Type: models.SkillMethodology, Popularity: 200, IsActive: true},
	}
	for _, skill := range skills {
		if _, err := h.skills.Upsert(skill); err != nil {
			t.Fatalf("failed to seed skill: %v", err)
		}
	}
}

func TestQueries(t *testing.T) {
	t.Run("ListAreas caches the first read", func(t *testing.T) {
		h := newHarness(t)
		seedCatalog(t, h)

		first, err := h.queries.ListAreas()
		if err != nil {
			t.Fatalf("failed to list areas: %v", err)
		}
		if len(first) != 1 {
			t.Fatalf("expected 1 area, got %d", len(first))
		}

		// A write bypassing invalidation is invisible until the TTL lapses.
		if _, err := h.areas.Upsert(&models.TechArea{Type: "DATA", NameEn: "Data", NamePt: "Dados", Order: 2}); err != nil {
			t.Fatalf("failed to upsert area: %v", err)
		}

		second, err := h.queries.ListAreas()
		if err != nil {
			t.Fatalf("failed to list areas: %v", err)
		}
		if len(second) != 1 {
			t.Errorf("expected the cached listing, got %d areas", len(second))
		}
	})

	t.Run("InvalidateCatalog forces fresh reads", func(t *testing.T) {
		h := newHarness(t)
		seedCatalog(t, h)

		if _, err := h.queries.ListSkills(); err != nil {
			t.Fatalf("failed to prime cache: %v", err)
		}
		if _, err := h.queries.SearchSkills("docker", 10); err != nil {
			t.Fatalf("failed to prime search cache: %v", err)
		}

		if err := h.skills.Deactivate("docker"); err != nil {
			t.Fatalf("failed to deactivate skill: %v", err)
		}
		h.queries.InvalidateCatalog()

		skills, err := h.queries.ListSkills()
		if err != nil {
			t.Fatalf("failed to list skills: %v", err)
		}
		for _, skill := range skills {
			if skill.Slug == "docker" {
				t.Error("expected deactivated skill to vanish after invalidation")
			}
		}

		found, err := h.queries.SearchSkills("docker", 10)
		if err != nil {
			t.Fatalf("failed to search skills: %v", err)
		}
		if len(found) != 0 {
			t.Errorf("expected swept search cache to drop docker, got %v", found)
		}
	})

	t.Run("ListNichesByArea keys the cache per area", func(t *testing.T) {
		h := newHarness(t)
		seedCatalog(t, h)

		niches, err := h.queries.ListNichesByArea("DEVELOPMENT")
		if err != nil {
			t.Fatalf("failed to list niches: %v", err)
		}
		if len(niches) != 1 || niches[0].Slug != "frontend" {
			t.Errorf("expected the frontend niche, got %v", niches)
		}

		empty, err := h.queries.ListNichesByArea("SECURITY")
		if err != nil {
			t.Fatalf("failed to list niches: %v", err)
		}
		if len(empty) != 0 {
			t.Errorf("expected no niches for SECURITY, got %v", empty)
		}
	})

	t.Run("ListLanguages orders by popularity", func(t *testing.T) {
		h := newHarness(t)
		seedCatalog(t, h)

		languages, err := h.queries.ListLanguages()
		if err != nil {
			t.Fatalf("failed to list languages: %v", err)
		}
		if len(languages) != 3 {
			t.Fatalf("expected 3 languages, got %d", len(languages))
		}
		if languages[0].Slug != "python" || languages[1].Slug != "go" {
			t.Errorf("expected popularity ordering, got %s then %s", languages[0].Slug, languages[1].Slug)
		}
	})

	t.Run("ListSkillsByNiche returns linked skills only", func(t *testing.T) {
		h := newHarness(t)
		seedCatalog(t, h)

		skills, err := h.queries.ListSkillsByNiche("frontend")
		if err != nil {
			t.Fatalf("failed to list skills: %v", err)
		}
		if len(skills) != 1 || skills[0].Slug != "reactjs" {
			t.Errorf("expected only the linked skill, got %v", skills)
		}
	})

	t.Run("SearchLanguages matches by alias", func(t *testing.T) {
		h := newHarness(t)
		seedCatalog(t, h)

		languages, err := h.queries.SearchLanguages("golang", 10)
		if err != nil {
			t.Fatalf("failed to search languages: %v", err)
		}
		if len(languages) != 1 || languages[0].Slug != "go" {
			t.Errorf("expected the alias to match go, got %v", languages)
		}
	})

	t.Run("search is accent-insensitive", func(t *testing.T) {
		h := newHarness(t)
		seedCatalog(t, h)

		languages, err := h.queries.SearchLanguages("cafeml", 10)
		if err != nil {
			t.Fatalf("failed to search languages: %v", err)
		}
		if len(languages) != 1 || languages[0].Slug != "cafeml" {
			t.Errorf("expected accent folding to match CaféML, got %v", languages)
		}
	})

	t.Run("SearchSkills matches keywords and translations", func(t *testing.T) {
		h := newHarness(t)
		seedCatalog(t, h)

		byKeyword, err := h.queries.SearchSkills("jsx", 10)
		if err != nil {
			t.Fatalf("failed to search skills: %v", err)
		}
		if len(byKeyword) != 1 || byKeyword[0].Slug != "reactjs" {
			t.Errorf("expected keyword match, got %v", byKeyword)
		}

		byTranslation, err := h.queries.SearchSkills("unitários", 10)
		if err != nil {
			t.Fatalf("failed to search skills: %v", err)
		}
		if len(byTranslation) != 1 || byTranslation[0].Slug != "unit-testing" {
			t.Errorf("expected translation match, got %v", byTranslation)
		}
	})

	t.Run("search caps results but caches the full set", func(t *testing.T) {
		h := newHarness(t)
		seedCatalog(t, h)

		// "e" matches all three seeded skills.
		first, err := h.queries.SearchSkills("e", 1)
		if err != nil {
			t.Fatalf("failed to search skills: %v", err)
		}
		if len(first) != 1 {
			t.Fatalf("expected capped result, got %d", len(first))
		}

		// A wider limit against the same query reuses the cached full set.
		second, err := h.queries.SearchSkills("e", 10)
		if err != nil {
			t.Fatalf("failed to search skills: %v", err)
		}
		if len(second) <= len(first) {
			t.Errorf("expected the cached set to serve a wider limit, got %d", len(second))
		}
	})

	t.Run("Search splits the limit between families", func(t *testing.T) {
		h := newHarness(t)
		seedCatalog(t, h)

		result, err := h.queries.Search("o", 4)
		if err != nil {
			t.Fatalf("failed to search: %v", err)
		}
		if len(result.Languages) > 2 {
			t.Errorf("expected at most 2 languages, got %d", len(result.Languages))
		}
		if len(result.Skills) > 2 {
			t.Errorf("expected at most 2 skills, got %d", len(result.Skills))
		}
	})

	t.Run("Search never exceeds a small caller limit", func(t *testing.T) {
		h := newHarness(t)
		seedCatalog(t, h)

		// "e" matches one language (CaféML) and all three seeded skills,
		// so an unclamped split would overshoot immediately.
		result, err := h.queries.Search("e", 1)
		if err != nil {
			t.Fatalf("failed to search: %v", err)
		}
		if total := len(result.Languages) + len(result.Skills); total != 1 {
			t.Errorf("expected exactly 1 combined result, got %d", total)
		}
		if len(result.Skills) != 0 {
			t.Errorf("expected the single slot to go to languages, got %d skills", len(result.Skills))
		}
	})

	t.Run("Search gives the odd slot to languages", func(t *testing.T) {
		h := newHarness(t)
		seedCatalog(t, h)

		result, err := h.queries.Search("e", 3)
		if err != nil {
			t.Fatalf("failed to search: %v", err)
		}
		if len(result.Languages) > 2 {
			t.Errorf("expected at most 2 languages, got %d", len(result.Languages))
		}
		if len(result.Skills) > 1 {
			t.Errorf("expected at most 1 skill, got %d", len(result.Skills))
		}
		if total := len(result.Languages) + len(result.Skills); total > 3 {
			t.Errorf("expected at most 3 combined results, got %d", total)
		}
	})

	t.Run("ListSkillsByType is served from the store every time", func(t *testing.T) {
		h := newHarness(t)
		seedCatalog(t, h)

		first, err := h.queries.ListSkillsByType(models.SkillTool, 10)
		if err != nil {
			t.Fatalf("failed to list skills: %v", err)
		}
		if len(first) != 1 {
			t.Fatalf("expected 1 tool, got %d", len(first))
		}

		if err := h.skills.Deactivate("docker"); err != nil {
			t.Fatalf("failed to deactivate skill: %v", err)
		}

		second, err := h.queries.ListSkillsByType(models.SkillTool, 10)
		if err != nil {
			t.Fatalf("failed to list skills: %v", err)
		}
		if len(second) != 0 {
			t.Errorf("expected uncached read to see the deactivation, got %v", second)
		}
	})

	t.Run("expired listings refresh from the store", func(t *testing.T) {
		h := newHarness(t)
		seedCatalog(t, h)

		short := NewQueries(QueriesOpts{
			Areas:     h.areas,
			Niches:    h.niches,
			LangRepo:  h.langs,
			SkillRepo: h.skills,
			Cache:     h.cache,
			ListTTL:   time.Nanosecond,
		})

		if _, err := short.ListLanguages(); err != nil {
			t.Fatalf("failed to prime cache: %v", err)
		}
		if err := h.langs.Deactivate("cafeml"); err != nil {
			t.Fatalf("failed to deactivate language: %v", err)
		}
		time.Sleep(time.Millisecond)

		languages, err := short.ListLanguages()
		if err != nil {
			t.Fatalf("failed to list languages: %v", err)
		}
		if len(languages) != 2 {
			t.Errorf("expected expired cache to refresh, got %d languages", len(languages))
		}
	})
}
