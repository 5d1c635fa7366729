package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/octopus-synapse/techcatalog/internal/models"
	"github.com/octopus-synapse/techcatalog/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func testArea() *models.TechArea {
	return &models.TechArea{
		Type:   "DEVELOPMENT",
		NameEn: "Development",
		NamePt: "Desenvolvimento",
		Icon:   "code",
		Color:  "#3B82F6",
		Order:  1,
	}
}

func testNiche() *models.TechNiche {
	return &models.TechNiche{
		Slug:     "frontend",
		AreaType: "DEVELOPMENT",
		NameEn:   "Frontend",
		NamePt:   "Frontend",
		Icon:     "layout",
		Order:    1,
	}
}

func testLanguage(slug string) *models.ProgrammingLanguage {
	return &models.ProgrammingLanguage{
		Slug:           slug,
		NameEn:         "Go",
		NameLocal:      "Go",
		Aliases:        []string{"golang"},
		FileExtensions: []string{".go"},
		Color:          "#00ADD8",
		Typing:         "static",
		Paradigms:      []string{"procedural", "concurrent"},
		Popularity:     990,
		IsActive:       true,
	}
}

func testSkill(slug string) *models.TechSkill {
	return &models.TechSkill{
		Slug:       slug,
		NameEn:     "Docker",
		NamePt:     "Docker",
		Type:       models.SkillTool,
		Aliases:    []string{"docker-compose"},
		Keywords:   []string{"containers"},
		Color:      "#2496ED",
		Popularity: 420,
		IsActive:   true,
	}
}

func TestAreaRepository(t *testing.T) {
	t.Run("Upsert inserts new area", func(t *testing.T) {
		repo := NewAreaRepository(setupTestDB(t))

		inserted, err := repo.Upsert(testArea())
		if err != nil {
			t.Fatalf("failed to upsert area: %v", err)
		}
		if !inserted {
			t.Error("expected first upsert to report an insert")
		}
	})

	t.Run("Upsert overwrites existing area", func(t *testing.T) {
		repo := NewAreaRepository(setupTestDB(t))

		if _, err := repo.Upsert(testArea()); err != nil {
			t.Fatalf("failed to upsert area: %v", err)
		}

		update := testArea()
		update.NameEn = "Software Development"
		update.Order = 3

		inserted, err := repo.Upsert(update)
		if err != nil {
			t.Fatalf("failed to upsert area: %v", err)
		}
		if inserted {
			t.Error("expected second upsert to report an update")
		}

		got, err := repo.GetBySlug("DEVELOPMENT")
		if err != nil {
			t.Fatalf("failed to get area: %v", err)
		}
		if got.NameEn != "Software Development" {
			t.Errorf("expected overwritten name, got %s", got.NameEn)
		}
		if got.Order != 3 {
			t.Errorf("expected overwritten order, got %d", got.Order)
		}
	})

	t.Run("Upsert keeps the original ID", func(t *testing.T) {
		repo := NewAreaRepository(setupTestDB(t))

		if _, err := repo.Upsert(testArea()); err != nil {
			t.Fatalf("failed to upsert area: %v", err)
		}
		first, err := repo.GetBySlug("DEVELOPMENT")
		if err != nil {
			t.Fatalf("failed to get area: %v", err)
		}

		if _, err := repo.Upsert(testArea()); err != nil {
			t.Fatalf("failed to upsert area: %v", err)
		}
		second, err := repo.GetBySlug("DEVELOPMENT")
		if err != nil {
			t.Fatalf("failed to get area: %v", err)
		}

		if first.ID != second.ID {
			t.Errorf("expected stable ID across upserts, got %s then %s", first.ID, second.ID)
		}
	})

	t.Run("GetBySlug returns ErrNotFound for missing area", func(t *testing.T) {
		repo := NewAreaRepository(setupTestDB(t))

		_, err := repo.GetBySlug("NOPE")
		if !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("List orders by display order", func(t *testing.T) {
		repo := NewAreaRepository(setupTestDB(t))

		second := testArea()
		second.Type = "DATA"
		second.NameEn = "Data"
		second.Order = 2

		if _, err := repo.Upsert(second); err != nil {
			t.Fatalf("failed to upsert area: %v", err)
		}
		if _, err := repo.Upsert(testArea()); err != nil {
			t.Fatalf("failed to upsert area: %v", err)
		}

		areas, err := repo.List()
		if err != nil {
			t.Fatalf("failed to list areas: %v", err)
		}
		if len(areas) != 2 {
			t.Fatalf("expected 2 areas, got %d", len(areas))
		}
		if areas[0].Type != "DEVELOPMENT" || areas[1].Type != "DATA" {
			t.Errorf("expected order DEVELOPMENT, DATA; got %s, %s", areas[0].Type, areas[1].Type)
		}
	})
}

func TestNicheRepository(t *testing.T) {
	seed := func(t *testing.T, db *sql.DB) *NicheRepository {
		t.Helper()
		if _, err := NewAreaRepository(db).Upsert(testArea()); err != nil {
			t.Fatalf("failed to seed area: %v", err)
		}
		return NewNicheRepository(db)
	}

	t.Run("Upsert is idempotent", func(t *testing.T) {
		db := setupTestDB(t)
		repo := seed(t, db)

		inserted, err := repo.Upsert(testNiche())
		if err != nil {
			t.Fatalf("failed to upsert niche: %v", err)
		}
		if !inserted {
			t.Error("expected first upsert to insert")
		}

		inserted, err = repo.Upsert(testNiche())
		if err != nil {
			t.Fatalf("failed to upsert niche: %v", err)
		}
		if inserted {
			t.Error("expected second upsert to update")
		}

		niches, err := repo.List()
		if err != nil {
			t.Fatalf("failed to list niches: %v", err)
		}
		if len(niches) != 1 {
			t.Errorf("expected a single niche row, got %d", len(niches))
		}
	})

	t.Run("Upsert rejects unknown area", func(t *testing.T) {
		db := setupTestDB(t)
		repo := seed(t, db)

		orphan := testNiche()
		orphan.Slug = "orphan"
		orphan.AreaType = "UNKNOWN"

		if _, err := repo.Upsert(orphan); err == nil {
			t.Error("expected foreign key violation for unknown area")
		}
	})

	t.Run("ListByArea scopes to one area", func(t *testing.T) {
		db := setupTestDB(t)
		repo := seed(t, db)

		other := testArea()
		other.Type = "DATA"
		other.Order = 2
		if _, err := NewAreaRepository(db).Upsert(other); err != nil {
			t.Fatalf("failed to seed area: %v", err)
		}

		if _, err := repo.Upsert(testNiche()); err != nil {
			t.Fatalf("failed to upsert niche: %v", err)
		}
		dataNiche := testNiche()
		dataNiche.Slug = "data-science"
		dataNiche.AreaType = "DATA"
		if _, err := repo.Upsert(dataNiche); err != nil {
			t.Fatalf("failed to upsert niche: %v", err)
		}

		niches, err := repo.ListByArea("DEVELOPMENT")
		if err != nil {
			t.Fatalf("failed to list niches: %v", err)
		}
		if len(niches) != 1 || niches[0].Slug != "frontend" {
			t.Errorf("expected only the frontend niche, got %v", niches)
		}
	})
}

func TestLanguageRepository(t *testing.T) {
	t.Run("Upsert round-trips set columns", func(t *testing.T) {
		repo := NewLanguageRepository(setupTestDB(t))

		if _, err := repo.Upsert(testLanguage("go")); err != nil {
			t.Fatalf("failed to upsert language: %v", err)
		}

		got, err := repo.GetBySlug("go")
		if err != nil {
			t.Fatalf("failed to get language: %v", err)
		}
		if len(got.Aliases) != 1 || got.Aliases[0] != "golang" {
			t.Errorf("expected aliases to round-trip, got %v", got.Aliases)
		}
		if len(got.Paradigms) != 2 {
			t.Errorf("expected paradigms to round-trip, got %v", got.Paradigms)
		}
	})

	t.Run("Upsert with empty sets stores empty arrays", func(t *testing.T) {
		repo := NewLanguageRepository(setupTestDB(t))

		lang := testLanguage("brainfuck")
		lang.Aliases = nil
		lang.FileExtensions = nil
		lang.Paradigms = nil

		if _, err := repo.Upsert(lang); err != nil {
			t.Fatalf("failed to upsert language: %v", err)
		}

		got, err := repo.GetBySlug("brainfuck")
		if err != nil {
			t.Fatalf("failed to get language: %v", err)
		}
		if got.Aliases == nil || len(got.Aliases) != 0 {
			t.Errorf("expected empty alias slice, got %v", got.Aliases)
		}
	})

	t.Run("List returns active languages by popularity", func(t *testing.T) {
		repo := NewLanguageRepository(setupTestDB(t))

		popular := testLanguage("go")
		popular.Popularity = 990

		niche := testLanguage("nim")
		niche.NameEn = "Nim"
		niche.Popularity = 10

		retired := testLanguage("coffeescript")
		retired.NameEn = "CoffeeScript"
		retired.IsActive = false

		for _, lang := range []*models.ProgrammingLanguage{niche, popular, retired} {
			if _, err := repo.Upsert(lang); err != nil {
				t.Fatalf("failed to upsert language: %v", err)
			}
		}

		languages, err := repo.List()
		if err != nil {
			t.Fatalf("failed to list languages: %v", err)
		}
		if len(languages) != 2 {
			t.Fatalf("expected 2 active languages, got %d", len(languages))
		}
		if languages[0].Slug != "go" || languages[1].Slug != "nim" {
			t.Errorf("expected popularity ordering, got %s, %s", languages[0].Slug, languages[1].Slug)
		}
	})

	t.Run("Deactivate hides a language from listings", func(t *testing.T) {
		repo := NewLanguageRepository(setupTestDB(t))

		if _, err := repo.Upsert(testLanguage("go")); err != nil {
			t.Fatalf("failed to upsert language: %v", err)
		}
		if err := repo.Deactivate("go"); err != nil {
			t.Fatalf("failed to deactivate language: %v", err)
		}

		languages, err := repo.List()
		if err != nil {
			t.Fatalf("failed to list languages: %v", err)
		}
		if len(languages) != 0 {
			t.Errorf("expected no active languages, got %d", len(languages))
		}

		got, err := repo.GetBySlug("go")
		if err != nil {
			t.Fatalf("expected deactivated language to stay readable, got %v", err)
		}
		if got.IsActive {
			t.Error("expected language to be inactive")
		}
	})
}

func TestSkillRepository(t *testing.T) {
	seed := func(t *testing.T, db *sql.DB) *SkillRepository {
		t.Helper()
		if _, err := NewAreaRepository(db).Upsert(testArea()); err != nil {
			t.Fatalf("failed to seed area: %v", err)
		}
		if _, err := NewNicheRepository(db).Upsert(testNiche()); err != nil {
			t.Fatalf("failed to seed niche: %v", err)
		}
		return NewSkillRepository(db)
	}

	t.Run("Upsert is idempotent by slug", func(t *testing.T) {
		db := setupTestDB(t)
		repo := seed(t, db)

		inserted, err := repo.Upsert(testSkill("docker"))
		if err != nil {
			t.Fatalf("failed to upsert skill: %v", err)
		}
		if !inserted {
			t.Error("expected first upsert to insert")
		}

		update := testSkill("docker")
		update.Popularity = 900

		inserted, err = repo.Upsert(update)
		if err != nil {
			t.Fatalf("failed to upsert skill: %v", err)
		}
		if inserted {
			t.Error("expected second upsert to update")
		}

		got, err := repo.GetBySlug("docker")
		if err != nil {
			t.Fatalf("failed to get skill: %v", err)
		}
		if got.Popularity != 900 {
			t.Errorf("expected popularity overwrite, got %d", got.Popularity)
		}
	})

	t.Run("ResolveNiche maps slug to ID", func(t *testing.T) {
		db := setupTestDB(t)
		repo := seed(t, db)

		id := repo.ResolveNiche("frontend")
		if id == "" {
			t.Error("expected a niche ID")
		}
	})

	t.Run("ResolveNiche returns empty for unknown slug", func(t *testing.T) {
		db := setupTestDB(t)
		repo := seed(t, db)

		id := repo.ResolveNiche("does-not-exist")
		if id != "" {
			t.Errorf("expected empty ID, got %s", id)
		}
	})

	t.Run("skill without niche keeps NULL reference", func(t *testing.T) {
		db := setupTestDB(t)
		repo := seed(t, db)

		skill := testSkill("agile")
		skill.Type = models.SkillMethodology
		skill.NicheID = ""

		if _, err := repo.Upsert(skill); err != nil {
			t.Fatalf("failed to upsert skill: %v", err)
		}

		got, err := repo.GetBySlug("agile")
		if err != nil {
			t.Fatalf("failed to get skill: %v", err)
		}
		if got.NicheID != "" {
			t.Errorf("expected empty niche reference, got %s", got.NicheID)
		}
	})

	t.Run("ListByNiche filters by linked niche", func(t *testing.T) {
		db := setupTestDB(t)
		repo := seed(t, db)

		nicheID := repo.ResolveNiche("frontend")
		if nicheID == "" {
			t.Fatal("failed to resolve niche")
		}

		linked := testSkill("react")
		linked.NameEn = "React"
		linked.Type = models.SkillFramework
		linked.NicheID = nicheID

		loose := testSkill("docker")

		for _, skill := range []*models.TechSkill{linked, loose} {
			if _, err := repo.Upsert(skill); err != nil {
				t.Fatalf("failed to upsert skill: %v", err)
			}
		}

		skills, err := repo.ListByNiche("frontend")
		if err != nil {
			t.Fatalf("failed to list skills: %v", err)
		}
		if len(skills) != 1 || skills[0].Slug != "react" {
			t.Errorf("expected only the linked skill, got %v", skills)
		}
	})

	t.Run("ListByType caps results", func(t *testing.T) {
		db := setupTestDB(t)
		repo := seed(t, db)

		for _, slug := range []string{"docker", "kubernetes", "terraform"} {
			skill := testSkill(slug)
			skill.NameEn = slug
			if _, err := repo.Upsert(skill); err != nil {
				t.Fatalf("failed to upsert skill: %v", err)
			}
		}

		skills, err := repo.ListByType(models.SkillTool, 2)
		if err != nil {
			t.Fatalf("failed to list skills: %v", err)
		}
		if len(skills) != 2 {
			t.Errorf("expected capped listing of 2, got %d", len(skills))
		}
	})

	t.Run("Deactivate hides a skill from listings", func(t *testing.T) {
		db := setupTestDB(t)
		repo := seed(t, db)

		if _, err := repo.Upsert(testSkill("docker")); err != nil {
			t.Fatalf("failed to upsert skill: %v", err)
		}
		if err := repo.Deactivate("docker"); err != nil {
			t.Fatalf("failed to deactivate skill: %v", err)
		}

		skills, err := repo.List()
		if err != nil {
			t.Fatalf("failed to list skills: %v", err)
		}
		if len(skills) != 0 {
			t.Errorf("expected no active skills, got %d", len(skills))
		}
	})
}
