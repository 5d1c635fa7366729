package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/octopus-synapse/techcatalog/internal/models"
	"github.com/octopus-synapse/techcatalog/internal/shared"
)

// LanguageRepository implements models.Repository[*models.ProgrammingLanguage].
//
// Languages are created and updated only by the sync pipeline and never
// deleted; IsActive gates the read path.
type LanguageRepository struct {
	db *sql.DB
}

// NewLanguageRepository creates a new LanguageRepository with the given database connection
func NewLanguageRepository(db *sql.DB) *LanguageRepository {
	return &LanguageRepository{db: db}
}

// Upsert inserts the language or fully overwrites the existing row matched by
// slug. Returns true when a new row was inserted.
func (r *LanguageRepository) Upsert(lang *models.ProgrammingLanguage) (bool, error) {
	if err := lang.Validate(); err != nil {
		return false, fmt.Errorf("validation failed: %w", err)
	}

	aliases, err := marshalSet(lang.Aliases)
	if err != nil {
		return false, err
	}
	extensions, err := marshalSet(lang.FileExtensions)
	if err != nil {
		return false, err
	}
	paradigms, err := marshalSet(lang.Paradigms)
	if err != nil {
		return false, err
	}

	now := time.Now()

	var id string
	err = r.db.QueryRow("SELECT id FROM programming_languages WHERE slug = ?", lang.Slug).Scan(&id)
	if err == sql.ErrNoRows {
		lang.ID = shared.GenerateID()
		lang.CreatedAt = now
		lang.UpdatedAt = now

		_, err = r.db.Exec(`
			INSERT INTO programming_languages
				(id, slug, name_en, name_local, color, website, aliases, file_extensions, paradigms, typing, popularity, is_active, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			lang.ID, lang.Slug, lang.NameEn, lang.NameLocal, nullable(lang.Color), nullable(lang.Website),
			aliases, extensions, paradigms, nullable(lang.Typing), lang.Popularity, lang.IsActive, lang.CreatedAt, lang.UpdatedAt,
		)
		if err != nil {
			return false, fmt.Errorf("failed to insert language: %w", err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up language: %w", err)
	}

	lang.ID = id
	lang.UpdatedAt = now

	_, err = r.db.Exec(`
		UPDATE programming_languages
		SET name_en = ?, name_local = ?, color = ?, website = ?, aliases = ?, file_extensions = ?,
			paradigms = ?, typing = ?, popularity = ?, is_active = ?, updated_at = ?
		WHERE slug = ?`,
		lang.NameEn, lang.NameLocal, nullable(lang.Color), nullable(lang.Website), aliases, extensions,
		paradigms, nullable(lang.Typing), lang.Popularity, lang.IsActive, lang.UpdatedAt, lang.Slug,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update language: %w", err)
	}
	return false, nil
}

// GetBySlug retrieves a language by slug, active or not.
func (r *LanguageRepository) GetBySlug(slug string) (*models.ProgrammingLanguage, error) {
	row := r.db.QueryRow(selectLanguage+" WHERE slug = ?", slug)

	lang, err := scanLanguage(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: language %s", shared.ErrNotFound, slug)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan language: %w", err)
	}
	return lang, nil
}

// List retrieves all active languages ordered by popularity descending.
func (r *LanguageRepository) List() ([]*models.ProgrammingLanguage, error) {
	rows, err := r.db.Query(selectLanguage + " WHERE is_active = 1 ORDER BY popularity DESC, slug ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query languages: %w", err)
	}
	defer rows.Close()

	var langs []*models.ProgrammingLanguage
	for rows.Next() {
		lang, err := scanLanguage(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan language: %w", err)
		}
		langs = append(langs, lang)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return langs, nil
}

// Deactivate soft-deactivates a language so the read path stops serving it.
func (r *LanguageRepository) Deactivate(slug string) error {
	result, err := r.db.Exec("UPDATE programming_languages SET is_active = 0, updated_at = ? WHERE slug = ?", time.Now(), slug)
	if err != nil {
		return fmt.Errorf("failed to deactivate language: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: language %s", shared.ErrNotFound, slug)
	}
	return nil
}

const selectLanguage = `
	SELECT id, slug, name_en, name_local, color, website, aliases, file_extensions, paradigms, typing,
		popularity, is_active, created_at, updated_at
	FROM programming_languages`

func scanLanguage(scan func(...any) error) (*models.ProgrammingLanguage, error) {
	var (
		lang                   models.ProgrammingLanguage
		color, website, typing sql.NullString
		aliases, exts, digms   string
	)
	err := scan(&lang.ID, &lang.Slug, &lang.NameEn, &lang.NameLocal, &color, &website, &aliases, &exts, &digms,
		&typing, &lang.Popularity, &lang.IsActive, &lang.CreatedAt, &lang.UpdatedAt)
	if err != nil {
		return nil, err
	}

	lang.Color = color.String
	lang.Website = website.String
	lang.Typing = typing.String

	if lang.Aliases, err = unmarshalSet(aliases); err != nil {
		return nil, err
	}
	if lang.FileExtensions, err = unmarshalSet(exts); err != nil {
		return nil, err
	}
	if lang.Paradigms, err = unmarshalSet(digms); err != nil {
		return nil, err
	}
	return &lang, nil
}

// nullable converts an empty string to a SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
