package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/octopus-synapse/techcatalog/internal/models"
	"github.com/octopus-synapse/techcatalog/internal/shared"
)

// SkillRepository implements models.Repository[*models.TechSkill].
//
// The niche link is resolved from a slug at upsert time via ResolveNiche;
// a failed lookup leaves the reference unset rather than erroring, so the
// catalog never gets a dangling niche id written deliberately.
type SkillRepository struct {
	db *sql.DB
}

// NewSkillRepository creates a new SkillRepository with the given database connection
func NewSkillRepository(db *sql.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// ResolveNiche maps a niche slug to its row id, or "" when the slug is empty
// or unknown.
func (r *SkillRepository) ResolveNiche(nicheSlug string) string {
	if nicheSlug == "" {
		return ""
	}
	var id string
	if err := r.db.QueryRow("SELECT id FROM tech_niches WHERE slug = ?", nicheSlug).Scan(&id); err != nil {
		return ""
	}
	return id
}

// Upsert inserts the skill or fully overwrites the existing row matched by
// slug. Returns true when a new row was inserted.
func (r *SkillRepository) Upsert(skill *models.TechSkill) (bool, error) {
	if err := skill.Validate(); err != nil {
		return false, fmt.Errorf("validation failed: %w", err)
	}

	aliases, err := marshalSet(skill.Aliases)
	if err != nil {
		return false, err
	}
	keywords, err := marshalSet(skill.Keywords)
	if err != nil {
		return false, err
	}

	now := time.Now()

	var id string
	err = r.db.QueryRow("SELECT id FROM tech_skills WHERE slug = ?", skill.Slug).Scan(&id)
	if err == sql.ErrNoRows {
		skill.ID = shared.GenerateID()
		skill.CreatedAt = now
		skill.UpdatedAt = now

		_, err = r.db.Exec(`
			INSERT INTO tech_skills
				(id, slug, name_en, name_pt, type, niche_id, color, aliases, keywords, popularity, is_active, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			skill.ID, skill.Slug, skill.NameEn, skill.NamePt, string(skill.Type), nullable(skill.NicheID), nullable(skill.Color),
			aliases, keywords, skill.Popularity, skill.IsActive, skill.CreatedAt, skill.UpdatedAt,
		)
		if err != nil {
			return false, fmt.Errorf("failed to insert skill: %w", err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up skill: %w", err)
	}

	skill.ID = id
	skill.UpdatedAt = now

	_, err = r.db.Exec(`
		UPDATE tech_skills
		SET name_en = ?, name_pt = ?, type = ?, niche_id = ?, color = ?, aliases = ?, keywords = ?,
			popularity = ?, is_active = ?, updated_at = ?
		WHERE slug = ?`,
		skill.NameEn, skill.NamePt, string(skill.Type), nullable(skill.NicheID), nullable(skill.Color),
		aliases, keywords, skill.Popularity, skill.IsActive, skill.UpdatedAt, skill.Slug,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update skill: %w", err)
	}
	return false, nil
}

// GetBySlug retrieves a skill by slug, active or not.
func (r *SkillRepository) GetBySlug(slug string) (*models.TechSkill, error) {
	row := r.db.QueryRow(selectSkill+" WHERE slug = ?", slug)

	skill, err := scanSkill(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: skill %s", shared.ErrNotFound, slug)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan skill: %w", err)
	}
	return skill, nil
}

// List retrieves all active skills ordered by popularity descending.
func (r *SkillRepository) List() ([]*models.TechSkill, error) {
	return r.querySkills(selectSkill + " WHERE is_active = 1 ORDER BY popularity DESC, slug ASC")
}

// ListByNiche retrieves active skills linked to the niche with the given
// slug, popularity descending.
func (r *SkillRepository) ListByNiche(nicheSlug string) ([]*models.TechSkill, error) {
	return r.querySkills(selectSkill+`
		WHERE is_active = 1 AND niche_id = (SELECT id FROM tech_niches WHERE slug = ?)
		ORDER BY popularity DESC, slug ASC`, nicheSlug)
}

// ListByType retrieves active skills of one classification type, popularity
// descending, capped at limit.
func (r *SkillRepository) ListByType(skillType models.SkillType, limit int) ([]*models.TechSkill, error) {
	return r.querySkills(selectSkill+`
		WHERE is_active = 1 AND type = ?
		ORDER BY popularity DESC, slug ASC LIMIT ?`, string(skillType), limit)
}

// Deactivate soft-deactivates a skill so the read path stops serving it.
func (r *SkillRepository) Deactivate(slug string) error {
	result, err := r.db.Exec("UPDATE tech_skills SET is_active = 0, updated_at = ? WHERE slug = ?", time.Now(), slug)
	if err != nil {
		return fmt.Errorf("failed to deactivate skill: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: skill %s", shared.ErrNotFound, slug)
	}
	return nil
}

const selectSkill = `
	SELECT id, slug, name_en, name_pt, type, niche_id, color, aliases, keywords, popularity, is_active, created_at, updated_at
	FROM tech_skills`

func (r *SkillRepository) querySkills(query string, args ...any) ([]*models.TechSkill, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	defer rows.Close()

	var skills []*models.TechSkill
	for rows.Next() {
		skill, err := scanSkill(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, skill)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return skills, nil
}

func scanSkill(scan func(...any) error) (*models.TechSkill, error) {
	var (
		skill             models.TechSkill
		skillType         string
		nicheID, color    sql.NullString
		aliases, keywords string
	)
	err := scan(&skill.ID, &skill.Slug, &skill.NameEn, &skill.NamePt, &skillType, &nicheID, &color,
		&aliases, &keywords, &skill.Popularity, &skill.IsActive, &skill.CreatedAt, &skill.UpdatedAt)
	if err != nil {
		return nil, err
	}

	skill.Type = models.ParseSkillType(skillType)
	skill.NicheID = nicheID.String
	skill.Color = color.String

	if skill.Aliases, err = unmarshalSet(aliases); err != nil {
		return nil, err
	}
	if skill.Keywords, err = unmarshalSet(keywords); err != nil {
		return nil, err
	}
	return &skill, nil
}
