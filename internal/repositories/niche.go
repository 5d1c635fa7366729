package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/octopus-synapse/techcatalog/internal/models"
	"github.com/octopus-synapse/techcatalog/internal/shared"
)

// NicheRepository implements models.Repository[*models.TechNiche].
type NicheRepository struct {
	db *sql.DB
}

// NewNicheRepository creates a new NicheRepository with the given database connection
func NewNicheRepository(db *sql.DB) *NicheRepository {
	return &NicheRepository{db: db}
}

// Upsert inserts the niche or fully overwrites the existing row matched by slug.
// Returns true when a new row was inserted.
func (r *NicheRepository) Upsert(niche *models.TechNiche) (bool, error) {
	if err := niche.Validate(); err != nil {
		return false, fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()

	var id string
	err := r.db.QueryRow("SELECT id FROM tech_niches WHERE slug = ?", niche.Slug).Scan(&id)
	if err == sql.ErrNoRows {
		niche.ID = shared.GenerateID()
		niche.CreatedAt = now
		niche.UpdatedAt = now

		_, err = r.db.Exec(`
			INSERT INTO tech_niches (id, slug, area_type, name_en, name_pt, icon, display_order, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			niche.ID, niche.Slug, niche.AreaType, niche.NameEn, niche.NamePt, niche.Icon, niche.Order, niche.CreatedAt, niche.UpdatedAt,
		)
		if err != nil {
			return false, fmt.Errorf("failed to insert niche: %w", err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up niche: %w", err)
	}

	niche.ID = id
	niche.UpdatedAt = now

	_, err = r.db.Exec(`
		UPDATE tech_niches
		SET area_type = ?, name_en = ?, name_pt = ?, icon = ?, display_order = ?, updated_at = ?
		WHERE slug = ?`,
		niche.AreaType, niche.NameEn, niche.NamePt, niche.Icon, niche.Order, niche.UpdatedAt, niche.Slug,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update niche: %w", err)
	}
	return false, nil
}

// GetBySlug retrieves a niche by slug.
func (r *NicheRepository) GetBySlug(slug string) (*models.TechNiche, error) {
	row := r.db.QueryRow(selectNiche+" WHERE n.slug = ?", slug)

	niche, err := scanNiche(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: niche %s", shared.ErrNotFound, slug)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan niche: %w", err)
	}
	return niche, nil
}

// List retrieves all niches ordered by owning-area order, then own order.
func (r *NicheRepository) List() ([]*models.TechNiche, error) {
	return r.queryNiches(selectNiche+`
		JOIN tech_areas a ON a.type = n.area_type
		ORDER BY a.display_order ASC, n.display_order ASC`)
}

// ListByArea retrieves the niches belonging to one area type, in display order.
func (r *NicheRepository) ListByArea(areaType string) ([]*models.TechNiche, error) {
	return r.queryNiches(selectNiche+" WHERE n.area_type = ? ORDER BY n.display_order ASC", areaType)
}

const selectNiche = `
	SELECT n.id, n.slug, n.area_type, n.name_en, n.name_pt, n.icon, n.display_order, n.created_at, n.updated_at
	FROM tech_niches n`

func (r *NicheRepository) queryNiches(query string, args ...any) ([]*models.TechNiche, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query niches: %w", err)
	}
	defer rows.Close()

	var niches []*models.TechNiche
	for rows.Next() {
		niche, err := scanNiche(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan niche: %w", err)
		}
		niches = append(niches, niche)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return niches, nil
}

func scanNiche(scan func(...any) error) (*models.TechNiche, error) {
	var (
		niche models.TechNiche
		icon  sql.NullString
	)
	err := scan(&niche.ID, &niche.Slug, &niche.AreaType, &niche.NameEn, &niche.NamePt, &icon, &niche.Order, &niche.CreatedAt, &niche.UpdatedAt)
	if err != nil {
		return nil, err
	}
	niche.Icon = icon.String
	return &niche, nil
}
