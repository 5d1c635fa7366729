package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/octopus-synapse/techcatalog/internal/models"
	"github.com/octopus-synapse/techcatalog/internal/shared"
)

// AreaRepository implements models.Repository[*models.TechArea].
//
// Areas come from a static seed list; the upsert keeps reruns convergent.
type AreaRepository struct {
	db *sql.DB
}

// NewAreaRepository creates a new AreaRepository with the given database connection
func NewAreaRepository(db *sql.DB) *AreaRepository {
	return &AreaRepository{db: db}
}

// Upsert inserts the area or fully overwrites the existing row matched by
// its type key. Returns true when a new row was inserted.
func (r *AreaRepository) Upsert(area *models.TechArea) (bool, error) {
	if err := area.Validate(); err != nil {
		return false, fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()

	var id string
	err := r.db.QueryRow("SELECT id FROM tech_areas WHERE type = ?", area.Type).Scan(&id)
	if err == sql.ErrNoRows {
		area.ID = shared.GenerateID()
		area.CreatedAt = now
		area.UpdatedAt = now

		_, err = r.db.Exec(`
			INSERT INTO tech_areas (id, type, name_en, name_pt, icon, color, display_order, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			area.ID, area.Type, area.NameEn, area.NamePt, area.Icon, area.Color, area.Order, area.CreatedAt, area.UpdatedAt,
		)
		if err != nil {
			return false, fmt.Errorf("failed to insert area: %w", err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up area: %w", err)
	}

	area.ID = id
	area.UpdatedAt = now

	_, err = r.db.Exec(`
		UPDATE tech_areas
		SET name_en = ?, name_pt = ?, icon = ?, color = ?, display_order = ?, updated_at = ?
		WHERE type = ?`,
		area.NameEn, area.NamePt, area.Icon, area.Color, area.Order, area.UpdatedAt, area.Type,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update area: %w", err)
	}
	return false, nil
}

// GetBySlug retrieves an area by its type key.
func (r *AreaRepository) GetBySlug(areaType string) (*models.TechArea, error) {
	row := r.db.QueryRow(`
		SELECT id, type, name_en, name_pt, icon, color, display_order, created_at, updated_at
		FROM tech_areas WHERE type = ?`, areaType)

	area, err := scanArea(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: area %s", shared.ErrNotFound, areaType)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan area: %w", err)
	}
	return area, nil
}

// List retrieves all areas in display order.
func (r *AreaRepository) List() ([]*models.TechArea, error) {
	rows, err := r.db.Query(`
		SELECT id, type, name_en, name_pt, icon, color, display_order, created_at, updated_at
		FROM tech_areas ORDER BY display_order ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query areas: %w", err)
	}
	defer rows.Close()

	var areas []*models.TechArea
	for rows.Next() {
		area, err := scanArea(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan area: %w", err)
		}
		areas = append(areas, area)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return areas, nil
}

func scanArea(scan func(...any) error) (*models.TechArea, error) {
	var (
		area        models.TechArea
		icon, color sql.NullString
	)
	err := scan(&area.ID, &area.Type, &area.NameEn, &area.NamePt, &icon, &color, &area.Order, &area.CreatedAt, &area.UpdatedAt)
	if err != nil {
		return nil, err
	}
	area.Icon = icon.String
	area.Color = color.String
	return &area, nil
}
