package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/twpayne/go-geom"

	"github.com/shenikar/lga_lookup_service/internal/geometry"
	"github.com/shenikar/lga_lookup_service/internal/models"
	"github.com/shenikar/lga_lookup_service/internal/service"
)

type AreaRepository struct {
	db Pool
}

func NewAreaRepository(db Pool) service.AreaRepository {
	return &AreaRepository{
		db: db,
	}
}

// CreateAreas сохраняет пакет районов в одной транзакции: либо все, либо ничего
func (r *AreaRepository) CreateAreas(ctx context.Context, areas []*models.LocalGovernmentArea) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// После Commit откат ничего не делает
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO local_government_areas (name, polygon)
		VALUES ($1, ST_GeomFromEWKT($2)) RETURNING id;
	`
	for i, area := range areas {
		ewkt, err := geometry.EWKT(area.Polygon)
		if err != nil {
			return fmt.Errorf("area %d: %w", i, err)
		}
		if err := tx.QueryRow(ctx, query, area.Name, ewkt).Scan(&area.ID); err != nil {
			return fmt.Errorf("failed to insert area %q: %w", area.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit areas: %w", err)
	}
	return nil
}

// GetByID возвращает район по id
func (r *AreaRepository) GetByID(ctx context.Context, id int64) (*models.LocalGovernmentArea, error) {
	area := &models.LocalGovernmentArea{}
	query := `
		SELECT id, name
		FROM local_government_areas
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&area.ID, &area.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("local government area %d: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get area by id: %w", err)
	}
	return area, nil
}

// FindContaining ищет район, покрывающий точку. ST_Covers включает границу полигона,
// при перекрытии районов берется наименьший id.
func (r *AreaRepository) FindContaining(ctx context.Context, point *geom.Point) (*models.LocalGovernmentArea, error) {
	wkb, err := geometry.EWKB(point)
	if err != nil {
		return nil, err
	}

	area := &models.LocalGovernmentArea{}
	query := `
		SELECT id, name
		FROM local_government_areas
		WHERE ST_Covers(polygon, ST_GeomFromEWKB($1))
		ORDER BY id
		LIMIT 1;
	`
	err = r.db.QueryRow(ctx, query, wkb).Scan(&area.ID, &area.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no area contains point: %w", service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find area by point: %w", err)
	}
	return area, nil
}

// FindIntersecting возвращает все районы, пересекающиеся с полигоном, в порядке id
func (r *AreaRepository) FindIntersecting(ctx context.Context, polygon *geom.Polygon) ([]*models.LocalGovernmentArea, error) {
	wkb, err := geometry.EWKB(polygon)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, name
		FROM local_government_areas
		WHERE ST_Intersects(polygon, ST_GeomFromEWKB($1))
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query, wkb)
	if err != nil {
		return nil, fmt.Errorf("failed to find areas by polygon: %w", err)
	}
	defer rows.Close()

	var areas []*models.LocalGovernmentArea
	for rows.Next() {
		area := &models.LocalGovernmentArea{}
		if err := rows.Scan(&area.ID, &area.Name); err != nil {
			return nil, fmt.Errorf("failed to scan area: %w", err)
		}
		areas = append(areas, area)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration: %w", err)
	}
	return areas, nil
}
