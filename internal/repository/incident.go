package repository

import (
	"context"
	"fmt"

	"github.com/twpayne/go-geom"

	"github.com/shenikar/lga_lookup_service/internal/geometry"
	"github.com/shenikar/lga_lookup_service/internal/models"
	"github.com/shenikar/lga_lookup_service/internal/service"
)

type IncidentRepository struct {
	db Pool
}

func NewIncidentRepository(db Pool) service.IncidentRepository {
	return &IncidentRepository{
		db: db,
	}
}

// CreateWithPolygons создает инцидент и его полигоны в одной транзакции.
// При любой ошибке не сохраняется ни инцидент, ни один из полигонов.
func (r *IncidentRepository) CreateWithPolygons(ctx context.Context, incident *models.Incident, polygons []*models.IncidentPolygon) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO incidents (description, type, year, date_reported, local_government_area_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;
	`
	err = tx.QueryRow(ctx, query,
		incident.Description,
		incident.Type,
		incident.Year,
		incident.DateReported,
		incident.LocalGovernmentAreaID,
	).Scan(&incident.ID)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}

	polygonQuery := `
		INSERT INTO incident_polygons (incident_id, polygon)
		VALUES ($1, ST_GeomFromEWKB($2)) RETURNING id;
	`
	for i, p := range polygons {
		wkb, err := geometry.EWKB(p.Polygon)
		if err != nil {
			return fmt.Errorf("incident polygon %d: %w", i, err)
		}
		p.IncidentID = incident.ID
		if err := tx.QueryRow(ctx, polygonQuery, incident.ID, wkb).Scan(&p.ID); err != nil {
			return fmt.Errorf("failed to create incident polygon %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit incident: %w", err)
	}
	return nil
}

// FindPolygonsIntersecting возвращает полигоны инцидентов, пересекающиеся с полигоном, с геометрией в WKT
func (r *IncidentRepository) FindPolygonsIntersecting(ctx context.Context, polygon *geom.Polygon) ([]*models.IncidentPolygon, error) {
	wkb, err := geometry.EWKB(polygon)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, incident_id, ST_AsText(polygon)
		FROM incident_polygons
		WHERE ST_Intersects(polygon, ST_GeomFromEWKB($1))
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query, wkb)
	if err != nil {
		return nil, fmt.Errorf("failed to find incident polygons: %w", err)
	}
	defer rows.Close()

	var found []*models.IncidentPolygon
	for rows.Next() {
		p := &models.IncidentPolygon{}
		if err := rows.Scan(&p.ID, &p.IncidentID, &p.WKT); err != nil {
			return nil, fmt.Errorf("failed to scan incident polygon: %w", err)
		}
		found = append(found, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration: %w", err)
	}
	return found, nil
}
