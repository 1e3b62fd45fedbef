package ingest

import (
	"encoding/json"
	"fmt"

	"github.com/shenikar/lga_lookup_service/internal/geometry"
	"github.com/shenikar/lga_lookup_service/internal/models"
)

type areaRecord struct {
	LGAName     []string        `json:"lga_name"`
	STEName     []string        `json:"ste_name"`
	LGAAreaCode json.RawMessage `json:"lga_area_code"`
	GeoShape    *struct {
		Geometry *struct {
			Coordinates [][][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"geo_shape"`
}

// ParseAreas разбирает пакет районов. Любая ошибка в любой записи отклоняет весь пакет.
func ParseAreas(data []byte) ([]*models.LocalGovernmentArea, error) {
	if isEmpty(data) {
		return nil, ErrEmptyPayload
	}
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: expected a JSON array of areas: %v", ErrInvalidPayload, err)
	}
	// null разбирается в nil без ошибки
	if records == nil {
		return nil, fmt.Errorf("%w: expected a JSON array of areas, got null", ErrInvalidPayload)
	}

	areas := make([]*models.LocalGovernmentArea, 0, len(records))
	for i, raw := range records {
		area, err := parseAreaRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		areas = append(areas, area)
	}
	return areas, nil
}

func parseAreaRecord(raw json.RawMessage) (*models.LocalGovernmentArea, error) {
	var rec areaRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if len(rec.LGAName) == 0 {
		return nil, missingKey("lga_name")
	}
	if len(rec.STEName) == 0 {
		return nil, missingKey("ste_name")
	}
	code, ok := scalarText(rec.LGAAreaCode)
	if !ok {
		return nil, missingKey("lga_area_code")
	}
	if rec.GeoShape == nil {
		return nil, missingKey("geo_shape")
	}
	if rec.GeoShape.Geometry == nil {
		return nil, missingKey("geometry")
	}
	if len(rec.GeoShape.Geometry.Coordinates) == 0 {
		return nil, missingKey("coordinates")
	}

	polygon, err := geometry.PolygonFromPositions(rec.GeoShape.Geometry.Coordinates[0])
	if err != nil {
		return nil, fmt.Errorf("%w: coordinates: %w", ErrInvalidPayload, err)
	}

	return &models.LocalGovernmentArea{
		Name:    fmt.Sprintf("%s, %s, %s", rec.LGAName[0], rec.STEName[0], code),
		Polygon: polygon,
	}, nil
}

func missingKey(key string) error {
	return fmt.Errorf("%w: missing key '%s'", ErrInvalidPayload, key)
}
