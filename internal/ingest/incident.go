package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/shenikar/lga_lookup_service/internal/geometry"
)

const featureCollectionType = "FeatureCollection"

// IncidentCollection - разобранный GeoJSON инцидента: атрибуты и плоский список простых полигонов
type IncidentCollection struct {
	Description  string
	Year         int
	DateReported *time.Time
	Polygons     []*geom.Polygon
}

type featureCollection struct {
	Type         string            `json:"type"`
	Description  string            `json:"description"`
	Year         flexibleInt       `json:"year"`
	DateReported *string           `json:"date_reported"`
	Features     []json.RawMessage `json:"features"`
}

type feature struct {
	Type     string          `json:"type"`
	Geometry json.RawMessage `json:"geometry"`
}

type geometryHeader struct {
	Type string `json:"type"`
}

// ParseIncidentCollection разбирает FeatureCollection инцидента.
// Каждая feature должна быть Polygon или MultiPolygon, MultiPolygon раскладывается на простые полигоны.
func ParseIncidentCollection(data []byte) (*IncidentCollection, error) {
	if isEmpty(data) {
		return nil, ErrEmptyPayload
	}
	var header struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON format: %v", ErrInvalidPayload, err)
	}
	if header.Type != featureCollectionType {
		return nil, fmt.Errorf("%w: invalid GeoJSON format, expected 'FeatureCollection'", ErrInvalidPayload)
	}

	var fc featureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	collection := &IncidentCollection{
		Description: fc.Description,
		Year:        int(fc.Year),
	}

	if fc.DateReported != nil && *fc.DateReported != "" {
		reported, err := parseDate(*fc.DateReported)
		if err != nil {
			return nil, fmt.Errorf("%w: date_reported: %v", ErrInvalidPayload, err)
		}
		collection.DateReported = &reported
	}

	for i, raw := range fc.Features {
		polygons, err := parseFeature(raw)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		collection.Polygons = append(collection.Polygons, polygons...)
	}
	return collection, nil
}

func parseFeature(raw json.RawMessage) ([]*geom.Polygon, error) {
	var f feature
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	var gh geometryHeader
	if len(bytes.TrimSpace(f.Geometry)) > 0 {
		if err := json.Unmarshal(f.Geometry, &gh); err != nil {
			return nil, fmt.Errorf("%w: geometry: %v", ErrInvalidPayload, err)
		}
	}
	if f.Type != "Feature" || (gh.Type != "Polygon" && gh.Type != "MultiPolygon") {
		return nil, fmt.Errorf("%w: each feature must be a Polygon or MultiPolygon", ErrInvalidPayload)
	}

	var g geom.T
	if err := geojson.Unmarshal(f.Geometry, &g); err != nil {
		return nil, fmt.Errorf("%w: geometry: %v", ErrInvalidPayload, err)
	}

	polygons, err := geometry.Decompose(g)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return polygons, nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
