package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/twpayne/go-geom"

	"github.com/shenikar/lga_lookup_service/internal/geometry"
	"github.com/shenikar/lga_lookup_service/internal/models"
)

// DTOToCoordinate преобразует провалидированную DTO координаты
func DTOToCoordinate(dto Coordinate) geometry.Coordinate {
	return geometry.Coordinate{
		Latitude:  *dto.Latitude,
		Longitude: *dto.Longitude,
	}
}

// DTOToPoint строит точку запроса из DTO координаты
func DTOToPoint(dto Coordinate) *geom.Point {
	return geometry.NewPoint(DTOToCoordinate(dto))
}

// DTOToPolygon строит и проверяет полигон запроса
func DTOToPolygon(dto PolygonGeometry) (*geom.Polygon, error) {
	ring := make([]geometry.Coordinate, 0, len(dto.Coordinates))
	for _, c := range dto.Coordinates {
		ring = append(ring, DTOToCoordinate(c))
	}
	return geometry.NewPolygon(ring)
}

// decodeGeometry строго разбирает geometry в форму, заданную type.
// Лишние поля - ошибка: Point с полигоном (или наоборот) не приводится молча.
func decodeGeometry(raw json.RawMessage, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after geometry")
	}
	return nil
}

// DTOToQuery разбирает geometry по объявленному type и строит запрос поиска.
// Все ошибки здесь - ошибки клиента.
func DTOToQuery(req FindPlacesRequest, validate *validator.Validate) (geometry.Query, error) {
	switch geometry.Kind(req.Type) {
	case geometry.KindPoint:
		var coord Coordinate
		if err := decodeGeometry(req.Geometry, &coord); err != nil {
			return nil, fmt.Errorf("for type 'Point', geometry must be a Coordinate: %w", err)
		}
		if err := validate.Struct(coord); err != nil {
			return nil, err
		}
		return geometry.PointQuery{Point: DTOToPoint(coord)}, nil
	case geometry.KindPolygon:
		var poly PolygonGeometry
		if err := decodeGeometry(req.Geometry, &poly); err != nil {
			return nil, fmt.Errorf("for type 'Polygon', geometry must be a Polygon: %w", err)
		}
		if err := validate.Struct(poly); err != nil {
			return nil, err
		}
		polygon, err := DTOToPolygon(poly)
		if err != nil {
			return nil, err
		}
		return geometry.PolygonQuery{Polygon: polygon}, nil
	}
	return nil, fmt.Errorf("invalid type %q, expected 'Point' or 'Polygon'", req.Type)
}

// ModelToAreaResponse преобразует район в DTO ответа
func ModelToAreaResponse(model *models.LocalGovernmentArea) *AreaResponse {
	return &AreaResponse{
		ID:   model.ID,
		Name: model.Name,
		Data: map[string]any{},
	}
}

// ModelsToAreasResponse преобразует слайс районов в DTO ответа
func ModelsToAreasResponse(areas []*models.LocalGovernmentArea) *AreasResponse {
	responses := make([]*AreaResponse, len(areas))
	for i, area := range areas {
		responses[i] = ModelToAreaResponse(area)
	}
	return &AreasResponse{Areas: responses}
}

// ModelsToIncidentPolygonsResponse преобразует полигоны инцидентов в DTO ответа
func ModelsToIncidentPolygonsResponse(polygons []*models.IncidentPolygon) *IncidentPolygonsResponse {
	responses := make([]*IncidentPolygonResponse, len(polygons))
	for i, p := range polygons {
		responses[i] = &IncidentPolygonResponse{
			ID:         p.ID,
			IncidentID: p.IncidentID,
			Polygon:    p.WKT,
		}
	}
	return &IncidentPolygonsResponse{IncidentPolygons: responses}
}
