package v1

import "encoding/json"

// Coordinate DTO координаты в порядке wire-формата.
// Указатели нужны, чтобы отличить отсутствующее поле от нулевой широты/долготы.
// @Description Координата WGS84
type Coordinate struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude" example:"-33.86"`
	Longitude *float64 `json:"longitude" validate:"required,longitude" example:"151.2"`
}

// PolygonGeometry DTO полигона: одно замкнутое кольцо координат
// @Description Полигон без дыр; первая и последняя координаты должны совпадать
type PolygonGeometry struct {
	Coordinates []Coordinate `json:"coordinates" validate:"required,dive"`
}

// FindPlacesRequest DTO общего запроса поиска районов.
// geometry разбирается после чтения type: Coordinate для Point, PolygonGeometry для Polygon.
// @Description Запрос поиска районов по точке или полигону
type FindPlacesRequest struct {
	Type     string          `json:"type" validate:"required,oneof=Point Polygon" example:"Point"`
	Geometry json.RawMessage `json:"geometry" validate:"required" swaggertype:"object"`
}

// FindIncidentsRequest DTO поиска полигонов инцидентов
// @Description Запрос поиска полигонов инцидентов, пересекающихся с полигоном
type FindIncidentsRequest struct {
	Type     string          `json:"type,omitempty" validate:"omitempty,eq=Polygon" example:"Polygon"`
	Geometry PolygonGeometry `json:"geometry"`
}

// AreaResponse DTO района в ответе поиска
// @Description Район местного самоуправления
type AreaResponse struct {
	ID   int64          `json:"id"`
	Name string         `json:"name"`
	Data map[string]any `json:"data"`
}

// AreasResponse DTO ответа поиска районов по полигону
type AreasResponse struct {
	Areas []*AreaResponse `json:"areas"`
}

// IncidentPolygonResponse DTO полигона инцидента с геометрией в WKT
type IncidentPolygonResponse struct {
	ID         int64  `json:"id"`
	IncidentID int64  `json:"incident_id"`
	Polygon    string `json:"polygon" example:"POLYGON((151.1 -33.9,151.1 -33.8,151.2 -33.8,151.1 -33.9))"`
}

// IncidentPolygonsResponse DTO ответа поиска инцидентов
type IncidentPolygonsResponse struct {
	IncidentPolygons []*IncidentPolygonResponse `json:"incident_polygons"`
}

// MessageResponse DTO подтверждения импорта
type MessageResponse struct {
	Message string `json:"message"`
}

// ImportIncidentResponse DTO подтверждения импорта инцидента
type ImportIncidentResponse struct {
	Message    string `json:"message"`
	IncidentID int64  `json:"incident_id"`
}
