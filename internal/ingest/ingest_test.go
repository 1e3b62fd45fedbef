package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/shenikar/lga_lookup_service/internal/geometry"
)

const sampleAreas = `[
	{"lga_name":["Test"],"ste_name":["ST"],"lga_area_code":"001",
	 "geo_shape":{"geometry":{"coordinates":[[[0,0],[0,1],[1,1],[1,0],[0,0]]]}}},
	{"lga_name":["Second"],"ste_name":["New South Wales"],"lga_area_code":10050,
	 "geo_shape":{"geometry":{"coordinates":[[[2,2],[2,3],[3,3],[3,2],[2,2]]]}}}
]`

func TestParseAreas_Success(t *testing.T) {
	areas, err := ParseAreas([]byte(sampleAreas))

	require.NoError(t, err)
	require.Len(t, areas, 2)
	assert.Equal(t, "Test, ST, 001", areas[0].Name)
	assert.Equal(t, "Second, New South Wales, 10050", areas[1].Name)
	assert.Equal(t, geometry.SRID, areas[0].Polygon.SRID())
	// Координаты файла уже в порядке [longitude, latitude]
	assert.Equal(t, geom.Coord{0, 1}, areas[0].Polygon.LinearRing(0).Coord(1))
}

func TestParseAreas_Empty(t *testing.T) {
	areas, err := ParseAreas([]byte(`[]`))

	require.NoError(t, err)
	assert.Empty(t, areas)
}

func TestParseAreas_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		message string
	}{
		{
			name:    "not an array",
			payload: `{"lga_name":["Test"]}`,
			message: "expected a JSON array",
		},
		{
			name:    "null",
			payload: `null`,
			message: "expected a JSON array of areas, got null",
		},
		{
			name:    "empty",
			payload: "  ",
			message: "empty payload",
		},
		{
			name:    "missing lga_name",
			payload: `[{"ste_name":["ST"],"lga_area_code":"001","geo_shape":{"geometry":{"coordinates":[[[0,0],[0,1],[1,1],[0,0]]]}}}]`,
			message: "record 0: invalid payload: missing key 'lga_name'",
		},
		{
			name:    "empty ste_name",
			payload: `[{"lga_name":["A"],"ste_name":[],"lga_area_code":"001","geo_shape":{"geometry":{"coordinates":[[[0,0],[0,1],[1,1],[0,0]]]}}}]`,
			message: "missing key 'ste_name'",
		},
		{
			name:    "missing area code",
			payload: `[{"lga_name":["A"],"ste_name":["ST"],"geo_shape":{"geometry":{"coordinates":[[[0,0],[0,1],[1,1],[0,0]]]}}}]`,
			message: "missing key 'lga_area_code'",
		},
		{
			name:    "missing geometry",
			payload: `[{"lga_name":["A"],"ste_name":["ST"],"lga_area_code":"001","geo_shape":{}}]`,
			message: "missing key 'geometry'",
		},
		{
			name:    "empty coordinates",
			payload: `[{"lga_name":["A"],"ste_name":["ST"],"lga_area_code":"001","geo_shape":{"geometry":{"coordinates":[]}}}]`,
			message: "missing key 'coordinates'",
		},
		{
			name:    "unclosed ring",
			payload: `[{"lga_name":["A"],"ste_name":["ST"],"lga_area_code":"001","geo_shape":{"geometry":{"coordinates":[[[0,0],[0,1],[1,1],[1,0]]]}}}]`,
			message: "ring is not closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			areas, err := ParseAreas([]byte(tt.payload))

			require.Error(t, err)
			assert.Nil(t, areas)
			assert.ErrorIs(t, err, ErrInvalidPayload)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParseAreas_OneBadRecordRejectsBatch(t *testing.T) {
	payload := `[
		{"lga_name":["Good"],"ste_name":["ST"],"lga_area_code":"001","geo_shape":{"geometry":{"coordinates":[[[0,0],[0,1],[1,1],[0,0]]]}}},
		{"lga_name":["Bad"],"ste_name":["ST"],"lga_area_code":"002"}
	]`

	areas, err := ParseAreas([]byte(payload))

	require.Error(t, err)
	assert.Nil(t, areas)
	assert.Contains(t, err.Error(), "record 1")
	assert.Contains(t, err.Error(), "missing key 'geo_shape'")
}

const sampleCollection = `{
	"type": "FeatureCollection",
	"description": "Bushfire",
	"year": 2019,
	"date_reported": "2019-12-30",
	"features": [
		{"type": "Feature", "properties": {}, "geometry": {"type": "Polygon",
			"coordinates": [[[0,0],[0,1],[1,1],[1,0],[0,0]]]}},
		{"type": "Feature", "properties": {}, "geometry": {"type": "MultiPolygon",
			"coordinates": [
				[[[2,2],[2,3],[3,3],[3,2],[2,2]]],
				[[[4,4],[4,5],[5,5],[5,4],[4,4]]],
				[[[6,6],[6,7],[7,7],[7,6],[6,6]]]
			]}}
	]
}`

func TestParseIncidentCollection_Success(t *testing.T) {
	collection, err := ParseIncidentCollection([]byte(sampleCollection))

	require.NoError(t, err)
	assert.Equal(t, "Bushfire", collection.Description)
	assert.Equal(t, 2019, collection.Year)
	require.NotNil(t, collection.DateReported)
	assert.Equal(t, time.Date(2019, 12, 30, 0, 0, 0, 0, time.UTC), *collection.DateReported)
	// 1 Polygon + 3 полигона из MultiPolygon
	require.Len(t, collection.Polygons, 4)
	for _, p := range collection.Polygons {
		assert.Equal(t, geometry.SRID, p.SRID())
		assert.Equal(t, geom.XY, p.Layout())
	}
	assert.Equal(t, geom.Coord{4, 4}, collection.Polygons[2].LinearRing(0).Coord(0))
}

func TestParseIncidentCollection_Defaults(t *testing.T) {
	collection, err := ParseIncidentCollection([]byte(`{"type":"FeatureCollection","features":[]}`))

	require.NoError(t, err)
	assert.Equal(t, "", collection.Description)
	assert.Equal(t, 0, collection.Year)
	assert.Nil(t, collection.DateReported)
	assert.Empty(t, collection.Polygons)
}

func TestParseIncidentCollection_PolygonWithHole(t *testing.T) {
	payload := `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Polygon","coordinates":[
		[[0,0],[0,10],[10,10],[10,0],[0,0]],
		[[2,2],[2,4],[4,4],[4,2],[2,2]]]}}]}`

	collection, err := ParseIncidentCollection([]byte(payload))

	require.NoError(t, err)
	require.Len(t, collection.Polygons, 1)
	assert.Equal(t, 2, collection.Polygons[0].NumLinearRings())
}

func TestParseIncidentCollection_YearAsString(t *testing.T) {
	collection, err := ParseIncidentCollection([]byte(`{"type":"FeatureCollection","year":"2021","features":[]}`))

	require.NoError(t, err)
	assert.Equal(t, 2021, collection.Year)
}

func TestParseIncidentCollection_ThreeDimensionalCoordinates(t *testing.T) {
	payload := `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Polygon",
		"coordinates":[[[0,0,10],[0,1,10],[1,1,10],[1,0,10],[0,0,10]]]}}]}`

	collection, err := ParseIncidentCollection([]byte(payload))

	require.NoError(t, err)
	require.Len(t, collection.Polygons, 1)
	assert.Equal(t, geom.XY, collection.Polygons[0].Layout())
	assert.Equal(t, geom.Coord{0, 1}, collection.Polygons[0].LinearRing(0).Coord(1))
}

func TestParseIncidentCollection_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		message string
	}{
		{
			name:    "malformed json",
			payload: `{"type": "FeatureCollection",`,
			message: "invalid JSON format",
		},
		{
			name:    "wrong type",
			payload: `{"type": "Feature", "geometry": null}`,
			message: "expected 'FeatureCollection'",
		},
		{
			name:    "point feature",
			payload: `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Point","coordinates":[1,1]}}]}`,
			message: "each feature must be a Polygon or MultiPolygon",
		},
		{
			name:    "not a feature",
			payload: `{"type":"FeatureCollection","features":[{"type":"Polygon","coordinates":[[[0,0],[0,1],[1,1],[0,0]]]}]}`,
			message: "each feature must be a Polygon or MultiPolygon",
		},
		{
			name:    "null geometry",
			payload: `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":null}]}`,
			message: "feature 0",
		},
		{
			name:    "self intersecting polygon",
			payload: `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Polygon","coordinates":[[[0,0],[1,1],[1,0],[0,1],[0,0]]]}}]}`,
			message: "self-intersects",
		},
		{
			name:    "bad date",
			payload: `{"type":"FeatureCollection","date_reported":"30/12/2019","features":[]}`,
			message: "date_reported",
		},
		{
			name:    "fractional year",
			payload: `{"type":"FeatureCollection","year":2019.5,"features":[]}`,
			message: "expected integer",
		},
		{
			name:    "huge year",
			payload: `{"type":"FeatureCollection","year":1e30,"features":[]}`,
			message: "expected integer",
		},
		{
			name:    "year above INTEGER range",
			payload: `{"type":"FeatureCollection","year":"3000000000","features":[]}`,
			message: "expected integer",
		},
		{
			name: "hole outside shell",
			payload: `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Polygon","coordinates":[
				[[0,0],[0,1],[1,1],[1,0],[0,0]],
				[[5,5],[5,6],[6,6],[6,5],[5,5]]]}}]}`,
			message: "lies outside the exterior ring",
		},
		{
			name:    "empty",
			payload: "",
			message: "empty payload",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collection, err := ParseIncidentCollection([]byte(tt.payload))

			require.Error(t, err)
			assert.Nil(t, collection)
			assert.ErrorIs(t, err, ErrInvalidPayload)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
