package geometry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
)

func unitSquare() []Coordinate {
	return []Coordinate{
		{Latitude: 0, Longitude: 0},
		{Latitude: 1, Longitude: 0},
		{Latitude: 1, Longitude: 1},
		{Latitude: 0, Longitude: 1},
		{Latitude: 0, Longitude: 0},
	}
}

func TestNewPoint_LongitudeFirst(t *testing.T) {
	p := NewPoint(Coordinate{Latitude: -33.86, Longitude: 151.21})

	assert.Equal(t, SRID, p.SRID())
	assert.Equal(t, 151.21, p.X())
	assert.Equal(t, -33.86, p.Y())
}

func TestNewPolygon_Success(t *testing.T) {
	poly, err := NewPolygon(unitSquare())

	require.NoError(t, err)
	assert.Equal(t, SRID, poly.SRID())
	require.Equal(t, 1, poly.NumLinearRings())
	coords := poly.LinearRing(0).Coords()
	require.Len(t, coords, 5)
	// (lat=1, lon=0) превращается в (x=0, y=1)
	assert.Equal(t, geom.Coord{0, 1}, coords[1])
}

func TestNewPolygon_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		ring    []Coordinate
		message string
	}{
		{
			name:    "too few positions",
			ring:    []Coordinate{{0, 0}, {1, 1}, {0, 0}},
			message: "at least 4 positions",
		},
		{
			name:    "not closed",
			ring:    []Coordinate{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
			message: "not closed",
		},
		{
			name: "bowtie",
			ring: []Coordinate{
				{Latitude: 0, Longitude: 0},
				{Latitude: 1, Longitude: 1},
				{Latitude: 0, Longitude: 1},
				{Latitude: 1, Longitude: 0},
				{Latitude: 0, Longitude: 0},
			},
			message: "self-intersects",
		},
		{
			name: "collinear",
			ring: []Coordinate{
				{Latitude: 0, Longitude: 0},
				{Latitude: 0, Longitude: 1},
				{Latitude: 0, Longitude: 2},
				{Latitude: 0, Longitude: 0},
			},
			message: "self-intersects",
		},
		{
			name: "spike",
			ring: []Coordinate{
				{Latitude: 0, Longitude: 0},
				{Latitude: 0, Longitude: 2},
				{Latitude: 0, Longitude: 1},
				{Latitude: 1, Longitude: 1},
				{Latitude: 0, Longitude: 0},
			},
			message: "self-intersects",
		},
		{
			name: "latitude out of range",
			ring: []Coordinate{
				{Latitude: 0, Longitude: 0},
				{Latitude: 95, Longitude: 0},
				{Latitude: 95, Longitude: 1},
				{Latitude: 0, Longitude: 0},
			},
			message: "outside longitude/latitude bounds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPolygon(tt.ring)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidGeometry)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestValidateRing_RepeatedVertexIsAllowed(t *testing.T) {
	ring := []geom.Coord{{0, 0}, {0, 1}, {0, 1}, {1, 1}, {1, 0}, {0, 0}}

	assert.NoError(t, ValidateRing(ring))
}

func TestValidateRing_TouchingVertexIsRejected(t *testing.T) {
	// Кольцо дважды проходит через (1, 1)
	ring := []geom.Coord{{0, 0}, {1, 1}, {2, 0}, {2, 2}, {1, 1}, {0, 2}, {0, 0}}

	err := ValidateRing(ring)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestValidatePolygon_Holes(t *testing.T) {
	shell := []geom.Coord{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {0, 0}}

	tests := []struct {
		name    string
		holes   [][]geom.Coord
		message string
	}{
		{
			name:  "hole inside shell",
			holes: [][]geom.Coord{{{2, 2}, {2, 4}, {4, 4}, {4, 2}, {2, 2}}},
		},
		{
			name: "two disjoint holes",
			holes: [][]geom.Coord{
				{{1, 1}, {1, 3}, {3, 3}, {3, 1}, {1, 1}},
				{{5, 5}, {5, 8}, {8, 8}, {8, 5}, {5, 5}},
			},
		},
		{
			name:    "hole outside shell",
			holes:   [][]geom.Coord{{{20, 20}, {20, 21}, {21, 21}, {21, 20}, {20, 20}}},
			message: "interior ring 1 lies outside the exterior ring",
		},
		{
			name:    "hole crosses shell",
			holes:   [][]geom.Coord{{{8, 8}, {8, 12}, {12, 12}, {12, 8}, {8, 8}}},
			message: "interior ring 1 touches or crosses the exterior ring",
		},
		{
			name:    "hole touches shell",
			holes:   [][]geom.Coord{{{0, 5}, {2, 6}, {2, 4}, {0, 5}}},
			message: "interior ring 1 touches or crosses the exterior ring",
		},
		{
			name:    "hole contains shell",
			holes:   [][]geom.Coord{{{-1, -1}, {-1, 11}, {11, 11}, {11, -1}, {-1, -1}}},
			message: "interior ring 1 lies outside the exterior ring",
		},
		{
			name: "overlapping holes",
			holes: [][]geom.Coord{
				{{1, 1}, {1, 4}, {4, 4}, {4, 1}, {1, 1}},
				{{3, 3}, {3, 6}, {6, 6}, {6, 3}, {3, 3}},
			},
			message: "interior rings 1 and 2 intersect",
		},
		{
			name: "nested holes",
			holes: [][]geom.Coord{
				{{1, 1}, {1, 8}, {8, 8}, {8, 1}, {1, 1}},
				{{3, 3}, {3, 5}, {5, 5}, {5, 3}, {3, 3}},
			},
			message: "interior rings 1 and 2 are nested",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			polygon := geom.NewPolygon(geom.XY).MustSetCoords(append([][]geom.Coord{shell}, tt.holes...))

			err := ValidatePolygon(polygon)

			if tt.message == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidGeometry)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestPolygonFromPositions(t *testing.T) {
	poly, err := PolygonFromPositions([][]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}})

	require.NoError(t, err)
	assert.Equal(t, geom.Coord{0, 1}, poly.LinearRing(0).Coord(1))

	_, err = PolygonFromPositions([][]float64{{0, 0}, {0}, {1, 1}, {0, 0}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "position 1")
}

func TestDecompose(t *testing.T) {
	square := geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}}})
	other := geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{{{5, 5}, {5, 6}, {6, 6}, {6, 5}, {5, 5}}})

	t.Run("polygon", func(t *testing.T) {
		polygons, err := Decompose(square)
		require.NoError(t, err)
		require.Len(t, polygons, 1)
		assert.Equal(t, SRID, polygons[0].SRID())
	})

	t.Run("multipolygon", func(t *testing.T) {
		mp := geom.NewMultiPolygon(geom.XY)
		require.NoError(t, mp.Push(square))
		require.NoError(t, mp.Push(other))

		polygons, err := Decompose(mp)
		require.NoError(t, err)
		require.Len(t, polygons, 2)
		assert.Equal(t, geom.Coord{5, 5}, polygons[1].LinearRing(0).Coord(0))
		for _, p := range polygons {
			assert.Equal(t, SRID, p.SRID())
		}
	})

	t.Run("hole outside shell", func(t *testing.T) {
		withHole := geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{
			{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}},
			{{5, 5}, {5, 6}, {6, 6}, {6, 5}, {5, 5}},
		})

		polygons, err := Decompose(withHole)
		require.Error(t, err)
		assert.Nil(t, polygons)
		assert.ErrorIs(t, err, ErrInvalidGeometry)
		assert.Contains(t, err.Error(), "polygon 0")
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := Decompose(geom.NewPointFlat(geom.XY, []float64{1, 1}))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidGeometry)
	})
}

func TestEWKT(t *testing.T) {
	poly, err := NewPolygon(unitSquare())
	require.NoError(t, err)

	text, err := EWKT(poly)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "SRID=4326;POLYGON"), text)
}

func TestEWKB_RoundTrip(t *testing.T) {
	poly, err := NewPolygon(unitSquare())
	require.NoError(t, err)

	data, err := EWKB(poly)
	require.NoError(t, err)

	decoded, err := ewkb.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, SRID, decoded.SRID())
	decodedPoly, ok := decoded.(*geom.Polygon)
	require.True(t, ok)
	assert.Equal(t, poly.FlatCoords(), decodedPoly.FlatCoords())
}

func TestQueryKinds(t *testing.T) {
	var q Query = PointQuery{Point: NewPoint(Coordinate{Latitude: 1, Longitude: 2})}
	assert.Equal(t, KindPoint, q.Kind())

	q = PolygonQuery{}
	assert.Equal(t, KindPolygon, q.Kind())
}
