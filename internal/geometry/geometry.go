// Package geometry строит канонические геометрии (go-geom) из входных данных
// и сериализует их в форматы, которые ожидает PostGIS.
//
// Во всех внешних payload координаты идут в порядке (latitude, longitude),
// внутри геометрий - всегда (longitude, latitude) и SRID 4326.
package geometry

import (
	"errors"
	"fmt"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// SRID - WGS84, единственная система координат хранилища
const SRID = 4326

// ErrInvalidGeometry возвращается для любых геометрий, которые нельзя сохранить или использовать в запросе
var ErrInvalidGeometry = errors.New("invalid geometry")

// Coordinate - координата в порядке wire-формата
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Coord возвращает координату в порядке (longitude, latitude)
func (c Coordinate) Coord() geom.Coord {
	return geom.Coord{c.Longitude, c.Latitude}
}

// NewPoint строит точку с SRID 4326
func NewPoint(c Coordinate) *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{c.Longitude, c.Latitude}).SetSRID(SRID)
}

// NewPolygon строит простой полигон из кольца координат wire-формата и проверяет его
func NewPolygon(ring []Coordinate) (*geom.Polygon, error) {
	coords := make([]geom.Coord, 0, len(ring))
	for _, c := range ring {
		coords = append(coords, c.Coord())
	}
	return polygonFromRing(coords)
}

// PolygonFromPositions строит полигон из позиций [longitude, latitude], взятых как есть
func PolygonFromPositions(positions [][]float64) (*geom.Polygon, error) {
	coords := make([]geom.Coord, 0, len(positions))
	for i, p := range positions {
		if len(p) < 2 {
			return nil, fmt.Errorf("%w: position %d has %d values, want [longitude, latitude]", ErrInvalidGeometry, i, len(p))
		}
		coords = append(coords, geom.Coord{p[0], p[1]})
	}
	return polygonFromRing(coords)
}

func polygonFromRing(coords []geom.Coord) (*geom.Polygon, error) {
	if err := ValidateRing(coords); err != nil {
		return nil, err
	}
	poly, err := geom.NewPolygon(geom.XY).SetCoords([][]geom.Coord{coords})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}
	return poly.SetSRID(SRID), nil
}

// Decompose раскладывает Polygon или MultiPolygon на простые полигоны с SRID 4326.
// Каждый полигон проверяется.
func Decompose(g geom.T) ([]*geom.Polygon, error) {
	var polygons []*geom.Polygon
	switch v := g.(type) {
	case *geom.Polygon:
		polygons = []*geom.Polygon{v}
	case *geom.MultiPolygon:
		polygons = make([]*geom.Polygon, 0, v.NumPolygons())
		for i := 0; i < v.NumPolygons(); i++ {
			polygons = append(polygons, v.Polygon(i))
		}
	default:
		return nil, fmt.Errorf("%w: unsupported geometry %T, expected Polygon or MultiPolygon", ErrInvalidGeometry, g)
	}

	for i, p := range polygons {
		if err := ValidatePolygon(p); err != nil {
			return nil, fmt.Errorf("polygon %d: %w", i, err)
		}
		flat, err := to2D(p)
		if err != nil {
			return nil, fmt.Errorf("polygon %d: %w: %v", i, ErrInvalidGeometry, err)
		}
		polygons[i] = flat.SetSRID(SRID)
	}
	return polygons, nil
}

// to2D отбрасывает Z/M: колонки хранилища двумерные
func to2D(p *geom.Polygon) (*geom.Polygon, error) {
	if p.Layout() == geom.XY {
		return p, nil
	}
	rings := make([][]geom.Coord, p.NumLinearRings())
	for i := range rings {
		for _, c := range p.LinearRing(i).Coords() {
			rings[i] = append(rings[i], geom.Coord{c[0], c[1]})
		}
	}
	return geom.NewPolygon(geom.XY).SetCoords(rings)
}

// EWKT сериализует геометрию в EWKT вида "SRID=4326;POLYGON((...))"
func EWKT(g geom.T) (string, error) {
	text, err := WKT(g)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("SRID=%d;%s", SRID, text), nil
}

// WKT сериализует геометрию в WKT без SRID
func WKT(g geom.T) (string, error) {
	text, err := wkt.Marshal(g)
	if err != nil {
		return "", fmt.Errorf("geometry: encode WKT: %w", err)
	}
	return text, nil
}

// EWKB сериализует геометрию в EWKB (little endian) с SRID 4326
func EWKB(g geom.T) ([]byte, error) {
	switch v := g.(type) {
	case *geom.Point:
		g = v.SetSRID(SRID)
	case *geom.Polygon:
		g = v.SetSRID(SRID)
	}
	data, err := ewkb.Marshal(g, ewkb.NDR)
	if err != nil {
		return nil, fmt.Errorf("geometry: encode EWKB: %w", err)
	}
	return data, nil
}
