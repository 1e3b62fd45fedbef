package geometry

import "github.com/twpayne/go-geom"

// Kind - объявленный тип геометрии запроса
type Kind string

const (
	KindPoint   Kind = "Point"
	KindPolygon Kind = "Polygon"
)

// Query - геометрия поискового запроса: либо PointQuery, либо PolygonQuery
type Query interface {
	Kind() Kind
	query()
}

// PointQuery - поиск района, содержащего точку
type PointQuery struct {
	Point *geom.Point
}

func (PointQuery) Kind() Kind { return KindPoint }
func (PointQuery) query()     {}

// PolygonQuery - поиск по пересечению с полигоном
type PolygonQuery struct {
	Polygon *geom.Polygon
}

func (PolygonQuery) Kind() Kind { return KindPolygon }
func (PolygonQuery) query()     {}
