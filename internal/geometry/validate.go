package geometry

import (
	"fmt"
	"math"
	"sort"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
	"github.com/twpayne/go-geom/xy/location"
	"github.com/twpayne/go-geom/xy/orientation"
)

// ValidatePolygon проверяет все кольца полигона (внешнее и дыры), а затем их взаимное
// расположение: дыра лежит строго внутри внешнего кольца, не касается его и других дыр
// и не вложена в другую дыру.
func ValidatePolygon(p *geom.Polygon) error {
	if p == nil || p.NumLinearRings() == 0 {
		return fmt.Errorf("%w: polygon has no rings", ErrInvalidGeometry)
	}
	rings := make([][]geom.Coord, p.NumLinearRings())
	for i := range rings {
		coords := p.LinearRing(i).Coords()
		if err := ValidateRing(coords); err != nil {
			if i == 0 {
				return fmt.Errorf("exterior ring: %w", err)
			}
			return fmt.Errorf("interior ring %d: %w", i, err)
		}
		rings[i] = dropRepeated(coords)
	}

	shell := rings[0]
	for i := 1; i < len(rings); i++ {
		hole := rings[i]
		if _, _, ok := findRingCrossing(shell, hole); ok {
			return fmt.Errorf("%w: interior ring %d touches or crosses the exterior ring", ErrInvalidGeometry, i)
		}
		// Пересечений нет, поэтому достаточно проверить одну вершину
		if !strictlyInside(hole[0], shell) {
			return fmt.Errorf("%w: interior ring %d lies outside the exterior ring", ErrInvalidGeometry, i)
		}
		for j := 1; j < i; j++ {
			if _, _, ok := findRingCrossing(rings[j], hole); ok {
				return fmt.Errorf("%w: interior rings %d and %d intersect", ErrInvalidGeometry, j, i)
			}
			if strictlyInside(hole[0], rings[j]) || strictlyInside(rings[j][0], hole) {
				return fmt.Errorf("%w: interior rings %d and %d are nested", ErrInvalidGeometry, j, i)
			}
		}
	}
	return nil
}

func strictlyInside(c geom.Coord, ring []geom.Coord) bool {
	flat := make([]float64, 0, 2*len(ring))
	for _, rc := range ring {
		flat = append(flat, rc[0], rc[1])
	}
	return xy.LocatePointInRing(geom.XY, geom.Coord{c[0], c[1]}, flat) == location.Interior
}

// ValidateRing проверяет, что кольцо замкнуто, содержит минимум 4 позиции,
// лежит в пределах WGS84 и не имеет самопересечений.
func ValidateRing(coords []geom.Coord) error {
	if len(coords) < 4 {
		return fmt.Errorf("%w: ring must have at least 4 positions, got %d", ErrInvalidGeometry, len(coords))
	}
	for i, c := range coords {
		if len(c) < 2 || !inRange(c[0], 180) || !inRange(c[1], 90) {
			return fmt.Errorf("%w: position %d is outside longitude/latitude bounds", ErrInvalidGeometry, i)
		}
	}
	if !sameCoord(coords[0], coords[len(coords)-1]) {
		return fmt.Errorf("%w: ring is not closed", ErrInvalidGeometry)
	}

	ring := dropRepeated(coords)
	if len(ring) < 4 {
		return fmt.Errorf("%w: ring has fewer than 3 distinct vertices", ErrInvalidGeometry)
	}
	if i, j, ok := findSelfIntersection(ring); ok {
		return fmt.Errorf("%w: ring self-intersects between edges %d and %d", ErrInvalidGeometry, i, j)
	}
	return nil
}

func inRange(v, limit float64) bool {
	return !math.IsNaN(v) && v >= -limit && v <= limit
}

func sameCoord(a, b geom.Coord) bool {
	return a[0] == b[0] && a[1] == b[1]
}

// dropRepeated убирает подряд идущие дубликаты вершин, они допустимы и не считаются пересечением
func dropRepeated(coords []geom.Coord) []geom.Coord {
	out := make([]geom.Coord, 0, len(coords))
	for _, c := range coords {
		if len(out) > 0 && sameCoord(out[len(out)-1], c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

type segment struct {
	a, b       geom.Coord
	idx        int
	ring       int
	minX, maxX float64
	minY, maxY float64
}

func ringSegments(ring []geom.Coord, owner int) []segment {
	segs := make([]segment, len(ring)-1)
	for i := range segs {
		a, b := ring[i], ring[i+1]
		segs[i] = segment{
			a: a, b: b, idx: i, ring: owner,
			minX: math.Min(a[0], b[0]), maxX: math.Max(a[0], b[0]),
			minY: math.Min(a[1], b[1]), maxY: math.Max(a[1], b[1]),
		}
	}
	return segs
}

func sortByMinX(segs []segment) []segment {
	sorted := make([]segment, len(segs))
	copy(sorted, segs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].minX < sorted[j].minX })
	return sorted
}

// findRingCrossing ищет ребро кольца a и ребро кольца b, которые пересекаются или касаются.
// Возвращает их индексы в a и b.
func findRingCrossing(a, b []geom.Coord) (int, int, bool) {
	sorted := sortByMinX(append(ringSegments(a, 0), ringSegments(b, 1)...))

	for i := range sorted {
		s := sorted[i]
		for j := i + 1; j < len(sorted) && sorted[j].minX <= s.maxX; j++ {
			t := sorted[j]
			if t.ring == s.ring || t.maxY < s.minY || t.minY > s.maxY {
				continue
			}
			if segmentsIntersect(s.a, s.b, t.a, t.b) {
				if s.ring == 0 {
					return s.idx, t.idx, true
				}
				return t.idx, s.idx, true
			}
		}
	}
	return 0, 0, false
}

// findSelfIntersection ищет пару ребер замкнутого кольца, которые пересекаются или касаются
// вне общей вершины. Ребра сортируются по minX, сравниваются только пары с перекрытием по X.
func findSelfIntersection(ring []geom.Coord) (int, int, bool) {
	n := len(ring) - 1
	segs := ringSegments(ring, 0)
	sorted := sortByMinX(segs)

	for i := 0; i < n; i++ {
		s := sorted[i]
		for j := i + 1; j < n && sorted[j].minX <= s.maxX; j++ {
			t := sorted[j]
			if t.maxY < s.minY || t.minY > s.maxY {
				continue
			}
			lo, hi := s.idx, t.idx
			if lo > hi {
				lo, hi = hi, lo
			}
			if adjacent(lo, hi, n) {
				if overlapsAtJoint(segs[lo], segs[hi], lo, hi, n) {
					return lo, hi, true
				}
				continue
			}
			if segmentsIntersect(s.a, s.b, t.a, t.b) {
				return lo, hi, true
			}
		}
	}
	return 0, 0, false
}

func adjacent(lo, hi, n int) bool {
	return hi-lo == 1 || (lo == 0 && hi == n-1)
}

// overlapsAtJoint ловит "шипы": соседние ребра коллинеарны и накладываются за пределами общей вершины
func overlapsAtJoint(s, t segment, lo, hi, n int) bool {
	first, second := s, t
	if lo == 0 && hi == n-1 && n > 2 {
		// замыкающее ребро идет перед нулевым
		first, second = t, s
	}
	prev, joint, next := first.a, first.b, second.b
	if xy.OrientationIndex(prev, joint, next) != orientation.Collinear {
		return false
	}
	return onSegment(joint, next, prev) || onSegment(prev, joint, next)
}

func segmentsIntersect(p1, p2, p3, p4 geom.Coord) bool {
	d1 := xy.OrientationIndex(p3, p4, p1)
	d2 := xy.OrientationIndex(p3, p4, p2)
	d3 := xy.OrientationIndex(p1, p2, p3)
	d4 := xy.OrientationIndex(p1, p2, p4)

	if d1 != d2 && d3 != d4 &&
		d1 != orientation.Collinear && d2 != orientation.Collinear &&
		d3 != orientation.Collinear && d4 != orientation.Collinear {
		return true
	}

	switch {
	case d1 == orientation.Collinear && onSegment(p3, p4, p1):
		return true
	case d2 == orientation.Collinear && onSegment(p3, p4, p2):
		return true
	case d3 == orientation.Collinear && onSegment(p1, p2, p3):
		return true
	case d4 == orientation.Collinear && onSegment(p1, p2, p4):
		return true
	}
	return false
}

// onSegment - для уже коллинеарной точки p проверяет попадание в ограничивающий прямоугольник [a, b]
func onSegment(a, b, p geom.Coord) bool {
	return p[0] >= math.Min(a[0], b[0]) && p[0] <= math.Max(a[0], b[0]) &&
		p[1] >= math.Min(a[1], b[1]) && p[1] <= math.Max(a[1], b[1])
}
