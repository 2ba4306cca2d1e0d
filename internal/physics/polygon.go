package physics

import (
	"errors"
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Polygon construction errors.
var (
	ErrDegeneratePolygon = errors.New("physics: polygon has fewer than 3 distinct vertices")
	ErrUndefinedCentroid = errors.New("physics: polygon centroid is undefined")
)

// areaEpsilon is the smallest absolute area treated as a real polygon.
const areaEpsilon = 1e-9

// DistinctVertices counts vertices that differ from every earlier vertex.
func DistinctVertices(vertices []core.Vec2) int {
	n := 0
	for i, v := range vertices {
		dup := false
		for _, u := range vertices[:i] {
			if u == v {
				dup = true
				break
			}
		}
		if !dup {
			n++
		}
	}
	return n
}

// Centroid returns the area centroid of a simple polygon.
// Polygons with fewer than 3 distinct vertices, zero area or non-finite
// coordinates have no centroid.
func Centroid(vertices []core.Vec2) (core.Vec2, error) {
	if DistinctVertices(vertices) < 3 {
		return core.Vec2{}, ErrDegeneratePolygon
	}

	var area, cx, cy float64
	for i := range vertices {
		p := vertices[i]
		q := vertices[(i+1)%len(vertices)]
		cross := p.Cross(q)
		area += cross
		cx += (p.X + q.X) * cross
		cy += (p.Y + q.Y) * cross
	}
	area /= 2
	if math.IsNaN(area) || math.Abs(area) < areaEpsilon {
		return core.Vec2{}, ErrUndefinedCentroid
	}

	c := core.V(cx/(6*area), cy/(6*area))
	if c.IsNaN() {
		return core.Vec2{}, ErrUndefinedCentroid
	}
	return c, nil
}
