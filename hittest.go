package graphics

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Geometric point-containment tests used for click resolution and the
// shape-level ContainsPoint queries. All tests work on world-coordinate
// geometry; the window transform never participates.

// distance returns the Euclidean distance between two points.
func distance(a, b *Point) float64 {
	return math.Hypot(a.x-b.x, a.y-b.y)
}

// onSegment reports whether p lies on the segment from a to b: the sum
// of the endpoint distances must equal the segment length within tol.
// With tol == 0 the comparison is exact floating-point equality, which
// rejects nearly every point that was not constructed on the segment.
func onSegment(a, b, p *Point, tol float64) bool {
	return scalar.EqualWithinAbs(distance(a, p)+distance(p, b), distance(a, b), tol)
}

// inPolygon is a ray-casting test over the ordered vertex list: a ray
// from p toward +x crosses the polygon boundary an odd number of times
// iff p is inside.
func inPolygon(vertices []*Point, p *Point) bool {
	if len(vertices) < 3 {
		return false
	}
	inside := false
	j := len(vertices) - 1
	for i := 0; i < len(vertices); i++ {
		vi, vj := vertices[i], vertices[j]
		if (vi.y > p.y) != (vj.y > p.y) {
			xcross := (vj.x-vi.x)*(p.y-vi.y)/(vj.y-vi.y) + vi.x
			if p.x < xcross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// isInside resolves a containment query by shape kind: Circle and
// Polygon use their dedicated formulas, bounding-box shapes use the
// open-interval box test, and anything else refuses containment.
func isInside(p *Point, s Shape) bool {
	if p == nil || s == nil {
		return false
	}
	switch obj := s.(type) {
	case *Circle:
		return obj.ContainsPoint(p)
	case *Polygon:
		return obj.ContainsPoint(p)
	case *Rectangle:
		return obj.containsBox(p)
	case *Oval:
		return obj.containsBox(p)
	case *Line:
		return obj.containsBox(p)
	default:
		return false
	}
}
