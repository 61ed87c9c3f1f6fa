package graphics

import (
	"fmt"
	"image"
	"strings"
)

// Polygon is a closed path through an ordered sequence of vertices.
// Vertex order is significant: it defines the edges and therefore the
// containment boundary, and it is preserved by Clone and Move.
type Polygon struct {
	shapeBase
	points []*Point
}

// NewPolygon returns a detached polygon over copies of the given
// vertices, in order. At least one vertex is required.
func NewPolygon(points ...*Point) *Polygon {
	owned := make([]*Point, len(points))
	for i, p := range points {
		owned[i] = p.clonePoint()
	}
	return &Polygon{
		shapeBase: newShapeBase("Polygon", optOutline, optWidth, optFill),
		points:    owned,
	}
}

// Points returns copies of the polygon's vertices in order.
func (pg *Polygon) Points() []*Point {
	out := make([]*Point, len(pg.points))
	for i, p := range pg.points {
		out[i] = p.clonePoint()
	}
	return out
}

// Draw renders the polygon onto w.
func (pg *Polygon) Draw(w *Window) error { return pg.draw(pg, w) }

// Undraw removes the polygon from its window.
func (pg *Polygon) Undraw() { pg.undraw(pg) }

// Move shifts every vertex by (dx, dy) world units.
func (pg *Polygon) Move(dx, dy float64) { pg.move(pg, dx, dy) }

// Clone returns a detached copy with independently owned vertices.
func (pg *Polygon) Clone() Shape {
	other := NewPolygon(pg.points...)
	other.config = pg.config.clone()
	return other
}

// ContainsPoint reports whether p lies inside the polygon, by casting a
// ray through the ordered vertex list in world coordinates.
func (pg *Polygon) ContainsPoint(p *Point) bool {
	if p == nil {
		return false
	}
	return inPolygon(pg.points, p)
}

func (pg *Polygon) String() string {
	parts := make([]string, len(pg.points))
	for i, p := range pg.points {
		parts[i] = p.String()
	}
	return fmt.Sprintf("Polygon(%s)", strings.Join(parts, ", "))
}

func (pg *Polygon) render(w *Window) (Handle, error) {
	pts := make([]image.Point, 0, len(pg.points))
	for _, p := range pg.points {
		x, y := w.ToScreen(p.x, p.y)
		pts = append(pts, image.Pt(x, y))
	}
	return w.surface.CreatePolygon(pts, pg.config.clone()), nil
}

func (pg *Polygon) shift(dx, dy float64) {
	for _, p := range pg.points {
		p.shift(dx, dy)
	}
}
