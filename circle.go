package graphics

import "fmt"

// Circle is a disc given by a center and radius. It renders as an oval
// with equal radii; the corner box is derived from center±radius at
// construction and only ever changes through Move, which shifts both
// corners, so it stays consistent with the radius.
type Circle struct {
	bbox
	radius float64
}

// NewCircle returns a detached circle centered at a copy of center.
func NewCircle(center *Point, radius float64) *Circle {
	p1 := NewPoint(center.x-radius, center.y-radius)
	p2 := NewPoint(center.x+radius, center.y+radius)
	return &Circle{
		bbox:   newBBox("Circle", p1, p2, optOutline, optWidth, optFill),
		radius: radius,
	}
}

// Radius returns the circle's radius.
func (c *Circle) Radius() float64 { return c.radius }

// Draw renders the circle onto w.
func (c *Circle) Draw(w *Window) error { return c.draw(c, w) }

// Undraw removes the circle from its window.
func (c *Circle) Undraw() { c.undraw(c) }

// Move shifts the circle by (dx, dy) world units.
func (c *Circle) Move(dx, dy float64) { c.move(c, dx, dy) }

// Clone returns a detached copy.
func (c *Circle) Clone() Shape {
	other := NewCircle(c.Center(), c.radius)
	other.config = c.config.clone()
	return other
}

// ContainsPoint reports whether p lies within the disc. The boundary is
// included: a point at distance exactly Radius is inside.
func (c *Circle) ContainsPoint(p *Point) bool {
	if p == nil {
		return false
	}
	center := c.Center()
	return distance(center, p) <= c.radius
}

func (c *Circle) String() string {
	return fmt.Sprintf("Circle(%v, %g)", c.Center(), c.radius)
}

func (c *Circle) render(w *Window) (Handle, error) {
	x1, y1 := w.ToScreen(c.p1.x, c.p1.y)
	x2, y2 := w.ToScreen(c.p2.x, c.p2.y)
	return w.surface.CreateOval(x1, y1, x2, y2, c.config.clone()), nil
}
