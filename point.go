package graphics

import "fmt"

// Point is the atomic geometric primitive: a world-coordinate position.
// It is itself drawable, rendering as a single pixel, and it is the value
// other shapes are built from. Other shapes always store private clones
// of the points they are given, so mutating a Point after construction
// never reaches into a shape.
type Point struct {
	shapeBase
	x, y float64
}

// NewPoint returns a detached point at world (x, y).
func NewPoint(x, y float64) *Point {
	return &Point{
		shapeBase: newShapeBase("Point", optOutline, optFill),
		x:         x,
		y:         y,
	}
}

// X returns the point's world x coordinate.
func (p *Point) X() float64 { return p.x }

// Y returns the point's world y coordinate.
func (p *Point) Y() float64 { return p.y }

// Draw renders the point as a 1×1 pixel rectangle.
func (p *Point) Draw(w *Window) error { return p.draw(p, w) }

// Undraw removes the point from its window.
func (p *Point) Undraw() { p.undraw(p) }

// Move shifts the point by (dx, dy) world units.
func (p *Point) Move(dx, dy float64) { p.move(p, dx, dy) }

// Clone returns a detached copy with the same position and configuration.
func (p *Point) Clone() Shape { return p.clonePoint() }

// clonePoint is the typed clone used internally by shapes that own
// corner or vertex points.
func (p *Point) clonePoint() *Point {
	other := NewPoint(p.x, p.y)
	other.config = p.config.clone()
	return other
}

// SetFill sets the point's color. A point has no interior distinct from
// its outline, so this is an alias for SetOutline.
func (p *Point) SetFill(color string) error { return p.SetOutline(color) }

// ContainsPoint reports containment in a zero-area box: true only for an
// exactly matching position.
func (p *Point) ContainsPoint(q *Point) bool {
	return q != nil && q.x == p.x && q.y == p.y
}

// IsInside reports whether the point lies inside the given shape. It is
// the click-resolution entry point: Circle and Polygon use their exact
// containment formulas, Rectangle and the other bounding-box shapes use
// the open-interval box test, and shapes with no geometric containment
// report false.
func (p *Point) IsInside(s Shape) bool {
	return isInside(p, s)
}

func (p *Point) String() string {
	return fmt.Sprintf("Point(%g, %g)", p.x, p.y)
}

func (p *Point) render(w *Window) (Handle, error) {
	x, y := w.ToScreen(p.x, p.y)
	return w.surface.CreateRect(x, y, x+1, y+1, p.config.clone()), nil
}

func (p *Point) shift(dx, dy float64) {
	p.x += dx
	p.y += dy
}
