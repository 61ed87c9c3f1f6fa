package graphics

import "fmt"

// bbox is the shared state of shapes defined by two opposite corners:
// Rectangle, Oval, Line, and the box a Circle derives from its radius.
// The corner points are private clones, so callers mutating the points
// they passed in do not move the shape.
type bbox struct {
	shapeBase
	p1, p2 *Point
}

func newBBox(kind string, p1, p2 *Point, keys ...string) bbox {
	return bbox{
		shapeBase: newShapeBase(kind, keys...),
		p1:        p1.clonePoint(),
		p2:        p2.clonePoint(),
	}
}

// P1 returns a copy of the first corner point.
func (b *bbox) P1() *Point { return b.p1.clonePoint() }

// P2 returns a copy of the second corner point.
func (b *bbox) P2() *Point { return b.p2.clonePoint() }

// Center returns the midpoint of the two corners.
func (b *bbox) Center() *Point {
	return NewPoint((b.p1.x+b.p2.x)/2, (b.p1.y+b.p2.y)/2)
}

func (b *bbox) shift(dx, dy float64) {
	b.p1.shift(dx, dy)
	b.p2.shift(dx, dy)
}

// containsBox is the open-interval box test: boundary points are outside.
func (b *bbox) containsBox(p *Point) bool {
	if p == nil {
		return false
	}
	return min(b.p1.x, b.p2.x) < p.x && p.x < max(b.p1.x, b.p2.x) &&
		min(b.p1.y, b.p2.y) < p.y && p.y < max(b.p1.y, b.p2.y)
}

// Rectangle is an axis-aligned box spanning two opposite corners.
type Rectangle struct {
	bbox
}

// NewRectangle returns a detached rectangle with corners at copies of
// p1 and p2.
func NewRectangle(p1, p2 *Point) *Rectangle {
	return &Rectangle{bbox: newBBox("Rectangle", p1, p2, optOutline, optWidth, optFill)}
}

// Draw renders the rectangle onto w.
func (r *Rectangle) Draw(w *Window) error { return r.draw(r, w) }

// Undraw removes the rectangle from its window.
func (r *Rectangle) Undraw() { r.undraw(r) }

// Move shifts both corners by (dx, dy) world units.
func (r *Rectangle) Move(dx, dy float64) { r.move(r, dx, dy) }

// Clone returns a detached copy.
func (r *Rectangle) Clone() Shape {
	other := NewRectangle(r.p1, r.p2)
	other.config = r.config.clone()
	return other
}

// ContainsPoint reports whether p lies strictly inside the rectangle;
// points on the boundary are outside.
func (r *Rectangle) ContainsPoint(p *Point) bool { return r.containsBox(p) }

func (r *Rectangle) String() string {
	return fmt.Sprintf("Rectangle(%v, %v)", r.p1, r.p2)
}

func (r *Rectangle) render(w *Window) (Handle, error) {
	x1, y1 := w.ToScreen(r.p1.x, r.p1.y)
	x2, y2 := w.ToScreen(r.p2.x, r.p2.y)
	return w.surface.CreateRect(x1, y1, x2, y2, r.config.clone()), nil
}

// Oval is the ellipse inscribed in the box spanned by two opposite
// corners.
type Oval struct {
	bbox
}

// NewOval returns a detached oval inscribed in the box with corners at
// copies of p1 and p2.
func NewOval(p1, p2 *Point) *Oval {
	return &Oval{bbox: newBBox("Oval", p1, p2, optOutline, optWidth, optFill)}
}

// Draw renders the oval onto w.
func (o *Oval) Draw(w *Window) error { return o.draw(o, w) }

// Undraw removes the oval from its window.
func (o *Oval) Undraw() { o.undraw(o) }

// Move shifts the oval by (dx, dy) world units.
func (o *Oval) Move(dx, dy float64) { o.move(o, dx, dy) }

// Clone returns a detached copy.
func (o *Oval) Clone() Shape {
	other := NewOval(o.p1, o.p2)
	other.config = o.config.clone()
	return other
}

// ContainsPoint falls back to the open-interval test on the oval's
// bounding box; Circle carries the exact disc formula.
func (o *Oval) ContainsPoint(p *Point) bool { return o.containsBox(p) }

func (o *Oval) String() string {
	return fmt.Sprintf("Oval(%v, %v)", o.p1, o.p2)
}

func (o *Oval) render(w *Window) (Handle, error) {
	x1, y1 := w.ToScreen(o.p1.x, o.p1.y)
	x2, y2 := w.ToScreen(o.p2.x, o.p2.y)
	return w.surface.CreateOval(x1, y1, x2, y2, o.config.clone()), nil
}

// Line is a segment between two endpoints, with optional arrowheads on
// either end.
type Line struct {
	bbox
	// tolerance for ContainsPoint; zero keeps the exact distance-sum
	// comparison. See SetTolerance.
	tol float64
}

// NewLine returns a detached line segment from a copy of p1 to a copy
// of p2. A line is stroked in its fill color, which starts black.
func NewLine(p1, p2 *Point) *Line {
	l := &Line{bbox: newBBox("Line", p1, p2, optArrow, optFill, optWidth)}
	l.config[optFill] = "black"
	return l
}

// Draw renders the line onto w.
func (l *Line) Draw(w *Window) error { return l.draw(l, w) }

// Undraw removes the line from its window.
func (l *Line) Undraw() { l.undraw(l) }

// Move shifts both endpoints by (dx, dy) world units.
func (l *Line) Move(dx, dy float64) { l.move(l, dx, dy) }

// Clone returns a detached copy.
func (l *Line) Clone() Shape {
	other := NewLine(l.p1, l.p2)
	other.config = l.config.clone()
	other.tol = l.tol
	return other
}

// SetOutline sets the line's color. A line has a single color, so this
// is an alias for SetFill.
func (l *Line) SetOutline(color string) error { return l.SetFill(color) }

// SetArrow configures arrowheads: ArrowNone, ArrowFirst, ArrowLast or
// ArrowBoth. Any other value fails with ErrUnsupportedOption.
func (l *Line) SetArrow(style string) error {
	if !oneOf(style, arrowKinds) {
		return badOption(optArrow, style)
	}
	return l.reconfig(optArrow, style)
}

// Arrow returns the configured arrowhead style.
func (l *Line) Arrow() string { return l.config.str(optArrow) }

// SetTolerance sets the slack allowed by ContainsPoint when comparing
// the endpoint distance sum against the segment length. The default of
// zero demands exact floating-point equality, so only points that fall
// on the segment without any rounding register as inside; pass a small
// epsilon for a tolerant test.
func (l *Line) SetTolerance(eps float64) { l.tol = eps }

// ContainsPoint reports whether p lies on the segment: the distance from
// p1 to p plus the distance from p to p2 must equal the segment length,
// within the configured tolerance.
func (l *Line) ContainsPoint(p *Point) bool {
	if p == nil {
		return false
	}
	return onSegment(l.p1, l.p2, p, l.tol)
}

func (l *Line) String() string {
	return fmt.Sprintf("Line(%v, %v)", l.p1, l.p2)
}

func (l *Line) render(w *Window) (Handle, error) {
	x1, y1 := w.ToScreen(l.p1.x, l.p1.y)
	x2, y2 := w.ToScreen(l.p2.x, l.p2.y)
	return w.surface.CreateLine(x1, y1, x2, y2, l.config.clone()), nil
}
