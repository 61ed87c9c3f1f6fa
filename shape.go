package graphics

import (
	"fmt"
)

// Shape is the interface implemented by every drawable object: Point,
// Line, Rectangle, Oval, Circle, Polygon, Text, Entry and Image.
//
// A shape is created detached, in world coordinates. Draw attaches it to
// a window; Undraw detaches it, leaving its geometry and configuration
// intact for re-drawing elsewhere. Move and the configuration setters
// work whether or not the shape is attached, updating the rendered
// primitive immediately when it is. A shape is attached to at most one
// window at a time.
//
// The set of implementations is closed; the interface has unexported
// methods so shapes cannot be defined outside this package.
type Shape interface {
	// Draw renders the shape onto w and registers it as a tracked item.
	// It fails with ErrAlreadyDrawn if the shape is currently drawn on
	// an open window, and with ErrClosedWindow if w is closed.
	Draw(w *Window) error

	// Undraw removes the shape from its window. Undrawing a shape that
	// is not drawn is a no-op.
	Undraw()

	// Move shifts the shape by (dx, dy) world units.
	Move(dx, dy float64)

	// Clone returns a detached deep copy: same geometry and
	// configuration, no window attachment, no shared state.
	Clone() Shape

	// SetFill sets the interior color.
	SetFill(color string) error

	// SetOutline sets the outline color.
	SetOutline(color string) error

	// SetWidth sets the outline stroke width.
	SetWidth(width float64) error

	// ContainsPoint reports whether p lies inside the shape, using the
	// shape's world-coordinate geometry. Shapes with no geometric
	// containment (Point, Text, Entry, Image) always report false.
	ContainsPoint(p *Point) bool

	fmt.Stringer

	// render draws the shape's primitive on the window's surface and
	// returns its handle.
	render(w *Window) (Handle, error)

	// shift updates the shape's world geometry by (dx, dy).
	shift(dx, dy float64)

	// state exposes the shared lifecycle state.
	state() *shapeBase
}

// shapeBase carries the state shared by all shapes: the window the shape
// is drawn on (nil while detached), the render handle assigned by the
// surface, and the configuration map restricted to the shape kind's
// whitelisted keys. Shape types embed it; lifecycle methods that need the
// concrete shape take it as an explicit argument.
type shapeBase struct {
	win    *Window
	handle Handle
	config Config
	kind   string
}

func newShapeBase(kind string, keys ...string) shapeBase {
	return shapeBase{config: newConfig(keys...), kind: kind}
}

func (b *shapeBase) state() *shapeBase { return b }

// drawnOn reports the window the shape is visibly drawn on. A stale
// reference to a closed window counts as not drawn.
func (b *shapeBase) drawnOn() *Window {
	if b.win == nil || b.win.Closed() {
		return nil
	}
	return b.win
}

// draw implements the attach half of the lifecycle for the concrete
// shape s (which must be the shape embedding b).
func (b *shapeBase) draw(s Shape, w *Window) error {
	if b.drawnOn() != nil {
		return fmt.Errorf("%w: %s", ErrAlreadyDrawn, b.kind)
	}
	if w == nil || w.Closed() {
		return fmt.Errorf("draw %s: %w", b.kind, ErrClosedWindow)
	}
	b.win = w
	h, err := s.render(w)
	if err != nil {
		b.win = nil
		return err
	}
	b.handle = h
	w.addItem(s)
	logger().Debug("shape drawn", "kind", b.kind, "handle", int(h))
	w.autoFlush()
	return nil
}

// undraw implements the detach half of the lifecycle. The window
// reference and handle are cleared even when the window is already
// closed and the primitive is gone with it.
func (b *shapeBase) undraw(s Shape) {
	if b.win == nil {
		return
	}
	if !b.win.Closed() {
		b.win.surface.Delete(b.handle)
		b.win.delItem(s)
		logger().Debug("shape undrawn", "kind", b.kind, "handle", int(b.handle))
		b.win.autoFlush()
	}
	b.win = nil
	b.handle = 0
}

// move applies a world-space delta: the shape's own geometry moves
// unconditionally, and when the shape is visible the rendered primitive
// is shifted by the equivalent screen-space delta rather than redrawn.
func (b *shapeBase) move(s Shape, dx, dy float64) {
	s.shift(dx, dy)
	w := b.drawnOn()
	if w == nil {
		return
	}
	sx, sy := dx, dy
	if t := w.trans; t != nil {
		sx = dx / t.xScale
		sy = -dy / t.yScale
	}
	w.surface.MoveBy(b.handle, sx, sy)
	w.autoFlush()
}

// reconfig validates key against the shape's whitelist, stores the value,
// and pushes the updated configuration to the surface when visible.
func (b *shapeBase) reconfig(key string, value any) error {
	if _, ok := b.config[key]; !ok {
		return fmt.Errorf("%w: %s does not support %q", ErrUnsupportedOption, b.kind, key)
	}
	b.config[key] = value
	if w := b.drawnOn(); w != nil {
		w.surface.Update(b.handle, b.config.clone())
		w.autoFlush()
	}
	return nil
}

// SetFill sets the interior color. Shapes that have no separate interior
// (Point, Line, Text) override this to alias their single color.
func (b *shapeBase) SetFill(color string) error {
	return b.reconfig(optFill, color)
}

// SetOutline sets the outline color.
func (b *shapeBase) SetOutline(color string) error {
	return b.reconfig(optOutline, color)
}

// SetWidth sets the outline stroke width.
func (b *shapeBase) SetWidth(width float64) error {
	return b.reconfig(optWidth, width)
}

// Fill returns the configured interior color.
func (b *shapeBase) Fill() string { return b.config.str(optFill) }

// Outline returns the configured outline color.
func (b *shapeBase) Outline() string { return b.config.str(optOutline) }

// Width returns the configured stroke width.
func (b *shapeBase) Width() float64 { return b.config.num(optWidth) }

// ContainsPoint reports false; shapes with geometric containment
// override it.
func (b *shapeBase) ContainsPoint(p *Point) bool { return false }
