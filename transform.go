package graphics

import (
	"fmt"
	"math"
)

// Transform maps between world coordinates (the caller-chosen system set
// with Window.SetCoords) and screen pixels. World Y grows upward while
// screen rows grow downward, so the Y axis is inverted by the mapping.
//
// A Transform is immutable once constructed. Windows replace their
// transform wholesale when the world rectangle changes and redraw every
// tracked shape through the new one.
type Transform struct {
	xBase, yBase   float64
	xScale, yScale float64
}

// NewTransform builds the mapping for a width×height pixel surface whose
// lower-left corner shows world (xlow, ylow) and whose upper-right corner
// shows world (xhigh, yhigh). Pixel (0, height-1) maps to (xlow, ylow)
// and pixel (width-1, 0) maps to (xhigh, yhigh).
//
// Both dimensions must be at least 2 pixels and both world spans must be
// nonzero, otherwise the scale factors degenerate.
func NewTransform(width, height int, xlow, ylow, xhigh, yhigh float64) (*Transform, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("%w: window %dx%d too small for coordinate transform", ErrBadValue, width, height)
	}
	xspan := xhigh - xlow
	yspan := yhigh - ylow
	if xspan == 0 || yspan == 0 {
		return nil, fmt.Errorf("%w: empty world span (%g, %g)", ErrBadValue, xspan, yspan)
	}
	return &Transform{
		xBase:  xlow,
		yBase:  yhigh,
		xScale: xspan / float64(width-1),
		yScale: yspan / float64(height-1),
	}, nil
}

// ToScreen converts world coordinates to screen pixel coordinates.
func (t *Transform) ToScreen(x, y float64) (int, int) {
	xs := (x - t.xBase) / t.xScale
	ys := (t.yBase - y) / t.yScale
	return round(xs), round(ys)
}

// ToWorld converts screen pixel coordinates back to world coordinates.
// It is the algebraic inverse of ToScreen modulo the pixel rounding step.
func (t *Transform) ToWorld(xs, ys int) (float64, float64) {
	x := float64(xs)*t.xScale + t.xBase
	y := t.yBase - float64(ys)*t.yScale
	return x, y
}

// round rounds half upward: 2.5 becomes 3, -2.5 becomes -2. This matches
// adding 0.5 and truncating for the non-negative coordinates produced by
// a well-formed world rectangle.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
