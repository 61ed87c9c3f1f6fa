package graphics

import "image"

// Handle is an opaque identifier a Surface assigns to a drawn primitive.
// Shapes store the handle while drawn and use it to update, move and
// delete the primitive. The zero Handle is never assigned.
type Handle int

// Surface is the rendering side of a window: a pixel surface of fixed
// size that can create, reconfigure, move and delete primitive shapes
// given screen coordinates, and that delivers input events.
//
// The library ships two implementations: the headless in-memory surface
// returned by NewSoftwareSurface, and the desktop driver in
// backend/fyne. All coordinates are raw pixels; the world-to-screen
// mapping happens above this interface.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// SetBackground sets the background color of the whole surface.
	SetBackground(color string)

	// CreateRect creates an axis-aligned rectangle between two corners.
	CreateRect(x1, y1, x2, y2 int, cfg Config) Handle

	// CreateOval creates the ellipse inscribed in the given corner box.
	CreateOval(x1, y1, x2, y2 int, cfg Config) Handle

	// CreateLine creates a line segment, with optional arrowheads per
	// the "arrow" config key.
	CreateLine(x1, y1, x2, y2 int, cfg Config) Handle

	// CreatePolygon creates a closed polygon through the given vertices.
	CreatePolygon(pts []image.Point, cfg Config) Handle

	// CreateText creates a text label anchored (centered) at x, y.
	CreateText(x, y int, cfg Config) Handle

	// CreateEntry embeds an editable text field anchored at x, y with
	// room for width characters.
	CreateEntry(x, y, width int, cfg Config) Handle

	// CreateImage blits an image anchored (centered) at x, y.
	CreateImage(x, y int, img image.Image, cfg Config) Handle

	// Update pushes a new configuration to an existing primitive.
	Update(h Handle, cfg Config)

	// Delete removes a primitive from the surface.
	Delete(h Handle)

	// MoveBy shifts a primitive by a screen-space delta.
	MoveBy(h Handle, dx, dy float64)

	// EntryText reports the current text of an entry primitive.
	EntryText(h Handle) (string, bool)

	// SetEntryText replaces the text of an entry primitive.
	SetEntryText(h Handle, text string)

	// PointerPosition reports the pointer location in surface pixels,
	// and whether the pointer is currently over the surface.
	PointerPosition() (x, y int, ok bool)

	// Flush forces pending drawing operations out to the display.
	Flush()

	// Closed reports whether the surface has been closed, either by
	// Close or by the user dismissing the window.
	Closed() bool

	// Close destroys the surface. Events() is closed afterwards.
	Close() error

	// Events returns the stream of input events. The channel is closed
	// after the surface is.
	Events() <-chan Event
}

// Event is an input event delivered by a Surface. The concrete types are
// MouseEvent, MotionEvent, KeyEvent and CloseEvent.
type Event interface {
	isEvent()
}

// MouseEvent reports a mouse button press at a pixel position.
type MouseEvent struct {
	Button int // 1 = primary, 2 = secondary
	X, Y   int
}

// MotionEvent reports the pointer moving to a pixel position.
type MotionEvent struct {
	X, Y int
}

// KeyEvent reports a key press by its symbolic name ("a", "Return", ...).
type KeyEvent struct {
	Name string
}

// CloseEvent reports that the surface was closed from the user's side.
type CloseEvent struct{}

func (MouseEvent) isEvent()  {}
func (MotionEvent) isEvent() {}
func (KeyEvent) isEvent()    {}
func (CloseEvent) isEvent()  {}
