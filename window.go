package graphics

import (
	"fmt"
	"image"
	"sync"
	"time"
)

// Window is a top-level window presenting a user-defined coordinate
// system. It owns the set of currently drawn shapes, the active
// world-to-screen transform, and the retained pixel buffers of drawn
// images, and it is the sole object through which shapes translate
// between world and screen space. Actual pixel rendering is delegated
// to a Surface.
//
// Geometry, transform and configuration operations are not safe for
// concurrent use; drive them from one goroutine. The mouse and key
// queries are safe to call while the surface delivers events.
type Window struct {
	surface   Surface
	title     string
	width     int
	height    int
	autoflush bool

	// items is the tracked-shape list in insertion order. Maintained by
	// the shapes' own Draw and Undraw, never called directly by users.
	items []Shape

	// trans is the active transform; nil means identity.
	trans *Transform

	// retained holds the pixel buffer of every drawn image, keyed by
	// shape identity, for as long as the backend may reference it.
	retained map[*Image]image.Image

	lastUpdate time.Time

	mu      sync.Mutex
	cond    *sync.Cond
	closed  bool
	pending [3]*image.Point // last unconsumed click, indexed by button
	lastKey string
	handler func(*Point)
}

// WindowOption configures a Window during creation.
type WindowOption func(*windowOptions)

type windowOptions struct {
	autoflush bool
	surface   Surface
}

// WithAutoflush controls whether every drawing operation is flushed to
// the display immediately. The default is true; turn it off for
// animation loops that call Update themselves.
func WithAutoflush(on bool) WindowOption {
	return func(o *windowOptions) { o.autoflush = on }
}

// WithSurface injects the render surface backing the window. Use this
// for a desktop backend (see backend and backend/fyne) or a test
// double; the default is the headless software surface.
func WithSurface(s Surface) WindowOption {
	return func(o *windowOptions) { o.surface = s }
}

// NewWindow creates a window of the given pixel size. With no options it
// is backed by the headless software surface, which renders into memory
// and takes injected events; see WithSurface for attaching a desktop
// backend.
func NewWindow(title string, width, height int, opts ...WindowOption) (*Window, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("%w: window size %dx%d", ErrBadValue, width, height)
	}
	o := windowOptions{autoflush: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.surface == nil {
		o.surface = NewSoftwareSurface(width, height)
	}
	w := &Window{
		surface:   o.surface,
		title:     title,
		width:     width,
		height:    height,
		autoflush: o.autoflush,
		retained:  make(map[*Image]image.Image),
	}
	w.cond = sync.NewCond(&w.mu)
	go w.pump()
	logger().Info("window created", "title", title, "width", width, "height", height)
	if w.autoflush {
		w.surface.Flush()
	}
	return w, nil
}

// pump drains surface events into the window's pending-event state and
// wakes any blocked GetMouse or GetKey. It exits when the surface closes
// its event channel, marking the window closed so blocked waiters abort.
func (w *Window) pump() {
	for ev := range w.surface.Events() {
		var handler func(*Point)
		var click *Point
		w.mu.Lock()
		switch e := ev.(type) {
		case MouseEvent:
			if e.Button >= 1 && e.Button < len(w.pending) {
				pt := image.Pt(e.X, e.Y)
				w.pending[e.Button] = &pt
			}
			if e.Button == 1 && w.handler != nil {
				handler = w.handler
				click = NewPoint(float64(e.X), float64(e.Y))
			}
		case KeyEvent:
			w.lastKey = e.Name
		case CloseEvent:
			w.closed = true
		}
		w.cond.Broadcast()
		w.mu.Unlock()
		if handler != nil {
			handler(click)
		}
	}
	w.mu.Lock()
	w.closed = true
	w.cond.Broadcast()
	w.mu.Unlock()
}

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// Width returns the window width in pixels.
func (w *Window) Width() int { return w.width }

// Height returns the window height in pixels.
func (w *Window) Height() int { return w.height }

// Closed reports whether the window has been closed, by Close or by the
// user dismissing it.
func (w *Window) Closed() bool {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	return closed || w.surface.Closed()
}

// IsOpen reports whether the window is still open.
func (w *Window) IsOpen() bool { return !w.Closed() }

// Close closes the window. Shapes drawn on it keep stale references
// that count as not-drawn, so they can be drawn again elsewhere.
// Closing twice is harmless.
func (w *Window) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.cond.Broadcast()
	w.mu.Unlock()
	for im := range w.retained {
		delete(w.retained, im)
	}
	_ = w.surface.Close()
	logger().Info("window closed", "title", w.title)
}

// SetCoords installs a new world coordinate system running from
// (x1, y1) in the lower-left corner to (x2, y2) in the upper-right
// corner, then redraws every tracked shape through the new transform.
func (w *Window) SetCoords(x1, y1, x2, y2 float64) error {
	if w.Closed() {
		return fmt.Errorf("setCoords: %w", ErrClosedWindow)
	}
	t, err := NewTransform(w.width, w.height, x1, y1, x2, y2)
	if err != nil {
		return err
	}
	w.trans = t
	w.Redraw()
	return nil
}

// ToScreen converts world coordinates to screen pixels through the
// active transform; identity when no coordinate system is set.
func (w *Window) ToScreen(x, y float64) (int, int) {
	if w.trans != nil {
		return w.trans.ToScreen(x, y)
	}
	return round(x), round(y)
}

// ToWorld converts screen pixels to world coordinates through the
// active transform; identity when no coordinate system is set.
func (w *Window) ToWorld(xs, ys int) (float64, float64) {
	if w.trans != nil {
		return w.trans.ToWorld(xs, ys)
	}
	return float64(xs), float64(ys)
}

// SetBackground sets the window background color.
func (w *Window) SetBackground(color string) error {
	if w.Closed() {
		return fmt.Errorf("setBackground: %w", ErrClosedWindow)
	}
	w.surface.SetBackground(color)
	w.autoFlush()
	return nil
}

// Plot colors the pixel at world (x, y).
func (w *Window) Plot(x, y float64, color string) error {
	if w.Closed() {
		return fmt.Errorf("plot: %w", ErrClosedWindow)
	}
	xs, ys := w.ToScreen(x, y)
	w.surface.CreateLine(xs, ys, xs+1, ys, Config{optFill: color})
	w.autoFlush()
	return nil
}

// PlotPixel colors the raw pixel (x, y), independent of the window
// coordinate system.
func (w *Window) PlotPixel(x, y int, color string) error {
	if w.Closed() {
		return fmt.Errorf("plotPixel: %w", ErrClosedWindow)
	}
	w.surface.CreateLine(x, y, x+1, y, Config{optFill: color})
	w.autoFlush()
	return nil
}

// Flush forces pending drawing operations out to the display.
func (w *Window) Flush() error {
	if w.Closed() {
		return fmt.Errorf("flush: %w", ErrClosedWindow)
	}
	w.surface.Flush()
	return nil
}

// Update flushes the display, pacing the caller to at most rate frames
// per second when a rate is given. Animation loops disable autoflush
// and call Update once per frame.
func (w *Window) Update(rate ...float64) {
	if len(rate) > 0 && rate[0] > 0 {
		interval := time.Duration(float64(time.Second) / rate[0])
		if since := time.Since(w.lastUpdate); since < interval {
			time.Sleep(interval - since)
		}
		w.lastUpdate = time.Now()
	}
	w.surface.Flush()
}

// Redraw detaches and reattaches every tracked shape in insertion
// order. It is used after the transform changes, so displayed positions
// reflect the new mapping.
func (w *Window) Redraw() {
	items := make([]Shape, len(w.items))
	copy(items, w.items)
	logger().Debug("redraw", "items", len(items))
	for _, item := range items {
		item.Undraw()
		if err := item.Draw(w); err != nil {
			logger().Warn("redraw failed", "shape", item.String(), "err", err)
		}
	}
	w.surface.Flush()
}

// ContainsPoint reports whether p falls within the window's pixel
// bounds. Both bounds are inclusive.
func (w *Window) ContainsPoint(p *Point) bool {
	if p == nil {
		return false
	}
	return 0 <= p.x && p.x <= float64(w.width) && 0 <= p.y && p.y <= float64(w.height)
}

// autoFlush flushes the surface when the window was created with
// autoflush on.
func (w *Window) autoFlush() {
	if w.autoflush {
		w.surface.Flush()
	}
}

// addItem registers a drawn shape. Called by Shape.Draw.
func (w *Window) addItem(s Shape) {
	w.items = append(w.items, s)
}

// delItem removes a shape from the tracked list. Called by Shape.Undraw.
func (w *Window) delItem(s Shape) {
	for i, item := range w.items {
		if item == s {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return
		}
	}
}

// retainImage pins an image's pixel buffer for its drawn lifetime, so
// the backend's reference to the pixels stays valid even if the caller
// drops the shape.
func (w *Window) retainImage(im *Image) {
	w.retained[im] = im.img
}

// releaseImage drops the pinned buffer when the image is undrawn.
func (w *Window) releaseImage(im *Image) {
	delete(w.retained, im)
}

// GetMouse blocks until the primary mouse button is clicked and returns
// the click position in world coordinates. Clicks delivered before the
// call are discarded. The wait aborts with ErrClosedWindow when the
// window closes.
func (w *Window) GetMouse() (*Point, error) {
	return w.GetMouseButton(1)
}

// GetMouseButton is GetMouse for a specific button (1 or 2).
func (w *Window) GetMouseButton(button int) (*Point, error) {
	if button < 1 || button >= len(w.pending) {
		return nil, badOption("button", button)
	}
	w.surface.Flush()
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending[button] = nil // flush prior clicks
	for w.pending[button] == nil {
		if w.closed {
			return nil, fmt.Errorf("getMouse: %w", ErrClosedWindow)
		}
		w.cond.Wait()
	}
	click := *w.pending[button]
	w.pending[button] = nil
	x, y := w.ToWorld(click.X, click.Y)
	return NewPoint(x, y), nil
}

// CheckMouse returns the last unconsumed primary-button click in world
// coordinates, or nil if the mouse has not been clicked since the last
// call.
func (w *Window) CheckMouse() (*Point, error) {
	return w.CheckMouseButton(1)
}

// CheckMouseButton is CheckMouse for a specific button (1 or 2).
func (w *Window) CheckMouseButton(button int) (*Point, error) {
	if button < 1 || button >= len(w.pending) {
		return nil, badOption("button", button)
	}
	if w.Closed() {
		return nil, fmt.Errorf("checkMouse: %w", ErrClosedWindow)
	}
	w.surface.Flush()
	w.mu.Lock()
	defer w.mu.Unlock()
	click := w.pending[button]
	if click == nil {
		return nil, nil
	}
	w.pending[button] = nil
	x, y := w.ToWorld(click.X, click.Y)
	return NewPoint(x, y), nil
}

// CheckMousePosition returns the current pointer position in raw screen
// coordinates, or nil when the pointer is outside the window.
func (w *Window) CheckMousePosition() *Point {
	x, y, ok := w.surface.PointerPosition()
	if !ok || x < 0 || x > w.width || y < 0 || y > w.height {
		return nil
	}
	return NewPoint(float64(x), float64(y))
}

// GetKey blocks until a key is pressed and returns its name. The wait
// aborts with ErrClosedWindow when the window closes.
func (w *Window) GetKey() (string, error) {
	w.surface.Flush()
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastKey = ""
	for w.lastKey == "" {
		if w.closed {
			return "", fmt.Errorf("getKey: %w", ErrClosedWindow)
		}
		w.cond.Wait()
	}
	key := w.lastKey
	w.lastKey = ""
	return key, nil
}

// CheckKey returns the last key pressed since the previous call, or ""
// when none was.
func (w *Window) CheckKey() (string, error) {
	if w.Closed() {
		return "", fmt.Errorf("checkKey: %w", ErrClosedWindow)
	}
	w.surface.Flush()
	w.mu.Lock()
	defer w.mu.Unlock()
	key := w.lastKey
	w.lastKey = ""
	return key, nil
}

// SetMouseHandler installs a callback invoked on every primary-button
// click with the click position in raw screen coordinates. Pass nil to
// remove it.
func (w *Window) SetMouseHandler(fn func(*Point)) {
	w.mu.Lock()
	w.handler = fn
	w.mu.Unlock()
}

func (w *Window) String() string {
	if w.Closed() {
		return "<closed window>"
	}
	return fmt.Sprintf("Window(%q, %d, %d)", w.title, w.width, w.height)
}
