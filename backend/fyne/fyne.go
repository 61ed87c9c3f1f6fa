// Package fyne provides a desktop render surface for graphics windows,
// driven by the Fyne toolkit. Importing the package registers the
// "fyne" driver with the backend registry.
//
// Fyne insists on owning the main goroutine, so a desktop program runs
// its graphics code in a goroutine and hands the main one to Run:
//
//	import fyneb "github.com/gogpu/graphics/backend/fyne"
//
//	func main() {
//		go func() {
//			surf, _ := backend.New(backend.Fyne, "Demo", 400, 400)
//			win, _ := graphics.NewWindow("Demo", 400, 400,
//				graphics.WithSurface(surf))
//			// ... draw, wait for clicks ...
//		}()
//		fyneb.Run()
//	}
//
// Known limits against the software surface: line arrowheads are not
// rendered (Fyne lines have no arrow support), and entry background
// colors follow the application theme.
package fyne

import (
	"image"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/graphics"
	"github.com/gogpu/graphics/backend"
	"github.com/gogpu/graphics/internal/raster"
)

func init() {
	backend.Register(backend.Fyne, func(title string, width, height int) (graphics.Surface, error) {
		return NewSurface(title, width, height), nil
	})
}

var (
	appOnce sync.Once
	fyneApp fyne.App
)

func sharedApp() fyne.App {
	appOnce.Do(func() {
		fyneApp = app.New()
	})
	return fyneApp
}

// Run hands the calling goroutine to the Fyne event loop. It must be
// called from the main goroutine and returns when the last window
// closes the application.
func Run() {
	sharedApp().Run()
}

// item is one drawn primitive and what is needed to re-render it.
type item struct {
	obj fyne.CanvasObject
	// pts is set for polygons, which Fyne has no primitive for; they
	// are rasterized into an image and re-rasterized on Update.
	pts []image.Point
}

// Surface renders primitives into a Fyne window.
type Surface struct {
	mu      sync.Mutex
	win     fyne.Window
	root    *fyne.Container
	bg      *canvas.Rectangle
	area    *inputArea
	width   int
	height  int
	items   map[graphics.Handle]*item
	entries map[graphics.Handle]*widget.Entry
	next    graphics.Handle
	events  chan graphics.Event
	closed  bool
	ptrX    int
	ptrY    int
	ptrOver bool
}

// NewSurface opens a fixed-size Fyne window and returns it as a render
// surface.
func NewSurface(title string, width, height int) *Surface {
	s := &Surface{
		width:   width,
		height:  height,
		items:   make(map[graphics.Handle]*item),
		entries: make(map[graphics.Handle]*widget.Entry),
		events:  make(chan graphics.Event, 64),
	}
	s.bg = canvas.NewRectangle(color.White)
	s.bg.Resize(fyne.NewSize(float32(width), float32(height)))
	s.area = &inputArea{surf: s}
	s.area.ExtendBaseWidget(s.area)
	s.area.Resize(fyne.NewSize(float32(width), float32(height)))
	s.root = container.NewWithoutLayout(s.bg, s.area)

	w := sharedApp().NewWindow(title)
	w.SetContent(s.root)
	w.Resize(fyne.NewSize(float32(width), float32(height)))
	w.SetFixedSize(true)
	w.SetCloseIntercept(func() {
		s.deliver(graphics.CloseEvent{})
		s.shutdown()
		w.Close()
	})
	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		s.deliver(graphics.KeyEvent{Name: string(ev.Name)})
	})
	w.Show()
	s.win = w
	return s
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (int, int) { return s.width, s.height }

// SetBackground sets the window background color.
func (s *Surface) SetBackground(spec string) {
	c, _ := graphics.ParseColor(spec)
	s.mu.Lock()
	s.bg.FillColor = c
	s.mu.Unlock()
	s.bg.Refresh()
}

func (s *Surface) add(obj fyne.CanvasObject, pts []image.Point) graphics.Handle {
	s.mu.Lock()
	s.next++
	h := s.next
	s.items[h] = &item{obj: obj, pts: pts}
	s.mu.Unlock()
	s.root.Add(obj)
	return h
}

// CreateRect creates an axis-aligned rectangle between two corners.
func (s *Surface) CreateRect(x1, y1, x2, y2 int, cfg graphics.Config) graphics.Handle {
	r := canvas.NewRectangle(fillColor(cfg))
	r.StrokeColor = outlineColor(cfg)
	r.StrokeWidth = strokeWidth(cfg)
	placeBox(r, x1, y1, x2, y2)
	return s.add(r, nil)
}

// CreateOval creates the ellipse inscribed in the given corner box.
func (s *Surface) CreateOval(x1, y1, x2, y2 int, cfg graphics.Config) graphics.Handle {
	c := canvas.NewCircle(fillColor(cfg))
	c.StrokeColor = outlineColor(cfg)
	c.StrokeWidth = strokeWidth(cfg)
	placeBox(c, x1, y1, x2, y2)
	return s.add(c, nil)
}

// CreateLine creates a line segment. Arrowheads are not rendered.
func (s *Surface) CreateLine(x1, y1, x2, y2 int, cfg graphics.Config) graphics.Handle {
	// a line is stroked in its fill color
	l := canvas.NewLine(fillColor(cfg))
	l.StrokeWidth = strokeWidth(cfg)
	l.Position1 = fyne.NewPos(float32(x1), float32(y1))
	l.Position2 = fyne.NewPos(float32(x2), float32(y2))
	return s.add(l, nil)
}

// CreatePolygon creates a closed polygon through the given vertices.
// Fyne has no polygon primitive, so the polygon is rasterized into an
// image object covering its bounding box.
func (s *Surface) CreatePolygon(pts []image.Point, cfg graphics.Config) graphics.Handle {
	owned := make([]image.Point, len(pts))
	copy(owned, pts)
	obj := polygonImage(owned, cfg)
	return s.add(obj, owned)
}

// CreateText creates a text label centered at (x, y).
func (s *Surface) CreateText(x, y int, cfg graphics.Config) graphics.Handle {
	t := canvas.NewText(cfgText(cfg), fillColor(cfg))
	applyFont(t, cfg)
	centerText(t, x, y)
	return s.add(t, nil)
}

// CreateEntry embeds an editable field centered at (x, y).
func (s *Surface) CreateEntry(x, y, width int, cfg graphics.Config) graphics.Handle {
	e := widget.NewEntry()
	e.SetText(cfgText(cfg))
	w := float32(width) * 10
	h := e.MinSize().Height
	e.Resize(fyne.NewSize(w, h))
	e.Move(fyne.NewPos(float32(x)-w/2, float32(y)-h/2))
	handle := s.add(e, nil)
	s.mu.Lock()
	s.entries[handle] = e
	s.mu.Unlock()
	return handle
}

// CreateImage blits an image centered at (x, y).
func (s *Surface) CreateImage(x, y int, img image.Image, cfg graphics.Config) graphics.Handle {
	obj := canvas.NewImageFromImage(img)
	b := img.Bounds()
	obj.FillMode = canvas.ImageFillOriginal
	obj.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	obj.Move(fyne.NewPos(float32(x-b.Dx()/2), float32(y-b.Dy()/2)))
	return s.add(obj, nil)
}

// Update pushes a new configuration to an existing primitive.
func (s *Surface) Update(h graphics.Handle, cfg graphics.Config) {
	s.mu.Lock()
	it, ok := s.items[h]
	entry := s.entries[h]
	s.mu.Unlock()
	if !ok {
		return
	}
	switch obj := it.obj.(type) {
	case *canvas.Rectangle:
		obj.FillColor = fillColor(cfg)
		obj.StrokeColor = outlineColor(cfg)
		obj.StrokeWidth = strokeWidth(cfg)
	case *canvas.Circle:
		obj.FillColor = fillColor(cfg)
		obj.StrokeColor = outlineColor(cfg)
		obj.StrokeWidth = strokeWidth(cfg)
	case *canvas.Line:
		obj.StrokeColor = fillColor(cfg)
		obj.StrokeWidth = strokeWidth(cfg)
	case *canvas.Text:
		pos := obj.Position()
		size := obj.MinSize()
		center := fyne.NewPos(pos.X+size.Width/2, pos.Y+size.Height/2)
		obj.Text = cfgText(cfg)
		obj.Color = fillColor(cfg)
		applyFont(obj, cfg)
		centerText(obj, int(center.X), int(center.Y))
	case *canvas.Image:
		if it.pts != nil {
			obj.Image = rasterize(it.pts, cfg)
		}
	case *widget.Entry:
		if entry != nil {
			entry.SetText(cfgText(cfg))
		}
	}
	it.obj.Refresh()
}

// Delete removes a primitive from the window.
func (s *Surface) Delete(h graphics.Handle) {
	s.mu.Lock()
	it, ok := s.items[h]
	delete(s.items, h)
	delete(s.entries, h)
	s.mu.Unlock()
	if ok {
		s.root.Remove(it.obj)
		s.root.Refresh()
	}
}

// MoveBy shifts a primitive by a screen-space delta.
func (s *Surface) MoveBy(h graphics.Handle, dx, dy float64) {
	s.mu.Lock()
	it, ok := s.items[h]
	s.mu.Unlock()
	if !ok {
		return
	}
	pos := it.obj.Position()
	it.obj.Move(fyne.NewPos(pos.X+float32(dx), pos.Y+float32(dy)))
	it.obj.Refresh()
}

// EntryText reports the current text of an entry primitive.
func (s *Surface) EntryText(h graphics.Handle) (string, bool) {
	s.mu.Lock()
	e, ok := s.entries[h]
	s.mu.Unlock()
	if !ok {
		return "", false
	}
	return e.Text, true
}

// SetEntryText replaces the text of an entry primitive.
func (s *Surface) SetEntryText(h graphics.Handle, text string) {
	s.mu.Lock()
	e, ok := s.entries[h]
	s.mu.Unlock()
	if ok {
		e.SetText(text)
	}
}

// PointerPosition reports the pointer location over the window.
func (s *Surface) PointerPosition() (int, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ptrX, s.ptrY, s.ptrOver
}

// Flush refreshes the window content.
func (s *Surface) Flush() {
	s.root.Refresh()
}

// Closed reports whether the surface has been closed.
func (s *Surface) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close destroys the window and closes the event channel.
func (s *Surface) Close() error {
	if s.shutdown() {
		s.win.Close()
	}
	return nil
}

// shutdown marks the surface closed and closes the event stream once.
func (s *Surface) shutdown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.closed = true
	close(s.events)
	return true
}

// Events returns the stream of input events.
func (s *Surface) Events() <-chan graphics.Event { return s.events }

func (s *Surface) deliver(ev graphics.Event) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return
	}
	select {
	case s.events <- ev:
	default:
	}
}

// inputArea is an invisible widget covering the window that turns Fyne
// pointer activity into surface events.
type inputArea struct {
	widget.BaseWidget
	surf *Surface
}

func (a *inputArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

func (a *inputArea) MouseDown(ev *desktop.MouseEvent) {
	button := 1
	if ev.Button == desktop.MouseButtonSecondary {
		button = 2
	}
	a.surf.deliver(graphics.MouseEvent{
		Button: button,
		X:      int(ev.Position.X),
		Y:      int(ev.Position.Y),
	})
}

func (a *inputArea) MouseUp(*desktop.MouseEvent) {}

func (a *inputArea) MouseIn(ev *desktop.MouseEvent) { a.pointer(ev, true) }

func (a *inputArea) MouseMoved(ev *desktop.MouseEvent) { a.pointer(ev, true) }

func (a *inputArea) MouseOut() {
	a.surf.mu.Lock()
	a.surf.ptrOver = false
	a.surf.mu.Unlock()
}

func (a *inputArea) pointer(ev *desktop.MouseEvent, over bool) {
	a.surf.mu.Lock()
	a.surf.ptrX = int(ev.Position.X)
	a.surf.ptrY = int(ev.Position.Y)
	a.surf.ptrOver = over
	a.surf.mu.Unlock()
	a.surf.deliver(graphics.MotionEvent{X: int(ev.Position.X), Y: int(ev.Position.Y)})
}

// placeBox positions a rectangular object over the box spanned by two
// corners given in any order.
func placeBox(obj fyne.CanvasObject, x1, y1, x2, y2 int) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	obj.Move(fyne.NewPos(float32(x1), float32(y1)))
	obj.Resize(fyne.NewSize(float32(x2-x1), float32(y2-y1)))
}

// centerText positions a text object so its bounds center on (x, y).
func centerText(t *canvas.Text, x, y int) {
	size := fyne.MeasureText(t.Text, t.TextSize, t.TextStyle)
	t.Resize(size)
	t.Move(fyne.NewPos(float32(x)-size.Width/2, float32(y)-size.Height/2))
}

// applyFont maps a graphics font descriptor onto a canvas text object.
func applyFont(t *canvas.Text, cfg graphics.Config) {
	f, ok := cfg["font"].(graphics.Font)
	if !ok {
		return
	}
	t.TextSize = float32(f.Size)
	t.TextStyle = fyne.TextStyle{
		Bold:      f.Style == "bold" || f.Style == "bold italic",
		Italic:    f.Style == "italic" || f.Style == "bold italic",
		Monospace: f.Face == "courier",
	}
}

// polygonImage rasterizes polygon vertices into a positioned image
// object.
func polygonImage(pts []image.Point, cfg graphics.Config) *canvas.Image {
	img := rasterize(pts, cfg)
	b := boundsOf(pts)
	obj := canvas.NewImageFromImage(img)
	obj.FillMode = canvas.ImageFillOriginal
	obj.Move(fyne.NewPos(float32(b.Min.X), float32(b.Min.Y)))
	obj.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	return obj
}

// rasterize draws polygon vertices into a fresh RGBA image covering
// their bounding box.
func rasterize(pts []image.Point, cfg graphics.Config) *image.RGBA {
	b := boundsOf(pts)
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	local := make([]image.Point, len(pts))
	for i, p := range pts {
		local[i] = p.Sub(b.Min)
	}
	if c, ok := namedOrHex(cfg, "fill"); ok {
		raster.FillPolygon(img, local, c)
	}
	if c, ok := namedOrHex(cfg, "outline"); ok {
		raster.StrokePolygon(img, local, int(strokeWidth(cfg)), c)
	}
	return img
}

func boundsOf(pts []image.Point) image.Rectangle {
	b := image.Rectangle{Min: pts[0], Max: pts[0].Add(image.Pt(1, 1))}
	for _, p := range pts[1:] {
		b = b.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	}
	return b
}

func cfgText(cfg graphics.Config) string {
	if v, ok := cfg["text"].(string); ok {
		return v
	}
	return ""
}

func namedOrHex(cfg graphics.Config, key string) (color.RGBA, bool) {
	spec, _ := cfg[key].(string)
	if spec == "" {
		return color.RGBA{}, false
	}
	c, _ := graphics.ParseColor(spec)
	return c, true
}

func fillColor(cfg graphics.Config) color.Color {
	if c, ok := namedOrHex(cfg, "fill"); ok {
		return c
	}
	return color.Transparent
}

func outlineColor(cfg graphics.Config) color.Color {
	if c, ok := namedOrHex(cfg, "outline"); ok {
		return c
	}
	return color.Transparent
}

func strokeWidth(cfg graphics.Config) float32 {
	if v, ok := cfg["width"].(float64); ok && v > 0 {
		return float32(v)
	}
	return 1
}
