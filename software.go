package graphics

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/graphics/internal/raster"
)

// item kinds tracked by the software surface.
const (
	itemRect = iota
	itemOval
	itemLine
	itemPolygon
	itemText
	itemEntry
	itemImage
)

// softItem is one retained primitive on the software surface.
type softItem struct {
	kind   int
	x1, y1 float64
	x2, y2 float64
	pts    []image.Point
	cfg    Config
	img    image.Image
	entry  string
	chars  int // entry width in characters
	ox, oy float64
}

// SoftwareSurface is a headless render surface backed by an in-memory
// RGBA image. It keeps a retained display list and recomposites on
// Flush, so tests and batch programs can draw, inspect pixels with
// Image, and feed input through the Inject methods without any display
// server.
//
// It is the default surface for windows created without WithSurface.
type SoftwareSurface struct {
	mu      sync.Mutex
	width   int
	height  int
	bg      string
	items   map[Handle]*softItem
	order   []Handle
	next    Handle
	frame   *image.RGBA
	events  chan Event
	closed  bool
	ptrX    int
	ptrY    int
	ptrOver bool
}

// NewSoftwareSurface creates a headless surface of the given pixel size
// with a white background.
func NewSoftwareSurface(width, height int) *SoftwareSurface {
	return &SoftwareSurface{
		width:  width,
		height: height,
		bg:     "white",
		items:  make(map[Handle]*softItem),
		frame:  image.NewRGBA(image.Rect(0, 0, width, height)),
		events: make(chan Event, 64),
	}
}

// Size returns the surface dimensions in pixels.
func (s *SoftwareSurface) Size() (int, int) { return s.width, s.height }

// SetBackground sets the background color used when compositing.
func (s *SoftwareSurface) SetBackground(color string) {
	s.mu.Lock()
	s.bg = color
	s.mu.Unlock()
}

func (s *SoftwareSurface) add(it *softItem) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	h := s.next
	s.items[h] = it
	s.order = append(s.order, h)
	return h
}

// CreateRect creates an axis-aligned rectangle between two corners.
func (s *SoftwareSurface) CreateRect(x1, y1, x2, y2 int, cfg Config) Handle {
	return s.add(&softItem{kind: itemRect, x1: float64(x1), y1: float64(y1), x2: float64(x2), y2: float64(y2), cfg: cfg})
}

// CreateOval creates the ellipse inscribed in the given corner box.
func (s *SoftwareSurface) CreateOval(x1, y1, x2, y2 int, cfg Config) Handle {
	return s.add(&softItem{kind: itemOval, x1: float64(x1), y1: float64(y1), x2: float64(x2), y2: float64(y2), cfg: cfg})
}

// CreateLine creates a line segment with optional arrowheads.
func (s *SoftwareSurface) CreateLine(x1, y1, x2, y2 int, cfg Config) Handle {
	return s.add(&softItem{kind: itemLine, x1: float64(x1), y1: float64(y1), x2: float64(x2), y2: float64(y2), cfg: cfg})
}

// CreatePolygon creates a closed polygon through the given vertices.
func (s *SoftwareSurface) CreatePolygon(pts []image.Point, cfg Config) Handle {
	owned := make([]image.Point, len(pts))
	copy(owned, pts)
	return s.add(&softItem{kind: itemPolygon, pts: owned, cfg: cfg})
}

// CreateText creates a text label centered at (x, y).
func (s *SoftwareSurface) CreateText(x, y int, cfg Config) Handle {
	return s.add(&softItem{kind: itemText, x1: float64(x), y1: float64(y), cfg: cfg})
}

// CreateEntry creates an editable field centered at (x, y). The field is
// drawn as a filled box showing its text; edits arrive through
// SetEntryText.
func (s *SoftwareSurface) CreateEntry(x, y, width int, cfg Config) Handle {
	return s.add(&softItem{kind: itemEntry, x1: float64(x), y1: float64(y), chars: width, cfg: cfg, entry: cfg.str(optText)})
}

// CreateImage blits an image centered at (x, y).
func (s *SoftwareSurface) CreateImage(x, y int, img image.Image, cfg Config) Handle {
	return s.add(&softItem{kind: itemImage, x1: float64(x), y1: float64(y), img: img, cfg: cfg})
}

// Update replaces a primitive's configuration.
func (s *SoftwareSurface) Update(h Handle, cfg Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if it, ok := s.items[h]; ok {
		it.cfg = cfg
		if it.kind == itemEntry {
			if v, ok := cfg[optText]; ok {
				if str, ok := v.(string); ok {
					it.entry = str
				}
			}
		}
	}
}

// Delete removes a primitive.
func (s *SoftwareSurface) Delete(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, h)
	for i, o := range s.order {
		if o == h {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// MoveBy shifts a primitive by a screen-space delta.
func (s *SoftwareSurface) MoveBy(h Handle, dx, dy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if it, ok := s.items[h]; ok {
		it.ox += dx
		it.oy += dy
	}
}

// EntryText reports the current text of an entry primitive.
func (s *SoftwareSurface) EntryText(h Handle) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if it, ok := s.items[h]; ok && it.kind == itemEntry {
		return it.entry, true
	}
	return "", false
}

// SetEntryText replaces the text of an entry primitive.
func (s *SoftwareSurface) SetEntryText(h Handle, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if it, ok := s.items[h]; ok && it.kind == itemEntry {
		it.entry = text
	}
}

// PointerPosition reports the injected pointer location.
func (s *SoftwareSurface) PointerPosition() (int, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ptrX, s.ptrY, s.ptrOver
}

// Flush recomposites the display list into the frame.
func (s *SoftwareSurface) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.composite()
}

// Closed reports whether the surface has been closed.
func (s *SoftwareSurface) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close destroys the surface and closes the event channel.
func (s *SoftwareSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.events)
	return nil
}

// Events returns the stream of injected events.
func (s *SoftwareSurface) Events() <-chan Event { return s.events }

// InjectMouse delivers a mouse click at pixel (x, y), as the display
// server would.
func (s *SoftwareSurface) InjectMouse(button, x, y int) {
	s.inject(MouseEvent{Button: button, X: x, Y: y})
}

// InjectKey delivers a key press by name.
func (s *SoftwareSurface) InjectKey(name string) {
	s.inject(KeyEvent{Name: name})
}

// InjectPointer moves the simulated pointer; over reports whether it is
// inside the surface.
func (s *SoftwareSurface) InjectPointer(x, y int, over bool) {
	s.mu.Lock()
	s.ptrX, s.ptrY, s.ptrOver = x, y, over
	closed := s.closed
	s.mu.Unlock()
	if !closed {
		s.inject(MotionEvent{X: x, Y: y})
	}
}

// InjectClose simulates the user dismissing the window.
func (s *SoftwareSurface) InjectClose() {
	s.inject(CloseEvent{})
}

func (s *SoftwareSurface) inject(ev Event) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return
	}
	select {
	case s.events <- ev:
	default:
		logger().Warn("software surface: event dropped")
	}
}

// Image returns a freshly composited snapshot of the surface.
func (s *SoftwareSurface) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.composite()
	out := image.NewRGBA(s.frame.Bounds())
	copy(out.Pix, s.frame.Pix)
	return out
}

// composite redraws every item over the background, in insertion order.
// Callers hold s.mu.
func (s *SoftwareSurface) composite() {
	bg, _ := ParseColor(s.bg)
	draw.Draw(s.frame, s.frame.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	for _, h := range s.order {
		s.paint(s.items[h])
	}
}

func (s *SoftwareSurface) paint(it *softItem) {
	if it == nil {
		return
	}
	x1 := round(it.x1 + it.ox)
	y1 := round(it.y1 + it.oy)
	x2 := round(it.x2 + it.ox)
	y2 := round(it.y2 + it.oy)
	width := int(it.cfg.num(optWidth))
	if width < 1 {
		width = 1
	}
	fill, fillOK := rgba(it.cfg.str(optFill))
	outline, outlineOK := rgba(it.cfg.str(optOutline))
	switch it.kind {
	case itemRect:
		if fillOK {
			raster.FillRect(s.frame, x1, y1, x2, y2, fill)
		}
		if outlineOK {
			raster.StrokeRect(s.frame, x1, y1, x2, y2, width, outline)
		}
	case itemOval:
		if fillOK {
			raster.FillEllipse(s.frame, x1, y1, x2, y2, fill)
		}
		if outlineOK {
			raster.StrokeEllipse(s.frame, x1, y1, x2, y2, width, outline)
		}
	case itemLine:
		// a line is stroked in its fill color
		if !fillOK {
			return
		}
		raster.Line(s.frame, x1, y1, x2, y2, width, fill)
		switch it.cfg.str(optArrow) {
		case ArrowFirst:
			raster.Arrowhead(s.frame, x2, y2, x1, y1, width, fill)
		case ArrowLast:
			raster.Arrowhead(s.frame, x1, y1, x2, y2, width, fill)
		case ArrowBoth:
			raster.Arrowhead(s.frame, x2, y2, x1, y1, width, fill)
			raster.Arrowhead(s.frame, x1, y1, x2, y2, width, fill)
		}
	case itemPolygon:
		pts := make([]image.Point, len(it.pts))
		for i, p := range it.pts {
			pts[i] = image.Pt(p.X+round(it.ox), p.Y+round(it.oy))
		}
		if fillOK {
			raster.FillPolygon(s.frame, pts, fill)
		}
		if outlineOK {
			raster.StrokePolygon(s.frame, pts, width, outline)
		}
	case itemText:
		if fillOK {
			s.drawText(x1, y1, it.cfg.str(optText), fill)
		}
	case itemEntry:
		w := it.chars * basicfont.Face7x13.Advance
		h := basicfont.Face7x13.Height + 6
		bgc, ok := rgba(it.cfg.str(optFill))
		if !ok {
			bgc = color.RGBA{0xd3, 0xd3, 0xd3, 0xff}
		}
		raster.FillRect(s.frame, x1-w/2, y1-h/2, x1+w/2, y1+h/2, bgc)
		fg, ok := rgba(it.cfg.str(optOutline))
		if !ok {
			fg = color.RGBA{A: 0xff}
		}
		s.drawEntryText(x1-w/2+2, y1, it.entry, fg)
	case itemImage:
		b := it.img.Bounds()
		dst := image.Rect(x1-b.Dx()/2, y1-b.Dy()/2, x1+b.Dx()-b.Dx()/2, y1+b.Dy()-b.Dy()/2)
		draw.Draw(s.frame, dst, it.img, b.Min, draw.Over)
	}
}

// rgba parses a color specifier; the second return is false for the
// empty (transparent) specifier.
func rgba(spec string) (color.RGBA, bool) {
	if spec == "" {
		return color.RGBA{}, false
	}
	c, _ := ParseColor(spec)
	return c, true
}

// drawText renders a string centered on (x, y) with the built-in bitmap
// face. Face and style requests are accepted but rendered with the one
// available face; real typography belongs to desktop backends.
func (s *SoftwareSurface) drawText(x, y int, text string, c color.RGBA) {
	d := font.Drawer{
		Dst:  s.frame,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
	}
	w := d.MeasureString(text).Ceil()
	d.Dot = fixed.P(x-w/2, y+basicfont.Face7x13.Ascent/2)
	d.DrawString(text)
}

// drawEntryText renders entry contents left-aligned at x.
func (s *SoftwareSurface) drawEntryText(x, y int, text string, c color.RGBA) {
	d := font.Drawer{
		Dst:  s.frame,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
	}
	d.Dot = fixed.P(x, y+basicfont.Face7x13.Ascent/2)
	d.DrawString(text)
}
