package graphics

import "fmt"

// Entry is an editable text field embedded at an anchor point. The field
// itself is a native widget of the render backend; while the entry is
// drawn, its text lives in that widget and Text reads it back, so user
// edits are visible to the program.
type Entry struct {
	shapeBase
	anchor    *Point
	width     int // width in characters
	text      string
	fill      string
	textColor string
	font      Font
}

// NewEntry returns a detached entry field anchored at a copy of p with
// room for width characters.
func NewEntry(p *Point, width int) *Entry {
	return &Entry{
		shapeBase: newShapeBase("Entry"),
		anchor:    p.clonePoint(),
		width:     width,
		fill:      "gray",
		textColor: "black",
		font:      DefaultFont,
	}
}

// Anchor returns a copy of the anchor point.
func (e *Entry) Anchor() *Point { return e.anchor.clonePoint() }

// Draw embeds the entry widget onto w.
func (e *Entry) Draw(w *Window) error { return e.draw(e, w) }

// Undraw removes the entry from its window. The current widget text is
// captured first, so it survives a later redraw.
func (e *Entry) Undraw() {
	if w := e.drawnOn(); w != nil {
		if s, ok := w.surface.EntryText(e.handle); ok {
			e.text = s
		}
	}
	e.undraw(e)
}

// Move shifts the anchor by (dx, dy) world units.
func (e *Entry) Move(dx, dy float64) { e.move(e, dx, dy) }

// Clone returns a detached copy carrying the current text.
func (e *Entry) Clone() Shape {
	other := NewEntry(e.anchor, e.width)
	other.text = e.Text()
	other.fill = e.fill
	other.textColor = e.textColor
	other.font = e.font
	return other
}

// Text returns the field's current contents, including user edits while
// the entry is drawn.
func (e *Entry) Text() string {
	if w := e.drawnOn(); w != nil {
		if s, ok := w.surface.EntryText(e.handle); ok {
			return s
		}
	}
	return e.text
}

// SetText replaces the field's contents.
func (e *Entry) SetText(s string) error {
	e.text = s
	if w := e.drawnOn(); w != nil {
		w.surface.SetEntryText(e.handle, s)
		w.autoFlush()
	}
	return nil
}

// SetFill sets the field's background color.
func (e *Entry) SetFill(color string) error {
	e.fill = color
	e.push()
	return nil
}

// SetTextColor sets the color of the entered text.
func (e *Entry) SetTextColor(color string) error {
	e.textColor = color
	e.push()
	return nil
}

// SetFace selects the typeface: "helvetica", "arial", "courier" or
// "times roman".
func (e *Entry) SetFace(face string) error {
	if !oneOf(face, fontFaces) {
		return badOption("face", face)
	}
	e.font.Face = face
	e.push()
	return nil
}

// SetSize sets the point size, between 5 and 36.
func (e *Entry) SetSize(size int) error {
	if size < 5 || size > 36 {
		return badOption("size", size)
	}
	e.font.Size = size
	e.push()
	return nil
}

// SetStyle selects the style: "normal", "bold", "italic" or
// "bold italic".
func (e *Entry) SetStyle(style string) error {
	if !oneOf(style, fontStyles) {
		return badOption("style", style)
	}
	e.font.Style = style
	e.push()
	return nil
}

func (e *Entry) String() string {
	return fmt.Sprintf("Entry(%v, %d)", e.anchor, e.width)
}

// widgetConfig assembles the synthetic configuration pushed to the
// backend widget; an Entry has no user-settable option map of its own.
func (e *Entry) widgetConfig() Config {
	return Config{
		optFill:    e.fill,
		optOutline: e.textColor,
		optFont:    e.font,
		optText:    e.text,
	}
}

// push sends the widget configuration to the surface when drawn.
func (e *Entry) push() {
	if w := e.drawnOn(); w != nil {
		w.surface.Update(e.handle, e.widgetConfig())
		w.autoFlush()
	}
}

func (e *Entry) render(w *Window) (Handle, error) {
	x, y := w.ToScreen(e.anchor.x, e.anchor.y)
	h := w.surface.CreateEntry(x, y, e.width, e.widgetConfig())
	w.surface.SetEntryText(h, e.text)
	return h, nil
}

func (e *Entry) shift(dx, dy float64) { e.anchor.shift(dx, dy) }
