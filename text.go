package graphics

import "fmt"

// Text is a label centered on an anchor point.
type Text struct {
	shapeBase
	anchor *Point
}

// NewText returns a detached label showing content at a copy of anchor.
func NewText(anchor *Point, content string) *Text {
	t := &Text{
		shapeBase: newShapeBase("Text", optJustify, optFill, optText, optFont),
		anchor:    anchor.clonePoint(),
	}
	t.config[optText] = content
	t.config[optFill] = "black"
	return t
}

// Anchor returns a copy of the anchor point.
func (t *Text) Anchor() *Point { return t.anchor.clonePoint() }

// Draw renders the label onto w.
func (t *Text) Draw(w *Window) error { return t.draw(t, w) }

// Undraw removes the label from its window.
func (t *Text) Undraw() { t.undraw(t) }

// Move shifts the anchor by (dx, dy) world units.
func (t *Text) Move(dx, dy float64) { t.move(t, dx, dy) }

// Clone returns a detached copy.
func (t *Text) Clone() Shape {
	other := NewText(t.anchor, t.Text())
	other.config = t.config.clone()
	return other
}

// SetText replaces the displayed string.
func (t *Text) SetText(content string) error { return t.reconfig(optText, content) }

// Text returns the displayed string.
func (t *Text) Text() string { return t.config.str(optText) }

// SetOutline sets the text color. A label has a single color, so this is
// an alias for SetFill.
func (t *Text) SetOutline(color string) error { return t.SetFill(color) }

// SetTextColor sets the text color; equivalent to SetFill.
func (t *Text) SetTextColor(color string) error { return t.SetFill(color) }

// SetFace selects the typeface: "helvetica", "arial", "courier" or
// "times roman".
func (t *Text) SetFace(face string) error {
	if !oneOf(face, fontFaces) {
		return badOption("face", face)
	}
	f := t.config.font(optFont)
	f.Face = face
	return t.reconfig(optFont, f)
}

// SetSize sets the point size, between 5 and 150.
func (t *Text) SetSize(size int) error {
	if size < 5 || size > 150 {
		return badOption("size", size)
	}
	f := t.config.font(optFont)
	f.Size = size
	return t.reconfig(optFont, f)
}

// SetStyle selects the style: "normal", "bold", "italic" or
// "bold italic".
func (t *Text) SetStyle(style string) error {
	if !oneOf(style, fontStyles) {
		return badOption("style", style)
	}
	f := t.config.font(optFont)
	f.Style = style
	return t.reconfig(optFont, f)
}

// SetJustify sets the multi-line justification: "left", "center" or
// "right".
func (t *Text) SetJustify(justify string) error {
	if !oneOf(justify, []string{"left", "center", "right"}) {
		return badOption(optJustify, justify)
	}
	return t.reconfig(optJustify, justify)
}

// Font returns the configured typeface.
func (t *Text) Font() Font { return t.config.font(optFont) }

func (t *Text) String() string {
	return fmt.Sprintf("Text(%v, %q)", t.anchor, t.Text())
}

func (t *Text) render(w *Window) (Handle, error) {
	x, y := w.ToScreen(t.anchor.x, t.anchor.y)
	return w.surface.CreateText(x, y, t.config.clone()), nil
}

func (t *Text) shift(dx, dy float64) { t.anchor.shift(dx, dy) }
