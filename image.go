package graphics

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Image is a raster image anchored (centered) at a point. The pixel
// buffer is owned by the shape; while the image is drawn, the window
// additionally retains the buffer in its own table so the render backend
// can keep referring to it (see Window.retainImage).
type Image struct {
	shapeBase
	anchor *Point
	img    *image.NRGBA
}

// NewImage returns a detached blank image of width×height transparent
// pixels anchored at a copy of p.
func NewImage(p *Point, width, height int) *Image {
	return &Image{
		shapeBase: newShapeBase("Image"),
		anchor:    p.clonePoint(),
		img:       image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewImageFromFile loads the image stored at path (format detected from
// the contents) and returns it as a detached shape anchored at a copy
// of p.
func NewImageFromFile(p *Point, path string) (*Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphics: load image %s: %w", path, err)
	}
	return &Image{
		shapeBase: newShapeBase("Image"),
		anchor:    p.clonePoint(),
		img:       imaging.Clone(img),
	}, nil
}

// Anchor returns a copy of the anchor point.
func (im *Image) Anchor() *Point { return im.anchor.clonePoint() }

// Width returns the image width in pixels.
func (im *Image) Width() int { return im.img.Bounds().Dx() }

// Height returns the image height in pixels.
func (im *Image) Height() int { return im.img.Bounds().Dy() }

// Draw blits the image onto w and retains the pixel buffer for the
// drawn lifetime.
func (im *Image) Draw(w *Window) error { return im.draw(im, w) }

// Undraw removes the image from its window and releases the retained
// buffer reference.
func (im *Image) Undraw() {
	if w := im.drawnOn(); w != nil {
		w.releaseImage(im)
	}
	im.undraw(im)
}

// Move shifts the anchor by (dx, dy) world units.
func (im *Image) Move(dx, dy float64) { im.move(im, dx, dy) }

// Clone returns a detached copy with an independently owned pixel
// buffer.
func (im *Image) Clone() Shape {
	other := NewImage(im.anchor, 0, 0)
	other.img = imaging.Clone(im.img)
	other.config = im.config.clone()
	return other
}

// Pixel returns the red, green and blue values of pixel (x, y), each in
// the range 0-255.
func (im *Image) Pixel(x, y int) (r, g, b int) {
	c := im.img.NRGBAAt(x, y)
	return int(c.R), int(c.G), int(c.B)
}

// SetPixel sets pixel (x, y) to the given color specifier.
func (im *Image) SetPixel(x, y int, color string) error {
	c, ok := ParseColor(color)
	if !ok {
		return badOption("color", color)
	}
	im.img.Set(x, y, c)
	im.refresh()
	return nil
}

// Save writes the pixel buffer to path; the format is chosen from the
// filename extension.
func (im *Image) Save(path string) error {
	if err := imaging.Save(im.img, path); err != nil {
		return fmt.Errorf("graphics: save image %s: %w", path, err)
	}
	return nil
}

func (im *Image) String() string {
	return fmt.Sprintf("Image(%v, %d, %d)", im.anchor, im.Width(), im.Height())
}

// refresh redraws the primitive in place after the buffer changed.
func (im *Image) refresh() {
	w := im.drawnOn()
	if w == nil {
		return
	}
	x, y := w.ToScreen(im.anchor.x, im.anchor.y)
	w.surface.Delete(im.handle)
	im.handle = w.surface.CreateImage(x, y, im.img, im.config.clone())
	w.retainImage(im)
	w.autoFlush()
}

func (im *Image) render(w *Window) (Handle, error) {
	x, y := w.ToScreen(im.anchor.x, im.anchor.y)
	h := w.surface.CreateImage(x, y, im.img, im.config.clone())
	w.retainImage(im)
	return h, nil
}

func (im *Image) shift(dx, dy float64) { im.anchor.shift(dx, dy) }
