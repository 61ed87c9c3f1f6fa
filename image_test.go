package graphics

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestImagePixelRoundTrip(t *testing.T) {
	im := NewImage(NewPoint(0, 0), 8, 8)
	if im.Width() != 8 || im.Height() != 8 {
		t.Fatalf("size = %dx%d, want 8x8", im.Width(), im.Height())
	}
	if err := im.SetPixel(3, 4, "red"); err != nil {
		t.Fatal(err)
	}
	if r, g, b := im.Pixel(3, 4); r != 255 || g != 0 || b != 0 {
		t.Errorf("Pixel(3, 4) = (%d, %d, %d), want (255, 0, 0)", r, g, b)
	}
	if err := im.SetPixel(0, 0, RGB(10, 20, 30)); err != nil {
		t.Fatal(err)
	}
	if r, g, b := im.Pixel(0, 0); r != 10 || g != 20 || b != 30 {
		t.Errorf("Pixel(0, 0) = (%d, %d, %d), want (10, 20, 30)", r, g, b)
	}
}

func TestImageSetPixelBadColor(t *testing.T) {
	im := NewImage(NewPoint(0, 0), 2, 2)
	if err := im.SetPixel(0, 0, "not a color"); !errors.Is(err, ErrUnsupportedOption) {
		t.Errorf("SetPixel with bad color error = %v, want ErrUnsupportedOption", err)
	}
}

func TestImageCloneOwnsItsPixels(t *testing.T) {
	im := NewImage(NewPoint(1, 2), 4, 4)
	if err := im.SetPixel(1, 1, "red"); err != nil {
		t.Fatal(err)
	}
	clone := im.Clone().(*Image)
	if r, _, _ := clone.Pixel(1, 1); r != 255 {
		t.Fatalf("clone did not copy pixels")
	}
	if err := clone.SetPixel(1, 1, "blue"); err != nil {
		t.Fatal(err)
	}
	if r, _, b := im.Pixel(1, 1); r != 255 || b != 0 {
		t.Error("mutating the clone changed the original's pixels")
	}
}

func TestImageSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	im := NewImage(NewPoint(0, 0), 3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if err := im.SetPixel(x, y, "green"); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := im.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := NewImageFromFile(NewPoint(5, 5), path)
	if err != nil {
		t.Fatalf("NewImageFromFile() error = %v", err)
	}
	if loaded.Width() != 3 || loaded.Height() != 3 {
		t.Fatalf("loaded size = %dx%d, want 3x3", loaded.Width(), loaded.Height())
	}
	if r, g, b := loaded.Pixel(1, 1); r != 0 || g != 128 || b != 0 {
		t.Errorf("loaded Pixel(1, 1) = (%d, %d, %d), want (0, 128, 0)", r, g, b)
	}
	a := loaded.Anchor()
	if a.X() != 5 || a.Y() != 5 {
		t.Errorf("anchor = (%g, %g), want (5, 5)", a.X(), a.Y())
	}
}

func TestImageFromMissingFile(t *testing.T) {
	if _, err := NewImageFromFile(NewPoint(0, 0), filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("NewImageFromFile() on a missing file succeeded")
	}
}

func TestImageRetainedWhileDrawn(t *testing.T) {
	w := newTestWindow(t, 50, 50)
	im := NewImage(NewPoint(25, 25), 4, 4)
	if err := im.Draw(w); err != nil {
		t.Fatal(err)
	}
	if _, ok := w.retained[im]; !ok {
		t.Error("drawn image's buffer not retained by the window")
	}
	im.Undraw()
	if _, ok := w.retained[im]; ok {
		t.Error("undrawn image's buffer still retained")
	}
}

func TestImageSetPixelWhileDrawn(t *testing.T) {
	w := newTestWindow(t, 50, 50)
	im := NewImage(NewPoint(25, 25), 4, 4)
	if err := im.Draw(w); err != nil {
		t.Fatal(err)
	}
	if err := im.SetPixel(0, 0, "red"); err != nil {
		t.Fatal(err)
	}
	// the blit reflects the edit: the 4x4 image is centered on (25, 25),
	// so its top-left pixel lands at (23, 23)
	if got := pixelAt(t, w, 23, 23); got != cRed {
		t.Errorf("pixel after SetPixel = %v, want red", got)
	}
}
