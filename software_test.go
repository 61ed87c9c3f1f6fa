package graphics

import (
	"image/color"
	"testing"
)

var (
	cWhite = color.RGBA{0xff, 0xff, 0xff, 0xff}
	cBlack = color.RGBA{0x00, 0x00, 0x00, 0xff}
	cRed   = color.RGBA{0xff, 0x00, 0x00, 0xff}
	cBlue  = color.RGBA{0x00, 0x00, 0xff, 0xff}
	cNavy  = color.RGBA{0x00, 0x00, 0x80, 0xff}
)

func pixelAt(t *testing.T, w *Window, x, y int) color.RGBA {
	t.Helper()
	return testSurface(t, w).Image().RGBAAt(x, y)
}

func TestSoftwareBackgroundDefaultsWhite(t *testing.T) {
	w := newTestWindow(t, 50, 50)
	if got := pixelAt(t, w, 25, 25); got != cWhite {
		t.Errorf("background pixel = %v, want white", got)
	}
}

func TestSoftwareSetBackground(t *testing.T) {
	w := newTestWindow(t, 50, 50)
	if err := w.SetBackground("blue"); err != nil {
		t.Fatal(err)
	}
	if got := pixelAt(t, w, 0, 0); got != cBlue {
		t.Errorf("background pixel = %v, want blue", got)
	}
	// drawn shapes composite over the new background
	r := NewRectangle(NewPoint(10, 10), NewPoint(20, 20))
	if err := r.SetFill("red"); err != nil {
		t.Fatal(err)
	}
	if err := r.Draw(w); err != nil {
		t.Fatal(err)
	}
	if got := pixelAt(t, w, 15, 15); got != cRed {
		t.Errorf("fill pixel = %v, want red", got)
	}
	if got := pixelAt(t, w, 40, 40); got != cBlue {
		t.Errorf("background pixel = %v, want blue", got)
	}
}

func TestSoftwareRectangle(t *testing.T) {
	w := newTestWindow(t, 50, 50)
	r := NewRectangle(NewPoint(10, 10), NewPoint(30, 30))
	if err := r.SetFill("red"); err != nil {
		t.Fatal(err)
	}
	if err := r.Draw(w); err != nil {
		t.Fatal(err)
	}
	if got := pixelAt(t, w, 20, 20); got != cRed {
		t.Errorf("interior pixel = %v, want red", got)
	}
	if got := pixelAt(t, w, 10, 20); got != cBlack {
		t.Errorf("outline pixel = %v, want black", got)
	}
	if got := pixelAt(t, w, 5, 5); got != cWhite {
		t.Errorf("exterior pixel = %v, want white", got)
	}

	r.Undraw()
	if got := pixelAt(t, w, 20, 20); got != cWhite {
		t.Errorf("pixel after Undraw = %v, want white", got)
	}
}

// An unfilled rectangle paints only its outline.
func TestSoftwareRectangleNoFill(t *testing.T) {
	w := newTestWindow(t, 50, 50)
	r := NewRectangle(NewPoint(10, 10), NewPoint(30, 30))
	if err := r.Draw(w); err != nil {
		t.Fatal(err)
	}
	if got := pixelAt(t, w, 20, 20); got != cWhite {
		t.Errorf("interior pixel = %v, want white", got)
	}
	if got := pixelAt(t, w, 20, 10); got != cBlack {
		t.Errorf("outline pixel = %v, want black", got)
	}
}

func TestSoftwareLine(t *testing.T) {
	w := newTestWindow(t, 50, 50)
	l := NewLine(NewPoint(5, 10), NewPoint(20, 10))
	if err := l.Draw(w); err != nil {
		t.Fatal(err)
	}
	if got := pixelAt(t, w, 12, 10); got != cBlack {
		t.Errorf("line pixel = %v, want black", got)
	}
	if got := pixelAt(t, w, 12, 12); got != cWhite {
		t.Errorf("off-line pixel = %v, want white", got)
	}
}

func TestSoftwareOval(t *testing.T) {
	w := newTestWindow(t, 50, 50)
	o := NewOval(NewPoint(10, 10), NewPoint(30, 30))
	if err := o.SetFill("navy"); err != nil {
		t.Fatal(err)
	}
	if err := o.Draw(w); err != nil {
		t.Fatal(err)
	}
	if got := pixelAt(t, w, 20, 20); got != cNavy {
		t.Errorf("center pixel = %v, want navy", got)
	}
	// the box corner lies outside the inscribed ellipse
	if got := pixelAt(t, w, 10, 10); got != cWhite {
		t.Errorf("corner pixel = %v, want white", got)
	}
}

func TestSoftwarePolygon(t *testing.T) {
	w := newTestWindow(t, 50, 50)
	pg := NewPolygon(NewPoint(10, 10), NewPoint(30, 10), NewPoint(30, 30), NewPoint(10, 30))
	if err := pg.SetFill("navy"); err != nil {
		t.Fatal(err)
	}
	if err := pg.Draw(w); err != nil {
		t.Fatal(err)
	}
	if got := pixelAt(t, w, 20, 20); got != cNavy {
		t.Errorf("interior pixel = %v, want navy", got)
	}
	if got := pixelAt(t, w, 40, 20); got != cWhite {
		t.Errorf("exterior pixel = %v, want white", got)
	}
}

func TestSoftwareMoveShiftsPixels(t *testing.T) {
	w := newTestWindow(t, 60, 60)
	r := NewRectangle(NewPoint(10, 10), NewPoint(20, 20))
	if err := r.SetFill("red"); err != nil {
		t.Fatal(err)
	}
	if err := r.Draw(w); err != nil {
		t.Fatal(err)
	}
	if got := pixelAt(t, w, 15, 15); got != cRed {
		t.Fatalf("pixel before move = %v, want red", got)
	}
	r.Move(20, 0)
	if got := pixelAt(t, w, 15, 15); got != cWhite {
		t.Errorf("old position pixel = %v, want white", got)
	}
	if got := pixelAt(t, w, 35, 15); got != cRed {
		t.Errorf("new position pixel = %v, want red", got)
	}
}

func TestSoftwareSetFillWhileDrawn(t *testing.T) {
	w := newTestWindow(t, 50, 50)
	r := NewRectangle(NewPoint(10, 10), NewPoint(30, 30))
	if err := r.Draw(w); err != nil {
		t.Fatal(err)
	}
	if err := r.SetFill("red"); err != nil {
		t.Fatal(err)
	}
	if got := pixelAt(t, w, 20, 20); got != cRed {
		t.Errorf("pixel after SetFill = %v, want red", got)
	}
}

func TestSoftwarePlot(t *testing.T) {
	w := newTestWindow(t, 50, 50)
	if err := w.Plot(3, 4, "red"); err != nil {
		t.Fatal(err)
	}
	if got := pixelAt(t, w, 3, 4); got != cRed {
		t.Errorf("plotted pixel = %v, want red", got)
	}
}

func TestSoftwarePlotThroughTransform(t *testing.T) {
	w := newTestWindow(t, 101, 101)
	if err := w.SetCoords(0, 0, 10, 10); err != nil {
		t.Fatal(err)
	}
	if err := w.Plot(5, 5, "red"); err != nil {
		t.Fatal(err)
	}
	if got := pixelAt(t, w, 50, 50); got != cRed {
		t.Errorf("pixel at transformed position = %v, want red", got)
	}
}

func TestSoftwareEntryTextRoundTrip(t *testing.T) {
	w := newTestWindow(t, 100, 100)
	e := NewEntry(NewPoint(50, 50), 10)
	if err := e.SetText("start"); err != nil {
		t.Fatal(err)
	}
	if err := e.Draw(w); err != nil {
		t.Fatal(err)
	}
	if got := e.Text(); got != "start" {
		t.Fatalf("Text() after draw = %q, want %q", got, "start")
	}

	// simulate the user typing into the widget
	testSurface(t, w).SetEntryText(e.handle, "typed")
	if got := e.Text(); got != "typed" {
		t.Errorf("Text() after widget edit = %q, want %q", got, "typed")
	}

	// the widget text survives undrawing
	e.Undraw()
	if got := e.Text(); got != "typed" {
		t.Errorf("Text() after Undraw = %q, want %q", got, "typed")
	}
}

func TestSoftwareImageBlit(t *testing.T) {
	w := newTestWindow(t, 50, 50)
	im := NewImage(NewPoint(20, 20), 4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if err := im.SetPixel(x, y, "red"); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := im.Draw(w); err != nil {
		t.Fatal(err)
	}
	if got := pixelAt(t, w, 19, 19); got != cRed {
		t.Errorf("blitted pixel = %v, want red", got)
	}
	if got := pixelAt(t, w, 30, 30); got != cWhite {
		t.Errorf("pixel outside blit = %v, want white", got)
	}
}

func TestSoftwareEventsDroppedWhenClosed(t *testing.T) {
	s := NewSoftwareSurface(10, 10)
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	// must not panic on the closed channel
	s.InjectMouse(1, 1, 1)
	s.InjectKey("a")
	s.InjectClose()
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestSoftwareImageSnapshotIsDetached(t *testing.T) {
	w := newTestWindow(t, 20, 20)
	snap := testSurface(t, w).Image()
	if err := w.SetBackground("black"); err != nil {
		t.Fatal(err)
	}
	if got := snap.RGBAAt(5, 5); got != cWhite {
		t.Errorf("old snapshot pixel = %v, want white", got)
	}
	if got := pixelAt(t, w, 5, 5); got != cBlack {
		t.Errorf("fresh pixel = %v, want black", got)
	}
}
