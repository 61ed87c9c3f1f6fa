package graphics

import (
	"testing"
	"time"
)

// newTestWindow creates a window on a fresh software surface and closes
// it when the test ends.
func newTestWindow(t *testing.T, width, height int) *Window {
	t.Helper()
	w, err := NewWindow("test", width, height)
	if err != nil {
		t.Fatalf("NewWindow() error = %v", err)
	}
	t.Cleanup(w.Close)
	return w
}

// testSurface returns the software surface backing a test window.
func testSurface(t *testing.T, w *Window) *SoftwareSurface {
	t.Helper()
	s, ok := w.surface.(*SoftwareSurface)
	if !ok {
		t.Fatalf("window surface is %T, want *SoftwareSurface", w.surface)
	}
	return s
}

// eventually polls cond until it holds or the deadline passes. Event
// delivery crosses a goroutine, so state checks after an Inject must
// wait for the pump.
func eventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal(msg)
}
