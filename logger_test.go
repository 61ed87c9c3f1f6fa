package graphics

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	w := newTestWindow(t, 50, 50)
	c := NewCircle(NewPoint(25, 25), 5)
	if err := c.Draw(w); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "window created") {
		t.Errorf("log output missing window creation: %q", out)
	}
	if !strings.Contains(out, "shape drawn") {
		t.Errorf("log output missing shape lifecycle: %q", out)
	}
}

func TestSetLoggerNilDisables(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	SetLogger(nil)

	w := newTestWindow(t, 50, 50)
	_ = w
	if buf.Len() != 0 {
		t.Errorf("nop logger produced output: %q", buf.String())
	}
}
