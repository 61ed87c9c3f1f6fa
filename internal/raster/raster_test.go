package raster

import (
	"image"
	"image/color"
	"testing"
)

var (
	red   = color.RGBA{0xff, 0x00, 0x00, 0xff}
	blank = color.RGBA{}
)

func newCanvas(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func TestLineHorizontal(t *testing.T) {
	img := newCanvas(20, 20)
	Line(img, 2, 5, 10, 5, 1, red)
	for x := 2; x <= 10; x++ {
		if img.RGBAAt(x, 5) != red {
			t.Errorf("pixel (%d, 5) not set", x)
		}
	}
	if img.RGBAAt(1, 5) != blank || img.RGBAAt(11, 5) != blank {
		t.Error("line overshoots its endpoints")
	}
}

func TestLineDiagonalAndReversed(t *testing.T) {
	img := newCanvas(20, 20)
	Line(img, 10, 10, 0, 0, 1, red)
	for i := 0; i <= 10; i++ {
		if img.RGBAAt(i, i) != red {
			t.Errorf("pixel (%d, %d) not set", i, i)
		}
	}
}

func TestLineWidth(t *testing.T) {
	img := newCanvas(20, 20)
	Line(img, 2, 10, 17, 10, 3, red)
	for _, y := range []int{9, 10, 11} {
		if img.RGBAAt(10, y) != red {
			t.Errorf("pixel (10, %d) not set by width-3 stroke", y)
		}
	}
	if img.RGBAAt(10, 7) != blank {
		t.Error("width-3 stroke bleeds past its half-width")
	}
}

func TestLineClipsToBounds(t *testing.T) {
	img := newCanvas(10, 10)
	// must not panic when the segment leaves the canvas
	Line(img, -5, -5, 15, 15, 1, red)
	if img.RGBAAt(5, 5) != red {
		t.Error("in-bounds part of the clipped line not drawn")
	}
}

func TestFillRect(t *testing.T) {
	img := newCanvas(20, 20)
	FillRect(img, 12, 12, 4, 4, red) // reversed corners
	if img.RGBAAt(8, 8) != red || img.RGBAAt(4, 4) != red || img.RGBAAt(12, 12) != red {
		t.Error("fill missing inside the rectangle")
	}
	if img.RGBAAt(3, 8) != blank || img.RGBAAt(13, 8) != blank {
		t.Error("fill leaks outside the rectangle")
	}
}

func TestStrokeRect(t *testing.T) {
	img := newCanvas(20, 20)
	StrokeRect(img, 4, 4, 12, 12, 1, red)
	for _, p := range []image.Point{{4, 8}, {12, 8}, {8, 4}, {8, 12}, {4, 4}, {12, 12}} {
		if img.RGBAAt(p.X, p.Y) != red {
			t.Errorf("edge pixel %v not stroked", p)
		}
	}
	if img.RGBAAt(8, 8) != blank {
		t.Error("stroke painted the interior")
	}
}

func TestFillEllipse(t *testing.T) {
	img := newCanvas(40, 40)
	FillEllipse(img, 10, 10, 30, 30, red)
	if img.RGBAAt(20, 20) != red {
		t.Error("center not filled")
	}
	if img.RGBAAt(20, 11) != red || img.RGBAAt(11, 20) != red {
		t.Error("axis extremes not filled")
	}
	if img.RGBAAt(11, 11) != blank {
		t.Error("box corner filled; it lies outside the ellipse")
	}
}

func TestFillEllipseDegenerate(t *testing.T) {
	img := newCanvas(10, 10)
	FillEllipse(img, 5, 2, 5, 8, red) // zero-width box
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if img.RGBAAt(x, y) != blank {
				t.Fatalf("degenerate ellipse painted pixel (%d, %d)", x, y)
			}
		}
	}
}

func TestStrokeEllipse(t *testing.T) {
	img := newCanvas(40, 40)
	StrokeEllipse(img, 10, 10, 30, 30, 1, red)
	// the curve passes through the four axis extremes
	for _, p := range []image.Point{{20, 10}, {20, 30}, {10, 20}, {30, 20}} {
		if img.RGBAAt(p.X, p.Y) != red {
			t.Errorf("extreme %v not stroked", p)
		}
	}
	if img.RGBAAt(20, 20) != blank {
		t.Error("stroke painted the center")
	}
}

func TestFillPolygon(t *testing.T) {
	img := newCanvas(30, 30)
	square := []image.Point{{5, 5}, {25, 5}, {25, 25}, {5, 25}}
	FillPolygon(img, square, red)
	if img.RGBAAt(15, 15) != red {
		t.Error("interior not filled")
	}
	if img.RGBAAt(27, 15) != blank {
		t.Error("fill leaks outside the polygon")
	}
}

func TestFillPolygonConcave(t *testing.T) {
	img := newCanvas(30, 30)
	lshape := []image.Point{{5, 5}, {25, 5}, {25, 15}, {15, 15}, {15, 25}, {5, 25}}
	FillPolygon(img, lshape, red)
	if img.RGBAAt(10, 20) != red || img.RGBAAt(20, 10) != red {
		t.Error("arms of the concave polygon not filled")
	}
	if img.RGBAAt(20, 20) != blank {
		t.Error("notch of the concave polygon filled")
	}
}

func TestFillPolygonTooFewPoints(t *testing.T) {
	img := newCanvas(10, 10)
	FillPolygon(img, []image.Point{{1, 1}, {5, 5}}, red)
	if img.RGBAAt(3, 3) != blank {
		t.Error("two-point polygon painted pixels")
	}
}

func TestStrokePolygonClosesPath(t *testing.T) {
	img := newCanvas(30, 30)
	tri := []image.Point{{5, 5}, {25, 5}, {5, 25}}
	StrokePolygon(img, tri, 1, red)
	// the closing edge from the last vertex back to the first
	if img.RGBAAt(5, 15) != red {
		t.Error("closing edge not stroked")
	}
}

func TestArrowhead(t *testing.T) {
	img := newCanvas(40, 40)
	Arrowhead(img, 5, 20, 30, 20, 1, red)
	if img.RGBAAt(29, 20) != red {
		t.Error("arrowhead tip not painted")
	}
	if img.RGBAAt(10, 20) != blank {
		t.Error("arrowhead extends back along the whole segment")
	}
	// a zero-length segment has no direction; must be a no-op
	Arrowhead(img, 5, 5, 5, 5, 1, red)
}
