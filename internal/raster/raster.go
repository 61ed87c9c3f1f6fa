// Package raster implements the pixel primitives used by the headless
// software surface: line, rectangle, ellipse and polygon drawing on an
// RGBA image. Shapes are stroked and filled without anti-aliasing.
package raster

import (
	"image"
	"image/color"
	"math"
	"sort"
)

// set writes a pixel, ignoring coordinates outside the image.
func set(img *image.RGBA, x, y int, c color.Color) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.Set(x, y, c)
	}
}

// stamp writes a square of side width centered on (x, y); width 1 is a
// single pixel.
func stamp(img *image.RGBA, x, y, width int, c color.Color) {
	if width <= 1 {
		set(img, x, y, c)
		return
	}
	r := width / 2
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			set(img, x+dx, y+dy, c)
		}
	}
}

// Line draws a segment from (x0, y0) to (x1, y1) using Bresenham's
// algorithm, stroked width pixels wide.
func Line(img *image.RGBA, x0, y0, x1, y1, width int, c color.Color) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		stamp(img, x0, y0, width, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Arrowhead draws a filled triangular head at (x1, y1) for a segment
// arriving from (x0, y0). The head is sized relative to the stroke
// width.
func Arrowhead(img *image.RGBA, x0, y0, x1, y1, width int, c color.Color) {
	length := math.Hypot(float64(x1-x0), float64(y1-y0))
	if length == 0 {
		return
	}
	size := float64(8 + 2*width)
	ux := float64(x1-x0) / length
	uy := float64(y1-y0) / length
	// base of the head, back along the segment
	bx := float64(x1) - ux*size
	by := float64(y1) - uy*size
	// perpendicular half-width
	px := -uy * size / 2
	py := ux * size / 2
	FillPolygon(img, []image.Point{
		{X: x1, Y: y1},
		{X: int(bx + px), Y: int(by + py)},
		{X: int(bx - px), Y: int(by - py)},
	}, c)
}

// StrokeRect outlines the rectangle spanned by two opposite corners.
func StrokeRect(img *image.RGBA, x0, y0, x1, y1, width int, c color.Color) {
	Line(img, x0, y0, x1, y0, width, c)
	Line(img, x1, y0, x1, y1, width, c)
	Line(img, x1, y1, x0, y1, width, c)
	Line(img, x0, y1, x0, y0, width, c)
}

// FillRect fills the rectangle spanned by two opposite corners.
func FillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			set(img, x, y, c)
		}
	}
}

// ellipseParams converts a corner box to center and radii.
func ellipseParams(x0, y0, x1, y1 int) (cx, cy, rx, ry float64) {
	cx = float64(x0+x1) / 2
	cy = float64(y0+y1) / 2
	rx = math.Abs(float64(x1-x0)) / 2
	ry = math.Abs(float64(y1-y0)) / 2
	return
}

// FillEllipse fills the ellipse inscribed in the given corner box by
// scanning each row between the curve's intersections.
func FillEllipse(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	cx, cy, rx, ry := ellipseParams(x0, y0, x1, y1)
	if rx == 0 || ry == 0 {
		return
	}
	for y := int(cy - ry); y <= int(cy+ry)+1; y++ {
		t := (float64(y) - cy) / ry
		if t < -1 || t > 1 {
			continue
		}
		span := rx * math.Sqrt(1-t*t)
		for x := int(cx - span); x <= int(cx+span); x++ {
			set(img, x, y, c)
		}
	}
}

// StrokeEllipse outlines the ellipse inscribed in the given corner box,
// sampling the curve finely enough that adjacent samples touch.
func StrokeEllipse(img *image.RGBA, x0, y0, x1, y1, width int, c color.Color) {
	cx, cy, rx, ry := ellipseParams(x0, y0, x1, y1)
	steps := int(4 * (rx + ry))
	if steps < 8 {
		steps = 8
	}
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x := int(cx + rx*math.Cos(a) + 0.5)
		y := int(cy + ry*math.Sin(a) + 0.5)
		stamp(img, x, y, width, c)
	}
}

// StrokePolygon outlines the closed path through pts.
func StrokePolygon(img *image.RGBA, pts []image.Point, width int, c color.Color) {
	if len(pts) < 2 {
		return
	}
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		Line(img, a.X, a.Y, b.X, b.Y, width, c)
	}
}

// FillPolygon fills the closed path through pts with an even-odd
// scanline sweep.
func FillPolygon(img *image.RGBA, pts []image.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	xs := make([]int, 0, len(pts))
	for y := minY; y <= maxY; y++ {
		xs = xs[:0]
		for i := range pts {
			p1 := pts[i]
			p2 := pts[(i+1)%len(pts)]
			if (p1.Y <= y && p2.Y > y) || (p1.Y > y && p2.Y <= y) {
				x := p1.X + (y-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y)
				xs = append(xs, x)
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := xs[i]; x <= xs[i+1]; x++ {
				set(img, x, y, c)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
