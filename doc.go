// Package graphics is a simple 2D scene-graph library for learning Go.
//
// # Overview
//
// A Window presents a user-defined coordinate system; programs create
// shape objects — points, lines, rectangles, ovals, circles, polygons,
// text, editable fields and raster images — in those "world"
// coordinates and draw them onto the window, which renders and tracks
// them. Shapes can be moved, reconfigured, cloned and undrawn at any
// time, and mouse clicks resolve against their world-space geometry.
//
// # Quick Start
//
//	win, err := graphics.NewWindow("Shapes", 400, 400)
//	if err != nil {
//		log.Fatal(err)
//	}
//	win.SetCoords(0, 0, 10, 10)
//
//	c := graphics.NewCircle(graphics.NewPoint(5, 5), 2)
//	c.SetFill("red")
//	if err := c.Draw(win); err != nil {
//		log.Fatal(err)
//	}
//
//	click, err := win.GetMouse() // world coordinates
//	if err == nil && click.IsInside(c) {
//		c.Move(1, 0)
//	}
//
// # Coordinate Systems
//
// Screen coordinates are raw pixels, origin top-left, Y growing
// downward. SetCoords installs a world system with Y growing upward;
// all shape geometry stays in world units and only rendering and click
// translation pass through the window's transform, so motion in world
// units is independent of pixel resolution.
//
// # Backends
//
// Rendering is delegated to a Surface. The default is the headless
// software surface, which draws into memory and accepts injected
// events — enough for tests and batch rendering. The backend package
// selects real drivers; backend/fyne opens desktop windows.
//
// # Concurrency
//
// Geometry, transform and configuration calls belong to one goroutine.
// The blocking GetMouse and GetKey waits observe window closure and
// fail promptly with ErrClosedWindow instead of waiting forever.
package graphics

// Version is the current version of the library.
const Version = "0.3.1"
