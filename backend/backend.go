// Package backend selects the render surface that backs a graphics
// window. Surface drivers register themselves here by name; programs
// pick one explicitly with New, or take the best available with
// Default.
//
// The headless software surface is always registered. Importing
// backend/fyne registers the "fyne" desktop driver:
//
//	import (
//		"github.com/gogpu/graphics"
//		"github.com/gogpu/graphics/backend"
//		_ "github.com/gogpu/graphics/backend/fyne"
//	)
//
//	surf, err := backend.Default("My Window", 400, 400)
//	win, err := graphics.NewWindow("My Window", 400, 400,
//		graphics.WithSurface(surf))
package backend

import (
	"errors"
	"fmt"

	"github.com/gogpu/graphics"
)

// Surface driver names always or commonly available.
const (
	// Software is the headless in-memory surface.
	Software = "software"
	// Fyne is the desktop driver registered by importing backend/fyne.
	Fyne = "fyne"
)

// ErrNotAvailable is returned when a requested surface driver is not
// registered.
var ErrNotAvailable = errors.New("backend: not available")

// Factory creates a surface for a window of the given title and pixel
// size.
type Factory func(title string, width, height int) (graphics.Surface, error)

func init() {
	Register(Software, func(title string, width, height int) (graphics.Surface, error) {
		return graphics.NewSoftwareSurface(width, height), nil
	})
}

// New creates a surface using the named driver.
func New(name, title string, width, height int) (graphics.Surface, error) {
	factory, ok := lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrNotAvailable, name, Available())
	}
	return factory(title, width, height)
}

// Default creates a surface using the best registered driver: a desktop
// driver when one is linked in, the software surface otherwise.
func Default(title string, width, height int) (graphics.Surface, error) {
	for _, name := range priority {
		if _, ok := lookup(name); ok {
			return New(name, title, width, height)
		}
	}
	return New(Software, title, width, height)
}
