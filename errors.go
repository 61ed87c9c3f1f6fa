package graphics

import "errors"

// Common graphics errors. All failures reported by this package wrap one of
// these sentinels, so callers can classify them with errors.Is.
var (
	// ErrAlreadyDrawn is returned when Draw is called on a shape that is
	// currently drawn on an open window.
	ErrAlreadyDrawn = errors.New("graphics: object currently drawn")

	// ErrClosedWindow is returned when an operation targets a closed window.
	ErrClosedWindow = errors.New("graphics: window is closed")

	// ErrUnsupportedOption is returned when a configuration option is not
	// recognized by a shape, or an option value is outside its allowed set.
	ErrUnsupportedOption = errors.New("graphics: unsupported option")

	// ErrBadValue is returned when a constructor argument is out of range,
	// such as a window or coordinate span too small to map.
	ErrBadValue = errors.New("graphics: illegal value")
)
