package graphics

import "fmt"

// Option keys recognized by shape configuration maps. Each shape kind
// whitelists a subset of these; setting any other key on a shape fails
// with ErrUnsupportedOption.
const (
	optFill    = "fill"
	optOutline = "outline"
	optWidth   = "width"
	optArrow   = "arrow"
	optText    = "text"
	optJustify = "justify"
	optFont    = "font"
)

// Arrow styles for Line shapes.
const (
	ArrowNone  = "none"
	ArrowFirst = "first"
	ArrowLast  = "last"
	ArrowBoth  = "both"
)

// Font describes the typeface used by Text and Entry shapes.
type Font struct {
	Face  string // one of the faces accepted by SetFace
	Size  int    // point size
	Style string // "normal", "bold", "italic" or "bold italic"
}

// DefaultFont is the typeface assigned to newly created Text and Entry
// shapes.
var DefaultFont = Font{Face: "helvetica", Size: 12, Style: "normal"}

// fontFaces and fontStyles are the enumerated values accepted by
// SetFace and SetStyle.
var (
	fontFaces  = []string{"helvetica", "arial", "courier", "times roman"}
	fontStyles = []string{"normal", "bold", "italic", "bold italic"}
	arrowKinds = []string{ArrowNone, ArrowFirst, ArrowLast, ArrowBoth}
)

// Config is a shape's configuration map. The key set is fixed at
// construction time from the shape kind's whitelist; values change
// through the shape's setters.
type Config map[string]any

// defaultValue returns the initial value for a recognized option key.
// Shape kinds pull their whitelisted keys from here at construction,
// so there is no shared mutable defaults table.
func defaultValue(key string) any {
	switch key {
	case optFill:
		return ""
	case optOutline:
		return "black"
	case optWidth:
		return float64(1)
	case optArrow:
		return ArrowNone
	case optText:
		return ""
	case optJustify:
		return "center"
	case optFont:
		return DefaultFont
	default:
		panic("graphics: unknown option key " + key)
	}
}

// newConfig builds a fresh configuration map holding the default value
// for each whitelisted key.
func newConfig(keys ...string) Config {
	cfg := make(Config, len(keys))
	for _, k := range keys {
		cfg[k] = defaultValue(k)
	}
	return cfg
}

// clone returns an independent copy of the configuration map.
func (c Config) clone() Config {
	out := make(Config, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// str returns the string value stored under key, or "" when absent.
func (c Config) str(key string) string {
	if v, ok := c[key].(string); ok {
		return v
	}
	return ""
}

// num returns the numeric value stored under key, or 0 when absent.
func (c Config) num(key string) float64 {
	if v, ok := c[key].(float64); ok {
		return v
	}
	return 0
}

// font returns the Font stored under key, or DefaultFont when absent.
func (c Config) font(key string) Font {
	if v, ok := c[key].(Font); ok {
		return v
	}
	return DefaultFont
}

// oneOf reports whether v is a member of allowed.
func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// badOption builds the error for an option value outside its allowed set.
func badOption(key string, value any) error {
	return fmt.Errorf("%w: %v is not a valid %s", ErrUnsupportedOption, value, key)
}
