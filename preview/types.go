package preview

import (
	"errors"
	"image/color"

	"github.com/katalvlaran/lvlgen/level"
)

// Sentinel errors for rendering.
var (
	// ErrNilLevel indicates a nil level or grid.
	ErrNilLevel = errors.New("preview: nil level")

	// ErrBadScale indicates a pixel scale below 1.
	ErrBadScale = errors.New("preview: scale must be at least 1")
)

// Glyph returns the ASCII character for c.
func Glyph(c level.CellType) rune {
	switch c {
	case level.Floor:
		return '.'
	case level.FloorCenter:
		return '+'
	case level.Wall:
		return '#'
	case level.Path:
		return ':'
	case level.ExpandedPath:
		return ','
	}

	return ' '
}

var palette = map[level.CellType]color.RGBA{
	level.Empty:        {A: 255},
	level.Floor:        {R: 200, G: 170, B: 110, A: 255},
	level.FloorCenter:  {R: 220, G: 60, B: 50, A: 255},
	level.Wall:         {R: 70, G: 70, B: 90, A: 255},
	level.Path:         {R: 60, G: 160, B: 200, A: 255},
	level.ExpandedPath: {R: 40, G: 110, B: 140, A: 255},
}

// CellColor returns the fill color of c in rendered images.
func CellColor(c level.CellType) color.RGBA {
	if col, ok := palette[c]; ok {
		return col
	}

	return palette[level.Empty]
}

// Options configures ASCII.
//
// Color – emit ANSI color escapes around glyphs.
type Options struct {
	Color bool
}

// Option is a functional option for ASCII.
type Option func(*Options)

// WithColor toggles ANSI colors.
func WithColor(on bool) Option {
	return func(o *Options) {
		o.Color = on
	}
}

// DefaultOptions returns plain, uncolored output.
func DefaultOptions() Options {
	return Options{Color: false}
}
