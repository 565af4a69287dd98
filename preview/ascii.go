package preview

import (
	"strings"

	"github.com/katalvlaran/lvlgen/level"
	"github.com/logrusorgru/aurora"
)

// ASCII renders lv as text, one line per grid row.
// A nil level renders as the empty string.
func ASCII(lv *level.Level, opts ...Option) string {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if lv == nil || lv.Grid == nil {
		return ""
	}

	au := aurora.NewAurora(cfg.Color)
	size, off := lv.Grid.Size(), lv.Grid.Offset()

	var b strings.Builder
	b.Grow((size.X + 1) * size.Y)
	for y := off.Y; y < off.Y+size.Y; y++ {
		for x := off.X; x < off.X+size.X; x++ {
			c := lv.Grid.Get(x, y)
			if !cfg.Color || c == level.Empty {
				b.WriteRune(Glyph(c))
				continue
			}
			b.WriteString(colorize(au, c).String())
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func colorize(au aurora.Aurora, c level.CellType) aurora.Value {
	g := string(Glyph(c))
	switch c {
	case level.Floor:
		return au.Yellow(g)
	case level.FloorCenter:
		return au.Red(g)
	case level.Wall:
		return au.Blue(g)
	case level.Path:
		return au.Cyan(g)
	case level.ExpandedPath:
		return au.Green(g)
	}

	return au.White(g)
}
