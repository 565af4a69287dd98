package preview

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/katalvlaran/lvlgen/geom"
	"github.com/katalvlaran/lvlgen/level"
)

// Image rasterizes lv with scale pixels per cell.
func Image(lv *level.Level, scale int) (image.Image, error) {
	c, err := draw(lv, scale)
	if err != nil {
		return nil, err
	}

	return c.Image(), nil
}

// PNG renders lv like Image and writes it to path.
func PNG(lv *level.Level, path string, scale int) error {
	c, err := draw(lv, scale)
	if err != nil {
		return err
	}
	if err := c.SavePNG(path); err != nil {
		return fmt.Errorf("preview: save %s: %w", path, err)
	}

	return nil
}

// draw paints cells first, then the triangulation, then corridor edges.
func draw(lv *level.Level, scale int) (*gg.Context, error) {
	if lv == nil || lv.Grid == nil {
		return nil, ErrNilLevel
	}
	if scale < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadScale, scale)
	}

	size, off := lv.Grid.Size(), lv.Grid.Offset()
	s := float64(scale)
	c := gg.NewContext(size.X*scale, size.Y*scale)
	c.SetColor(CellColor(level.Empty))
	c.DrawRectangle(0, 0, float64(size.X)*s, float64(size.Y)*s)
	c.Fill()

	// 1) Cells
	lv.Grid.Each(func(pos geom.Vec2Int, v level.CellType) {
		if v == level.Empty || !lv.Grid.InBounds(pos) {
			return
		}
		c.SetColor(CellColor(v))
		c.DrawRectangle(float64(pos.X-off.X)*s, float64(pos.Y-off.Y)*s, s, s)
		c.Fill()
	})

	// Vertex positions live in grid space; shift them onto the canvas.
	line := func(e geom.Edge) {
		u := e.U.Position.Sub(off.Vec2()).Scale(s)
		v := e.V.Position.Sub(off.Vec2()).Scale(s)
		c.DrawLine(u.X, u.Y, v.X, v.Y)
		c.Stroke()
	}

	// 2) Candidate graph
	if lv.Triangulation != nil {
		c.SetRGBA(0.6, 0.6, 0.6, 0.6)
		c.SetLineWidth(1)
		for _, e := range lv.Triangulation.Edges {
			line(e)
		}
	}

	// 3) Carved connections
	c.SetRGB(1, 1, 1)
	c.SetLineWidth(2)
	for _, e := range lv.CorridorEdges() {
		line(e)
	}

	return c, nil
}
