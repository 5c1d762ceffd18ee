package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raylight/render"
)

// cellRenderer rasterizes the scene's primitives into terminal cells.
type cellRenderer struct{}

// cellSurface is one frame's render target: the tcell screen plus the
// world-to-cell scaling for this frame.
type cellSurface struct {
	screen     tcell.Screen
	cols, rows int
	worldW     float64
	worldH     float64

	bg color.Color
}

// Fill clears every cell to the given background color.
func (s *cellSurface) Fill(clr color.Color) {
	s.bg = clr
	style := tcell.StyleDefault.Background(toTcellColor(clr))
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (s *cellSurface) worldToCell(x, y float32) (int, int) {
	if s.worldW == 0 || s.worldH == 0 {
		return 0, 0
	}
	return int(float64(x) * float64(s.cols) / s.worldW),
		int(float64(y) * float64(s.rows) / s.worldH)
}

// plot sets one cell, blending the color's alpha against the background so
// dim miss-rays read dimmer than hit-rays.
func (s *cellSurface) plot(cellX, cellY int, clr color.Color) {
	if cellX < 0 || cellX >= s.cols || cellY < 0 || cellY >= s.rows {
		return
	}
	style := tcell.StyleDefault.
		Foreground(blendOver(clr, s.bg)).
		Background(toTcellColor(s.bg))
	s.screen.SetContent(cellX, cellY, '█', nil, style)
}

// StrokeLine draws a line of cells between two world-space points.
// Stroke width below one cell is a single-cell trace.
func (r *cellRenderer) StrokeLine(dst render.Surface, x1, y1, x2, y2 float32, strokeWidth float32, clr color.Color) {
	s := dst.(*cellSurface)
	ax, ay := s.worldToCell(x1, y1)
	bx, by := s.worldToCell(x2, y2)

	// Bresenham
	dx := abs(bx - ax)
	dy := -abs(by - ay)
	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}
	if ay > by {
		sy = -1
	}
	err := dx + dy

	for {
		s.plot(ax, ay, clr)
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			ax += sx
		}
		if e2 <= dx {
			err += dx
			ay += sy
		}
	}
}

// FillCircle draws a filled circle by testing each covered cell's center
// against the radius in world space.
func (r *cellRenderer) FillCircle(dst render.Surface, x, y, radius float32, clr color.Color) {
	s := dst.(*cellSurface)
	minX, minY := s.worldToCell(x-radius, y-radius)
	maxX, maxY := s.worldToCell(x+radius, y+radius)

	cellW := s.worldW / float64(s.cols)
	cellH := s.worldH / float64(s.rows)

	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			wx := (float64(cx) + 0.5) * cellW
			wy := (float64(cy) + 0.5) * cellH
			ddx := wx - float64(x)
			ddy := wy - float64(y)
			if math.Sqrt(ddx*ddx+ddy*ddy) <= float64(radius) {
				s.plot(cx, cy, clr)
			}
		}
	}
}

// StrokeCircle draws a circle outline as a loop of short lines.
func (r *cellRenderer) StrokeCircle(dst render.Surface, x, y, radius float32, strokeWidth float32, clr color.Color) {
	const segments = 32
	for i := 0; i < segments; i++ {
		a1 := 2 * math.Pi * float64(i) / segments
		a2 := 2 * math.Pi * float64(i+1) / segments
		r.StrokeLine(dst,
			x+radius*float32(math.Cos(a1)), y+radius*float32(math.Sin(a1)),
			x+radius*float32(math.Cos(a2)), y+radius*float32(math.Sin(a2)),
			strokeWidth, clr)
	}
}

// toTcellColor converts a color.Color, ignoring alpha.
func toTcellColor(clr color.Color) tcell.Color {
	if clr == nil {
		return tcell.ColorBlack
	}
	r, g, b, _ := clr.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// blendOver composites a (possibly translucent) color over the background.
// RGBA() returns premultiplied components, so out = src + bg*(1-alpha).
func blendOver(clr, bg color.Color) tcell.Color {
	if bg == nil {
		return toTcellColor(clr)
	}
	sr, sg, sb, sa := clr.RGBA()
	bgr, bgg, bgb, _ := bg.RGBA()

	inv := 0xffff - sa
	outR := (sr + bgr*inv/0xffff) >> 8
	outG := (sg + bgg*inv/0xffff) >> 8
	outB := (sb + bgb*inv/0xffff) >> 8
	return tcell.NewRGBColor(int32(outR), int32(outG), int32(outB))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
