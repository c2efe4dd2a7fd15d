// Package termview renders the scene onto a terminal cell grid, for
// running the animation over SSH or without a display.
package termview

import (
	"github.com/iburimskiy/pendulum-animation/internal/config"
)

// Projection maps world (window pixel) coordinates onto terminal cells.
// Terminal cells are about twice as tall as wide, so vertical world
// distance is halved to keep the scene's aspect; the fitted area is
// centered in the grid.
type Projection struct {
	scale      float64 // cell columns per world pixel
	offX, offY float64
	cols, rows int
}

func NewProjection(cols, rows int) Projection {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	sx := float64(cols) / config.WindowWidth
	sy := 2 * float64(rows) / config.WindowHeight
	s := min(sx, sy)

	w := config.WindowWidth * s
	h := config.WindowHeight * s / 2
	return Projection{
		scale: s,
		offX:  (float64(cols) - w) / 2,
		offY:  (float64(rows) - h) / 2,
		cols:  cols,
		rows:  rows,
	}
}

// Cell maps a world point to its cell. The result can be out of range
// for points outside the world rect; Contains filters those.
func (p Projection) Cell(x, y float64) (col, row int) {
	return int(p.offX + x*p.scale), int(p.offY + y*p.scale/2)
}

// Contains reports whether the cell lies on the screen grid.
func (p Projection) Contains(col, row int) bool {
	return col >= 0 && col < p.cols && row >= 0 && row < p.rows
}

// CellSpan returns how many cells a world-space segment of the given
// extents crosses, for choosing line sampling steps.
func (p Projection) CellSpan(dx, dy float64) int {
	w := dx * p.scale
	if w < 0 {
		w = -w
	}
	h := dy * p.scale / 2
	if h < 0 {
		h = -h
	}
	return int(max(w, h)) + 1
}
