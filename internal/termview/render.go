package termview

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/pendulum-animation/internal/neon"
	"github.com/iburimskiy/pendulum-animation/internal/scene"
)

var (
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleGrid   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(80, 80, 80))
	styleBeam   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(220, 220, 220))
	styleArm    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 255, 255))
	styleHex    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 255, 255))
)

// Draw composites one frame onto the screen, back to front like the
// window renderer, plus a status line on top.
func Draw(screen tcell.Screen, sc *scene.Scene, p Projection) {
	screen.Clear()

	drawVortex(screen, sc, p)
	drawGrid(screen, sc, p)
	drawTrail(screen, sc, p)
	drawBeams(screen, sc, p)
	drawArm(screen, sc, p)
	drawHexagon(screen, sc, p)

	status := fmt.Sprintf(" %04.1fs left  [q] quit ", sc.Remaining())
	drawText(screen, p, 1, 0, status, styleStatus)

	screen.Show()
}

func drawVortex(screen tcell.Screen, sc *scene.Scene, p Projection) {
	for _, d := range sc.VortexDots() {
		v := int32(255 * d.Bright)
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(v, v, v))
		setCell(screen, p, d.X, d.Y, '·', style)
	}
}

func drawGrid(screen tcell.Screen, sc *scene.Scene, p Projection) {
	for _, d := range sc.GridDots() {
		ch := '.'
		if d.Warped {
			ch = 'o'
		}
		setCell(screen, p, d.X, d.Y, ch, styleGrid)
	}
}

func drawTrail(screen tcell.Screen, sc *scene.Scene, p Projection) {
	pts := sc.TrailPoints()
	if len(pts) < 2 {
		return
	}
	for i := 0; i < len(pts)-1; i++ {
		c := neon.TrailColor(i, len(pts))
		// No alpha on a terminal; fold the fade into the brightness.
		f := float64(c.A) / 255
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(
			int32(float64(c.R)*f), int32(float64(c.G)*f), int32(float64(c.B)*f)))
		drawLine(screen, p, pts[i], pts[i+1], '█', style)
	}
}

func drawBeams(screen tcell.Screen, sc *scene.Scene, p Projection) {
	for _, b := range sc.Beams() {
		mid := scene.Point{X: (b.Left.X + b.Right.X) / 2, Y: (b.Left.Y + b.Right.Y) / 2}
		drawLine(screen, p, b.Apex, mid, '*', styleBeam)
	}
}

func drawArm(screen tcell.Screen, sc *scene.Scene, p Projection) {
	pivot, bob := sc.Pivot(), sc.Bob()
	ch := slopeRune(bob.X-pivot.X, (bob.Y-pivot.Y)/2)
	drawLine(screen, p, pivot, bob, ch, styleArm)
}

func drawHexagon(screen tcell.Screen, sc *scene.Scene, p Projection) {
	hex := sc.Hexagon()
	for i := range hex {
		drawLine(screen, p, hex[i], hex[(i+1)%len(hex)], '#', styleHex)
	}
}

// drawLine samples a world-space segment once per crossed cell.
func drawLine(screen tcell.Screen, p Projection, from, to scene.Point, ch rune, style tcell.Style) {
	steps := p.CellSpan(to.X-from.X, to.Y-from.Y)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := from.X + (to.X-from.X)*t
		y := from.Y + (to.Y-from.Y)*t
		setCell(screen, p, x, y, ch, style)
	}
}

func setCell(screen tcell.Screen, p Projection, x, y float64, ch rune, style tcell.Style) {
	col, row := p.Cell(x, y)
	if p.Contains(col, row) {
		screen.SetContent(col, row, ch, nil, style)
	}
}

func drawText(screen tcell.Screen, p Projection, col, row int, text string, style tcell.Style) {
	for i, ch := range text {
		if p.Contains(col+i, row) {
			screen.SetContent(col+i, row, ch, nil, style)
		}
	}
}

// slopeRune picks a line character for the segment's direction, with dy
// already corrected for the cell aspect.
func slopeRune(dx, dy float64) rune {
	switch {
	case math.Abs(dx) > 2*math.Abs(dy):
		return '-'
	case math.Abs(dy) > 2*math.Abs(dx):
		return '|'
	case dx*dy > 0:
		return '\\'
	default:
		return '/'
	}
}
