package scene

import (
	"math"

	"github.com/iburimskiy/pendulum-animation/internal/config"
)

// GridDot is one background grid point. Warped marks points snapped onto
// a concentric ring around the bob.
type GridDot struct {
	X, Y   float64
	Warped bool
}

// WarpPoint maps one grid point through the bob's distortion field.
// Points within the warp radius snap onto the concentric ring whose
// radius is the nearest multiple of the grid spacing; everything else
// (including a point exactly on the bob) passes through untouched.
func WarpPoint(bob Point, x, y float64) GridDot {
	dx := x - bob.X
	dy := y - bob.Y
	r := math.Hypot(dx, dy)
	if r == 0 || r >= config.GridWarpRadius {
		return GridDot{X: x, Y: y}
	}
	theta := math.Atan2(dy, dx)
	ring := math.Round(r/config.GridSpacing) * config.GridSpacing
	return GridDot{
		X:      bob.X + ring*math.Cos(theta),
		Y:      bob.Y + ring*math.Sin(theta),
		Warped: true,
	}
}

// GridDotsFor warps the full window grid around the given bob position.
func GridDotsFor(bob Point) []GridDot {
	cols := config.WindowWidth / config.GridSpacing
	rows := config.WindowHeight / config.GridSpacing
	out := make([]GridDot, 0, (cols+1)*(rows+1))
	for x := 0; x < config.WindowWidth; x += config.GridSpacing {
		for y := 0; y < config.WindowHeight; y += config.GridSpacing {
			out = append(out, WarpPoint(bob, float64(x), float64(y)))
		}
	}
	return out
}
