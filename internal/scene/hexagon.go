package scene

import (
	"math"

	"github.com/iburimskiy/pendulum-animation/internal/config"
)

// HexagonVertices returns the corners of a regular hexagon centered on
// center and rotated by angle. For a regular hexagon the side length
// equals the circumradius.
func HexagonVertices(center Point, angle float64) [6]Point {
	var v [6]Point
	for i := range v {
		theta := angle + float64(i)*math.Pi/3
		v[i] = Point{
			X: center.X + config.HexRadius*math.Cos(theta),
			Y: center.Y + config.HexRadius*math.Sin(theta),
		}
	}
	return v
}
