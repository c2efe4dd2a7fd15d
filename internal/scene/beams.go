package scene

import (
	"math"

	"github.com/iburimskiy/pendulum-animation/internal/config"
)

// Beam is one light beam: a thin translucent triangle with its apex on
// the bob and a 30° spread at the far end.
type Beam struct {
	Apex, Left, Right Point
}

// BeamsFor derives the light beams for a bob position and speed. Nil at
// or below the threshold; above it the count and length grow with speed
// from the base layout until the caps. Pure: same inputs, same beams.
func BeamsFor(bob Point, speed float64) []Beam {
	if speed <= config.BeamThreshold {
		return nil
	}

	scale := speed / config.BeamThreshold
	count := int(config.BeamCount * scale)
	if count > config.BeamMaxCount {
		count = config.BeamMaxCount
	}
	length := config.BeamLength * scale
	if length > config.BeamMaxLength {
		length = config.BeamMaxLength
	}

	half := config.BeamSpread / 2
	beams := make([]Beam, count)
	for i := range beams {
		central := float64(i) * 2 * math.Pi / float64(count)
		beams[i] = Beam{
			Apex: bob,
			Left: Point{
				X: bob.X + length*math.Cos(central-half),
				Y: bob.Y + length*math.Sin(central-half),
			},
			Right: Point{
				X: bob.X + length*math.Cos(central+half),
				Y: bob.Y + length*math.Sin(central+half),
			},
		}
	}
	return beams
}
