// Package scene owns the animation state: pendulum, trail, hexagon spin and
// the background vortex. One Advance call equals one tick; everything a
// renderer needs is exposed as plain geometry so the ebiten window, the
// terminal view and the trace tool can all draw the same scene.
package scene

import (
	"math/rand"

	"github.com/iburimskiy/pendulum-animation/internal/config"
	"github.com/iburimskiy/pendulum-animation/internal/pendulum"
)

// Point is a position in world (window pixel) coordinates.
type Point struct {
	X, Y float64
}

// Scene is the whole animation state. It advances tick by tick until the
// run duration is exhausted; after that Advance is a no-op and Done
// reports true, permanently.
type Scene struct {
	params pendulum.Params
	pend   pendulum.State

	trail    *Trail
	vortex   *vortex
	hexAngle float64

	tick    int
	maxTick int
	done    bool
}

// New creates a scene at the initial pendulum deflection. The seed only
// feeds the vortex layout and shimmer; pendulum motion is the same for
// every seed.
func New(seed int64) *Scene {
	rng := rand.New(rand.NewSource(seed))
	return &Scene{
		params: pendulum.Params{
			PivotX:  config.PivotX,
			PivotY:  config.PivotY,
			Length:  config.ArmLength,
			Gravity: config.Gravity,
			Damping: config.Damping,
		},
		pend:    pendulum.State{Angle: config.InitialAngle},
		trail:   newTrail(config.TrailLength),
		vortex:  newVortex(rng, seed),
		maxTick: config.RunSeconds * config.TPS,
	}
}

// SetDuration overrides the run duration, in seconds. Used by the trace
// tool; the animation binaries keep the stock ten seconds.
func (s *Scene) SetDuration(seconds float64) {
	s.maxTick = int(seconds*config.TPS + 0.5)
	s.done = s.tick >= s.maxTick
}

// Advance runs one tick: physics, trail, hexagon, vortex, in that order.
func (s *Scene) Advance() {
	if s.done {
		return
	}
	s.pend = pendulum.Step(s.params, s.pend)
	x, y := pendulum.Bob(s.params, s.pend)
	s.trail.Push(Point{X: x, Y: y})
	s.hexAngle += config.HexRotationSpeed
	s.vortex.advance()
	s.tick++
	if s.tick >= s.maxTick {
		s.done = true
	}
}

// Done reports whether the run duration has elapsed.
func (s *Scene) Done() bool { return s.done }

// Tick returns the number of ticks advanced so far.
func (s *Scene) Tick() int { return s.tick }

// Elapsed returns the simulated time in seconds.
func (s *Scene) Elapsed() float64 { return float64(s.tick) / config.TPS }

// Remaining returns the simulated seconds left before the run ends.
func (s *Scene) Remaining() float64 {
	r := float64(s.maxTick-s.tick) / config.TPS
	if r < 0 {
		return 0
	}
	return r
}

// Angle returns the pendulum angle in radians from vertical.
func (s *Scene) Angle() float64 { return s.pend.Angle }

// Velocity returns the angular velocity in rad/frame.
func (s *Scene) Velocity() float64 { return s.pend.Velocity }

// Speed returns the bob's linear speed in pixels/frame.
func (s *Scene) Speed() float64 { return pendulum.Speed(s.params, s.pend) }

// Pivot returns the fixed pendulum anchor.
func (s *Scene) Pivot() Point { return Point{X: s.params.PivotX, Y: s.params.PivotY} }

// Bob returns the current bob position.
func (s *Scene) Bob() Point {
	x, y := pendulum.Bob(s.params, s.pend)
	return Point{X: x, Y: y}
}

// TrailPoints returns the recent bob positions, oldest first.
func (s *Scene) TrailPoints() []Point { return s.trail.Points() }

// HexAngle returns the hexagon's accumulated rotation in radians.
func (s *Scene) HexAngle() float64 { return s.hexAngle }

// Hexagon returns the rotated hexagon vertices centered on the bob.
func (s *Scene) Hexagon() [6]Point { return HexagonVertices(s.Bob(), s.hexAngle) }

// Beams returns the light beams for the current tick, nil while the bob
// is below the speed threshold.
func (s *Scene) Beams() []Beam { return BeamsFor(s.Bob(), s.Speed()) }

// VortexDots returns the background vortex dots for the current tick.
func (s *Scene) VortexDots() []Dot { return s.vortex.dots() }

// GridDots returns every grid point, warped around the current bob position.
func (s *Scene) GridDots() []GridDot { return GridDotsFor(s.Bob()) }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
