// Package pendulum integrates a damped pendulum one frame at a time.
//
// Units are pixels and frames: Gravity is pixels/frame², angles are radians,
// and a Step corresponds to one tick of the animation. There is no package
// state; callers hold a State and feed it back into Step each tick.
package pendulum

import "math"

// Params is the fixed physical configuration of the pendulum.
type Params struct {
	PivotX, PivotY float64
	Length         float64
	Gravity        float64
	Damping        float64 // fraction of angular velocity kept per frame, 0 < Damping < 1
}

// State is the instantaneous pendulum state. Acceleration is the value
// computed by the last Step, kept around for inspection.
type State struct {
	Angle        float64 // radians from vertical, 0 = hanging straight down
	Velocity     float64 // rad/frame
	Acceleration float64 // rad/frame²
}

// Step advances the state by one frame: gravity torque, then damping,
// then integration of the angle.
func Step(p Params, s State) State {
	acc := -(p.Gravity / p.Length) * math.Sin(s.Angle)
	vel := (s.Velocity + acc) * p.Damping
	return State{
		Angle:        s.Angle + vel,
		Velocity:     vel,
		Acceleration: acc,
	}
}

// Bob returns the bob position for the given state. Screen coordinates,
// y growing downward: angle 0 puts the bob straight below the pivot.
func Bob(p Params, s State) (x, y float64) {
	x = p.PivotX + p.Length*math.Sin(s.Angle)
	y = p.PivotY + p.Length*math.Cos(s.Angle)
	return x, y
}

// Speed returns the bob's linear speed in pixels/frame.
func Speed(p Params, s State) float64 {
	return math.Abs(s.Velocity) * p.Length
}
