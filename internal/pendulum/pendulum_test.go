package pendulum

import (
	"math"
	"testing"
)

func testParams() Params {
	return Params{
		PivotX:  400,
		PivotY:  100,
		Length:  150,
		Gravity: 0.5,
		Damping: 0.96,
	}
}

func TestStepDampsVelocityWithoutGravity(t *testing.T) {
	p := testParams()
	p.Gravity = 0

	s := State{Angle: 1, Velocity: 2}
	for i := 1; i <= 200; i++ {
		prev := s.Velocity
		s = Step(p, s)
		if math.Abs(s.Velocity) >= math.Abs(prev) {
			t.Fatalf("tick %d: |velocity| did not shrink: %f -> %f", i, prev, s.Velocity)
		}
		want := 2 * math.Pow(p.Damping, float64(i))
		if math.Abs(s.Velocity-want) > 1e-9 {
			t.Fatalf("tick %d: velocity = %g, want %g", i, s.Velocity, want)
		}
	}
}

func TestStepAccelerationOpposesDisplacement(t *testing.T) {
	p := testParams()

	tests := []struct {
		name  string
		angle float64
	}{
		{"right of vertical", math.Pi / 4},
		{"left of vertical", -math.Pi / 4},
		{"slightly right", 0.01},
		{"slightly left", -0.01},
	}

	for _, tt := range tests {
		s := Step(p, State{Angle: tt.angle})
		if tt.angle > 0 && s.Acceleration >= 0 {
			t.Fatalf("%s: acceleration %f should be negative for angle %f", tt.name, s.Acceleration, tt.angle)
		}
		if tt.angle < 0 && s.Acceleration <= 0 {
			t.Fatalf("%s: acceleration %f should be positive for angle %f", tt.name, s.Acceleration, tt.angle)
		}
	}
}

func TestStepAtRestStaysAtRest(t *testing.T) {
	p := testParams()
	s := State{}
	for i := 0; i < 100; i++ {
		s = Step(p, s)
	}
	if s.Angle != 0 || s.Velocity != 0 {
		t.Fatalf("pendulum at the rest point moved: %+v", s)
	}
}

func TestStepDeterministic(t *testing.T) {
	p := testParams()
	a := State{Angle: math.Pi / 4}
	b := State{Angle: math.Pi / 4}

	for i := 0; i < 600; i++ {
		a = Step(p, a)
		b = Step(p, b)
		if a != b {
			t.Fatalf("tick %d: states diverged: %+v vs %+v", i, a, b)
		}
	}
}

func TestSwingAmplitudeDecays(t *testing.T) {
	p := testParams()
	s := State{Angle: math.Pi / 4}

	// Track the peak |velocity| over successive windows of the run; damping
	// must make each window's peak no larger than the last.
	const window = 120
	prevPeak := math.Inf(1)
	for w := 0; w < 5; w++ {
		peak := 0.0
		for i := 0; i < window; i++ {
			s = Step(p, s)
			if v := math.Abs(s.Velocity); v > peak {
				peak = v
			}
		}
		if peak > prevPeak {
			t.Fatalf("window %d: peak |velocity| grew: %f -> %f", w, prevPeak, peak)
		}
		prevPeak = peak
	}
}

func TestBobPosition(t *testing.T) {
	p := testParams()

	tests := []struct {
		name         string
		angle        float64
		wantX, wantY float64
	}{
		{"hanging straight down", 0, 400, 250},
		{"horizontal right", math.Pi / 2, 550, 100},
		{"horizontal left", -math.Pi / 2, 250, 100},
	}

	for _, tt := range tests {
		x, y := Bob(p, State{Angle: tt.angle})
		if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
			t.Fatalf("%s: bob = (%f, %f), want (%f, %f)", tt.name, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestSpeedScalesWithLength(t *testing.T) {
	p := testParams()
	s := State{Velocity: -0.04}

	if got := Speed(p, s); math.Abs(got-6.0) > 1e-9 {
		t.Fatalf("Speed = %f, want 6.0", got)
	}
	p.Length = 300
	if got := Speed(p, s); math.Abs(got-12.0) > 1e-9 {
		t.Fatalf("Speed with doubled arm = %f, want 12.0", got)
	}
}
