package scene

import (
	"math"
	"testing"

	"github.com/iburimskiy/pendulum-animation/internal/config"
)

func TestSceneDeterministicForSameSeed(t *testing.T) {
	a := New(42)
	b := New(42)

	for tick := 0; tick < config.RunSeconds*config.TPS; tick++ {
		a.Advance()
		b.Advance()

		if a.Angle() != b.Angle() || a.Velocity() != b.Velocity() {
			t.Fatalf("tick %d: pendulum state diverged", tick)
		}
		if a.Bob() != b.Bob() {
			t.Fatalf("tick %d: bob position diverged", tick)
		}

		da, db := a.VortexDots(), b.VortexDots()
		for i := range da {
			if da[i] != db[i] {
				t.Fatalf("tick %d: vortex dot %d diverged: %+v vs %+v", tick, i, da[i], db[i])
			}
		}
	}
}

func TestSceneSeedOnlyAffectsVortex(t *testing.T) {
	a := New(1)
	b := New(2)

	for tick := 0; tick < 100; tick++ {
		a.Advance()
		b.Advance()
		if a.Angle() != b.Angle() {
			t.Fatalf("tick %d: pendulum motion depends on the seed", tick)
		}
	}
}

func TestSceneStopsAtConfiguredDuration(t *testing.T) {
	s := New(1)
	want := config.RunSeconds * config.TPS

	for i := 0; i < want-1; i++ {
		s.Advance()
		if s.Done() {
			t.Fatalf("scene stopped early at tick %d of %d", s.Tick(), want)
		}
	}
	s.Advance()
	if !s.Done() {
		t.Fatalf("scene still running after %d ticks", want)
	}
	if s.Tick() != want {
		t.Fatalf("final tick = %d, want %d", s.Tick(), want)
	}
	if s.Remaining() != 0 {
		t.Fatalf("remaining = %f after the run ended", s.Remaining())
	}
}

func TestSceneStoppedIsTerminal(t *testing.T) {
	s := New(1)
	for !s.Done() {
		s.Advance()
	}

	tick := s.Tick()
	angle := s.Angle()
	trail := len(s.TrailPoints())
	for i := 0; i < 10; i++ {
		s.Advance()
	}
	if s.Tick() != tick || s.Angle() != angle || len(s.TrailPoints()) != trail {
		t.Fatalf("advancing a stopped scene changed state")
	}
	if !s.Done() {
		t.Fatalf("stopped scene reported running again")
	}
}

func TestSceneSetDuration(t *testing.T) {
	s := New(1)
	s.SetDuration(2)

	for i := 0; i < 2*config.TPS; i++ {
		if s.Done() {
			t.Fatalf("scene with 2s duration stopped at tick %d", s.Tick())
		}
		s.Advance()
	}
	if !s.Done() {
		t.Fatalf("scene with 2s duration still running after %d ticks", s.Tick())
	}
}

func TestSceneElapsedTracksTicks(t *testing.T) {
	s := New(1)
	for i := 0; i < 90; i++ {
		s.Advance()
	}
	if got := s.Elapsed(); math.Abs(got-1.5) > 1e-9 {
		t.Fatalf("elapsed after 90 ticks = %f, want 1.5", got)
	}
	if got := s.Remaining(); math.Abs(got-(config.RunSeconds-1.5)) > 1e-9 {
		t.Fatalf("remaining after 90 ticks = %f, want %f", got, float64(config.RunSeconds)-1.5)
	}
}

func TestSceneTrailFollowsBob(t *testing.T) {
	s := New(1)

	for i := 0; i < 30; i++ {
		s.Advance()
		pts := s.TrailPoints()
		if len(pts) == 0 || pts[len(pts)-1] != s.Bob() {
			t.Fatalf("tick %d: newest trail point is not the bob", s.Tick())
		}
		if len(pts) > config.TrailLength {
			t.Fatalf("tick %d: trail has %d points, cap is %d", s.Tick(), len(pts), config.TrailLength)
		}
	}
}

func TestSceneHexagonRotatesAtConstantRate(t *testing.T) {
	s := New(1)
	prev := s.HexAngle()

	for i := 0; i < 120; i++ {
		s.Advance()
		step := s.HexAngle() - prev
		if math.Abs(step-config.HexRotationSpeed) > 1e-9 {
			t.Fatalf("tick %d: hexagon rotation step = %g, want %g", s.Tick(), step, config.HexRotationSpeed)
		}
		prev = s.HexAngle()
	}
}

func TestSceneHexagonCenteredOnBob(t *testing.T) {
	s := New(1)
	for i := 0; i < 60; i++ {
		s.Advance()
	}

	bob := s.Bob()
	for i, v := range s.Hexagon() {
		d := math.Hypot(v.X-bob.X, v.Y-bob.Y)
		if math.Abs(d-config.HexRadius) > 1e-9 {
			t.Fatalf("vertex %d at distance %f from bob, want %d", i, d, config.HexRadius)
		}
	}
}

func TestSceneBeamsMatchSpeed(t *testing.T) {
	s := New(1)

	// The stock damping keeps the bob under the threshold, so this mostly
	// checks the "off" side of the iff; beams_test drives the "on" side.
	for !s.Done() {
		s.Advance()
		beams := s.Beams()
		if (beams != nil) != (s.Speed() > config.BeamThreshold) {
			t.Fatalf("tick %d: beams=%v at speed %f (threshold %v)",
				s.Tick(), beams != nil, s.Speed(), config.BeamThreshold)
		}
	}
}
