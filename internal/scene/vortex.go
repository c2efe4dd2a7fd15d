package scene

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/iburimskiy/pendulum-animation/internal/config"
)

// Dot is one rendered vortex particle. Bright is 0..1 and carries the
// Perlin shimmer; renderers scale the dot's white level by it.
type Dot struct {
	X, Y   float64
	Bright float64
}

type vortexParticle struct {
	angle       float64
	baseRadius  float64
	speed       float64
	wobblePhase float64
}

// vortex is the decorative swirl behind the pendulum: a fixed set of
// particles orbiting the window center, independent of the physics.
type vortex struct {
	particles []vortexParticle
	noise     *perlin.Perlin
	tick      int
}

func newVortex(rng *rand.Rand, seed int64) *vortex {
	v := &vortex{
		particles: make([]vortexParticle, config.VortexCount),
		noise:     perlin.NewPerlin(2, 2, 2, seed),
	}
	for i := range v.particles {
		v.particles[i] = vortexParticle{
			angle:       rng.Float64() * 2 * math.Pi,
			baseRadius:  config.VortexRadiusMin + rng.Float64()*(config.VortexRadiusMax-config.VortexRadiusMin),
			speed:       config.VortexSpeed,
			wobblePhase: rng.Float64() * 2 * math.Pi,
		}
	}
	return v
}

// advance rotates every particle by its angular speed, wrapped to [0, 2π).
func (v *vortex) advance() {
	for i := range v.particles {
		p := &v.particles[i]
		p.angle = math.Mod(p.angle+p.speed, 2*math.Pi)
	}
	v.tick++
}

func (v *vortex) dots() []Dot {
	out := make([]Dot, len(v.particles))
	t := float64(v.tick)
	for i, p := range v.particles {
		r := p.baseRadius + config.VortexWobbleAmp*math.Sin(p.wobblePhase+t*config.VortexWobbleRate)
		out[i] = Dot{
			X:      config.VortexCenterX + r*math.Cos(p.angle),
			Y:      config.VortexCenterY + r*math.Sin(p.angle),
			Bright: clamp01(0.7 + 0.3*v.noise.Noise2D(float64(i)*0.37, t*0.02)),
		}
	}
	return out
}
