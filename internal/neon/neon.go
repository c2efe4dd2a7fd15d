package neon

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Shared palette for the glow layers.
var (
	Cyan      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Purple    = color.RGBA{R: 128, G: 0, B: 128, A: 255}
	BeamWhite = color.RGBA{R: 255, G: 255, B: 255, A: 80}
	GridGray  = color.RGBA{R: 50, G: 50, B: 50, A: 150}
)

var (
	trailOld, _ = colorful.MakeColor(Purple)
	trailNew, _ = colorful.MakeColor(Cyan)
)

// Ramp blends the trail gradient: purple at t=0 (oldest) to cyan at t=1
// (newest). t outside [0,1] is clamped. Alpha is always full here; the
// age fade is TrailColor's job.
func Ramp(t float64) color.RGBA {
	r, g, b := trailOld.BlendRgb(trailNew, clamp01(t)).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// TrailColor returns the color of segment i in an n-point trail: hue
// interpolated by age, newer segments more opaque.
func TrailColor(i, n int) color.RGBA {
	if n <= 1 {
		return Ramp(1)
	}
	c := Ramp(float64(i) / float64(n-1))
	c.A = uint8(255 * (i + 1) / n)
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
