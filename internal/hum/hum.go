// Package hum plays a low sine drone whose pitch and level follow the
// bob's speed.
package hum

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/pendulum-animation/internal/config"
)

const (
	sampleRate = beep.SampleRate(44100)

	minFreq = 70.0  // Hz while the bob hangs still
	maxFreq = 240.0 // Hz at full-scale speed
	maxGain = 0.4

	// Full-scale speed matches the light beam threshold: the drone tops
	// out right where the beams would kick in.
	fullScaleSpeed = config.BeamThreshold

	// Per-sample easing toward the targets; keeps pitch/level changes
	// click-free at a time constant of roughly 25 ms.
	easeRate = 0.001
)

// Hum is a beep.Streamer producing the drone. SetSpeed is called from the
// animation loop while Stream runs on the speaker goroutine, so the
// shared targets sit behind a mutex.
type Hum struct {
	mu         sync.Mutex
	targetFreq float64
	targetGain float64
	freq       float64
	gain       float64
	phase      float64
}

// New returns a silent hum at the resting pitch.
func New() *Hum {
	return &Hum{targetFreq: minFreq, freq: minFreq}
}

// PitchFor maps bob speed to drone frequency: linear between the resting
// and full-scale pitch, clamped at both ends.
func PitchFor(speed float64) float64 {
	return minFreq + (maxFreq-minFreq)*clamp01(speed/fullScaleSpeed)
}

// GainFor maps bob speed to drone level, clamped to the full-scale gain.
func GainFor(speed float64) float64 {
	return maxGain * clamp01(speed/fullScaleSpeed)
}

// SetSpeed retargets the drone for the bob's current speed.
func (h *Hum) SetSpeed(speed float64) {
	h.mu.Lock()
	h.targetFreq = PitchFor(speed)
	h.targetGain = GainFor(speed)
	h.mu.Unlock()
}

// Stream fills the whole buffer and never drains: the drone plays until
// the speaker is closed.
func (h *Hum) Stream(samples [][2]float64) (int, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := range samples {
		h.freq += (h.targetFreq - h.freq) * easeRate
		h.gain += (h.targetGain - h.gain) * easeRate

		v := h.gain * math.Sin(2*math.Pi*h.phase)
		samples[i][0] = v
		samples[i][1] = v

		h.phase += h.freq / float64(sampleRate)
		if h.phase >= 1 {
			h.phase--
		}
	}
	return len(samples), true
}

// Err implements beep.Streamer; the drone cannot fail.
func (h *Hum) Err() error { return nil }

// Open initializes the speaker and starts the drone. On error the caller
// is expected to carry on without audio.
func Open() (*Hum, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return nil, err
	}
	h := New()
	speaker.Play(h)
	return h, nil
}

// Close silences and releases the audio device.
func (h *Hum) Close() {
	speaker.Clear()
	speaker.Close()
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
