package dsp

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Canonical smoothing rates. A rate is the fraction of the remaining gap to
// the target that is closed on every frame.
const (
	// FastRate tracks audio transients, close to an oscilloscope.
	FastRate = 0.7
	// SlowRate is used for user controls and mode transitions.
	SlowRate = 0.15

	// ReferenceFrameRate is the cadence the fixed rates were tuned for.
	ReferenceFrameRate = 60.0
)

// Smooth moves current toward target by rate and returns the new value.
func Smooth(current, target, rate float64) float64 {
	return current + (target-current)*rate
}

type SmootherConfig struct {
	Rate      float64 // fraction of the gap closed per reference frame
	Normalize bool    // scale the rate by elapsed frame time
	FrameRate float64 // reference frame rate used when normalizing
}

// Smoother is a first order low-pass filter with a fixed per-frame rate.
//
// Without normalization the filter is frame-rate dependent: at 30 fps it
// converges half as fast in wall time as at 60 fps. With normalization the
// rate for a frame of length dt becomes 1-(1-rate)^(dt*FrameRate), which is
// identical to the fixed rate when dt is exactly one reference frame.
type Smoother struct {
	rate      float64
	step      float64
	normalize bool
	frameRate float64
	started   bool
}

func NewSmoother(cfg SmootherConfig) *Smoother {
	sm := &Smoother{
		normalize: cfg.Normalize,
		frameRate: cfg.FrameRate,
	}

	if sm.frameRate <= 0 {
		sm.frameRate = ReferenceFrameRate
	}

	sm.setRate(cfg.Rate)

	return sm
}

func (sm *Smoother) setRate(rate float64) {
	switch {
	case math.IsNaN(rate), rate <= 0.0:
		rate = math.SmallestNonzeroFloat64
	case rate > 1.0:
		rate = 1.0
	}

	sm.rate = rate
	sm.step = rate
}

// Rate returns the configured per-frame rate.
func (sm *Smoother) Rate() float64 {
	return sm.rate
}

// Step returns the rate that applies to the current frame.
func (sm *Smoother) Step() float64 {
	return sm.step
}

// Advance prepares the filter for a frame that is dt seconds after the
// previous one. It only has an effect when normalization is enabled: the
// first frame then takes one full step, later frames with no elapsed time
// do not move at all.
func (sm *Smoother) Advance(dt float64) {
	started := sm.started
	sm.started = true

	switch {
	case !sm.normalize:
		sm.step = sm.rate
	case dt <= 0.0 || math.IsNaN(dt):
		if started {
			sm.step = 0.0
		} else {
			sm.step = sm.rate
		}
	default:
		sm.step = 1.0 - math.Pow(1.0-sm.rate, dt*sm.frameRate)
	}
}

// Smooth filters a single scalar. NaN values are treated as zero.
func (sm *Smoother) Smooth(current, target float64) float64 {
	if math.IsNaN(current) {
		current = 0.0
	}

	if math.IsNaN(target) {
		target = 0.0
	}

	return Smooth(current, target, sm.step)
}

// SmoothBands filters current toward target element by element.
func (sm *Smoother) SmoothBands(current, target *Bands) {
	var gap Bands
	floats.SubTo(gap[:], target[:], current[:])

	for idx, v := range gap {
		if math.IsNaN(v) {
			gap[idx] = 0.0
		}
	}

	floats.AddScaled(current[:], sm.step, gap[:])
}
