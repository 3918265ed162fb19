package dsp

import "math"

const (
	// SilenceFloor is the linear amplitude treated as silence (-60 dBFS).
	SilenceFloor = 0.001

	// logDecades is the dynamic range of ToLog in decades of amplitude.
	logDecades = 3.0
)

// ToLog compresses a linear amplitude so that -60 dBFS maps to 0 and
// 0 dBFS maps to 1. Values above full scale keep growing past 1.
//
// The meters and the heatmap both go through this function so that visual
// energy and metered loudness agree.
func ToLog(x float64) float64 {
	if !(x > SilenceFloor) {
		return 0.0
	}

	return math.Max(0.0, (math.Log10(x)+logDecades)/logDecades)
}

// DecibelPercent converts a linear amplitude into a 0-100 meter reading over
// the -60..0 dBFS range.
func DecibelPercent(x float64) float64 {
	return 100.0 * Clamp(ToLog(x), 0.0, 1.0)
}

// MeterPercent is DecibelPercent for a level measured before a gain stage of
// gainDB decibels.
func MeterPercent(x, gainDB float64) float64 {
	return DecibelPercent(x * GainToLinear(gainDB))
}

// GainToLinear converts decibels to a linear factor.
func GainToLinear(db float64) float64 {
	return math.Pow(10.0, db/20.0)
}

// Clamp limits v to [lo, hi]. NaN clamps to lo.
func Clamp(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v), v < lo:
		return lo
	case v > hi:
		return hi
	}

	return v
}

// Lerp mixes a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Smoothstep is the Hermite step between edge0 and edge1.
func Smoothstep(edge0, edge1, x float64) float64 {
	t := Clamp((x-edge0)/(edge1-edge0), 0.0, 1.0)
	return t * t * (3.0 - 2.0*t)
}
