package dsp

import "math"

// HeatmapEpsilon keeps the relative position defined when min and max meet.
const HeatmapEpsilon = 0.0001

// Silence fade edges on the smoothed range maximum.
const (
	SilenceFadeLow  = 0.02
	SilenceFadeHigh = 0.06
)

// Range holds the low-pass filtered band bounds.
type Range struct {
	Min float64
	Max float64
}

// Relative places a linear energy value inside the range after log
// compression. The result is always in [0, 1].
func (r Range) Relative(p float64) float64 {
	logP := ToLog(p)
	logMin := ToLog(r.Min)
	logMax := ToLog(r.Max)

	span := math.Max(logMax-logMin, 0.0)

	rel := (logP - logMin) / (span + HeatmapEpsilon)
	if math.IsNaN(rel) {
		return 0.0
	}

	return Clamp(rel, 0.0, 1.0)
}

// RelativeBands applies Relative to every band.
func (r Range) RelativeBands(b *Bands) Bands {
	var out Bands
	for idx, v := range b {
		out[idx] = r.Relative(v)
	}
	return out
}

// SilenceFade is 0 for a near silent range and 1 once there is real energy.
func (r Range) SilenceFade() float64 {
	return Smoothstep(SilenceFadeLow, SilenceFadeHigh, r.Max)
}

// Heatmap tracks the band range. The bounds follow the instantaneous frame
// min and max through a low-pass filter so one spike cannot pin the range.
type Heatmap struct {
	rng Range
}

// NewHeatmap returns a heatmap starting at the range [0, 1].
func NewHeatmap() Heatmap {
	return Heatmap{rng: Range{Min: 0.0, Max: 1.0}}
}

// Update filters the bounds toward the min and max of bands.
func (hm *Heatmap) Update(sm *Smoother, bands *Bands) Range {
	hm.rng.Min = sm.Smooth(hm.rng.Min, bands.Min())
	hm.rng.Max = sm.Smooth(hm.rng.Max, bands.Max())
	return hm.rng
}

// Range returns the current bounds.
func (hm *Heatmap) Range() Range {
	return hm.rng
}
