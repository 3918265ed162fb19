package dsp

import "math"

// Signal level breakpoints as linear amplitudes.
const (
	Level60dB = 0.001
	Level30dB = 0.0316
	Level20dB = 0.1
	Level10dB = 0.316
)

// Parameter domains.
const (
	ExpansionMin  = -100.0
	ExpansionMax  = 100.0
	ExcitationMin = 0.0
	ExcitationMax = 100.0
	MixMin        = 0.0
	MixMax        = 1.0
	GainMin       = -12.0
	GainMax       = 12.0

	// MaxDeformScale caps DeformScale.
	MaxDeformScale = 1.5
)

// EntityParams are the derived values that shape the entity visual.
type EntityParams struct {
	DeformIntensity float64
	Drive           float64
	Tension         float64
	DeformScale     float64
	AuraScale       float64
}

// DeriveEntity computes every entity curve from the user parameters and the
// wet signal level. It holds no state.
func DeriveEntity(expansion, excitation, mix, wetRms float64) EntityParams {
	return EntityParams{
		DeformIntensity: DeformIntensity(expansion),
		Drive:           Drive(wetRms),
		Tension:         Tension(wetRms, excitation),
		DeformScale:     DeformScale(expansion, wetRms),
		AuraScale:       AuraScale(mix),
	}
}

// expansionCurve maps expansion piecewise: [-100, 0] onto [lo, mid] and
// (0, 100] onto [mid, hi].
func expansionCurve(expansion, lo, mid, hi float64) float64 {
	expansion = Clamp(expansion, ExpansionMin, ExpansionMax)

	if expansion <= 0.0 {
		return lo + ((expansion+100.0)/100.0)*(mid-lo)
	}

	return mid + (expansion/100.0)*(hi-mid)
}

// DeformIntensity maps expansion onto [0.4, 0.8], 0.6 at zero.
func DeformIntensity(expansion float64) float64 {
	return expansionCurve(expansion, 0.4, 0.6, 0.8)
}

// Drive exaggerates fallback motion for quiet signals. It is 3.0 below
// -60 dB, falls to 1.2 at -30 dB, to 1.0 at -10 dB and stays there.
func Drive(wetRms float64) float64 {
	rms := NonNegative(wetRms)

	switch {
	case rms <= Level60dB:
		return 3.0
	case rms <= Level30dB:
		n := (rms - Level60dB) / (Level30dB - Level60dB)
		return 3.0 - n*1.8
	case rms <= Level10dB:
		n := (rms - Level30dB) / (Level10dB - Level30dB)
		return 1.2 - n*0.2
	}

	return 1.0
}

// Tension rises from 1.0 at silence to 1.8 at -20 dB and 2.67 at -10 dB,
// then is scaled by up to 1.5x by excitation.
func Tension(wetRms, excitation float64) float64 {
	rms := NonNegative(wetRms)

	var base float64

	switch {
	case rms <= Level20dB:
		base = 1.0 + (rms/Level20dB)*0.8
	case rms <= Level10dB:
		n := (rms - Level20dB) / (Level10dB - Level20dB)
		base = 1.8 + n*0.87
	default:
		base = 2.67
	}

	excitation = Clamp(excitation, ExcitationMin, ExcitationMax)

	return base * (1.0 + excitation/200.0)
}

// DeformScale is an expansion baseline in [0.1, 0.6] plus up to 0.4 of
// level reactivity, capped at MaxDeformScale.
func DeformScale(expansion, wetRms float64) float64 {
	base := expansionCurve(expansion, 0.1, 0.3, 0.6)
	level := math.Min(NonNegative(wetRms)*2.0, 1.0) * 0.4

	return math.Min(base+level, MaxDeformScale)
}

// AuraScale grows the aura shell with mix.
func AuraScale(mix float64) float64 {
	return 1.05 + Clamp(mix, MixMin, MixMax)*0.15
}
