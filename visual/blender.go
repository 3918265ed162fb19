package visual

import "github.com/noriah/soundfield/dsp"

// Blender smooths the bypass flag and the effective mix so that toggling
// bypass or moving mix never jumps. The two values stay separate: bypass
// neutralizes color while mix drives overlay opacity.
type Blender struct {
	Bypass float64 // 0 active, 1 bypassed
	Mix    float64 // effective mix
}

// Targets returns the unsmoothed bypass amount and effective mix.
func Targets(p UserParameters) (bypass, mix float64) {
	if p.Bypass {
		return 1.0, 0.0
	}
	return 0.0, dsp.Clamp(p.Mix, dsp.MixMin, dsp.MixMax)
}

// Update moves both terms toward their targets and returns them.
func (bl *Blender) Update(sm *dsp.Smoother, p UserParameters) (bypass, mix float64) {
	bypassTarget, mixTarget := Targets(p)

	bl.Bypass = sm.Smooth(bl.Bypass, bypassTarget)
	bl.Mix = sm.Smooth(bl.Mix, mixTarget)

	return bl.Bypass, bl.Mix
}
