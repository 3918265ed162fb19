package visual

import (
	"github.com/noriah/soundfield/dsp"
	"github.com/noriah/soundfield/host"
)

// RawAudioFrame is the latest analysis snapshot from the host. Levels are
// linear amplitudes, widths are normalized.
type RawAudioFrame struct {
	DryRMS   float64
	WetRMS   float64
	DryWidth float64
	WetWidth float64

	InputL  float64
	InputR  float64
	OutputL float64
	OutputR float64

	SpectralLow   float64
	SpectralMid   float64
	SpectralHigh  float64
	SpectralBands dsp.Bands

	// HostBypass is the bypass state as seen by the audio thread.
	HostBypass bool
}

// FrameFromAnalysis converts a decoded host payload. Negative and
// non-finite values are clamped to zero and missing bands default to zero.
func FrameFromAnalysis(a host.Analysis) RawAudioFrame {
	return RawAudioFrame{
		DryRMS:        dsp.NonNegative(a.DryRMS),
		WetRMS:        dsp.NonNegative(a.WetRMS),
		DryWidth:      dsp.NonNegative(a.DryWidth),
		WetWidth:      dsp.NonNegative(a.WetWidth),
		InputL:        dsp.NonNegative(a.InputL),
		InputR:        dsp.NonNegative(a.InputR),
		OutputL:       dsp.NonNegative(a.OutputL),
		OutputR:       dsp.NonNegative(a.OutputR),
		SpectralLow:   dsp.NonNegative(a.SpectralLow),
		SpectralMid:   dsp.NonNegative(a.SpectralMid),
		SpectralHigh:  dsp.NonNegative(a.SpectralHigh),
		SpectralBands: dsp.BandsFrom(a.SpectralBands),
		HostBypass:    a.HostBypass,
	}
}

// UserParameters are the user controls shared with the host.
type UserParameters struct {
	Expansion  float64 // [-100, 100]
	Excitation float64 // [0, 100]
	Mix        float64 // [0, 1]
	InputGain  float64 // dB, [-12, 12]
	OutputGain float64 // dB, [-12, 12]
	Bypass     bool
}

// DefaultParameters are used until the host reports values.
func DefaultParameters() UserParameters {
	return UserParameters{Mix: 1.0}
}

// Clamp limits every value to its domain.
func (p UserParameters) Clamp() UserParameters {
	p.Expansion = dsp.Clamp(p.Expansion, dsp.ExpansionMin, dsp.ExpansionMax)
	p.Excitation = dsp.Clamp(p.Excitation, dsp.ExcitationMin, dsp.ExcitationMax)
	p.Mix = dsp.Clamp(p.Mix, dsp.MixMin, dsp.MixMax)
	p.InputGain = dsp.Clamp(p.InputGain, dsp.GainMin, dsp.GainMax)
	p.OutputGain = dsp.Clamp(p.OutputGain, dsp.GainMin, dsp.GainMax)
	return p
}

// set assigns the slider named id. It reports false for unknown ids.
func (p *UserParameters) set(id string, v float64) bool {
	switch id {
	case host.ParamExpansion:
		p.Expansion = v
	case host.ParamExcitation:
		p.Excitation = v
	case host.ParamMix:
		p.Mix = v
	case host.ParamInputGain:
		p.InputGain = v
	case host.ParamOutputGain:
		p.OutputGain = v
	default:
		return false
	}
	return true
}

// get returns the slider named id.
func (p UserParameters) get(id string) (float64, bool) {
	switch id {
	case host.ParamExpansion:
		return p.Expansion, true
	case host.ParamExcitation:
		return p.Excitation, true
	case host.ParamMix:
		return p.Mix, true
	case host.ParamInputGain:
		return p.InputGain, true
	case host.ParamOutputGain:
		return p.OutputGain, true
	}
	return 0, false
}
