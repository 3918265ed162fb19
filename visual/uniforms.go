package visual

import "github.com/noriah/soundfield/dsp"

// BlobMaterial is the uniform block of one blob shell.
type BlobMaterial struct {
	RMS    float64   // uRMS
	Width  float64   // uWidth
	Time   float64   // uTime
	Mix    float64   // uMix
	Bypass float64   // uBypass
	Min    float64   // uMin
	Max    float64   // uMax
	Bands  dsp.Bands // uBands, smoothed linear energies
}

// BlobUniforms holds the dry (inner) and wet (outer) shells.
type BlobUniforms struct {
	Dry BlobMaterial
	Wet BlobMaterial
}

// EntityMaterial is the uniform block of one entity shell.
type EntityMaterial struct {
	Time            float64   // uTime
	Expansion       float64   // uExpansion
	Tension         float64   // uTension
	Complex         float64   // uComplex
	Opacity         float64   // uOpacity
	IsAura          float64   // uIsAura
	DeformScale     float64   // uDeformScale
	DeformIntensity float64   // uDeformIntensity
	Bands           dsp.Bands // uBands, smoothed linear energies
}

// EntityUniforms holds the core and the additive aura shell.
type EntityUniforms struct {
	Core      EntityMaterial
	Aura      EntityMaterial
	AuraScale float64
}

// Heat is the host side view of the relative heatmap, for color decisions
// made outside the shader.
type Heat struct {
	Range    dsp.Range
	Relative dsp.Bands
	Fade     float64
}

// UniformFrame is everything the render stage needs for one frame. Only the
// uniform group of the active mode is filled.
type UniformFrame struct {
	Mode  Mode
	Time  float64   // elapsed seconds
	Bands dsp.Bands // smoothed linear band energies

	Blob   BlobUniforms
	Entity EntityUniforms

	Bloom    Bloom
	Rotation Rotation
	Meters   Meters
	Heat     Heat
}
