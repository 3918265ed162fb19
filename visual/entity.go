package visual

import "github.com/noriah/soundfield/dsp"

const (
	// entityIdleExpansion replaces the deformation while bypassed.
	entityIdleExpansion = 0.05
	// entityBypassOpacity is the core opacity while bypassed.
	entityBypassOpacity = 0.3
	// entityKickGain scales energy*drive into the audio kick.
	entityKickGain = 0.8

	entitySpinBase   = 0.03
	entitySpinEnergy = 0.1
)

// advanceEntity runs the organic core plus aura visual.
func advanceEntity(st *SmoothedState, fc *frameContext, out *UniformFrame) {

	filterCommon(st, fc, out)

	p := fc.params
	derived := dsp.DeriveEntity(p.Expansion, p.Excitation, p.Mix, fc.raw.WetRMS)

	st.Tension = fc.fast.Smooth(st.Tension, derived.Tension)
	st.DeformScale = fc.slow.Smooth(st.DeformScale, derived.DeformScale)

	_, mix := st.Blend.Update(fc.slow, p)

	energy := st.Bands.Energy()
	st.Rotation.Y += (entitySpinBase + energy*entitySpinEnergy) * fc.delta

	expansion := st.DeformScale + energy*derived.Drive*entityKickGain
	coreOpacity := 1.0
	if p.Bypass {
		expansion = entityIdleExpansion
		coreOpacity = entityBypassOpacity
	}

	material := EntityMaterial{
		Time:            fc.elapsed,
		Expansion:       expansion,
		Tension:         st.Tension,
		Complex:         1.0,
		DeformScale:     derived.DeformScale,
		DeformIntensity: derived.DeformIntensity,
		Bands:           st.Bands,
	}

	core, aura := material, material
	core.Opacity = coreOpacity
	aura.Opacity = mix
	aura.IsAura = 1.0

	out.Entity = EntityUniforms{
		Core:      core,
		Aura:      aura,
		AuraScale: derived.AuraScale,
	}
	out.Rotation = st.Rotation
}
