package visual

// Per-frame blob group spin, in radians.
const (
	blobSpinX = 0.001
	blobSpinY = 0.002
)

// advanceBlob runs the dual shell visual: a dry inner blob and a wet outer
// blob colored by the relative heatmap.
func advanceBlob(st *SmoothedState, fc *frameContext, out *UniformFrame) {

	filterCommon(st, fc, out)

	st.DryRMS = fc.fast.Smooth(st.DryRMS, fc.raw.DryRMS)
	st.WetRMS = fc.fast.Smooth(st.WetRMS, fc.raw.WetRMS)
	st.DryWidth = fc.fast.Smooth(st.DryWidth, fc.raw.DryWidth)
	st.WetWidth = fc.fast.Smooth(st.WetWidth, fc.raw.WetWidth)

	bypass, mix := st.Blend.Update(fc.slow, fc.params)

	st.Rotation.X += blobSpinX
	st.Rotation.Y += blobSpinY

	material := func(rms, width float64) BlobMaterial {
		return BlobMaterial{
			RMS:    rms,
			Width:  width,
			Time:   fc.elapsed,
			Mix:    mix,
			Bypass: bypass,
			Min:    out.Heat.Range.Min,
			Max:    out.Heat.Range.Max,
			Bands:  st.Bands,
		}
	}

	out.Blob = BlobUniforms{
		Dry: material(st.DryRMS, st.DryWidth),
		Wet: material(st.WetRMS, st.WetWidth),
	}
	out.Rotation = st.Rotation
}
