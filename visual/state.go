package visual

import "github.com/noriah/soundfield/dsp"

// Rotation is the accumulated group rotation in radians.
type Rotation struct {
	X float64
	Y float64
}

// SmoothedState is the filter memory of one visual instance. It is owned by
// that instance and never shared with the other mode.
//
// The RMS and width terms are blob only; entity curves read the raw wet level.
type SmoothedState struct {
	DryRMS   float64
	WetRMS   float64
	DryWidth float64
	WetWidth float64

	Tension     float64
	DeformScale float64

	Bands    dsp.Bands
	Heatmap  dsp.Heatmap
	Blend    Blender
	Rotation Rotation

	disposed bool
}

// NewSmoothedState returns the starting state for mode m.
func NewSmoothedState(m Mode) *SmoothedState {
	st := &SmoothedState{
		Heatmap: dsp.NewHeatmap(),
	}

	if m == ModeEntity {
		st.Tension = 1.5
		st.DeformScale = 0.1
	}

	return st
}

// Dispose releases the state. A disposed state is never advanced again.
func (st *SmoothedState) Dispose() {
	*st = SmoothedState{disposed: true}
}

// Disposed reports whether Dispose was called.
func (st *SmoothedState) Disposed() bool {
	return st.disposed
}
