package visual

import "github.com/noriah/soundfield/dsp"

// frameContext carries the inputs of one frame.
type frameContext struct {
	elapsed float64
	delta   float64
	raw     RawAudioFrame
	params  UserParameters
	fast    *dsp.Smoother
	slow    *dsp.Smoother
}

// advanceFunc runs one frame of a visual against its state.
type advanceFunc func(st *SmoothedState, fc *frameContext, out *UniformFrame)

var advancers = [numModes]advanceFunc{
	ModeBlob:   advanceBlob,
	ModeEntity: advanceEntity,
}

// Instance is one mounted visual and the SmoothedState it owns.
type Instance struct {
	mode  Mode
	state *SmoothedState
}

// NewInstance creates the visual for mode m with fresh state.
func NewInstance(m Mode) *Instance {
	return &Instance{
		mode:  m,
		state: NewSmoothedState(m),
	}
}

func (inst *Instance) Mode() Mode {
	return inst.mode
}

func (inst *Instance) State() *SmoothedState {
	return inst.state
}

// Dispose releases the state; the instance stops advancing.
func (inst *Instance) Dispose() {
	inst.state.Dispose()
}

func (inst *Instance) advance(fc *frameContext, out *UniformFrame) {
	if inst.state.Disposed() {
		return
	}

	advancers[inst.mode](inst.state, fc, out)
}

// filterCommon runs the shared fast filters: band vector and heatmap range.
func filterCommon(st *SmoothedState, fc *frameContext, out *UniformFrame) {
	fc.fast.SmoothBands(&st.Bands, &fc.raw.SpectralBands)
	rng := st.Heatmap.Update(fc.fast, &st.Bands)

	out.Time = fc.elapsed
	out.Bands = st.Bands
	out.Heat = Heat{
		Range:    rng,
		Relative: rng.RelativeBands(&st.Bands),
		Fade:     rng.SilenceFade(),
	}
}
