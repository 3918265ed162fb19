// Package visual turns the latest host snapshot into the uniform values the
// render stage consumes every frame.
package visual

import (
	"sync"

	"github.com/noriah/soundfield/dsp"
)

type SceneConfig struct {
	Inputs    *Inputs // latest host values; a default store is used if nil
	Mode      Mode    // initial mode
	FastRate  float64 // audio rate, dsp.FastRate if zero
	SlowRate  float64 // UI rate, dsp.SlowRate if zero
	Normalize bool    // normalize rates by elapsed frame time
	FrameRate float64 // reference frame rate for normalization
}

// Scene is the per-frame driver. It owns one instance per mode; only the
// active one advances, so the other keeps its state untouched until it is
// selected again.
//
// Frame and the mode methods may be called from different goroutines.
type Scene struct {
	mu sync.Mutex

	inputs    *Inputs
	modes     ModeController
	instances [numModes]*Instance

	fast *dsp.Smoother
	slow *dsp.Smoother

	last   lastFrame
	closed bool
}

type lastFrame struct {
	valid   bool
	elapsed float64
	mode    Mode
	raw     RawAudioFrame
	params  UserParameters
	frame   UniformFrame
}

func NewScene(cfg SceneConfig) *Scene {
	if cfg.Inputs == nil {
		cfg.Inputs = NewInputs(InputsConfig{})
	}

	if cfg.FastRate == 0 {
		cfg.FastRate = dsp.FastRate
	}

	if cfg.SlowRate == 0 {
		cfg.SlowRate = dsp.SlowRate
	}

	sc := &Scene{
		inputs: cfg.Inputs,
		fast: dsp.NewSmoother(dsp.SmootherConfig{
			Rate:      cfg.FastRate,
			Normalize: cfg.Normalize,
			FrameRate: cfg.FrameRate,
		}),
		slow: dsp.NewSmoother(dsp.SmootherConfig{
			Rate:      cfg.SlowRate,
			Normalize: cfg.Normalize,
			FrameRate: cfg.FrameRate,
		}),
	}

	for m := range sc.instances {
		sc.instances[m] = NewInstance(Mode(m))
	}

	sc.modes.Select(cfg.Mode)

	return sc
}

// Inputs returns the store the scene reads from.
func (sc *Scene) Inputs() *Inputs {
	return sc.inputs
}

// Mode returns the active mode.
func (sc *Scene) Mode() Mode {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	return sc.modes.Mode()
}

// SelectMode switches the active visual.
func (sc *Scene) SelectMode(m Mode) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	return sc.modes.Select(m)
}

// ToggleMode switches to the other visual.
func (sc *Scene) ToggleMode() Mode {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	return sc.modes.Toggle()
}

// Instance returns the visual for mode m.
func (sc *Scene) Instance(m Mode) *Instance {
	return sc.instances[m]
}

// Frame runs the pipeline once for elapsed seconds since start and returns
// the uniforms for the active mode. Calling it again with the same elapsed
// time and unchanged inputs returns the same frame without advancing any
// filter.
func (sc *Scene) Frame(elapsed float64) UniformFrame {
	raw, params := sc.inputs.Snapshot()

	sc.mu.Lock()
	defer sc.mu.Unlock()

	mode := sc.modes.Mode()

	if sc.closed {
		return UniformFrame{Mode: mode, Time: elapsed}
	}

	last := &sc.last
	if last.valid && last.elapsed == elapsed && last.mode == mode &&
		last.raw == raw && last.params == params {
		return last.frame
	}

	delta := 0.0
	if last.valid && elapsed > last.elapsed {
		delta = elapsed - last.elapsed
	}

	sc.fast.Advance(delta)
	sc.slow.Advance(delta)

	fc := frameContext{
		elapsed: elapsed,
		delta:   delta,
		raw:     raw,
		params:  params,
		fast:    sc.fast,
		slow:    sc.slow,
	}

	out := UniformFrame{
		Mode:   mode,
		Bloom:  sc.modes.PostProcess(),
		Meters: MetersFor(raw, params),
	}

	sc.instances[mode].advance(&fc, &out)

	*last = lastFrame{
		valid:   true,
		elapsed: elapsed,
		mode:    mode,
		raw:     raw,
		params:  params,
		frame:   out,
	}

	return out
}

// Close disposes both instances. Frames after Close are empty.
func (sc *Scene) Close() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.closed {
		return nil
	}

	sc.closed = true
	for _, inst := range sc.instances {
		inst.Dispose()
	}

	return nil
}
