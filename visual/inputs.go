package visual

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/noriah/soundfield/dsp"
	"github.com/noriah/soundfield/host"
)

type InputsConfig struct {
	// IdleTimeout, when positive, makes Snapshot report a silent frame once
	// no analysis frame has arrived for this long. Zero keeps the last frame
	// forever.
	IdleTimeout time.Duration
	// Now is the clock used for idle tracking. Defaults to time.Now.
	Now func() time.Time
}

// Inputs holds the most recent analysis frame and parameter values. Every
// inbound event replaces the previous value; nothing is queued.
//
// Bridges deliver on their own goroutines, so access is guarded by a mutex.
type Inputs struct {
	mu sync.Mutex

	frame    RawAudioFrame
	params   UserParameters
	hasFrame bool
	lastSeen time.Time
	dropped  int

	idle time.Duration
	now  func() time.Time

	bridge host.Bridge
	unsubs []func()
}

func NewInputs(cfg InputsConfig) *Inputs {
	in := &Inputs{
		params: DefaultParameters(),
		idle:   cfg.IdleTimeout,
		now:    cfg.Now,
	}

	if in.now == nil {
		in.now = time.Now
	}

	return in
}

// Bind subscribes to every event the pipeline consumes on b. UI-side
// parameter changes are sent back through b. Binding again replaces the
// previous bridge.
func (in *Inputs) Bind(b host.Bridge) {
	in.Unbind()

	unsubs := []func(){
		b.Subscribe(host.EventAnalysis, in.onAnalysis),
		b.Subscribe(host.ParamBypass, in.onToggle),
	}

	for _, id := range host.SliderParams {
		id := id
		unsubs = append(unsubs, b.Subscribe(id, func(payload []byte) {
			in.onSlider(id, payload)
		}))
	}

	in.mu.Lock()
	in.bridge = b
	in.unsubs = unsubs
	in.mu.Unlock()
}

// Unbind drops every subscription. The last values are kept.
func (in *Inputs) Unbind() {
	in.mu.Lock()
	unsubs := in.unsubs
	in.unsubs = nil
	in.bridge = nil
	in.mu.Unlock()

	for _, fn := range unsubs {
		fn()
	}
}

// Close is Unbind.
func (in *Inputs) Close() error {
	in.Unbind()
	return nil
}

func (in *Inputs) onAnalysis(payload []byte) {
	a, err := host.DecodeAnalysis(payload)
	if err != nil {
		in.drop()
		return
	}

	in.SetFrame(FrameFromAnalysis(a))
}

func (in *Inputs) onSlider(id string, payload []byte) {
	v, ok, err := host.DecodeSlider(payload)
	if err != nil || !ok {
		in.drop()
		return
	}

	in.mu.Lock()
	in.params.set(id, v)
	in.mu.Unlock()
}

func (in *Inputs) onToggle(payload []byte) {
	v, ok, err := host.DecodeToggle(payload)
	if err != nil || !ok {
		in.drop()
		return
	}

	in.mu.Lock()
	in.params.Bypass = v
	in.mu.Unlock()
}

func (in *Inputs) drop() {
	in.mu.Lock()
	in.dropped++
	in.mu.Unlock()
}

// Dropped returns how many malformed events were ignored.
func (in *Inputs) Dropped() int {
	in.mu.Lock()
	defer in.mu.Unlock()

	return in.dropped
}

// SetFrame replaces the analysis snapshot.
func (in *Inputs) SetFrame(f RawAudioFrame) {
	in.mu.Lock()
	defer in.mu.Unlock()

	in.frame = f
	in.hasFrame = true
	in.lastSeen = in.now()
}

// Snapshot returns the current frame and clamped parameters. Before the
// first analysis frame, and after the idle timeout, the frame is silent.
func (in *Inputs) Snapshot() (RawAudioFrame, UserParameters) {
	in.mu.Lock()
	defer in.mu.Unlock()

	frame := in.frame

	switch {
	case !in.hasFrame:
		frame = RawAudioFrame{}
	case in.idle > 0 && in.now().Sub(in.lastSeen) > in.idle:
		frame = RawAudioFrame{}
	}

	return frame, in.params.Clamp()
}

// Parameters returns the clamped parameters.
func (in *Inputs) Parameters() UserParameters {
	_, p := in.Snapshot()
	return p
}

// SetParameter sets a slider from the UI side and sends it to the host.
func (in *Inputs) SetParameter(id string, v float64) error {
	in.mu.Lock()

	p := in.params
	if !p.set(id, v) {
		in.mu.Unlock()
		return errors.Errorf("unknown parameter %q", id)
	}

	p = p.Clamp()
	v, _ = p.get(id)
	in.params = p
	bridge := in.bridge

	in.mu.Unlock()

	if bridge == nil {
		return nil
	}

	return errors.Wrapf(bridge.Send(id, host.EncodeSlider(v)), "failed to send %q", id)
}

// Nudge moves a slider by delta.
func (in *Inputs) Nudge(id string, delta float64) error {
	in.mu.Lock()
	v, ok := in.params.Clamp().get(id)
	in.mu.Unlock()

	if !ok {
		return errors.Errorf("unknown parameter %q", id)
	}

	return in.SetParameter(id, v+delta)
}

// SetBypass sets bypass from the UI side and sends it to the host.
func (in *Inputs) SetBypass(v bool) error {
	in.mu.Lock()
	in.params.Bypass = v
	bridge := in.bridge
	in.mu.Unlock()

	if bridge == nil {
		return nil
	}

	return errors.Wrap(bridge.Send(host.ParamBypass, host.EncodeToggle(v)), "failed to send bypass")
}

// ToggleBypass flips bypass.
func (in *Inputs) ToggleBypass() error {
	in.mu.Lock()
	v := !in.params.Bypass
	in.mu.Unlock()

	return in.SetBypass(v)
}

// Meters holds the meter readings in percent.
type Meters struct {
	Input  float64
	Output float64
}

// MetersFor computes meter readings. The input meter includes the input
// gain stage.
func MetersFor(f RawAudioFrame, p UserParameters) Meters {
	return Meters{
		Input:  dsp.MeterPercent(maxf(f.InputL, f.InputR), p.InputGain),
		Output: dsp.DecibelPercent(maxf(f.OutputL, f.OutputR)),
	}
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
