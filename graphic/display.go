// Package graphic is the terminal render stage. It draws every uniform frame
// as a row of heat colored band bars and turns key presses into parameter
// changes.
package graphic

import (
	"context"
	"sync"

	"github.com/noriah/soundfield/host"
	"github.com/noriah/soundfield/visual"
	"github.com/pkg/errors"

	"github.com/nsf/termbox-go"
)

// Key step sizes.
const (
	MixStep        = 0.05
	ExpansionStep  = 5.0
	ExcitationStep = 5.0
)

// Controls receives the user input the display reads from the keyboard.
type Controls interface {
	Parameters() visual.UserParameters
	ToggleMode() visual.Mode
	ToggleBypass() error
	Nudge(id string, delta float64) error
}

type Config struct {
	BarWidth   int      // bar width, fit to the screen if zero
	SpaceWidth int      // columns between bars
	BaseThick  int      // rows of base under the bars
	Controls   Controls // key handling target, keys other than quit are ignored if nil
	Kick       chan<- bool
}

// Display handles drawing our visualizer
type Display struct {
	mu  sync.Mutex
	cfg Config

	status string

	restore func()
	cancel  context.CancelFunc
	done    chan struct{} // closed when the poller exits
}

func NewDisplay(cfg Config) *Display {
	if cfg.SpaceWidth < 0 {
		cfg.SpaceWidth = 0
	}

	if cfg.BaseThick < 0 {
		cfg.BaseThick = 0
	}

	return &Display{cfg: cfg}
}

// Init sets up the terminal. Should be called before any other display
// method.
func (d *Display) Init() error {
	restore, err := normalizeTerminal()
	if err != nil {
		return err
	}

	if err = termbox.Init(); err != nil {
		restore()
		return errors.Wrap(err, "failed to init termbox")
	}

	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.Output256)
	termbox.HideCursor()

	d.restore = restore

	return nil
}

// Start starts the event poller. The returned context is canceled when the
// user quits.
func (d *Display) Start(ctx context.Context) context.Context {
	return d.start(ctx, termbox.PollEvent)
}

func (d *Display) start(ctx context.Context, poll func() termbox.Event) context.Context {
	ctx, d.cancel = context.WithCancel(ctx)
	d.done = make(chan struct{})

	go func() {
		// done closes before the context is canceled, so Stop never
		// interrupts a poller that already quit.
		defer d.cancel()
		defer close(d.done)

		for {
			if d.handleEvent(poll()) {
				return
			}
		}
	}()

	return ctx
}

// Stop stops the event poller and waits for it to exit. It returns at once
// if the poller already quit on a key press.
func (d *Display) Stop() error {
	if d.done == nil {
		return nil
	}

	select {
	case <-d.done:
	default:
		// Interrupt blocks until a PollEvent in progress receives it.
		termbox.Interrupt()
		<-d.done
	}

	return nil
}

// Close will stop display and clean up the terminal.
func (d *Display) Close() error {
	termbox.Close()

	if d.restore != nil {
		d.restore()
	}

	return nil
}

// Write draws one frame.
func (d *Display) Write(f *visual.UniformFrame) error {
	d.mu.Lock()
	status := d.status
	d.mu.Unlock()

	var params visual.UserParameters
	if d.cfg.Controls != nil {
		params = d.cfg.Controls.Parameters()
	}

	if err := termbox.Clear(StyleDefault, StyleDefaultBack); err != nil {
		return err
	}

	draw(f, params, d.cfg, status)

	return termbox.Flush()
}

func (d *Display) setStatus(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err != nil {
		d.status = err.Error()
	} else {
		d.status = ""
	}
}

func (d *Display) kick() {
	if d.cfg.Kick == nil {
		return
	}

	select {
	case d.cfg.Kick <- true:
	default:
	}
}

// handleEvent applies one terminal event and reports whether the display
// should quit.
func (d *Display) handleEvent(ev termbox.Event) bool {
	switch ev.Type {
	case termbox.EventInterrupt:
		return true

	case termbox.EventError:
		d.setStatus(ev.Err)
		return true

	case termbox.EventResize:
		d.kick()
		return false

	case termbox.EventKey:

	default:
		return false
	}

	switch ev.Key {
	case termbox.KeyCtrlC, termbox.KeyEsc:
		return true
	}

	if ev.Ch == 'q' || ev.Ch == 'Q' {
		return true
	}

	ctl := d.cfg.Controls
	if ctl == nil {
		return false
	}

	var err error

	switch ev.Key {
	case termbox.KeyArrowRight:
		err = ctl.Nudge(host.ParamMix, MixStep)

	case termbox.KeyArrowLeft:
		err = ctl.Nudge(host.ParamMix, -MixStep)

	case termbox.KeyArrowUp:
		err = ctl.Nudge(host.ParamExpansion, ExpansionStep)

	case termbox.KeyArrowDown:
		err = ctl.Nudge(host.ParamExpansion, -ExpansionStep)

	default:
		switch ev.Ch {
		case 'm', 'M':
			ctl.ToggleMode()

		case 'b', 'B':
			err = ctl.ToggleBypass()

		case 'e':
			err = ctl.Nudge(host.ParamExcitation, -ExcitationStep)

		case 'E':
			err = ctl.Nudge(host.ParamExcitation, ExcitationStep)

		default:
			return false
		}
	}

	d.setStatus(err)
	d.kick()

	return false
}
