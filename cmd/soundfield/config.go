package main

import (
	"time"

	"github.com/noriah/soundfield/dsp"
	"github.com/noriah/soundfield/host"
	"github.com/noriah/soundfield/visual"
	"github.com/pkg/errors"
)

// Config is a temporary struct to define parameters
type config struct {
	// bridge is the bridge name from list-bridges
	bridge string
	// script is the event script for the script bridge, "-" reads stdin
	script string
	// generatorRate is the analysis event rate of the generator bridge
	generatorRate float64
	// frameRate is the number of frames to draw every second
	frameRate int
	// mode is the initial visual
	mode string
	// idle serves silence after this long without analysis frames, 0 never
	idle time.Duration
	// normalize filter rates by elapsed frame time
	normalize bool
	// fastRate is the audio smoothing rate
	fastRate float64
	// slowRate is the UI smoothing rate
	slowRate float64
	// raw prints frames instead of drawing them
	raw bool
	// json prints raw frames as JSON lines
	json bool
	// verbose logs frame timing to stderr
	verbose bool
	// barSize is the size of bars in columns, 0 fits the screen
	barSize int
	// spaceSize is the size of spaces, in columns
	spaceSize int
	// baseSize number of rows the base is
	baseSize int

	// initialMode is mode parsed by validate
	initialMode visual.Mode
}

// newZeroConfig returns a zero config
// it is the "default"
func newZeroConfig() config {
	return config{
		bridge:        "generator",
		generatorRate: 15,
		frameRate:     60,
		mode:          "blob",
		fastRate:      dsp.FastRate,
		slowRate:      dsp.SlowRate,
		barSize:       0,
		spaceSize:     1,
		baseSize:      1,
	}
}

// validate cleans things up
func (cfg *config) validate() error {
	if !host.HasBridge(cfg.bridge) {
		return errors.Errorf("unknown bridge %q; check list-bridges", cfg.bridge)
	}

	if cfg.bridge == "script" && cfg.script == "" {
		return errors.New("script bridge needs a script (-s)")
	}

	if cfg.frameRate < 1 {
		return errors.New("frame rate too low (1 min)")
	}

	if cfg.generatorRate <= 0 {
		return errors.New("generator rate must be positive")
	}

	if cfg.idle < 0 {
		cfg.idle = 0
	}

	switch {
	case cfg.fastRate <= 0 || cfg.fastRate > 1:
		return errors.Errorf("fast rate %v out of range (0, 1]", cfg.fastRate)

	case cfg.slowRate <= 0 || cfg.slowRate > 1:
		return errors.Errorf("slow rate %v out of range (0, 1]", cfg.slowRate)
	}

	mode, err := visual.ParseMode(cfg.mode)
	if err != nil {
		return err
	}
	cfg.initialMode = mode

	if cfg.json {
		cfg.raw = true
	}

	if cfg.barSize < 0 {
		cfg.barSize = 0
	}

	if cfg.spaceSize < 0 {
		cfg.spaceSize = 0
	}

	if cfg.baseSize < 0 {
		cfg.baseSize = 0
	}

	return nil
}
