package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/noriah/soundfield/graphic"
	"github.com/noriah/soundfield/host"
	"github.com/noriah/soundfield/processor"
	"github.com/noriah/soundfield/visual"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
)

// AppName is the app name
const AppName = "soundfield"

// AppDesc is the app description
const AppDesc = "Audio reactive parameter pipeline for plugin host visuals"

// AppSite is the app website
const AppSite = "https://github.com/noriah/soundfield"

var version = "unknown"

func main() {
	log.SetFlags(0)

	cfg := newZeroConfig()

	if doFlags(&cfg) {
		return
	}

	chk(cfg.validate(), "invalid config")

	chk(soundfield(&cfg), "failed to run soundfield")
}

// controls joins the scene and its inputs for the display key handler.
type controls struct {
	*visual.Scene
	*visual.Inputs
}

var _ graphic.Controls = controls{}

func openScript(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	return f, errors.Wrap(err, "failed to open script")
}

func soundfield(cfg *config) error {

	// BRIDGE SETUP

	opts := host.Options{Rate: cfg.generatorRate}

	if cfg.script != "" {
		script, err := openScript(cfg.script)
		if err != nil {
			return err
		}
		defer script.Close()

		opts.Script = script
	}

	bridge, err := host.InitBridge(cfg.bridge, opts)
	if err != nil {
		return err
	}
	defer bridge.Close()

	// SCENE SETUP

	inputs := visual.NewInputs(visual.InputsConfig{IdleTimeout: cfg.idle})
	inputs.Bind(bridge)
	defer inputs.Close()

	scene := visual.NewScene(visual.SceneConfig{
		Inputs:    inputs,
		Mode:      cfg.initialMode,
		FastRate:  cfg.fastRate,
		SlowRate:  cfg.slowRate,
		Normalize: cfg.normalize,
		FrameRate: float64(cfg.frameRate),
	})
	defer scene.Close()

	// Root Context
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	kick := make(chan bool, 1)

	// OUTPUT SETUP

	var out processor.Output

	if cfg.raw {
		out = NewRawOutput(os.Stdout, cfg.json)
	} else {
		display := graphic.NewDisplay(graphic.Config{
			BarWidth:   cfg.barSize,
			SpaceWidth: cfg.spaceSize,
			BaseThick:  cfg.baseSize,
			Controls:   controls{scene, inputs},
			Kick:       kick,
		})

		if err = display.Init(); err != nil {
			return err
		}
		defer display.Close()

		ctx = display.Start(ctx)
		defer display.Stop()

		out = display
	}

	var logger *log.Logger
	if cfg.verbose {
		logger = log.New(os.Stderr, "", 0)
	}

	proc := processor.New(processor.Config{
		FrameRate: cfg.frameRate,
		Scene:     scene,
		Output:    out,
		Logger:    logger,
	})

	ctx, stop := context.WithCancel(ctx)
	defer stop()

	bridgeErr := make(chan error, 1)

	go func() {
		err := bridge.Run(ctx)

		// a finished script leaves the display frozen on its last values,
		// raw output has nothing left to print.
		if err != nil || cfg.raw {
			stop()
		}

		bridgeErr <- err
	}()

	if err = proc.Process(ctx, kick); err != nil {
		return err
	}

	stop()

	if err = <-bridgeErr; err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrap(err, "host bridge failed")
	}

	return nil
}

func doFlags(cfg *config) bool {

	parser := flaggy.NewParser(AppName)
	parser.Description = AppDesc
	parser.AdditionalHelpPrepend = AppSite
	parser.Version = version

	listBridgesCmd := flaggy.Subcommand{
		Name:                 "list-bridges",
		ShortName:            "lb",
		Description:          "list all supported host bridges",
		AdditionalHelpAppend: "\nuse the full name after the '-'",
	}

	parser.AttachSubcommand(&listBridgesCmd, 1)

	parser.String(&cfg.bridge, "b", "bridge", "host bridge name")
	parser.String(&cfg.script, "s", "script", "event script for the script bridge ('-' for stdin)")
	parser.Float64(&cfg.generatorRate, "gr", "generator-rate", "analysis events per second from the generator")
	parser.Int(&cfg.frameRate, "f", "fps", "frame rate")
	parser.String(&cfg.mode, "m", "mode", "initial mode (blob, entity)")
	parser.Duration(&cfg.idle, "i", "idle", "decay to silence after no analysis for this long (0 to freeze)")
	parser.Bool(&cfg.normalize, "n", "normalize", "normalize smoothing rates by frame time")
	parser.Float64(&cfg.fastRate, "fa", "fast-rate", "audio smoothing rate (0, 1]")
	parser.Float64(&cfg.slowRate, "fu", "slow-rate", "ui smoothing rate (0, 1]")
	parser.Bool(&cfg.raw, "r", "raw", "print frames instead of drawing them")
	parser.Bool(&cfg.json, "j", "json", "print raw frames as json lines")
	parser.Bool(&cfg.verbose, "v", "verbose", "log frame timing to stderr")
	parser.Int(&cfg.baseSize, "bt", "base", "base thickness [0, +Inf)")
	parser.Int(&cfg.barSize, "bw", "bar", "bar width [0, +Inf), 0 fits the screen")
	parser.Int(&cfg.spaceSize, "sw", "space", "space width [0, +Inf)")

	chk(parser.Parse(), "failed to parse arguments")

	if listBridgesCmd.Used {
		for _, name := range host.GetAllBridgeNames() {
			fmt.Printf("- %s\n", name)
		}

		return true
	}

	return false
}

func chk(err error, wrap string) {
	if err != nil {
		log.Fatalln(wrap+": ", err)
	}
}
