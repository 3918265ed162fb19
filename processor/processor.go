package processor

import (
	"context"
	"log"
	"time"

	"github.com/noriah/soundfield/util"
	"github.com/noriah/soundfield/visual"
	"github.com/pkg/errors"
)

// Output is the render stage. It receives one uniform frame per tick.
type Output interface {
	Write(*visual.UniformFrame) error
}

type Config struct {
	FrameRate int           // target framerate
	Scene     *visual.Scene // per-frame pipeline
	Output    Output        // data output
	Logger    *log.Logger   // frame timing reports, none if nil
	Window    int           // frames in the timing window, FrameRate if zero
}

// Processor drives the scene at a fixed rate and hands every frame to the
// output.
type Processor struct {
	frameRate int

	scene *visual.Scene
	out   Output
	log   *log.Logger

	intervals *util.MovingWindow
	lastTick  time.Time
	frames    int
}

func New(cfg Config) *Processor {
	if cfg.FrameRate <= 0 {
		// if we do not have a framerate set, allow at most 1 second per frame
		cfg.FrameRate = 1
	}

	if cfg.Window <= 0 {
		cfg.Window = cfg.FrameRate
	}

	return &Processor{
		frameRate: cfg.FrameRate,
		scene:     cfg.Scene,
		out:       cfg.Output,
		log:       cfg.Logger,
		intervals: util.NewMovingWindow(cfg.Window),
	}
}

// Step runs the scene for elapsed seconds since start and writes the frame.
func (proc *Processor) Step(elapsed float64) error {
	frame := proc.scene.Frame(elapsed)

	if proc.out == nil {
		return nil
	}

	return errors.Wrap(proc.out.Write(&frame), "output write failed")
}

// Stats returns the mean and standard deviation of recent frame intervals,
// in seconds.
func (proc *Processor) Stats() (float64, float64) {
	return proc.intervals.Stats()
}

// Frames returns the number of frames written by Process.
func (proc *Processor) Frames() int {
	return proc.frames
}

func (proc *Processor) tick(now time.Time) {
	if !proc.lastTick.IsZero() {
		proc.intervals.Update(now.Sub(proc.lastTick).Seconds())
	}
	proc.lastTick = now
	proc.frames++

	if proc.log == nil || proc.frames%proc.intervals.Cap() != 0 {
		return
	}

	mean, std := proc.intervals.Stats()
	if mean > 0 {
		proc.log.Printf("frame interval %.2fms (sd %.2fms, %.1f fps)",
			mean*1000, std*1000, 1/mean)
	}
}

// Process runs frames until ctx is done. A value on kick runs the next frame
// early. Elapsed time is measured from the call to Process.
func (proc *Processor) Process(ctx context.Context, kick <-chan bool) error {
	dur := time.Second / time.Duration(proc.frameRate)
	ticker := time.NewTicker(dur)
	defer ticker.Stop()

	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		now := time.Now()
		if err := proc.Step(now.Sub(start).Seconds()); err != nil {
			return err
		}

		proc.tick(now)

		select {
		case <-ctx.Done():
			return nil
		case <-kick:
		case <-ticker.C:
		}
		ticker.Reset(dur)
	}
}
