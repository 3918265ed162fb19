package host

import (
	"context"
	"math"
	"sync"
	"time"
)

// DefaultAnalysisRate is how often the plugin host pushes analysis frames.
const DefaultAnalysisRate = 15.0

// Generator is a synthetic host. It emits analysis frames with slowly
// drifting band energies, swelling in and out of silence, and echoes every
// parameter sent to it back to subscribers the way a host does.
type Generator struct {
	*Local

	rate float64

	mu     sync.Mutex
	bypass bool
}

func NewGenerator(rate float64) *Generator {
	if rate <= 0 {
		rate = DefaultAnalysisRate
	}

	return &Generator{
		Local: NewLocal(),
		rate:  rate,
	}
}

// Send applies a parameter change and echoes it to subscribers.
func (g *Generator) Send(id string, payload []byte) error {
	if err := g.Local.Send(id, payload); err != nil {
		return err
	}

	if id == ParamBypass {
		if v, ok, err := DecodeToggle(payload); err == nil && ok {
			g.mu.Lock()
			g.bypass = v
			g.mu.Unlock()
		}
	}

	return g.Publish(id, payload)
}

// Run emits analysis frames until ctx is done or the bridge is closed.
func (g *Generator) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Duration(float64(time.Second) / g.rate))
	defer ticker.Stop()

	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			g.mu.Lock()
			bypass := g.bypass
			g.mu.Unlock()

			payload, err := EncodeAnalysis(Synthesize(now.Sub(start).Seconds(), bypass))
			if err != nil {
				return err
			}

			if err := g.Publish(EventAnalysis, payload); err != nil {
				return nil
			}
		}
	}
}

// Synthesize builds the analysis frame for time t. While bypassed the wet
// path reports silence and the output mirrors the input.
func Synthesize(t float64, bypass bool) Analysis {
	const numBands = 10

	swell := 0.5 + 0.5*math.Sin(2*math.Pi*0.05*t)

	bands := make([]float64, numBands)
	sum := 0.0
	for idx := range bands {
		freq := 0.13 + 0.07*float64(idx)
		wobble := 0.5 + 0.5*math.Sin(2*math.Pi*freq*t+float64(idx))
		bands[idx] = (0.01 + 0.3*wobble) * swell
		sum += bands[idx]
	}

	level := (sum / numBands) * 0.6
	width := (0.1 + 0.05*math.Sin(2*math.Pi*0.2*t)) * swell

	a := Analysis{
		DryRMS:        level * 0.8,
		WetRMS:        level,
		DryWidth:      width,
		WetWidth:      width * 1.4,
		InputL:        level * 0.8,
		InputR:        level * 0.75,
		OutputL:       level,
		OutputR:       level * 0.95,
		SpectralLow:   (bands[0] + bands[1] + bands[2]) / 3,
		SpectralMid:   (bands[3] + bands[4] + bands[5] + bands[6]) / 4,
		SpectralHigh:  (bands[7] + bands[8] + bands[9]) / 3,
		SpectralBands: bands,
		HostBypass:    bypass,
	}

	if bypass {
		a.DryRMS = a.InputL
		a.WetRMS = 0
		a.DryWidth = 0
		a.WetWidth = 0
		a.OutputL = a.InputL
		a.OutputR = a.InputR
	}

	return a
}
