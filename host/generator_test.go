package host

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesize(t *testing.T) {
	for ts := 0.0; ts < 30; ts += 0.37 {
		a := Synthesize(ts, false)
		require.Len(t, a.SpectralBands, 10)

		for _, b := range a.SpectralBands {
			assert.GreaterOrEqual(t, b, 0.0)
		}
		assert.GreaterOrEqual(t, a.WetRMS, 0.0)
	}

	bypassed := Synthesize(4, true)
	assert.Equal(t, 0.0, bypassed.WetRMS)
	assert.Equal(t, bypassed.InputL, bypassed.OutputL)
	assert.True(t, bypassed.HostBypass)
}

func TestGeneratorEchoesParameters(t *testing.T) {
	g := NewGenerator(0)

	var echoed []byte
	g.Subscribe(ParamBypass, func(p []byte) { echoed = p })

	require.NoError(t, g.Send(ParamBypass, EncodeToggle(true)))
	assert.Equal(t, EncodeToggle(true), echoed)
	assert.True(t, g.bypass)
}

func TestGeneratorRunEmitsFrames(t *testing.T) {
	g := NewGenerator(200)

	frames := make(chan Analysis, 16)
	g.Subscribe(EventAnalysis, func(p []byte) {
		a, err := DecodeAnalysis(p)
		if err == nil {
			select {
			case frames <- a:
			default:
			}
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()

	select {
	case a := <-frames:
		assert.Len(t, a.SpectralBands, 10)
	case <-time.After(2 * time.Second):
		t.Fatal("no analysis frame emitted")
	}

	cancel()
	assert.NoError(t, <-done)
}
