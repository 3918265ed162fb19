package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noriah/soundfield/dsp"
	"github.com/noriah/soundfield/visual"
)

func TestZeroConfigIsValid(t *testing.T) {
	cfg := newZeroConfig()
	require.NoError(t, cfg.validate())

	assert.Equal(t, visual.ModeBlob, cfg.initialMode)
	assert.Equal(t, 60, cfg.frameRate)
	assert.Equal(t, dsp.FastRate, cfg.fastRate)
	assert.Equal(t, dsp.SlowRate, cfg.slowRate)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*config)
		valid bool
	}{
		{"unknown bridge", func(c *config) { c.bridge = "nope" }, false},
		{"script without path", func(c *config) { c.bridge = "script" }, false},
		{"script with path", func(c *config) { c.bridge = "script"; c.script = "-" }, true},
		{"zero fps", func(c *config) { c.frameRate = 0 }, false},
		{"zero generator rate", func(c *config) { c.generatorRate = 0 }, false},
		{"fast rate above one", func(c *config) { c.fastRate = 1.5 }, false},
		{"slow rate zero", func(c *config) { c.slowRate = 0 }, false},
		{"unknown mode", func(c *config) { c.mode = "sphere" }, false},
		{"entity mode", func(c *config) { c.mode = "Entity" }, true},
		{"negative sizes", func(c *config) { c.barSize, c.spaceSize, c.baseSize = -1, -1, -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newZeroConfig()
			tt.edit(&cfg)

			err := cfg.validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestConfigValidateSanitizes(t *testing.T) {
	cfg := newZeroConfig()
	cfg.mode = "entity"
	cfg.json = true
	cfg.idle = -1
	cfg.barSize, cfg.spaceSize, cfg.baseSize = -3, -2, -1

	require.NoError(t, cfg.validate())

	assert.Equal(t, visual.ModeEntity, cfg.initialMode)
	assert.True(t, cfg.raw)
	assert.Zero(t, cfg.idle)
	assert.Zero(t, cfg.barSize)
	assert.Zero(t, cfg.spaceSize)
	assert.Zero(t, cfg.baseSize)
}

func TestRawOutputText(t *testing.T) {
	var buf bytes.Buffer
	out := NewRawOutput(&buf, false)

	f := visual.UniformFrame{Mode: visual.ModeEntity, Time: 1.5}
	f.Bands[0] = 1
	f.Bands[1] = 0.01
	f.Meters.Input = 50

	require.NoError(t, out.Write(&f))

	fields := strings.Fields(buf.String())
	require.Len(t, fields, 2+dsp.NumBands+3)

	assert.Equal(t, "1.500", fields[0])
	assert.Equal(t, "entity", fields[1])
	assert.Equal(t, "100.00", fields[2])
	assert.Equal(t, "33.33", fields[3])
	assert.Equal(t, "0.00", fields[4])
	assert.Equal(t, "|", fields[12])
	assert.Equal(t, "50.00", fields[13])
}

func TestRawOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	out := NewRawOutput(&buf, true)

	sc := visual.NewScene(visual.SceneConfig{Mode: visual.ModeEntity})
	f := sc.Frame(0)

	require.NoError(t, out.Write(&f))
	require.NoError(t, out.Write(&f))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var got visual.UniformFrame
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &got))
	assert.Equal(t, f, got)
}
