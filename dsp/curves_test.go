package dsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const curveDelta = 1e-9

func TestDecibelPercent(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"negative", -1, 0},
		{"zero", 0, 0},
		{"below floor", 0.0009, 0},
		{"floor", 0.001, 0},
		{"-20dB", 0.1, 200.0 / 3.0},
		{"full scale", 1.0, 100},
		{"over full scale", 4.0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DecibelPercent(tt.in), curveDelta)
		})
	}
}

func TestMeterPercentAppliesGain(t *testing.T) {
	assert.InDelta(t, DecibelPercent(0.1), MeterPercent(0.1, 0), curveDelta)
	assert.InDelta(t, DecibelPercent(1.0), MeterPercent(0.1, 20), curveDelta)
	assert.InDelta(t, 0.0, MeterPercent(0.01, -40), curveDelta)
}

func TestDeformIntensity(t *testing.T) {
	tests := []struct {
		expansion float64
		want      float64
	}{
		{-200, 0.4},
		{-100, 0.4},
		{-50, 0.5},
		{0, 0.6},
		{50, 0.7},
		{100, 0.8},
		{250, 0.8},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, DeformIntensity(tt.expansion), curveDelta,
			"expansion=%v", tt.expansion)
	}

	assert.InDelta(t, DeformIntensity(-1e-9), DeformIntensity(1e-9), 1e-8)

	prev := DeformIntensity(-100)
	for e := -99.0; e <= 100; e++ {
		cur := DeformIntensity(e)
		assert.Greater(t, cur, prev, "expansion=%v", e)
		prev = cur
	}
}

func TestDrive(t *testing.T) {
	tests := []struct {
		rms  float64
		want float64
	}{
		{0, 3.0},
		{0.0001, 3.0},
		{Level60dB, 3.0},
		{(Level60dB + Level30dB) / 2, 2.1},
		{Level30dB, 1.2},
		{(Level30dB + Level10dB) / 2, 1.1},
		{Level10dB, 1.0},
		{1.0, 1.0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Drive(tt.rms), curveDelta, "rms=%v", tt.rms)
	}

	prev := Drive(0)
	for rms := 0.0; rms <= 1.0; rms += 0.0005 {
		cur := Drive(rms)
		assert.LessOrEqual(t, cur, prev, "rms=%v", rms)
		prev = cur
	}
}

func TestTension(t *testing.T) {
	tests := []struct {
		rms        float64
		excitation float64
		want       float64
	}{
		{0, 0, 1.0},
		{0.05, 0, 1.4},
		{Level20dB, 0, 1.8},
		{(Level20dB + Level10dB) / 2, 0, 2.235},
		{Level10dB, 0, 2.67},
		{1.0, 0, 2.67},
		{Level10dB, 100, 4.005},
		{1.0, 50, 2.67 * 1.25},
		{0, 500, 1.5},
		{0, -20, 1.0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Tension(tt.rms, tt.excitation), curveDelta,
			"rms=%v excitation=%v", tt.rms, tt.excitation)
	}
}

func TestDeformScale(t *testing.T) {
	tests := []struct {
		expansion float64
		rms       float64
		want      float64
	}{
		{-100, 0, 0.1},
		{-50, 0, 0.2},
		{0, 0, 0.3},
		{50, 0, 0.45},
		{100, 0, 0.6},
		{0, 0.25, 0.5},
		{100, 0.5, 1.0},
		{100, 10, 1.0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, DeformScale(tt.expansion, tt.rms), curveDelta,
			"expansion=%v rms=%v", tt.expansion, tt.rms)
	}

	for e := -300.0; e <= 300; e += 25 {
		assert.LessOrEqual(t, DeformScale(e, 100), MaxDeformScale)
	}
}

func TestAuraScale(t *testing.T) {
	assert.InDelta(t, 1.05, AuraScale(0), curveDelta)
	assert.InDelta(t, 1.125, AuraScale(0.5), curveDelta)
	assert.InDelta(t, 1.2, AuraScale(1), curveDelta)
	assert.InDelta(t, 1.2, AuraScale(3), curveDelta)
}

func TestDeriveEntityIsPure(t *testing.T) {
	a := DeriveEntity(35, 60, 0.7, 0.12)
	b := DeriveEntity(35, 60, 0.7, 0.12)
	assert.Equal(t, a, b)

	assert.Equal(t, EntityParams{
		DeformIntensity: DeformIntensity(35),
		Drive:           Drive(0.12),
		Tension:         Tension(0.12, 60),
		DeformScale:     DeformScale(35, 0.12),
		AuraScale:       AuraScale(0.7),
	}, a)
}
