package host

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAnalysis(t *testing.T) {
	a, err := DecodeAnalysis([]byte(`{
		"dryRms": 0.1, "wetRms": 0.2, "dryWidth": 0.3, "wetWidth": 0.4,
		"inputL": 0.5, "inputR": 0.6, "outputL": 0.7, "outputR": 0.8,
		"spectralLow": 1, "spectralMid": 2, "spectralHigh": 3,
		"spectralBands": [1, 2, 3], "cppBypass": true
	}`))
	require.NoError(t, err)

	assert.Equal(t, 0.2, a.WetRMS)
	assert.Equal(t, 0.8, a.OutputR)
	assert.Equal(t, []float64{1, 2, 3}, a.SpectralBands)
	assert.True(t, a.HostBypass)

	_, err = DecodeAnalysis([]byte(`{"wetRms": "loud"}`))
	assert.Error(t, err)
}

func TestDecodeSlider(t *testing.T) {
	v, ok, err := DecodeSlider([]byte(`{"scaledValue": -42.5}`))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, -42.5, v)

	_, ok, err = DecodeSlider([]byte(`{"value": 3}`))
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = DecodeSlider([]byte(`[`))
	assert.Error(t, err)
}

func TestDecodeToggle(t *testing.T) {
	v, ok, err := DecodeToggle(EncodeToggle(true))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, v)

	_, ok, err = DecodeToggle([]byte(`{}`))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEncodeAnalysisShape(t *testing.T) {
	a := Synthesize(3.2, false)

	payload, err := EncodeAnalysis(a)
	require.NoError(t, err)

	back, err := DecodeAnalysis(payload)
	require.NoError(t, err)
	assert.Equal(t, a, back)
}

func TestEncodeAnalysisRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		payload, err := EncodeAnalysis(Analysis{WetRMS: v})
		assert.Error(t, err)
		assert.Nil(t, payload)
	}

	_, err := EncodeAnalysis(Analysis{SpectralBands: []float64{0.1, math.NaN()}})
	assert.Error(t, err)
}
