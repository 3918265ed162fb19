package dsp

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// NumBands is the number of spectral bands delivered per analysis frame.
const NumBands = 10

// Bands holds one energy value per spectral band, lowest band first.
type Bands [NumBands]float64

// BandsFrom copies src into a band vector. Missing entries become zero and
// negative or non-finite entries are clamped to zero.
func BandsFrom(src []float64) Bands {
	var b Bands

	for idx := range b {
		if idx >= len(src) {
			break
		}

		b[idx] = NonNegative(src[idx])
	}

	return b
}

// Energy is the mean band value.
func (b *Bands) Energy() float64 {
	return floats.Sum(b[:]) / NumBands
}

// Min returns the lowest band value.
func (b *Bands) Min() float64 {
	return floats.Min(b[:])
}

// Max returns the highest band value.
func (b *Bands) Max() float64 {
	return floats.Max(b[:])
}

// NonNegative clamps negative and non-finite values to zero.
func NonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0.0 {
		return 0.0
	}

	return v
}
