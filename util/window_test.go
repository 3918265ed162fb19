package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovingWindowFills(t *testing.T) {
	mw := NewMovingWindow(4)

	mean, std := mw.Update(2)
	assert.Equal(t, 2.0, mean)
	assert.Equal(t, 0.0, std)

	mean, std = mw.Update(4)
	assert.InDelta(t, 3.0, mean, 1e-12)
	assert.InDelta(t, math.Sqrt2, std, 1e-12)

	assert.Equal(t, 2, mw.Len())
	assert.Equal(t, 4, mw.Cap())
}

func TestMovingWindowSlides(t *testing.T) {
	mw := NewMovingWindow(3)

	for _, v := range []float64{100, 1, 2, 3} {
		mw.Update(v)
	}

	assert.Equal(t, 3, mw.Len())
	assert.InDelta(t, 2.0, mw.Mean(), 1e-12)
	assert.InDelta(t, 1.0, mw.StdDev(), 1e-12)
}

func TestMovingWindowDrop(t *testing.T) {
	mw := NewMovingWindow(3)

	for _, v := range []float64{1, 2, 3, 4, 5} {
		mw.Update(v)
	}

	mean, _ := mw.Drop(1)
	assert.InDelta(t, 4.5, mean, 1e-12)
	assert.Equal(t, 2, mw.Len())

	mean, std := mw.Drop(10)
	assert.Equal(t, 0.0, mean)
	assert.Equal(t, 0.0, std)
	assert.Equal(t, 0, mw.Len())

	mw.Update(7)
	mean, std = mw.Stats()
	assert.Equal(t, 7.0, mean)
	assert.Equal(t, 0.0, std)
}

func TestMovingWindowMinimumSize(t *testing.T) {
	mw := NewMovingWindow(0)
	mw.Update(1)
	mw.Update(5)

	assert.Equal(t, 1, mw.Cap())
	assert.Equal(t, 5.0, mw.Mean())
}
