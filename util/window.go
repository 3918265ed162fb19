package util

import (
	"gonum.org/v1/gonum/stat"
)

// MovingWindow keeps the last Cap values and their statistics.
//
// values is a ring; head is the index of the oldest value. Statistics are
// recalculated on each change, windows here are small.
type MovingWindow struct {
	values  []float64
	ordered []float64

	head   int
	length int

	average float64
	stddev  float64
}

// NewMovingWindow returns a new moving window.
func NewMovingWindow(size int) *MovingWindow {
	if size < 1 {
		size = 1
	}

	return &MovingWindow{
		values:  make([]float64, size),
		ordered: make([]float64, 0, size),
	}
}

func (mw *MovingWindow) calcFinal() (float64, float64) {
	mw.ordered = mw.ordered[:0]
	for i := 0; i < mw.length; i++ {
		mw.ordered = append(mw.ordered, mw.values[(mw.head+i)%len(mw.values)])
	}

	switch mw.length {
	case 0:
		mw.average, mw.stddev = 0, 0
	case 1:
		mw.average, mw.stddev = mw.ordered[0], 0
	default:
		mw.average, mw.stddev = stat.MeanStdDev(mw.ordered, nil)
	}

	return mw.average, mw.stddev
}

// Update adds value, pushing out the oldest one when full.
func (mw *MovingWindow) Update(value float64) (float64, float64) {
	size := len(mw.values)

	if mw.length < size {
		mw.values[(mw.head+mw.length)%size] = value
		mw.length++
	} else {
		mw.values[mw.head] = value
		mw.head = (mw.head + 1) % size
	}

	return mw.calcFinal()
}

// Drop removes the count oldest items from the window
func (mw *MovingWindow) Drop(count int) (float64, float64) {
	if count > mw.length {
		count = mw.length
	}

	if count > 0 {
		mw.head = (mw.head + count) % len(mw.values)
		mw.length -= count
	}

	return mw.calcFinal()
}

// Len returns how many items in the window
func (mw *MovingWindow) Len() int {
	return mw.length
}

// Cap returns max size of window
func (mw *MovingWindow) Cap() int {
	return len(mw.values)
}

// Mean is the moving window average
func (mw *MovingWindow) Mean() float64 {
	return mw.average
}

// StdDev is the moving window sample standard deviation
func (mw *MovingWindow) StdDev() float64 {
	return mw.stddev
}

// Stats returns the statistics of this window
func (mw *MovingWindow) Stats() (float64, float64) {
	return mw.average, mw.stddev
}
