package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/noriah/soundfield/dsp"
	"github.com/noriah/soundfield/processor"
	"github.com/noriah/soundfield/visual"
	"github.com/pkg/errors"
)

// RawOutput handles printing our raw data.
type RawOutput struct {
	w    *bufio.Writer
	json bool
}

var _ processor.Output = &RawOutput{}

func NewRawOutput(w io.Writer, asJSON bool) *RawOutput {
	return &RawOutput{
		w:    bufio.NewWriter(w),
		json: asJSON,
	}
}

// Write prints one frame per line. The text form is the elapsed time, the
// mode, each band as a percentage on the heatmap's log scale, then the input
// and output meters.
func (d *RawOutput) Write(f *visual.UniformFrame) error {
	if d.json {
		if err := json.NewEncoder(d.w).Encode(f); err != nil {
			return errors.Wrap(err, "failed to encode frame")
		}
		return d.w.Flush()
	}

	fmt.Fprintf(d.w, "%8.3f %-6s", f.Time, f.Mode)

	for _, v := range f.Bands {
		fmt.Fprintf(d.w, " %6.2f", dsp.DecibelPercent(v))
	}

	fmt.Fprintf(d.w, " | %6.2f %6.2f\n", f.Meters.Input, f.Meters.Output)

	return d.w.Flush()
}
