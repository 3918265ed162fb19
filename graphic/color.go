package graphic

import (
	"math"

	"github.com/noriah/soundfield/dsp"
	"github.com/noriah/soundfield/visual"

	"github.com/nsf/termbox-go"
)

// Styles are termbox attributes in 256 color mode.
const (
	StyleDefault     = termbox.ColorDefault
	StyleDefaultBack = termbox.ColorDefault
	StyleHeader      = termbox.Attribute(254) | termbox.AttrBold
	StyleBase        = termbox.Attribute(241)
)

// cubeLevel quantizes one channel onto the 6 step xterm color cube.
func cubeLevel(v float64) int {
	return int(math.Round(dsp.Clamp(v, 0, 1) * 5))
}

// Attribute256 maps c to the nearest color of the xterm 6x6x6 cube. termbox
// attributes in Output256 mode are the palette index plus one.
func Attribute256(c dsp.Color) termbox.Attribute {
	idx := 16 + 36*cubeLevel(c.R) + 6*cubeLevel(c.G) + cubeLevel(c.B)
	return termbox.Attribute(idx + 1)
}

// colorAmount is how much heat color survives the silence fade and bypass.
func colorAmount(f *visual.UniformFrame) float64 {
	amount := f.Heat.Fade

	switch f.Mode {
	case visual.ModeBlob:
		amount *= 1 - f.Blob.Wet.Bypass
	case visual.ModeEntity:
		amount *= f.Entity.Core.Opacity
	}

	return dsp.Clamp(amount, 0, 1)
}

// bandStyle returns the attribute for band i.
func bandStyle(f *visual.UniformFrame, i int) termbox.Attribute {
	return Attribute256(dsp.Tint(f.Heat.Relative[i], colorAmount(f)))
}
