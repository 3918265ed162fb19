package graphic

import (
	"fmt"

	"github.com/noriah/soundfield/dsp"
	"github.com/noriah/soundfield/visual"

	"github.com/nsf/termbox-go"
)

const (
	// BarRune is the block we use for bars
	BarRune rune = '█'

	// BarRuneR is the space rune, one step below the partial runes
	BarRuneR rune = '▀'

	// NumRunes number of runes for sub step bars
	NumRunes = 8
)

// stopAndTop returns the first full row of a bar of value rows (counted from
// the bottom of a height row area) and the partial rune drawn above it.
// BarRuneR means no partial rune.
func stopAndTop(value float64, height int) (int, rune) {
	if value <= 0 || height <= 0 {
		return height, BarRuneR
	}

	steps := int(value * NumRunes)
	if limit := height * NumRunes; steps > limit {
		steps = limit
	}

	stop := height - steps/NumRunes
	top := BarRuneR + rune(steps%NumRunes)

	return stop, top
}

// layout returns the column of the first bar and the bar width that fit
// count bars in width columns.
func layout(width, count, barWidth, spaceWidth int) (int, int) {
	if count <= 0 {
		return 0, 0
	}

	if fit := (width+spaceWidth)/count - spaceWidth; barWidth <= 0 || barWidth > fit {
		barWidth = fit
	}

	if barWidth < 1 {
		barWidth = 1
	}

	padded := (barWidth+spaceWidth)*count - spaceWidth

	xCol := (width - padded) / 2
	if xCol < 0 {
		xCol = 0
	}

	return xCol, barWidth
}

func printLine(xCol, xRow int, fg termbox.Attribute, text string) {
	for _, r := range text {
		termbox.SetCell(xCol, xRow, r, fg, StyleDefaultBack)
		xCol++
	}
}

// header is the status text for one frame.
func header(f *visual.UniformFrame, p visual.UserParameters) string {
	bypass := "off"
	if p.Bypass {
		bypass = "on"
	}

	return fmt.Sprintf(
		" %-6s bypass:%-3s mix:%3.0f%% exp:%+4.0f exc:%3.0f  in:%3.0f%% out:%3.0f%%",
		f.Mode, bypass, p.Mix*100, p.Expansion, p.Excitation,
		f.Meters.Input, f.Meters.Output)
}

const keyHelp = " m mode  b bypass  ←→ mix  ↑↓ expansion  e/E excitation  q quit"

// draw renders f onto the termbox back buffer.
func draw(f *visual.UniformFrame, p visual.UserParameters, cfg Config, status string) {
	cWidth, cHeight := termbox.Size()

	printLine(0, 0, StyleHeader, header(f, p))
	printLine(0, 1, StyleDefault, keyHelp)
	if status != "" {
		printLine(0, 2, StyleDefault, " "+status)
	}

	const top = 3

	vHeight := cHeight - top - cfg.BaseThick
	if vHeight < 0 {
		vHeight = 0
	}

	xCol, barWidth := layout(cWidth, dsp.NumBands, cfg.BarWidth, cfg.SpaceWidth)

	for xBand, v := range f.Bands {
		// bars follow the same log compression as the heatmap
		stop, topRune := stopAndTop(dsp.ToLog(v)*float64(vHeight), vHeight)
		style := bandStyle(f, xBand)

		for x := xCol; x < xCol+barWidth; x++ {
			for xRow := vHeight - 1; xRow >= stop; xRow-- {
				termbox.SetCell(x, top+xRow, BarRune, style, StyleDefaultBack)
			}

			if topRune > BarRuneR && stop > 0 {
				termbox.SetCell(x, top+stop-1, topRune, style, StyleDefaultBack)
			}

			for xRow := 0; xRow < cfg.BaseThick; xRow++ {
				termbox.SetCell(x, top+vHeight+xRow, BarRune, StyleBase, StyleDefaultBack)
			}
		}

		xCol += barWidth + cfg.SpaceWidth
	}
}
