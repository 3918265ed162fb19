package dsp

// Color is a linear RGB triple in [0, 1].
type Color struct {
	R, G, B float64
}

// Palette stops, from silence to hot.
var (
	Grey   = Color{0.4, 0.4, 0.4}
	Blue   = Color{0.0, 0.4, 1.0}
	Green  = Color{0.0, 1.0, 0.6}
	Yellow = Color{1.0, 1.0, 0.0}
	Red    = Color{1.0, 0.3, 0.0}
)

// Mix blends c toward o by t.
func (c Color) Mix(o Color, t float64) Color {
	return Color{
		R: Lerp(c.R, o.R, t),
		G: Lerp(c.G, o.G, t),
		B: Lerp(c.B, o.B, t),
	}
}

// HeatColor maps a relative value to the grey, blue, green, yellow, red
// gradient.
func HeatColor(t float64) Color {
	t1 := Smoothstep(0.0, 1.0, Clamp(t*2.5, 0.0, 1.0))
	t2 := Smoothstep(0.0, 1.0, Clamp((t-0.35)*3.5, 0.0, 1.0))
	t3 := Smoothstep(0.0, 1.0, Clamp((t-0.55)*4.0, 0.0, 1.0))
	t4 := Smoothstep(0.0, 1.0, Clamp((t-0.75)*4.0, 0.0, 1.0))

	c := Grey.Mix(Blue, t1)
	c = c.Mix(Green, t2)
	c = c.Mix(Yellow, t3)
	return c.Mix(Red, t4)
}

// Tint is the heat color for rel, faded toward grey when fade is low.
func Tint(rel, fade float64) Color {
	return Grey.Mix(HeatColor(rel), fade)
}
