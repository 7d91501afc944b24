package main

import (
	"image/color"
	"math"
)

// A Color is a linear RGB color. Channels are nominally in [0, 1], but
// intermediate results may leave that range; see Clamp.
type Color struct {
	R, G, B float64
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Mul multiplies c and o channel-wise.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Mix returns c moved toward o by fraction t: c*(1-t) + o*t.
func Mix(c, o Color, t float64) Color {
	return c.Scale(1 - t).Add(o.Scale(t))
}

// Clamp clamps each channel to [0, 1]. NaN channels become 0.
func (c Color) Clamp() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

func clamp01(x float64) float64 {
	switch {
	case math.IsNaN(x), x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}

// NRGBA converts c to an 8-bit color with the given alpha in [0, 1].
func (c Color) NRGBA(alpha float64) color.NRGBA {
	c = c.Clamp()
	to8 := func(x float64) uint8 { return uint8(math.Round(x * 255)) }
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(clamp01(alpha))}
}
