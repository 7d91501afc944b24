package main

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
)

// OpacityHeatMap plots the per-pixel opacity of f. Refraction can push
// opacity up to 2, so the color scale covers whatever range the frame
// actually has.
func (f *Frame) OpacityHeatMap() *plot.Plot {
	plt := plot.New()
	plt.Title.Text = "Opacity"
	plt.X.Label.Text = "x"
	plt.Y.Label.Text = "y"
	plt.BackgroundColor = color.Black
	for _, elt := range []*color.Color{
		&plt.Title.TextStyle.Color,
		&plt.X.Color,
		&plt.X.Tick.Color,
		&plt.X.Tick.Label.Color,
		&plt.X.Label.TextStyle.Color,
		&plt.Y.Color,
		&plt.Y.Tick.Color,
		&plt.Y.Tick.Label.Color,
		&plt.Y.Label.TextStyle.Color,
	} {
		*elt = color.White
	}

	hm := plotter.NewHeatMap(opacityGrid{f}, palette.Heat(256, 1))
	if hm.Min == hm.Max {
		// Uniform frames still need a non-empty range to index the palette.
		hm.Max = hm.Min + 1
	}
	hm.Rasterized = true
	plt.Add(hm)
	return plt
}

// opacityGrid adapts a Frame to plotter.GridXYZ. Grid rows count up from
// the bottom of the image.
type opacityGrid struct {
	f *Frame
}

func (g opacityGrid) Dims() (c, r int) {
	return g.f.W, g.f.H
}

func (g opacityGrid) Z(c, r int) float64 {
	return g.f.Opacity[(g.f.H-1-r)*g.f.W+c]
}

func (g opacityGrid) X(c int) float64 {
	return float64(c)
}

func (g opacityGrid) Y(r int) float64 {
	return float64(r)
}
