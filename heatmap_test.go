package main

import (
	"bytes"
	"image/png"
	"testing"

	"gonum.org/v1/plot/vg"
)

func TestOpacityGrid(t *testing.T) {
	f := testFrame()
	g := opacityGrid{f}
	if c, r := g.Dims(); c != 3 || r != 2 {
		t.Fatalf("got dims %dx%d, want 3x2", c, r)
	}
	// Grid row 0 is the bottom image row.
	assertNear(t, "Z(0, 0)", g.Z(0, 0), f.Opacity[3])
	assertNear(t, "Z(2, 1)", g.Z(2, 1), f.Opacity[2])
}

func TestOpacityHeatMap(t *testing.T) {
	for _, f := range []*Frame{
		testFrame(),
		// A uniform frame.
		{W: 2, H: 2, Color: make([]Color, 4), Opacity: []float64{1, 1, 1, 1}},
	} {
		plt := f.OpacityHeatMap()
		wt, err := plt.WriterTo(4*vg.Centimeter, 3*vg.Centimeter, "png")
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		if _, err := wt.WriteTo(&buf); err != nil {
			t.Fatal(err)
		}
		if _, err := png.DecodeConfig(&buf); err != nil {
			t.Errorf("heat map isn't a PNG: %s", err)
		}
	}
}

func TestOpacityHeatMapLabels(t *testing.T) {
	plt := testFrame().OpacityHeatMap()
	if plt.X.Label.Text != "x" || plt.Y.Label.Text != "y" {
		t.Errorf("got axis labels %q, %q, want \"x\", \"y\"", plt.X.Label.Text, plt.Y.Label.Text)
	}
}
