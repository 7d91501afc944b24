package main

import (
	"image"
	"image/png"
	"os"
)

// Image converts f to an 8-bit image. Opacity becomes alpha, clamped to
// [0, 1] since refraction can push it above 1.
func (f *Frame) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.W, f.H))
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			i := y*f.W + x
			img.SetNRGBA(x, y, f.Color[i].NRGBA(f.Opacity[i]))
		}
	}
	return img
}

func (f *Frame) WritePNG(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, f.Image()); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
