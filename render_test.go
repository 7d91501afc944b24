package main

import (
	"errors"
	"math/rand"
	"testing"
)

func TestRenderMatchesTrace(t *testing.T) {
	s := randomScene(rand.New(rand.NewSource(7)))
	tr := mustTracer(t, s)

	for _, workers := range []int{0, 1, 3, 100} {
		cfg := RenderConfig{Width: 9, Height: 7, Depth: 3, Workers: workers}
		frame, err := Render(tr, cfg)
		if err != nil {
			t.Fatal(err)
		}
		if frame.W != cfg.Width || frame.H != cfg.Height {
			t.Fatalf("got %dx%d frame, want %dx%d", frame.W, frame.H, cfg.Width, cfg.Height)
		}

		cam := &Camera{Scene: s, W: cfg.Width, H: cfg.Height}
		var total RayCounts
		for y := 0; y < cfg.Height; y++ {
			for x := 0; x < cfg.Width; x++ {
				want, counts, err := tr.TraceCounted(cam.CreateRay(x, y), cfg.Depth)
				if err != nil {
					t.Fatal(err)
				}
				total.Add(counts)
				if got := frame.At(x, y); got != want {
					t.Errorf("workers=%d pixel (%d, %d): got %+v, want %+v", workers, x, y, got, want)
				}
			}
		}
		if frame.Rays != total {
			t.Errorf("workers=%d: got ray counts %+v, want %+v", workers, frame.Rays, total)
		}
	}
}

func TestRenderBadDimensions(t *testing.T) {
	tr := mustTracer(t, frontFaceScene())
	for _, cfg := range []RenderConfig{{Width: 0, Height: 10}, {Width: 10, Height: -1}} {
		if _, err := Render(tr, cfg); !errors.Is(err, ErrBadDimensions) {
			t.Errorf("Render(%+v): got err %v, want %v", cfg, err, ErrBadDimensions)
		}
	}
}

func TestRenderError(t *testing.T) {
	s := glassScene()
	s.Spheres[0].Radius = -1
	s.ImagePlane = ImagePlane{
		TopLeft:     headOn.Origin,
		TopRight:    headOn.Origin,
		BottomLeft:  headOn.Origin,
		BottomRight: headOn.Origin,
	}
	// Put the camera one step behind the plane so every pixel is the
	// head-on ray.
	s.Camera = headOn.Along(-1)
	tr := &Tracer{s}
	if _, err := Render(tr, RenderConfig{Width: 4, Height: 4, Depth: 3, Workers: 2}); !errors.Is(err, ErrNegativeRadius) {
		t.Fatalf("got err %v, want %v", err, ErrNegativeRadius)
	}
}
