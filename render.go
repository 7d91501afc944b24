package main

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

type RenderConfig struct {
	Width, Height int

	// Depth is the recursion budget passed to every primary trace.
	Depth int

	// Workers is the number of goroutines tracing rows. If <= 0, this
	// uses runtime.NumCPU().
	Workers int
}

var ErrBadDimensions = errors.New("image dimensions must be positive")

// A Frame is a rendered image. Pixel (x, y) is at index y*W+x, with y=0
// at the top.
type Frame struct {
	W, H    int
	Color   []Color
	Opacity []float64

	Rays RayCounts
}

func (f *Frame) At(x, y int) Result {
	i := y*f.W + x
	return Result{f.Color[i], f.Opacity[i]}
}

// Render traces every pixel of cfg's raster. Rows are handed out to a
// pool of workers, each of which writes only its own rows of the Frame.
func Render(tr *Tracer, cfg RenderConfig) (*Frame, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w (got %dx%d)", ErrBadDimensions, cfg.Width, cfg.Height)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.Height {
		workers = cfg.Height
	}

	n := cfg.Width * cfg.Height
	frame := &Frame{
		W:       cfg.Width,
		H:       cfg.Height,
		Color:   make([]Color, n),
		Opacity: make([]float64, n),
	}
	cam := &Camera{Scene: tr.Scene(), W: cfg.Width, H: cfg.Height}

	rows := make(chan int, cfg.Height)
	for y := 0; y < cfg.Height; y++ {
		rows <- y
	}
	close(rows)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var counts RayCounts
			defer func() {
				mu.Lock()
				frame.Rays.Add(counts)
				mu.Unlock()
			}()
			for y := range rows {
				for x := 0; x < cfg.Width; x++ {
					res, c, err := tr.TraceCounted(cam.CreateRay(x, y), cfg.Depth)
					if err != nil {
						mu.Lock()
						if firstErr == nil {
							firstErr = fmt.Errorf("pixel (%d, %d): %w", x, y, err)
						}
						mu.Unlock()
						return
					}
					counts.Add(c)
					i := y*cfg.Width + x
					frame.Color[i] = res.Color
					frame.Opacity[i] = res.Opacity
				}
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return frame, nil
}
