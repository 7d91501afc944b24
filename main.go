// Command spheretrace renders a scene of spheres with recursive Phong
// shading, reflection, and refraction.
//
// The scene's coordinate system is up to the scene file, except that
// sun-positioned lights assume
//
//	Z/up
//	|  Y/north
//	| /
//	|/____ X/east
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gonum.org/v1/plot/vg"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "JSON scene `file` (required)")
		width     = flag.Int("w", 400, "image width in pixels")
		height    = flag.Int("h", 300, "image height in pixels")
		depth     = flag.Int("depth", 3, "recursion depth for reflection and refraction")
		workers   = flag.Int("workers", 0, "tracing goroutines (0 means one per CPU)")
		outPath   = flag.String("o", "out.png", "output PNG `file`")
		opacity   = flag.String("opacity", "", "also write an opacity heat map to `file`")
		povPath   = flag.String("pov", "", "also write the scene as POV-Ray source to `file`")
		cacheDir  = flag.String("cache", ".cache", "frame cache `directory` (empty disables caching)")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s -scene file [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *scenePath == "" || flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	scene, err := LoadScene(*scenePath)
	if err != nil {
		log.Fatal(err)
	}

	if *povPath != "" {
		f, err := os.Create(*povPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := WritePOV(f, scene); err != nil {
			log.Fatalf("writing POV-Ray scene: %s", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("writing POV-Ray scene: %s", err)
		}
	}

	cfg := RenderConfig{Width: *width, Height: *height, Depth: *depth, Workers: *workers}
	var ck *CacheKey
	if *cacheDir != "" {
		ck = (&FrameCache{Dir: *cacheDir}).Key(scene, cfg)
	}
	var (
		frame  *Frame
		cached bool
	)
	if ck != nil {
		frame, cached = ck.Load()
	}
	if !cached {
		tr, err := NewTracer(scene)
		if err != nil {
			log.Fatal(err)
		}
		start := time.Now()
		frame, err = Render(tr, cfg)
		if err != nil {
			log.Fatal(err)
		}
		r := frame.Rays
		log.Printf("rendered %dx%d in %s: %d traced, %d shadow, %d reflected, %d refracted, %d TIR rays",
			frame.W, frame.H, time.Since(start), r.Traced, r.Shadow, r.Reflect, r.Refract, r.TIR)
		if ck != nil {
			ck.Save(frame)
		}
	} else {
		log.Printf("using cached frame")
	}

	if err := frame.WritePNG(*outPath); err != nil {
		log.Fatalf("writing image: %s", err)
	}
	if *opacity != "" {
		plt := frame.OpacityHeatMap()
		if err := plt.Save(20*vg.Centimeter, 15*vg.Centimeter, *opacity); err != nil {
			log.Fatalf("writing opacity heat map: %s", err)
		}
	}
}
