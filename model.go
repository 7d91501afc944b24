package main

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// A Scene is everything the tracer needs to shade a ray. Scenes are
// read-only once constructed; a single Scene may be traced from many
// goroutines at once.
//
// The image plane is a world-space quadrilateral between the camera and
// the scene. Camera rays start on it (see Camera.CreateRay).
type Scene struct {
	Camera     r3.Vec
	ImagePlane ImagePlane
	Spheres    []Sphere
	Lighting   Lighting
	Background Color

	// Mu is the refractive index of the medium surrounding all objects.
	Mu float64
}

type ImagePlane struct {
	TopLeft, TopRight       r3.Vec
	BottomLeft, BottomRight r3.Vec
}

type Sphere struct {
	Center   r3.Vec
	Radius   float64
	Color    Color
	Material Material
}

type Material struct {
	Kd    Color   // Diffuse reflectance
	Ks    Color   // Specular reflectance
	Alpha float64 // Specular exponent, > 0

	Transparency float64 // In [0, 1]
	Opacity      float64 // In [0, 1]

	Mu float64 // Refractive index, >= 1
	Kt Color   // Weight of the reflected ray
}

type Lighting struct {
	Ambient AmbientLight
	Points  []PointLight
}

type AmbientLight struct {
	Color Color
	Ia    float64 // Intensity
}

type PointLight struct {
	Location r3.Vec
	Id       Color // Diffuse intensity
	Is       Color // Specular intensity
}

var (
	ErrBadRefractiveIndex = errors.New("refractive index must be >= 1")
	ErrBadExponent        = errors.New("specular exponent must be > 0")
)

// Validate checks the invariants the tracer relies on. Scenes should be
// validated when they're loaded so that tracing never fails.
func (s *Scene) Validate() error {
	if s.Mu < 1 {
		return fmt.Errorf("scene: %w (got %v)", ErrBadRefractiveIndex, s.Mu)
	}
	for i := range s.Spheres {
		sp := &s.Spheres[i]
		if _, err := easingCurve(sp.Radius); err != nil {
			return fmt.Errorf("sphere %d: %w (got %v)", i, err, sp.Radius)
		}
		if sp.Material.Mu < 1 {
			return fmt.Errorf("sphere %d: %w (got %v)", i, ErrBadRefractiveIndex, sp.Material.Mu)
		}
		if !(sp.Material.Alpha > 0) {
			return fmt.Errorf("sphere %d: %w (got %v)", i, ErrBadExponent, sp.Material.Alpha)
		}
	}
	return nil
}
