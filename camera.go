package main

import "gonum.org/v1/gonum/spatial/r3"

// A Camera generates primary rays for a W×H pixel raster covering the
// scene's image plane.
type Camera struct {
	Scene *Scene
	W, H  int
}

// CreateRay returns the ray for pixel (x, y), where (0, 0) is the top
// left of the image. The ray starts on the image plane and points away
// from the camera. A direction of (point - camera) puts the camera at
// t=-1 and the plane at t=0.
func (c *Camera) CreateRay(x, y int) Ray {
	xt := float64(x) / float64(c.W)
	// Pixel rows grow downward, but the plane's vertical axis grows up.
	yt := float64(c.H-y-1) / float64(c.H)

	p := &c.Scene.ImagePlane
	top := lerp(p.TopLeft, p.TopRight, xt)
	bottom := lerp(p.BottomLeft, p.BottomRight, xt)
	point := lerp(bottom, top, yt)
	return Ray{Origin: point, Dir: r3.Sub(point, c.Scene.Camera)}
}
