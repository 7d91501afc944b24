package main

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// A Ray is the half-line Origin + t*Dir. Dir need not be normalized;
// intersection parameters are in units of Dir.
type Ray struct {
	Origin r3.Vec
	Dir    r3.Vec
}

func (r *Ray) Along(t float64) r3.Vec {
	return r3.Add(r.Origin, r3.Scale(t, r.Dir))
}

// IntersectSphere returns the smallest accepted root t of the ray/sphere
// quadratic. Normal rays accept only t >= 1. Camera rays put the camera
// one Dir-length behind the origin, and reflected and refracted rays must
// not re-hit the surface they start on. Shadow rays span exactly from a
// surface point (t=0) to a light (t=1) and accept 0 < t < 1.
//
// depth is the caller's remaining recursion budget. If it is exhausted,
// nothing is hit.
func (r *Ray) IntersectSphere(s *Sphere, depth int, shadow bool) (t float64, ok bool) {
	if depth <= 0 {
		return 0, false
	}

	oc := r3.Sub(r.Origin, s.Center)
	a := r3.Dot(r.Dir, r.Dir)
	b := 2 * r3.Dot(oc, r.Dir)
	c := r3.Dot(oc, oc) - s.Radius*s.Radius
	d := b*b - 4*a*c
	if d < 0 {
		return 0, false
	}
	d = math.Sqrt(d)

	accept := func(t float64) bool {
		if shadow {
			return t > 0 && t < 1
		}
		return t >= 1
	}
	t1, t2 := (-b+d)/(2*a), (-b-d)/(2*a)
	ok1, ok2 := accept(t1), accept(t2)
	switch {
	case ok1 && ok2:
		return math.Min(t1, t2), true
	case ok1:
		return t1, true
	case ok2:
		return t2, true
	}
	return 0, false
}

// lerp linearly interpolates from a to b by t.
func lerp(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}
