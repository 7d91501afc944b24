package main

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Shading weights.
const (
	diffuseWeight   = 0.8
	reflectWeight   = 0.1
	maxFresnel      = 0.5
	refractKeep     = 0.2 // Share of the running color kept when mixing in transmitted light
	minEasingWeight = 0.1
)

// Result is the shaded value seen along a ray.
type Result struct {
	Color   Color // Clamped to [0, 1]
	Opacity float64
}

// RayCounts records how many rays of each kind one top-level trace cast.
type RayCounts struct {
	Traced  int // Calls into the shading engine, including the top-level ray
	Shadow  int
	Reflect int
	Refract int
	TIR     int
}

func (c *RayCounts) Add(o RayCounts) {
	c.Traced += o.Traced
	c.Shadow += o.Shadow
	c.Reflect += o.Reflect
	c.Refract += o.Refract
	c.TIR += o.TIR
}

// A Tracer shades rays against a fixed Scene. It holds no mutable
// state, so it's safe for concurrent use.
type Tracer struct {
	scene *Scene
}

// NewTracer validates scene and returns a Tracer for it. The caller must
// not modify scene while the Tracer is in use.
func NewTracer(scene *Scene) (*Tracer, error) {
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	return &Tracer{scene}, nil
}

func (tr *Tracer) Scene() *Scene {
	return tr.scene
}

// Trace returns the color and opacity seen along ray. depth bounds the
// number of reflection and refraction bounces; at depth 0 nothing is
// hit and the background is returned.
func (tr *Tracer) Trace(ray Ray, depth int) (Result, error) {
	var counts RayCounts
	return tr.trace(&ray, depth, &counts)
}

// TraceCounted is like Trace, but also reports the rays cast.
func (tr *Tracer) TraceCounted(ray Ray, depth int) (Result, RayCounts, error) {
	var counts RayCounts
	res, err := tr.trace(&ray, depth, &counts)
	return res, counts, err
}

func (tr *Tracer) trace(ray *Ray, depth int, counts *RayCounts) (Result, error) {
	s := tr.scene
	counts.Traced++

	hit, t := tr.nearest(ray, depth)
	if hit < 0 {
		// The background gets no ambient light.
		return Result{Color: s.Background.Clamp(), Opacity: 1}, nil
	}

	sh := shading{
		tr:     tr,
		ray:    ray,
		depth:  depth,
		counts: counts,
		index:  hit,
		sphere: &s.Spheres[hit],
		p:      ray.Along(t),
	}
	sh.n = r3.Unit(r3.Sub(sh.p, sh.sphere.Center))
	sh.dir = r3.Unit(ray.Dir)

	// Accumulate in order. Later steps mix rather than add, so they
	// partially discard what came before.
	mat := &sh.sphere.Material
	col := sh.sphere.Color
	if mat.Transparency > 0 {
		col = col.Add(Mix(col, s.Background, mat.Transparency))
	}
	amb := &s.Lighting.Ambient
	col = col.Add(amb.Color.Scale(amb.Ia))

	opacity := 1.0
	for i := range s.Lighting.Points {
		var err error
		col, opacity, err = sh.light(col, opacity, &s.Lighting.Points[i])
		if err != nil {
			return Result{}, err
		}
	}
	return Result{Color: col.Clamp(), Opacity: opacity}, nil
}

// nearest returns the index of the closest sphere hit by ray and the ray
// parameter of the hit, or -1 if nothing is hit. Ties go to the earlier
// sphere.
func (tr *Tracer) nearest(ray *Ray, depth int) (int, float64) {
	hit, minT := -1, 0.0
	for i := range tr.scene.Spheres {
		t, ok := ray.IntersectSphere(&tr.scene.Spheres[i], depth, false)
		if ok && (hit < 0 || t < minT) {
			hit, minT = i, t
		}
	}
	return hit, minT
}

// shading is the state for shading one intersection.
type shading struct {
	tr     *Tracer
	ray    *Ray
	depth  int
	counts *RayCounts

	index  int // Of sphere in the scene
	sphere *Sphere
	p      r3.Vec // Point of intersection
	n      r3.Vec // Unit surface normal at p
	dir    r3.Vec // Unit incoming direction
}

// light folds the contribution of one point light into col. This
// includes the secondary rays, which are re-cast for every light.
func (sh *shading) light(col Color, opacity float64, light *PointLight) (Color, float64, error) {
	s := sh.tr.scene
	mat := &sh.sphere.Material

	toLight := r3.Sub(light.Location, sh.p)
	if !sh.shadowed(toLight) {
		l := r3.Unit(toLight)
		nl := r3.Dot(sh.n, l)
		if nl > 0 {
			diffuse := mat.Kd.Mul(light.Id).Scale(nl)
			col = col.Add(diffuse.Scale(diffuseWeight))

			r := r3.Sub(r3.Scale(2*nl, sh.n), l)
			v := r3.Unit(r3.Sub(s.Camera, sh.p))
			spec := mat.Ks.Mul(light.Is).Scale(math.Pow(r3.Dot(r, v), mat.Alpha))
			col = col.Add(spec)
		}
	}

	if sh.depth <= 0 {
		return col, opacity, nil
	}

	cosI := math.Max(-1, math.Min(1, r3.Dot(sh.dir, sh.n)))
	fresnel := fresnelFactor(math.Acos(cosI), s.Mu, mat.Mu, PolarizationP)
	fresnel = math.Min(fresnel, maxFresnel)

	// Mirror reflection.
	view := r3.Scale(-1, sh.dir)
	reflDir := r3.Sub(r3.Scale(2*r3.Dot(view, sh.n), sh.n), view)
	sh.counts.Reflect++
	reflected, err := sh.tr.trace(&Ray{Origin: sh.p, Dir: reflDir}, sh.depth-1, sh.counts)
	if err != nil {
		return col, opacity, err
	}
	col = col.Add(reflected.Color.Mul(mat.Kt).Scale(reflectWeight))

	if mat.Transparency <= 0 {
		return col, opacity, nil
	}
	// Transparent objects mostly show what's around them, so this
	// replaces the shading so far.
	col = Mix(sh.sphere.Color, reflected.Color, mat.Transparency)
	if mat.Mu <= 1 {
		return col, opacity, nil
	}

	ratio := s.Mu / mat.Mu
	cos2 := math.Sqrt(1 - ratio*ratio*(1-cosI*cosI))

	ease, err := easingCurve(sh.sphere.Radius)
	if err != nil {
		return col, opacity, err
	}
	blended := math.Max(minEasingWeight, ease)*(1-fresnel) + fresnel
	opacity = math.Min((1-blended)+mat.Opacity*blended, mat.Opacity) + mat.Opacity

	var sub Ray
	if math.IsNaN(cos2) || (s.Mu*cosI < mat.Mu && math.Abs(cosI) > 1/mat.Mu) {
		// Total internal reflection: continue along the tangential
		// component of the incoming direction.
		sh.counts.TIR++
		sub = Ray{Origin: sh.p, Dir: r3.Unit(r3.Sub(sh.ray.Dir, r3.Scale(cosI, sh.n)))}
	} else {
		sh.counts.Refract++
		sub = Ray{Origin: sh.p, Dir: r3.Sub(r3.Scale(ratio, sh.ray.Dir), r3.Scale(ratio*cosI+cos2, sh.n))}
	}
	transmitted, err := sh.tr.trace(&sub, sh.depth-1, sh.counts)
	if err != nil {
		return col, opacity, err
	}
	tc := Mix(transmitted.Color, s.Background, fresnel)
	return Mix(tc, col, refractKeep), opacity, nil
}

// shadowed reports whether any other sphere lies strictly between p and
// the light at p+toLight.
func (sh *shading) shadowed(toLight r3.Vec) bool {
	sh.counts.Shadow++
	ray := Ray{Origin: sh.p, Dir: toLight}
	for i := range sh.tr.scene.Spheres {
		if i == sh.index {
			continue
		}
		if _, ok := ray.IntersectSphere(&sh.tr.scene.Spheres[i], sh.depth, true); ok {
			return true
		}
	}
	return false
}
