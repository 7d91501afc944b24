package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

// Scene files are JSON. Points and colors are 3-element arrays. A
// refractive index that's omitted defaults to 1. A point light may give
// a "sun" block instead of a "location".
//
//	{
//	  "camera": [0, 0, 10],
//	  "imagePlane": {"topLeft": [-1, 1, 8], ...},
//	  "spheres": [{"center": [0, 0, 0], "radius": 1, "color": [1, 0, 0],
//	               "material": {"kd": [...], "ks": [...], "alpha": 20, ...}}],
//	  "lighting": {"ambient": {"color": [1, 1, 1], "ia": 0.1},
//	               "points": [{"location": [5, 5, 5], "id": [...], "is": [...]}]},
//	  "background": [0, 0, 0],
//	  "mu": 1
//	}
type sceneFile struct {
	Camera     vec3 `json:"camera"`
	ImagePlane struct {
		TopLeft     vec3 `json:"topLeft"`
		TopRight    vec3 `json:"topRight"`
		BottomLeft  vec3 `json:"bottomLeft"`
		BottomRight vec3 `json:"bottomRight"`
	} `json:"imagePlane"`
	Spheres []struct {
		Center   vec3    `json:"center"`
		Radius   float64 `json:"radius"`
		Color    vec3    `json:"color"`
		Material struct {
			Kd           vec3     `json:"kd"`
			Ks           vec3     `json:"ks"`
			Alpha        float64  `json:"alpha"`
			Transparency float64  `json:"transparency"`
			Opacity      float64  `json:"opacity"`
			Mu           *float64 `json:"mu"`
			Kt           vec3     `json:"kt"`
		} `json:"material"`
	} `json:"spheres"`
	Lighting struct {
		Ambient struct {
			Color vec3    `json:"color"`
			Ia    float64 `json:"ia"`
		} `json:"ambient"`
		Points []struct {
			Location *vec3 `json:"location"`
			Sun      *struct {
				Time      time.Time `json:"time"`
				Latitude  float64   `json:"lat"`
				Longitude float64   `json:"lon"`
				Elevation float64   `json:"elevation"`
				Target    vec3      `json:"target"`
				Distance  float64   `json:"distance"`
			} `json:"sun"`
			Id vec3 `json:"id"`
			Is vec3 `json:"is"`
		} `json:"points"`
	} `json:"lighting"`
	Background vec3     `json:"background"`
	Mu         *float64 `json:"mu"`
}

type vec3 [3]float64

func (v vec3) vec() r3.Vec  { return r3.Vec{X: v[0], Y: v[1], Z: v[2]} }
func (v vec3) color() Color { return Color{v[0], v[1], v[2]} }

// orOne returns *x, or 1 if x is absent.
func orOne(x *float64) float64 {
	if x == nil {
		return 1
	}
	return *x
}

// ReadScene decodes and validates a JSON scene.
func ReadScene(r io.Reader) (*Scene, error) {
	var sf sceneFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sf); err != nil {
		return nil, err
	}

	s := &Scene{
		Camera: sf.Camera.vec(),
		ImagePlane: ImagePlane{
			TopLeft:     sf.ImagePlane.TopLeft.vec(),
			TopRight:    sf.ImagePlane.TopRight.vec(),
			BottomLeft:  sf.ImagePlane.BottomLeft.vec(),
			BottomRight: sf.ImagePlane.BottomRight.vec(),
		},
		Background: sf.Background.color(),
		Mu:         orOne(sf.Mu),
	}
	for _, sp := range sf.Spheres {
		m := &sp.Material
		s.Spheres = append(s.Spheres, Sphere{
			Center: sp.Center.vec(),
			Radius: sp.Radius,
			Color:  sp.Color.color(),
			Material: Material{
				Kd:           m.Kd.color(),
				Ks:           m.Ks.color(),
				Alpha:        m.Alpha,
				Transparency: m.Transparency,
				Opacity:      m.Opacity,
				Mu:           orOne(m.Mu),
				Kt:           m.Kt.color(),
			},
		})
	}
	s.Lighting.Ambient = AmbientLight{
		Color: sf.Lighting.Ambient.Color.color(),
		Ia:    sf.Lighting.Ambient.Ia,
	}
	for i, pl := range sf.Lighting.Points {
		var light PointLight
		switch {
		case pl.Sun != nil && pl.Location != nil:
			return nil, fmt.Errorf("point light %d: both location and sun given", i)
		case pl.Sun != nil:
			sun := SunLight{
				Time:      pl.Sun.Time,
				Latitude:  pl.Sun.Latitude,
				Longitude: pl.Sun.Longitude,
				Elevation: pl.Sun.Elevation,
				Target:    pl.Sun.Target.vec(),
				Distance:  pl.Sun.Distance,
				Id:        pl.Id.color(),
				Is:        pl.Is.color(),
			}
			light = sun.PointLight()
		case pl.Location != nil:
			light = PointLight{Location: pl.Location.vec(), Id: pl.Id.color(), Is: pl.Is.color()}
		default:
			return nil, fmt.Errorf("point light %d: no location", i)
		}
		s.Lighting.Points = append(s.Lighting.Points, light)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadScene reads a scene from a JSON file.
func LoadScene(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := ReadScene(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
