package main

import (
	"io"
	"text/template"

	"gonum.org/v1/gonum/spatial/r3"
)

// WritePOV writes s as a POV-Ray 3.7 scene for comparing against a
// reference renderer. The camera looks at the center of the image plane.
// POV-Ray's lighting model differs, so expect similar, not identical,
// images.
func WritePOV(w io.Writer, s *Scene) error {
	p := &s.ImagePlane
	center := r3.Scale(0.25, r3.Add(r3.Add(p.TopLeft, p.TopRight), r3.Add(p.BottomLeft, p.BottomRight)))
	args := struct {
		*Scene
		LookAt, Up, Right r3.Vec
	}{
		Scene:  s,
		LookAt: center,
		Up:     r3.Sub(p.TopLeft, p.BottomLeft),
		Right:  r3.Sub(p.TopRight, p.TopLeft),
	}
	return povTemplate.Execute(w, &args)
}

var povTemplate = template.Must(template.New("pov").Funcs(template.FuncMap{
	"ambient": func(a AmbientLight) Color { return a.Color.Scale(a.Ia) },
}).Parse(`#version 3.7;

global_settings {
	assumed_gamma 1.0
	ambient_light rgb {{template "rgb" ambient .Lighting.Ambient}}
}

background { color rgb {{template "rgb" .Background}} }

camera {
	location {{template "vec" .Camera}}
	up {{template "vec" .Up}}
	right {{template "vec" .Right}}
	look_at {{template "vec" .LookAt}}
}
{{range .Lighting.Points}}
light_source {
	{{template "vec" .Location}}
	color rgb {{template "rgb" .Id}}
}
{{end}}
{{- range .Spheres}}
sphere {
	{{template "vec" .Center}}, {{.Radius}}
	texture {
		pigment { color rgbt <{{.Color.R}}, {{.Color.G}}, {{.Color.B}}, {{.Material.Transparency}}> }
		finish {
			diffuse {{.Material.Kd.G}}
			specular {{.Material.Ks.G}}
			phong_size {{.Material.Alpha}}
			reflection {{.Material.Kt.G}}
		}
	}
	interior { ior {{.Material.Mu}} }
}
{{end}}
{{- define "vec"}}<{{.X}}, {{.Y}}, {{.Z}}>{{end}}
{{- define "rgb"}}<{{.R}}, {{.G}}, {{.B}}>{{end}}
`))
