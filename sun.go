package main

import (
	"math"
	"time"

	"github.com/sixdouglas/suncalc"
	"gonum.org/v1/gonum/spatial/r3"
)

// SunPos is a position of the sun in horizontal alt-azimuth
// coordinates, in degrees. Altitude is 0 at the horizon and 90
// overhead. Azimuth is 0 at north and 90 at east.
type SunPos struct {
	Altitude, Azimuth float64
}

// GetSunPos returns the sun position at time t seen from the given
// latitude and longitude, in degrees north and east.
func GetSunPos(t time.Time, latitude, longitude float64) SunPos {
	p := suncalc.GetPosition(t, latitude, longitude)
	// suncalc returns radians, with azimuth measured from south toward
	// west.
	const rad2deg = 180 / math.Pi
	return SunPos{p.Altitude * rad2deg, p.Azimuth*rad2deg + 180}
}

// Dir returns the unit vector toward the sun in scene coordinates:
// X east, Y north, Z up.
func (p SunPos) Dir() r3.Vec {
	const deg2rad = math.Pi / 180
	al := p.Altitude * deg2rad
	az := p.Azimuth * deg2rad
	return r3.Unit(r3.Vec{
		X: math.Sin(az) * math.Cos(al),
		Y: math.Cos(az) * math.Cos(al),
		Z: math.Sin(al),
	})
}

// maxInsolation is the flux at sea level with the sun overhead.
var maxInsolation = SunPos{Altitude: 90}.Insolation(0)

// Insolation returns the direct plus diffuse solar flux on a plane
// perpendicular to the sun, in W/m², at the given elevation in meters.
// It's 0 when the sun is below the horizon.
func (p SunPos) Insolation(elevation float64) float64 {
	if p.Altitude < 0 {
		return 0
	}
	// Air mass per Kasten and Young (1989). 1 overhead, ~38 at the
	// horizon.
	zenith := 90 - p.Altitude
	airMass := 1 / (math.Cos(zenith*(math.Pi/180)) + 0.50572*math.Pow(96.07995-zenith, -1.6364))

	// Direct component corrected for elevation per Meinel and Meinel
	// (1976). Diffuse light adds about 10%.
	h := elevation / 1000
	const a = 0.14
	direct := 1353 * ((1-a*h)*math.Pow(0.7, math.Pow(airMass, 0.678)) + a*h)
	return 1.1 * direct
}

// SunLight is a point light standing in for the sun.
type SunLight struct {
	Time      time.Time
	Latitude  float64
	Longitude float64
	Elevation float64 // Meters

	// Target is the scene point the sun is placed relative to, and
	// Distance is how far away along the sun direction to put it.
	Target   r3.Vec
	Distance float64

	// Id and Is are the diffuse and specular intensities with the sun
	// overhead. Both are scaled down as the sun gets lower.
	Id, Is Color
}

// PointLight returns the point light for l. When the sun is below the
// horizon the light is black.
func (l *SunLight) PointLight() PointLight {
	pos := GetSunPos(l.Time, l.Latitude, l.Longitude)
	scale := pos.Insolation(l.Elevation) / maxInsolation
	return PointLight{
		Location: r3.Add(l.Target, r3.Scale(l.Distance, pos.Dir())),
		Id:       l.Id.Scale(scale),
		Is:       l.Is.Scale(scale),
	}
}
