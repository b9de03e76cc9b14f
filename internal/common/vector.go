package common

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec is a point or displacement in the arena plane.
// Arena coordinates grow right (x) and down (y); heading 0° points along +x, 90° along +y.
type Vec = r2.Vec

// NewVec creates a vector from its components.
func NewVec(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// DistanceSq calculates the squared Euclidean distance between two points.
// Used wherever only a comparison is needed, to skip the square root.
func DistanceSq(a, b Vec) float64 {
	return r2.Norm2(r2.Sub(a, b))
}

// IsFinite reports whether both components are neither NaN nor infinite.
func IsFinite(v Vec) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// NormalizeHeading maps any angle in degrees into [0, 360).
func NormalizeHeading(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// math.Mod of a tiny negative value plus 360 can round up to exactly 360
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// AngleDelta returns the signed shortest rotation (degrees, in (-180, 180]) taking heading from onto heading to.
func AngleDelta(from, to float64) float64 {
	d := NormalizeHeading(to - from)
	if d > 180 {
		d -= 360
	}
	return d
}

// HeadingVector returns the unit vector pointing along a heading given in degrees.
func HeadingVector(deg float64) Vec {
	rad := deg * math.Pi / 180
	return Vec{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Bearing returns the heading (degrees, [0, 360)) of the direction from one point to another.
// Coincident points yield 0.
func Bearing(from, to Vec) float64 {
	d := r2.Sub(to, from)
	return NormalizeHeading(math.Atan2(d.Y, d.X) * 180 / math.Pi)
}

// Advance moves a point by distance along heading.
func Advance(p Vec, heading, distance float64) Vec {
	return r2.Add(p, r2.Scale(distance, HeadingVector(heading)))
}

// Clamp limits v to [lo, hi]. When the range is empty hi wins.
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// FormatVec returns a compact string representation of a point.
func FormatVec(v Vec) string {
	return fmt.Sprintf("[%.3f, %.3f]", v.X, v.Y)
}
