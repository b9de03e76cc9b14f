package common

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Segment is a finite line segment between two points.
type Segment struct {
	A, B Vec
}

// NewSegment creates a segment from (x1, y1) to (x2, y2).
func NewSegment(x1, y1, x2, y2 float64) Segment {
	return Segment{A: Vec{X: x1, Y: y1}, B: Vec{X: x2, Y: y2}}
}

// Ray creates a segment of the given length starting at origin and pointing along heading (degrees).
func Ray(origin Vec, heading, length float64) Segment {
	return Segment{A: origin, B: Advance(origin, heading, length)}
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return Distance(s.A, s.B)
}

// DistanceToPoint returns the distance from p to the closest point of the segment.
// The projection parameter is clamped to [0, 1]; a zero-length segment reduces to point distance.
func (s Segment) DistanceToPoint(p Vec) float64 {
	d := r2.Sub(s.B, s.A)
	len2 := r2.Norm2(d)
	if len2 == 0 {
		return Distance(p, s.A)
	}

	t := r2.Dot(r2.Sub(p, s.A), d) / len2
	t = Clamp(t, 0, 1)
	proj := r2.Add(s.A, r2.Scale(t, d))
	return Distance(p, proj)
}

// Intersects reports whether two segments cross at a point lying on both of them.
// Parallel and coincident segments never intersect.
func (s Segment) Intersects(other Segment) bool {
	_, ok := s.IntersectionPoint(other)
	return ok
}

// IntersectionPoint returns the point where two segments cross, and false when they do not.
func (s Segment) IntersectionPoint(other Segment) (Vec, bool) {
	r := r2.Sub(s.B, s.A)
	q := r2.Sub(other.B, other.A)

	denom := r2.Cross(r, q)
	if denom == 0 {
		return Vec{}, false
	}

	// Solve A + ua*r = other.A + ub*q for both parameters
	w := r2.Sub(other.A, s.A)
	ua := r2.Cross(w, q) / denom
	ub := r2.Cross(w, r) / denom

	if ua < 0 || ua > 1 || ub < 0 || ub > 1 {
		return Vec{}, false
	}
	return r2.Add(s.A, r2.Scale(ua, r)), true
}

// String representation for logging
func (s Segment) String() string {
	return fmt.Sprintf("Segment(%s -> %s)", FormatVec(s.A), FormatVec(s.B))
}
