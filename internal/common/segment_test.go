package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentLength(t *testing.T) {
	assert.InDelta(t, 5.0, NewSegment(0, 0, 3, 4).Length(), 1e-12)
	assert.Equal(t, 0.0, NewSegment(2, 2, 2, 2).Length())
}

func TestSegmentIntersects(t *testing.T) {
	cases := []struct {
		name string
		a, b Segment
		want bool
	}{
		{"Crossing", NewSegment(0, 0, 10, 10), NewSegment(0, 10, 10, 0), true},
		{"TouchingAtEndpoint", NewSegment(0, 0, 5, 0), NewSegment(5, -5, 5, 5), true},
		{"ExtensionOnly", NewSegment(0, 0, 4, 0), NewSegment(5, -5, 5, 5), false},
		{"Parallel", NewSegment(0, 0, 10, 0), NewSegment(0, 1, 10, 1), false},
		{"Coincident", NewSegment(0, 0, 10, 0), NewSegment(2, 0, 8, 0), false},
		{"Disjoint", NewSegment(0, 0, 1, 1), NewSegment(3, 0, 4, -2), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Intersects(tc.b))
			assert.Equal(t, tc.want, tc.b.Intersects(tc.a))
		})
	}
}

func TestSegmentIntersectionPoint(t *testing.T) {
	p, ok := NewSegment(0, 0, 10, 10).IntersectionPoint(NewSegment(0, 10, 10, 0))
	require.True(t, ok)
	assert.InDelta(t, 5.0, p.X, 1e-12)
	assert.InDelta(t, 5.0, p.Y, 1e-12)

	whisker := NewSegment(400, 300, 440, 300)
	edge := NewSegment(425, 285, 425, 315)
	p, ok = whisker.IntersectionPoint(edge)
	require.True(t, ok)
	assert.InDelta(t, 425.0, p.X, 1e-12)
	assert.InDelta(t, 300.0, p.Y, 1e-12)

	_, ok = NewSegment(0, 0, 1, 0).IntersectionPoint(NewSegment(0, 1, 1, 1))
	assert.False(t, ok)
}

func TestSegmentDistanceToPoint(t *testing.T) {
	s := NewSegment(0, 0, 10, 0)

	t.Run("Projection", func(t *testing.T) {
		assert.InDelta(t, 3.0, s.DistanceToPoint(NewVec(5, 3)), 1e-12)
	})
	t.Run("ClampedToStart", func(t *testing.T) {
		assert.InDelta(t, 5.0, s.DistanceToPoint(NewVec(-3, 4)), 1e-12)
	})
	t.Run("ClampedToEnd", func(t *testing.T) {
		assert.InDelta(t, 5.0, s.DistanceToPoint(NewVec(13, -4)), 1e-12)
	})
	t.Run("Degenerate", func(t *testing.T) {
		p := NewSegment(1, 1, 1, 1)
		assert.InDelta(t, math.Sqrt(2), p.DistanceToPoint(NewVec(2, 2)), 1e-12)
	})
}

func TestRay(t *testing.T) {
	r := Ray(NewVec(10, 10), 90, 5)
	assert.InDelta(t, 10.0, r.B.X, 1e-9)
	assert.InDelta(t, 15.0, r.B.Y, 1e-9)
	assert.InDelta(t, 5.0, r.Length(), 1e-9)
}
