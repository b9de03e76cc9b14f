package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeading(t *testing.T) {
	cases := map[float64]float64{
		0:      0,
		360:    0,
		-90:    270,
		725:    5,
		-720:   0,
		359.5:  359.5,
		-1e-15: 0,
	}
	for in, want := range cases {
		got := NormalizeHeading(in)
		assert.InDelta(t, want, got, 1e-9, "NormalizeHeading(%v)", in)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 360.0)
	}
}

func TestAngleDelta(t *testing.T) {
	assert.InDelta(t, 20.0, AngleDelta(350, 10), 1e-9)
	assert.InDelta(t, -20.0, AngleDelta(10, 350), 1e-9)
	assert.InDelta(t, 180.0, AngleDelta(0, 180), 1e-9)
	assert.InDelta(t, 0.0, AngleDelta(45, 405), 1e-9)
}

func TestBearingAndHeadingVector(t *testing.T) {
	assert.InDelta(t, 0.0, Bearing(NewVec(0, 0), NewVec(5, 0)), 1e-9)
	assert.InDelta(t, 90.0, Bearing(NewVec(0, 0), NewVec(0, 5)), 1e-9)
	assert.InDelta(t, 180.0, Bearing(NewVec(0, 0), NewVec(-5, 0)), 1e-9)
	assert.InDelta(t, 270.0, Bearing(NewVec(0, 0), NewVec(0, -5)), 1e-9)

	v := HeadingVector(60)
	assert.InDelta(t, 1.0, math.Hypot(v.X, v.Y), 1e-12)
	assert.InDelta(t, 60.0, Bearing(NewVec(0, 0), v), 1e-9)
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(NewVec(1, 1), NewVec(4, 5)), 1e-12)
	assert.InDelta(t, 25.0, DistanceSq(NewVec(1, 1), NewVec(4, 5)), 1e-12)
	assert.True(t, IsFinite(NewVec(1, 2)))
	assert.False(t, IsFinite(NewVec(math.NaN(), 2)))
	assert.False(t, IsFinite(NewVec(1, math.Inf(-1))))
}
