package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRobotWhiskerReversesBeforeMoving(t *testing.T) {
	setup := func(t *testing.T) *Item {
		a := newTestArena(t)
		robot := mustAddAt(t, a, KindRobot, 400, 300, 20)
		require.NoError(t, robot.SetHeading(0))
		mustAddAt(t, a, KindObstacle, 440, 300, 15)
		a.MoveAll()
		return robot
	}

	t.Run("proximity sensor flips it back", func(t *testing.T) {
		robot := setup(t)
		assert.InDelta(t, 398.0, robot.X(), 1e-9)
		assert.InDelta(t, 300.0, robot.Y(), 1e-9)
		assert.InDelta(t, 0.0, robot.Heading(), 1e-9)
	})

	t.Run("whisker only", func(t *testing.T) {
		a := newTestArena(t)
		robot := mustAddAt(t, a, KindRobot, 400, 300, 20)
		require.NoError(t, robot.SetHeading(0))
		require.NoError(t, robot.SetProximityAvoidance(false))
		mustAddAt(t, a, KindObstacle, 440, 300, 15)

		a.MoveAll()
		assert.InDelta(t, 398.0, robot.X(), 1e-9)
		assert.InDelta(t, 180.0, robot.Heading(), 1e-9)
	})
}

func TestRobotBouncesOffWalls(t *testing.T) {
	a := newTestArena(t)
	east := mustAddAt(t, a, KindRobot, 779, 300, 20)
	require.NoError(t, east.SetHeading(0))
	south := mustAddAt(t, a, KindRobot, 400, 579, 20)
	require.NoError(t, south.SetHeading(90))

	a.MoveAll()

	assert.Equal(t, 780.0, east.X())
	assert.InDelta(t, 180.0, east.Heading(), 1e-9)
	assert.Equal(t, 580.0, south.Y())
	assert.InDelta(t, 270.0, south.Heading(), 1e-9)
}

func TestRobotWhiskerSegment(t *testing.T) {
	a := newTestArena(t)
	robot := mustAddAt(t, a, KindRobot, 100, 100, 20)
	require.NoError(t, robot.SetHeading(90))

	seg, ok := robot.WhiskerSegment()
	require.True(t, ok)
	assert.InDelta(t, 100.0, seg.B.X, 1e-9)
	assert.InDelta(t, 140.0, seg.B.Y, 1e-9)

	_, ok = a.AddBumpRobot().WhiskerSegment()
	assert.False(t, ok)
	assert.ErrorIs(t, a.AddSmartRobot().SetProximityAvoidance(false), ErrNotAgent)
}

func TestObstacleNearby(t *testing.T) {
	a := newTestArena(t)
	robot := mustAddAt(t, a, KindRobot, 100, 100, 20)
	assert.False(t, a.ObstacleNearby(robot))

	// reach = 20 + 50 + 15
	mustAddAt(t, a, KindObstacle, 185, 100, 15)
	assert.True(t, a.ObstacleNearby(robot))
	assert.False(t, a.ObstacleNearby(nil))
}

func TestBeamTurnsToFirstClearRay(t *testing.T) {
	a := newTestArena(t)
	beam := mustAddAt(t, a, KindBeam, 400, 300, 20)
	require.NoError(t, beam.SetHeading(0))
	require.NoError(t, beam.SetProximityAvoidance(false))
	mustAddAt(t, a, KindObstacle, 470, 300, 15)

	a.MoveAll()

	readings := beam.BeamReadings()
	require.Len(t, readings, BeamCount)
	blocked := make([]bool, len(readings))
	for i, r := range readings {
		blocked[i] = r.Blocked
	}
	assert.Equal(t, []bool{false, false, true, false, false}, blocked)
	assert.InDelta(t, 315.0, beam.Heading(), 1e-9)
	assert.Greater(t, beam.X(), 400.0)
	assert.Less(t, beam.Y(), 300.0)
}

func TestBeamReversesWhenEveryRayIsBlocked(t *testing.T) {
	a := newTestArena(t)
	beam := mustAddAt(t, a, KindBeam, 400, 300, 20)
	require.NoError(t, beam.SetHeading(0))
	require.NoError(t, beam.SetProximityAvoidance(false))
	mustAddAt(t, a, KindObstacle, 470, 300, 50)

	a.MoveAll()

	for _, r := range beam.BeamReadings() {
		assert.True(t, r.Blocked)
	}
	assert.InDelta(t, 180.0, beam.Heading(), 1e-9)
	assert.InDelta(t, 398.0, beam.X(), 1e-9)
}

func TestBeamWithClearViewKeepsHeading(t *testing.T) {
	a := newTestArena(t)
	beam := mustAddAt(t, a, KindBeam, 400, 300, 20)
	require.NoError(t, beam.SetHeading(0))

	a.MoveAll()
	assert.InDelta(t, 0.0, beam.Heading(), 1e-9)
	assert.InDelta(t, 402.0, beam.X(), 1e-9)
	assert.Nil(t, a.AddRobot().BeamReadings())
}
