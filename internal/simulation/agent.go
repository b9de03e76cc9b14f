package simulation

import (
	"fmt"
	"math"

	"robotarena-sim/internal/common"
)

// agentState is the mobile part of an Item. Variant memory sits side by side; only the
// fields of the item's own kind are ever touched.
type agentState struct {
	heading   float64 // degrees, always in [0, 360)
	baseSpeed float64 // speed before the simulation multiplier
	speed     float64

	sensorRange float64 // Robot/Beam circular proximity sensor
	avoidNearby bool

	targetID int // Chaser; 0 = no target. Recomputed every tick.
	beams    [BeamCount]BeamReading
	bump     bumpState
	smart    smartState
}

// BeamReading is one ray of a Beam agent's sensor fan as of its last tick.
type BeamReading struct {
	Ray     common.Segment
	Blocked bool
}

type bumpState struct {
	cooldown int
}

type smartState struct {
	readings   [SmartSensorCount]float64
	memory     [SmartMemorySectors]float64
	collisions int
	analyzing  bool
	timer      float64
}

func newAgentState(kind Kind, heading float64) *agentState {
	a := &agentState{heading: common.NormalizeHeading(heading)}
	switch kind {
	case KindRobot:
		a.baseSpeed = RobotSpeed
	case KindChaser:
		a.baseSpeed = ChaserSpeed
	case KindBeam:
		a.baseSpeed = BeamSpeed
	case KindBump:
		a.baseSpeed = BumpSpeed
	case KindSmart:
		a.baseSpeed = SmartSpeed
	}
	if kind == KindRobot || kind == KindBeam {
		a.sensorRange = RobotSensorRange
		a.avoidNearby = true
	}
	a.speed = a.baseSpeed
	return a
}

func (a *agentState) turnTo(deg float64) {
	a.heading = common.NormalizeHeading(deg)
}

func (a *agentState) turnBy(deg float64) {
	a.heading = common.NormalizeHeading(a.heading + deg)
}

// Heading returns the direction of travel in degrees, [0, 360). Obstacles report 0.
func (it *Item) Heading() float64 {
	if it.agent == nil {
		return 0
	}
	return it.agent.heading
}

// SetHeading points an agent in a new direction; the value is normalized into [0, 360).
func (it *Item) SetHeading(deg float64) error {
	if it.agent == nil {
		return ErrNotAgent
	}
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return fmt.Errorf("heading must be finite: %v", deg)
	}
	it.agent.turnTo(deg)
	return nil
}

// Speed returns the effective distance an agent covers per tick. Obstacles report 0.
func (it *Item) Speed() float64 {
	if it.agent == nil {
		return 0
	}
	return it.agent.speed
}

// SensorRange returns the reach of the circular proximity sensor, 0 when the variant has none.
func (it *Item) SensorRange() float64 {
	if it.agent == nil {
		return 0
	}
	return it.agent.sensorRange
}

// SetProximityAvoidance switches the circular sensor reversal of Robot and Beam agents.
func (it *Item) SetProximityAvoidance(enabled bool) error {
	if it.agent == nil || it.agent.sensorRange == 0 {
		return ErrNotAgent
	}
	it.agent.avoidNearby = enabled
	return nil
}

// WhiskerSegment returns the forward whisker of Robot and Beam agents.
func (it *Item) WhiskerSegment() (common.Segment, bool) {
	if it.kind != KindRobot && it.kind != KindBeam {
		return common.Segment{}, false
	}
	return common.Ray(it.pos, it.agent.heading, WhiskerLength), true
}

// BeamReadings returns the sensor fan of a Beam agent as evaluated on its last tick.
func (it *Item) BeamReadings() []BeamReading {
	if it.kind != KindBeam {
		return nil
	}
	out := make([]BeamReading, BeamCount)
	copy(out, it.agent.beams[:])
	return out
}

// BumpCooldown returns the ticks left in a Bump agent's recovery period.
func (it *Item) BumpCooldown() int {
	if it.kind != KindBump {
		return 0
	}
	return it.agent.bump.cooldown
}

// IsBumping reports whether a Bump agent is still recovering from contact.
func (it *Item) IsBumping() bool {
	return it.BumpCooldown() > 0
}

// SmartReadings returns the 8-ray sensor ring of a Smart agent: 1 when the ray at i*45° hits an obstacle.
func (it *Item) SmartReadings() [SmartSensorCount]float64 {
	if it.kind != KindSmart {
		return [SmartSensorCount]float64{}
	}
	return it.agent.smart.readings
}

// DangerMemory returns the learned danger (0..1) of each 45° sector of a Smart agent.
func (it *Item) DangerMemory() [SmartMemorySectors]float64 {
	if it.kind != KindSmart {
		return [SmartMemorySectors]float64{}
	}
	return it.agent.smart.memory
}

// IsAnalyzing reports whether a Smart agent is rotating in place to re-scan.
func (it *Item) IsAnalyzing() bool {
	return it.kind == KindSmart && it.agent.smart.analyzing
}
