package simulation

import (
	"robotarena-sim/internal/common"
)

// tickBeam fans BeamCount rays across BeamSpread degrees around the heading. When any ray
// is blocked the agent turns to the first clear ray, scanning from the leftmost, or
// reverses if none is clear. Movement then follows the basic robot.
func (it *Item) tickBeam(a *Arena) {
	ag := it.agent
	start := ag.heading - BeamSpread/2
	step := BeamSpread / (BeamCount - 1)

	blocked := false
	for i := range ag.beams {
		ray := common.Ray(it.pos, start+float64(i)*step, BeamLength)
		hit := a.IntersectsAnyObstacle(ray)
		ag.beams[i] = BeamReading{Ray: ray, Blocked: hit}
		blocked = blocked || hit
	}

	if blocked {
		if clear := it.clearestBeam(); clear >= 0 {
			ag.turnTo(start + float64(clear)*step)
		} else {
			ag.turnBy(180)
		}
	}

	it.tickRobot(a)
}

// clearestBeam returns the index of the first unblocked beam, or -1 when all are blocked.
func (it *Item) clearestBeam() int {
	for i, b := range it.agent.beams {
		if !b.Blocked {
			return i
		}
	}
	return -1
}
