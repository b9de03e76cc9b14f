package simulation

import (
	"robotarena-sim/internal/common"
)

// tickBump is purely reactive: take the full step, and on contact with another item or a
// wall roll it back, start the recovery cooldown and head away from the contact with jitter.
//
// A contact only counts while the step closes in on it, so an agent that starts out
// overlapping something (or outside the walls) can still move away.
func (it *Item) tickBump(a *Arena) {
	ag := it.agent
	b := &ag.bump
	if b.cooldown > 0 {
		b.cooldown--
	}

	old := it.pos
	it.pos = common.Advance(old, ag.heading, ag.speed)

	if other := a.closingOn(it, old, it.pos); other != nil {
		it.bumpInto(a, old, common.Bearing(it.pos, other.pos))
		return
	}
	if a.approachingWall(old, it.pos, it.radius) {
		it.bumpInto(a, old, ag.heading)
	}
}

// bumpInto restores the pre-step position and deflects the heading opposite contactBearing,
// the direction from the agent towards what it hit.
func (it *Item) bumpInto(a *Arena, old common.Vec, contactBearing float64) {
	it.pos = old
	b := &it.agent.bump
	b.cooldown = BumpRecoveryTicks
	jitter := (a.rng.Float64() - 0.5) * BumpJitter
	it.agent.turnTo(contactBearing + 180 + jitter)
}
