package simulation

import (
	"math"

	"robotarena-sim/internal/common"

	"gonum.org/v1/gonum/spatial/r2"
)

// tickChaser steps straight towards the nearest non-chaser agent, stopping short of
// overlapping it. Without a target it wanders along its heading and bounces off walls.
func (it *Item) tickChaser(a *Arena) {
	ag := it.agent
	target := a.nearestQuarry(it)
	if target == nil {
		ag.targetID = 0
		it.advance(a)
		return
	}
	ag.targetID = target.id

	d := r2.Sub(target.pos, it.pos)
	dist := r2.Norm(d)
	if dist == 0 {
		return
	}
	ag.turnTo(common.Bearing(it.pos, target.pos))

	next := r2.Add(it.pos, r2.Scale(ag.speed/dist, d))
	contact := it.radius + target.radius
	if common.DistanceSq(next, target.pos) < contact*contact {
		// the step would overlap the quarry; hold position
		return
	}
	it.pos = next
	it.bounceOffWalls(a)
}

// nearestQuarry returns the closest agent that is not a chaser. Ties go to the earlier item.
func (a *Arena) nearestQuarry(chaser *Item) *Item {
	var nearest *Item
	best := math.Inf(1)
	for _, it := range a.items {
		if it == chaser || it.agent == nil || it.kind == KindChaser {
			continue
		}
		if d := common.DistanceSq(chaser.pos, it.pos); d < best {
			best, nearest = d, it
		}
	}
	return nearest
}
