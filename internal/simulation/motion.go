package simulation

import (
	"robotarena-sim/internal/common"
)

// tick runs one simulation step of an agent: sense, steer, move, validate, remember.
func (it *Item) tick(a *Arena) {
	switch it.kind {
	case KindRobot:
		it.tickRobot(a)
	case KindChaser:
		it.tickChaser(a)
	case KindBeam:
		it.tickBeam(a)
	case KindBump:
		it.tickBump(a)
	case KindSmart:
		it.tickSmart(a)
	}
}

// advance moves the agent speed units along its heading and bounces it off the walls.
func (it *Item) advance(a *Arena) {
	it.pos = common.Advance(it.pos, it.agent.heading, it.agent.speed)
	it.bounceOffWalls(a)
}

// bounceOffWalls reflects the heading component facing a wall the agent reached and clamps
// the centre back inside [radius, size-radius].
func (it *Item) bounceOffWalls(a *Arena) {
	r := it.radius
	if it.pos.X <= r || it.pos.X >= a.width-r {
		it.agent.turnTo(180 - it.agent.heading)
		it.pos.X = common.Clamp(it.pos.X, r, a.width-r)
	}
	if it.pos.Y <= r || it.pos.Y >= a.height-r {
		it.agent.turnTo(360 - it.agent.heading)
		it.pos.Y = common.Clamp(it.pos.Y, r, a.height-r)
	}
}

// approachingWall reports whether a step from -> to of a circle with the given radius
// reaches a wall it is moving towards. Steps that leave the wall band are never blocked.
func (a *Arena) approachingWall(from, to common.Vec, radius float64) bool {
	// cos/sin of axis-aligned headings leave ~1e-16 residue; ignore it
	const eps = 1e-9
	dx, dy := to.X-from.X, to.Y-from.Y
	return (to.X <= radius && dx < -eps) || (to.X >= a.width-radius && dx > eps) ||
		(to.Y <= radius && dy < -eps) || (to.Y >= a.height-radius && dy > eps)
}

// closingOn returns the first item that it would overlap at to while getting closer to it
// than at from, or nil. An agent that starts out overlapping something can still move away.
func (a *Arena) closingOn(it *Item, from, to common.Vec) *Item {
	for _, other := range a.items {
		if other == it {
			continue
		}
		sum := it.radius + other.radius
		d := common.DistanceSq(to, other.pos)
		if d < sum*sum && d < common.DistanceSq(from, other.pos) {
			return other
		}
	}
	return nil
}
