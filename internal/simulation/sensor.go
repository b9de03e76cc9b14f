package simulation

import (
	"robotarena-sim/internal/common"
)

// IntersectsAnyObstacle reports whether a sensor line crosses an edge of any obstacle's square footprint.
func (a *Arena) IntersectsAnyObstacle(line common.Segment) bool {
	for _, it := range a.items {
		if it.kind == KindObstacle && intersectsSquare(line, it) {
			return true
		}
	}
	return false
}

func intersectsSquare(line common.Segment, obstacle *Item) bool {
	for _, edge := range obstacle.Edges() {
		if line.Intersects(edge) {
			return true
		}
	}
	return false
}

// ObstacleNearby reports whether any obstacle's surface lies within radius+sensorRange
// of the agent's centre.
func (a *Arena) ObstacleNearby(agent *Item) bool {
	if agent == nil || agent.agent == nil {
		return false
	}
	for _, it := range a.items {
		if it.kind != KindObstacle {
			continue
		}
		reach := agent.radius + agent.agent.sensorRange + it.radius
		if common.DistanceSq(agent.pos, it.pos) <= reach*reach {
			return true
		}
	}
	return false
}

// castWhisker checks the forward whisker of a Robot or Beam agent.
func (it *Item) castWhisker(a *Arena) bool {
	return a.IntersectsAnyObstacle(common.Ray(it.pos, it.agent.heading, WhiskerLength))
}
