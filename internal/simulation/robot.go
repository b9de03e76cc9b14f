package simulation

// tickRobot is the basic behaviour: reverse when the whisker touches an obstacle, move,
// bounce off walls, then reverse again if an obstacle is inside the circular sensor.
func (it *Item) tickRobot(a *Arena) {
	ag := it.agent
	if it.castWhisker(a) {
		ag.turnBy(180)
	}

	it.advance(a)

	if ag.avoidNearby && a.ObstacleNearby(it) {
		ag.turnBy(180)
	}
}
