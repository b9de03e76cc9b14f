package simulation

import (
	"math"

	"robotarena-sim/internal/common"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	smartSensorSpacing = 360.0 / SmartSensorCount
	smartSectorWidth   = 360.0 / SmartMemorySectors
	smartInfluence     = 45.0 // degrees within which a ray or sector weighs on a candidate heading
)

// tickSmart refreshes the sensor ring, then either keeps rotating in place (analyzing) or
// steers gradually to the safest heading and moves forward in proportion to the clearance ahead.
func (it *Item) tickSmart(a *Arena) {
	s := &it.agent.smart
	it.scanSmartSensors(a)

	if s.analyzing {
		s.analyzing = s.timer < SmartAnalyzeSeconds
		it.agent.turnBy(SmartAnalyzeTurn)
	} else {
		it.moveSmartly(a)
	}

	s.timer += SmartFrameSeconds
}

func (it *Item) scanSmartSensors(a *Arena) {
	s := &it.agent.smart
	for i := range s.readings {
		ray := common.Ray(it.pos, float64(i)*smartSensorSpacing, SmartSensorRange)
		s.readings[i] = 0
		if a.IntersectsAnyObstacle(ray) {
			s.readings[i] = 1
		}
	}
}

func (it *Item) moveSmartly(a *Arena) {
	ag := it.agent
	s := &ag.smart

	safest := it.safestHeading()
	ag.turnBy(common.AngleDelta(ag.heading, safest) * SmartTurnFraction)

	clearance := 1 - s.readings[sectorOf(ag.heading, SmartSensorCount)]
	if clearance <= SmartClearanceThreshold {
		s.analyzing = true
		s.timer = 0
		return
	}

	next := common.Advance(it.pos, ag.heading, ag.speed*clearance)
	if a.approachingWall(it.pos, next, it.radius) || a.closingOn(it, it.pos, next) != nil {
		it.rememberCollision(ag.heading)
		return
	}
	it.pos = next
}

// safestHeading evaluates candidate headings every SmartCandidateStep degrees and returns
// the best; ties go to the smallest angle.
func (it *Item) safestHeading() float64 {
	scores := make([]float64, int(360/SmartCandidateStep))
	for i := range scores {
		scores[i] = it.safetyScore(float64(i) * SmartCandidateStep)
	}
	return float64(floats.MaxIdx(scores)) * SmartCandidateStep
}

// safetyScore is 1 for an unobstructed, never-hit direction and shrinks towards 0 with active
// rays and remembered danger close to the candidate.
func (it *Item) safetyScore(candidate float64) float64 {
	s := &it.agent.smart
	score := 1.0

	for i, reading := range s.readings {
		diff := math.Abs(common.AngleDelta(candidate, float64(i)*smartSensorSpacing))
		if diff < smartInfluence && reading > 0 {
			score *= (1 - math.Cos(diff*math.Pi/180)) * 0.5
		}
	}

	for i, danger := range s.memory {
		diff := math.Abs(common.AngleDelta(candidate, float64(i)*smartSectorWidth))
		if diff < smartInfluence {
			score *= 1 - danger*math.Cos(diff*math.Pi/180)
		}
	}
	return score
}

// rememberCollision raises the danger of the sector the agent was heading into. Repeated
// collisions force a re-scan.
func (it *Item) rememberCollision(heading float64) {
	s := &it.agent.smart
	s.collisions++

	i := sectorOf(heading, SmartMemorySectors)
	s.memory[i] = math.Min(1, s.memory[i]+SmartLearningRate)

	if s.collisions >= SmartCollisionLimit {
		s.analyzing = true
		s.timer = 0
		s.collisions = 0
	}
}

// sectorOf returns the index of the nearest of n evenly spaced directions starting at 0°.
func sectorOf(heading float64, n int) int {
	width := 360.0 / float64(n)
	return int(math.Round(common.NormalizeHeading(heading)/width)) % n
}

// MeanDanger returns the average learned danger across all sectors of a Smart agent.
func (it *Item) MeanDanger() float64 {
	if it.kind != KindSmart {
		return 0
	}
	m := it.agent.smart.memory
	return stat.Mean(m[:], nil)
}
