package simulation

import (
	"fmt"
	"math"

	"robotarena-sim/internal/common"
)

// Item is any entity placed in the arena: one of the agent variants or an obstacle.
// Items are created and owned by an Arena; callers hold them only to read state
// or to pass them back to Arena methods.
type Item struct {
	id     int
	kind   Kind
	pos    common.Vec
	radius float64
	agent  *agentState // nil for obstacles
}

func newItem(id int, kind Kind, pos common.Vec, radius, heading float64) (*Item, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRadius, radius)
	}
	if !common.IsFinite(pos) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPosition, common.FormatVec(pos))
	}
	if kind < 0 || int(kind) >= len(kindNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}

	it := &Item{id: id, kind: kind, pos: pos, radius: radius}
	if kind.IsAgent() {
		it.agent = newAgentState(kind, heading)
	}
	return it, nil
}

// GetID returns the identifier assigned by the arena. Identifiers are never reused.
func (it *Item) GetID() int {
	return it.id
}

// Kind returns the variant of the item.
func (it *Item) Kind() Kind {
	return it.kind
}

// GetPosition returns the centre of the item.
func (it *Item) GetPosition() common.Vec {
	return it.pos
}

func (it *Item) X() float64 { return it.pos.X }
func (it *Item) Y() float64 { return it.pos.Y }

// Radius returns the bounding-circle radius; always positive.
func (it *Item) Radius() float64 {
	return it.radius
}

// IsAgent reports whether the item moves on each tick.
func (it *Item) IsAgent() bool {
	return it.agent != nil
}

// ContainsPoint reports whether (x, y) lies inside or on the bounding circle.
func (it *Item) ContainsPoint(x, y float64) bool {
	return common.DistanceSq(it.pos, common.NewVec(x, y)) <= it.radius*it.radius
}

// Edges returns the four sides of the square footprint (side = 2*radius) used by line sensors
// to see obstacles: top, bottom, left, right.
func (it *Item) Edges() [4]common.Segment {
	left, right := it.pos.X-it.radius, it.pos.X+it.radius
	top, bottom := it.pos.Y-it.radius, it.pos.Y+it.radius
	return [4]common.Segment{
		common.NewSegment(left, top, right, top),
		common.NewSegment(left, bottom, right, bottom),
		common.NewSegment(left, top, left, bottom),
		common.NewSegment(right, top, right, bottom),
	}
}

// String representation for status panels and logging
func (it *Item) String() string {
	s := fmt.Sprintf("%s (ID: %d) - Position: (%.2f, %.2f)", it.kind, it.id, it.pos.X, it.pos.Y)
	switch it.kind {
	case KindBump:
		if it.IsBumping() {
			s += " [COLLISION]"
		}
	case KindSmart:
		if it.IsAnalyzing() {
			s += " analyzing"
		}
	}
	return s
}
