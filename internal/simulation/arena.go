package simulation

import (
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"time"

	"robotarena-sim/internal/common"

	"github.com/google/uuid"
)

// Arena owns every entity of one simulation and is the only way to create, query, move
// and delete them. It is driven from a single goroutine: the embedding application calls
// MoveAll once per frame and reads state between calls.
type Arena struct {
	id            string
	width, height float64

	items  []*Item     // insertion order = draw order; last item is topmost
	index  map[int]int // item id -> position in items
	nextID int

	// Weak references by id; 0 means none. Resolved through index, so a deleted
	// item can never be returned.
	selectedID int
	hoveredID  int

	speedMultiplier  float64
	ticks            int
	rng              *rand.Rand
	placementRetries int
	logger           *log.Logger
}

// Option configures an Arena at construction.
type Option func(*Arena)

// WithSeed makes placement, initial headings and jitter reproducible.
func WithSeed(seed int64) Option {
	return func(a *Arena) {
		a.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the random source used for placement, headings and jitter.
func WithRand(r *rand.Rand) Option {
	return func(a *Arena) {
		if r != nil {
			a.rng = r
		}
	}
}

// WithPlacementAttempts caps the random samples tried when looking for a free spot.
func WithPlacementAttempts(n int) Option {
	return func(a *Arena) {
		if n > 0 {
			a.placementRetries = n
		}
	}
}

// WithLogger sends arena diagnostics to l. Without it they are discarded.
func WithLogger(l *log.Logger) Option {
	return func(a *Arena) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewArena creates an empty arena of the given size.
func NewArena(width, height float64, opts ...Option) (*Arena, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}

	a := &Arena{
		id:               fmt.Sprintf("arena-%s", uuid.NewString()[:8]),
		width:            width,
		height:           height,
		index:            make(map[int]int),
		nextID:           1,
		speedMultiplier:  1,
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
		placementRetries: DefaultPlacementRetries,
		logger:           log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

func validateDimensions(width, height float64) error {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return fmt.Errorf("%w: %vx%v", ErrInvalidDimensions, width, height)
	}
	return nil
}

func (a *Arena) logf(format string, args ...any) {
	a.logger.Printf("[%s] "+format, append([]any{a.id}, args...)...)
}

// ID returns the session tag used in log lines.
func (a *Arena) ID() string { return a.id }

func (a *Arena) Width() float64  { return a.width }
func (a *Arena) Height() float64 { return a.height }

// Ticks returns how many times MoveAll has run.
func (a *Arena) Ticks() int { return a.ticks }

// SpeedMultiplier returns the factor last applied by UpdateSimulationSpeed.
func (a *Arena) SpeedMultiplier() float64 { return a.speedMultiplier }

// Len returns the number of items.
func (a *Arena) Len() int { return len(a.items) }

// Items returns the items in insertion order. The slice is a copy; the items are not.
func (a *Arena) Items() []*Item {
	out := make([]*Item, len(a.items))
	copy(out, a.items)
	return out
}

// Lookup resolves an item id, returning nil when no such item is in the arena.
func (a *Arena) Lookup(id int) *Item {
	if idx, ok := a.index[id]; ok {
		return a.items[idx]
	}
	return nil
}

func (a *Arena) owns(it *Item) bool {
	return it != nil && a.Lookup(it.id) == it
}

// --- Placement ---

// AddItem places a new entity of the given kind at a random free spot.
// Agents get radius 20, obstacles 15. When no free spot turns up within the retry cap the
// least-overlapping sample is used instead.
func (a *Arena) AddItem(kind Kind) (*Item, error) {
	radius := DefaultAgentRadius
	if kind == KindObstacle {
		radius = DefaultObstacleRadius
	}

	pos, free := a.findFreeSpot(radius)
	if !free {
		a.logf("no free spot for %s after %d attempts, placing at least-overlapping %s",
			kind, a.placementRetries, common.FormatVec(pos))
	}
	return a.insert(kind, pos, radius)
}

func (a *Arena) AddRobot() *Item       { return a.mustAdd(KindRobot) }
func (a *Arena) AddChaserRobot() *Item { return a.mustAdd(KindChaser) }
func (a *Arena) AddBeamRobot() *Item   { return a.mustAdd(KindBeam) }
func (a *Arena) AddBumpRobot() *Item   { return a.mustAdd(KindBump) }
func (a *Arena) AddSmartRobot() *Item  { return a.mustAdd(KindSmart) }
func (a *Arena) AddObstacle() *Item    { return a.mustAdd(KindObstacle) }

func (a *Arena) mustAdd(kind Kind) *Item {
	it, err := a.AddItem(kind)
	if err != nil {
		// kinds and default radii are constants, so this is a programming error
		panic(err)
	}
	return it
}

// AddItemAt places an entity at an exact position without checking for overlap.
func (a *Arena) AddItemAt(kind Kind, x, y, radius float64) (*Item, error) {
	return a.insert(kind, common.NewVec(x, y), radius)
}

func (a *Arena) insert(kind Kind, pos common.Vec, radius float64) (*Item, error) {
	it, err := newItem(a.nextID, kind, pos, radius, a.rng.Float64()*360)
	if err != nil {
		return nil, err
	}
	a.nextID++
	if it.agent != nil {
		it.agent.speed = it.agent.baseSpeed * a.speedMultiplier
	}
	a.index[it.id] = len(a.items)
	a.items = append(a.items, it)
	return it, nil
}

// findFreeSpot samples uniform points in the arena until one does not overlap anything.
// It returns the least-penetrating sample and false when the retry cap runs out.
func (a *Arena) findFreeSpot(radius float64) (common.Vec, bool) {
	var best common.Vec
	bestDepth := math.Inf(1)

	for i := 0; i < a.placementRetries; i++ {
		p := common.NewVec(a.rng.Float64()*a.width, a.rng.Float64()*a.height)
		depth := a.penetration(p, radius)
		if depth == 0 {
			return p, true
		}
		if depth < bestDepth {
			best, bestDepth = p, depth
		}
	}
	return best, false
}

// penetration returns the deepest overlap of a circle with any item, 0 when it collides with none.
func (a *Arena) penetration(p common.Vec, radius float64) float64 {
	deepest := 0.0
	for _, it := range a.items {
		sum := radius + it.radius
		if common.DistanceSq(p, it.pos) < sum*sum {
			deepest = math.Max(deepest, sum-common.Distance(p, it.pos))
			if deepest == 0 {
				// exact touch at floating precision still counts as a collision
				deepest = math.SmallestNonzeroFloat64
			}
		}
	}
	return deepest
}

// --- Queries ---

// IsColliding reports whether a circle at (x, y) overlaps any item other than the one
// with id excludeID. Touching circles (distance == sum of radii) do not collide.
func (a *Arena) IsColliding(x, y, radius float64, excludeID int) bool {
	p := common.NewVec(x, y)
	for _, it := range a.items {
		if it.id == excludeID {
			continue
		}
		sum := radius + it.radius
		if common.DistanceSq(p, it.pos) < sum*sum {
			return true
		}
	}
	return false
}

// FindItemAt returns the topmost item whose bounding circle contains (x, y), or nil.
func (a *Arena) FindItemAt(x, y float64) *Item {
	for i := len(a.items) - 1; i >= 0; i-- {
		if a.items[i].ContainsPoint(x, y) {
			return a.items[i]
		}
	}
	return nil
}

// ChaseTarget returns the agent a Chaser pursued on its last tick, or nil.
func (a *Arena) ChaseTarget(it *Item) *Item {
	if it == nil || it.kind != KindChaser {
		return nil
	}
	return a.Lookup(it.agent.targetID)
}

// --- Selection and hover ---

// SetSelected marks it as the selected item; nil or a foreign item clears the selection.
func (a *Arena) SetSelected(it *Item) {
	a.selectedID = 0
	if a.owns(it) {
		a.selectedID = it.id
	}
}

// Selected returns the selected item, or nil.
func (a *Arena) Selected() *Item {
	return a.Lookup(a.selectedID)
}

// SetHovered marks it as the item under the pointer; nil clears it.
func (a *Arena) SetHovered(it *Item) {
	a.hoveredID = 0
	if a.owns(it) {
		a.hoveredID = it.id
	}
}

// Hovered returns the hovered item, or nil.
func (a *Arena) Hovered() *Item {
	return a.Lookup(a.hoveredID)
}

// --- Removal ---

// DeleteItem removes it from the arena. Selection and hover pointing at it are cleared.
func (a *Arena) DeleteItem(it *Item) bool {
	if !a.owns(it) {
		return false
	}
	idx := a.index[it.id]
	a.items = append(a.items[:idx], a.items[idx+1:]...)
	delete(a.index, it.id)
	for i := idx; i < len(a.items); i++ {
		a.index[a.items[i].id] = i
	}

	if a.selectedID == it.id {
		a.selectedID = 0
	}
	if a.hoveredID == it.id {
		a.hoveredID = 0
	}
	return true
}

// DeleteSelected removes the selected item, reporting whether there was one.
func (a *Arena) DeleteSelected() bool {
	return a.DeleteItem(a.Selected())
}

// Clear removes every item and resets selection and hover. Ids keep counting up.
func (a *Arena) Clear() {
	a.items = nil
	a.index = make(map[int]int)
	a.selectedID = 0
	a.hoveredID = 0
}

// --- Simulation ---

// MoveAll advances every agent by one tick in insertion order. Later agents see the
// positions earlier agents reached during the same tick.
func (a *Arena) MoveAll() {
	for _, it := range a.items {
		if it.agent != nil {
			it.tick(a)
		}
	}
	a.ticks++
}

// UpdateSimulationSpeed scales every agent's speed by multiplier relative to its base speed.
// Agents added later pick up the same multiplier.
func (a *Arena) UpdateSimulationSpeed(multiplier float64) error {
	if !(multiplier > 0) || math.IsInf(multiplier, 0) {
		return fmt.Errorf("%w: multiplier %v", ErrInvalidSpeed, multiplier)
	}
	a.speedMultiplier = multiplier
	for _, it := range a.items {
		if it.agent != nil {
			it.agent.speed = it.agent.baseSpeed * multiplier
		}
	}
	return nil
}

// SetItemSpeed overrides one agent's base speed, (0, MaxItemSpeed].
func (a *Arena) SetItemSpeed(it *Item, speed float64) error {
	if !a.owns(it) {
		return ErrUnknownItem
	}
	if it.agent == nil {
		return ErrNotAgent
	}
	if !(speed > 0) || speed > MaxItemSpeed {
		return fmt.Errorf("%w: %v not in (0, %v]", ErrInvalidSpeed, speed, MaxItemSpeed)
	}
	it.agent.baseSpeed = speed
	it.agent.speed = speed * a.speedMultiplier
	return nil
}

// MoveItem repositions an item (drag or keyboard nudge). The centre is clamped so the item
// stays inside the arena; the move is refused when it would overlap another item.
func (a *Arena) MoveItem(it *Item, x, y float64) bool {
	if !a.owns(it) || !common.IsFinite(common.NewVec(x, y)) {
		return false
	}
	x = common.Clamp(x, it.radius, a.width-it.radius)
	y = common.Clamp(y, it.radius, a.height-it.radius)
	if a.IsColliding(x, y, it.radius, it.id) {
		return false
	}
	it.pos = common.NewVec(x, y)
	return true
}
