package simulation

import (
	"fmt"
	"io"
	"math"
	"strings"

	"robotarena-sim/internal/common"

	"gonum.org/v1/gonum/stat"
)

// Stats summarises the arena for status bars and periodic reports.
type Stats struct {
	Ticks     int
	Agents    int
	Obstacles int

	MeanSpeed float64
	// Surface-to-surface distance from each item to its nearest neighbour.
	// Negative values mean overlap. Both are 0 with fewer than two items.
	MeanClearance   float64
	ClearanceStdDev float64
}

// Counts returns how many agents and obstacles the arena holds.
func (a *Arena) Counts() (agents, obstacles int) {
	for _, it := range a.items {
		if it.agent != nil {
			agents++
		} else {
			obstacles++
		}
	}
	return agents, obstacles
}

// Stats computes the current summary.
func (a *Arena) Stats() Stats {
	s := Stats{Ticks: a.ticks}
	s.Agents, s.Obstacles = a.Counts()

	speeds := make([]float64, 0, s.Agents)
	for _, it := range a.items {
		if it.agent != nil {
			speeds = append(speeds, it.agent.speed)
		}
	}
	if len(speeds) > 0 {
		s.MeanSpeed = stat.Mean(speeds, nil)
	}

	if len(a.items) > 1 {
		clearances := make([]float64, len(a.items))
		for i, it := range a.items {
			clearances[i] = a.nearestClearance(it)
		}
		s.MeanClearance, s.ClearanceStdDev = stat.MeanStdDev(clearances, nil)
	}
	return s
}

func (a *Arena) nearestClearance(it *Item) float64 {
	best := math.Inf(1)
	for _, other := range a.items {
		if other == it {
			continue
		}
		gap := common.Distance(it.pos, other.pos) - it.radius - other.radius
		best = math.Min(best, gap)
	}
	return best
}

// Status lists every item as "<Kind> at (x, y)" with coordinates rounded to whole units.
func (a *Arena) Status() string {
	var sb strings.Builder
	for _, it := range a.items {
		fmt.Fprintf(&sb, "%s at (%d, %d)\n", it.kind, int(math.Round(it.pos.X)), int(math.Round(it.pos.Y)))
	}
	return sb.String()
}

// SelectedInfo describes the selected item, or returns "" when nothing is selected.
func (a *Arena) SelectedInfo() string {
	if it := a.Selected(); it != nil {
		return it.String()
	}
	return ""
}

// PrintState writes a human-readable report of the arena to w.
func (a *Arena) PrintState(w io.Writer) {
	s := a.Stats()
	fmt.Fprintf(w, "--- %s: %.0fx%.0f, tick %d ---\n", a.id, a.width, a.height, s.Ticks)
	fmt.Fprintf(w, "Robots: %d, Obstacles: %d, Mean speed: %.2f\n", s.Agents, s.Obstacles, s.MeanSpeed)
	if len(a.items) > 1 {
		fmt.Fprintf(w, "Nearest-neighbour clearance: %.2f ± %.2f\n", s.MeanClearance, s.ClearanceStdDev)
	}
	for _, it := range a.items {
		fmt.Fprintf(w, "  %s heading %.1f\n", it, it.Heading())
		if it.kind == KindSmart {
			fmt.Fprintf(w, "    mean danger %.2f\n", it.MeanDanger())
		}
	}
}
