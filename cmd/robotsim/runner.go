package main

import (
	"context"
	"io"
	"time"

	"robotarena-sim/internal/simulation"
)

// runner drives an arena tick by tick, optionally paced to a fixed rate.
type runner struct {
	arena       *simulation.Arena
	ticks       int // 0 = until ctx is done
	tps         int // 0 = unpaced
	reportEvery int
	out         io.Writer
}

func (r *runner) run(ctx context.Context) error {
	var tick <-chan time.Time
	// rates above one tick per nanosecond cannot be paced
	if r.tps > 0 && r.tps <= int(time.Second) {
		ticker := time.NewTicker(time.Second / time.Duration(r.tps))
		defer ticker.Stop()
		tick = ticker.C
	}

	for n := 1; r.ticks == 0 || n <= r.ticks; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}

		r.arena.MoveAll()
		if r.reportEvery > 0 && n%r.reportEvery == 0 {
			r.arena.PrintState(r.out)
		}
	}
	return nil
}
