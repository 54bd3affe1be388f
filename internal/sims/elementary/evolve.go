package elementary

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"sierpinski/internal/core"
)

// Evolve returns the generations x width space-time grid of Rule 90 grown
// from a single active cell at column width/2. Invalid dimensions are
// rejected before anything is allocated.
func Evolve(width, generations int) (*core.Grid, error) {
	return EvolveRule(width, generations, Rule90)
}

// EvolveRule is Evolve with the transition rule supplied by the caller. A nil
// rule means Rule90.
func EvolveRule(width, generations int, rule Rule) (*core.Grid, error) {
	if err := validate(width, generations); err != nil {
		return nil, err
	}
	if rule == nil {
		rule = Rule90
	}
	g := core.NewGrid(width, generations)
	seed(g.Row(0))
	for t := 0; t < generations-1; t++ {
		step(g.Row(t), g.Row(t+1), rule, 0, width)
	}
	return g, nil
}

// EvolveParallel produces the same grid as EvolveRule while splitting the
// columns of every generation across workers goroutines. Each generation
// waits for all of its columns before the next one starts. ctx is checked
// between generations.
func EvolveParallel(ctx context.Context, width, generations, workers int, rule Rule) (*core.Grid, error) {
	if err := validate(width, generations); err != nil {
		return nil, err
	}
	if workers < 0 {
		return nil, errors.Wrapf(ErrInvalidWorkers, "workers %d", workers)
	}
	if workers <= 1 {
		return EvolveRule(width, generations, rule)
	}
	if rule == nil {
		rule = Rule90
	}
	workers = min(workers, width)
	colsPerWorker := (width + workers - 1) / workers

	g := core.NewGrid(width, generations)
	seed(g.Row(0))
	for t := 0; t < generations-1; t++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "generation %d", t+1)
		}
		prev, next := g.Row(t), g.Row(t+1)

		var eg errgroup.Group
		for lo := 0; lo < width; lo += colsPerWorker {
			lo := lo
			hi := min(lo+colsPerWorker, width)
			eg.Go(func() error {
				step(prev, next, rule, lo, hi)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// EvolveConfig runs the engine selected by cfg: sequential unless
// cfg.Workers asks for more than one goroutine.
func EvolveConfig(ctx context.Context, cfg Config) (*core.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return EvolveParallel(ctx, cfg.Width, cfg.Generations, cfg.Workers, cfg.Rule)
}

// RowFunc receives generation t once it is complete. row is only valid for
// the duration of the call.
type RowFunc func(t int, row []uint8) error

// Stream evolves Rule 90 row by row without materializing the grid, holding
// two rows at a time. Rows are delivered in generation order; an error from
// fn stops the run and is returned.
func Stream(width, generations int, fn RowFunc) error {
	if err := validate(width, generations); err != nil {
		return err
	}
	prev := make([]uint8, width)
	next := make([]uint8, width)
	seed(prev)
	for t := 0; ; t++ {
		if err := fn(t, prev); err != nil {
			return err
		}
		if t == generations-1 {
			return nil
		}
		step(prev, next, Rule90, 0, width)
		prev, next = next, prev
	}
}

func seed(row []uint8) {
	row[len(row)/2] = 1
}

// step fills columns [lo, hi) of next from prev.
func step(prev, next []uint8, rule Rule, lo, hi int) {
	for i := lo; i < hi; i++ {
		next[i] = rule(neighborhoodAt(prev, i))
	}
}
