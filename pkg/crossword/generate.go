package crossword

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"pokercrossword/internal/rng"
)

// GenerateMany builds n puzzles using up to workers goroutines
// Every puzzle gets its own deck and its own seeded generator. The seeds are drawn from gen
// up front, so a seeded gen produces the same puzzles no matter how the work is scheduled.
// Puzzles are returned in order.
func GenerateMany(ctx context.Context, logger logrus.FieldLogger, gen rng.Generator, opts Options, n, workers int) ([]*Puzzle, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if n < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidCount, n)
	}

	if gen == nil {
		gen = rng.Crypto{}
	}

	if workers < 1 {
		workers = 1
	}

	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = int64(gen.Intn(math.MaxInt32)) + 1
	}

	puzzles := make([]*Puzzle, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, seed := range seeds {
		i, seed := i, seed
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			p, err := New(logger.WithField("puzzle", i), rng.NewSeeded(seed), opts)
			if err != nil {
				return err
			}

			puzzles[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return puzzles, nil
}
