// Copyright 2026 GregTheMadMonk
// This file is part of edu-28, a detector pulse overlap simulator.
//
// edu-28 is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// edu-28 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with edu-28. If not, see <http://www.gnu.org/licenses/>.

package simulator

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"runtime"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// Kernel is one unit of Monte Carlo work. It must be free of side effects
// beyond consuming randomness from the supplied generator.
type Kernel[T any] func(rg *rand.Rand) (T, error)

// RunBulk evaluates a kernel unitCount*unitSize times across parallel
// workers and returns the pooled results. Each dispatched unit runs
// unitSize sequential kernel calls, amortizing dispatch overhead over the
// batch; one kernel call is far too cheap to schedule individually.
//
// Every worker owns a private random generator. With a negative seed each
// generator is seeded from the OS entropy source; a non-negative seed
// derives per-worker seeds from it, which makes the per-worker draw
// streams reproducible (the assignment of units to workers is still
// scheduling dependent). Workers never share or inherit generator state.
//
// The call fails atomically: if any unit reports an error, no results are
// returned. No ordering across units is guaranteed; the output is a
// sample, not a sequence.
func RunBulk[T any](ctx context.Context, unitCount int, unitSize int, workers int, seed int64, kernel Kernel[T]) ([]T, error) {
	if unitCount <= 0 || unitSize <= 0 {
		return nil, errors.Newf("bulk run needs positive unit count and size, got %d x %d", unitCount, unitSize)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	units := make([][]T, unitCount)
	jobs := make(chan int)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for unit := 0; unit < unitCount; unit++ {
			select {
			case jobs <- unit:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < workers; w++ {
		worker := w
		g.Go(func() error {
			rg, err := newWorkerRand(seed, worker)
			if err != nil {
				return err
			}
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case unit, ok := <-jobs:
					if !ok {
						return nil
					}
					batch := make([]T, unitSize)
					for i := range batch {
						v, err := kernel(rg)
						if err != nil {
							return errors.Wrapf(err, "unit %d roll %d", unit, i)
						}
						batch[i] = v
					}
					// units are disjoint slots; no locking needed
					units[unit] = batch
				}
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]T, 0, unitCount*unitSize)
	for _, batch := range units {
		results = append(results, batch...)
	}
	return results, nil
}

// newWorkerRand creates the private random generator of one worker.
func newWorkerRand(seed int64, worker int) (*rand.Rand, error) {
	if seed >= 0 {
		return rand.New(rand.NewSource(seed + int64(worker))), nil
	}
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, errors.Wrap(err, "could not seed worker random generator")
	}
	return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(b[:])))), nil
}
