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
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestBulk_ResultCount(t *testing.T) {
	results, err := RunBulk(context.Background(), 10, 5, 4, -1, func(rg *rand.Rand) (float64, error) {
		return rg.Float64(), nil
	})
	if err != nil {
		t.Fatalf("bulk run: want nil, got %v", err)
	}
	if len(results) != 50 {
		t.Fatalf("result count: want 10*5=50, got %d", len(results))
	}
}

func TestBulk_WorkersDoNotReplaySequences(t *testing.T) {
	const unitCount, unitSize = 16, 100
	results, err := RunBulk(context.Background(), unitCount, unitSize, 8, -1, func(rg *rand.Rand) (float64, error) {
		return rg.Float64(), nil
	})
	if err != nil {
		t.Fatalf("bulk run: want nil, got %v", err)
	}

	// no two sequential draws inside a unit may coincide
	for u := 0; u < unitCount; u++ {
		for i := 1; i < unitSize; i++ {
			if results[u*unitSize+i] == results[u*unitSize+i-1] {
				t.Fatalf("unit %d: sequential draws %d and %d are identical", u, i-1, i)
			}
		}
	}

	// units run by independently seeded workers must not all start with
	// the same draw
	first := results[0]
	identical := 0
	for u := 0; u < unitCount; u++ {
		if results[u*unitSize] == first {
			identical++
		}
	}
	if identical == unitCount {
		t.Fatalf("all %d units replay the same draw sequence", unitCount)
	}
}

func TestBulk_ReproducibleWithFixedSeedSingleWorker(t *testing.T) {
	kernel := func(rg *rand.Rand) (float64, error) { return rg.Float64(), nil }

	a, err := RunBulk(context.Background(), 4, 25, 1, 42, kernel)
	if err != nil {
		t.Fatalf("bulk run: want nil, got %v", err)
	}
	b, err := RunBulk(context.Background(), 4, 25, 1, 42, kernel)
	if err != nil {
		t.Fatalf("bulk run: want nil, got %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded single-worker run diverges at index %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestBulk_FailsAtomically(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	results, err := RunBulk(context.Background(), 10, 10, 1, 7, func(rg *rand.Rand) (int, error) {
		calls++
		if calls == 35 {
			return 0, boom
		}
		return calls, nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("failing kernel: want boom, got %v", err)
	}
	if results != nil {
		t.Fatalf("failing run must not return partial results, got %d", len(results))
	}
}

func TestBulk_RejectsEmptyRun(t *testing.T) {
	if _, err := RunBulk(context.Background(), 0, 5, 1, -1, func(rg *rand.Rand) (int, error) { return 0, nil }); err == nil {
		t.Fatalf("zero unit count: want error, got nil")
	}
	if _, err := RunBulk(context.Background(), 5, 0, 1, -1, func(rg *rand.Rand) (int, error) { return 0, nil }); err == nil {
		t.Fatalf("zero unit size: want error, got nil")
	}
}

func TestBulk_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunBulk(ctx, 100, 100, 2, -1, func(rg *rand.Rand) (int, error) { return 0, nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled run: want context.Canceled, got %v", err)
	}
}
