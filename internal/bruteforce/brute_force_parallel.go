// Package bruteforce scans a range of offsets with a pool of workers and
// reports the smallest offset accepted by a caller supplied scanner.
package bruteforce

import (
	"context"
	"errors"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
)

// DefaultBatchSize is used when Options.BatchSize is not positive.
const DefaultBatchSize int64 = 4096

// Batch is an inclusive range of offsets handed to one worker.
type Batch struct {
	Start int64
	End   int64
}

// Hit is what a ScanFunc reports for one batch.
type Hit struct {
	Offset int64 // first accepted offset, valid when Found
	Found  bool
	Tested int64 // offsets actually tested
}

// ScanFunc tests the offsets of b in ascending order and returns on the
// first accepted one. Offsets at or above bound() are already beaten by
// another worker and must not be tested.
type ScanFunc func(b Batch, bound func() int64) Hit

// Options controls parallelism.
type Options struct {
	// Workers is the number of goroutines (0 = one per CPU)
	Workers int
	// BatchSize is the number of offsets per work item
	BatchSize int64
}

// Outcome is the merged result of all workers.
type Outcome struct {
	Offset  int64
	Found   bool
	Tested  int64
	Workers int
}

// ErrInvalidRange is returned when last is negative or math.MaxInt64.
var ErrInvalidRange = errors.New("invalid offset range")

// FindFirst scans offsets [0, last] and returns the smallest accepted one.
//
// Batches are generated in ascending order. A worker that finds a hit
// lowers the shared bound; batches starting at or above the bound are
// skipped, while batches below it always run to completion, so the
// reported offset is minimal regardless of which worker finished first.
//
// A cancelled ctx only yields an error when it left offsets below the best
// hit unscanned; a hit already proven minimal is still returned.
func FindFirst(ctx context.Context, last int64, opts Options, scan ScanFunc) (Outcome, error) {
	if last < 0 || last == math.MaxInt64 {
		return Outcome{}, ErrInvalidRange
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	// best is the smallest hit so far; last+1 means none yet.
	var best atomic.Int64
	best.Store(last + 1)
	bound := best.Load

	// gap is the smallest offset left unscanned after cancellation.
	var gap atomic.Int64
	gap.Store(last + 1)

	var tested atomic.Int64
	work := make(chan Batch, workers*2)

	go func() {
		defer close(work)
		for start := int64(0); start <= last; {
			if start >= best.Load() {
				return
			}
			end := last
			if last-start >= batchSize {
				end = start + batchSize - 1
			}
			select {
			case <-ctx.Done():
				lower(&gap, start)
				return
			case work <- Batch{Start: start, End: end}:
			}
			if end == last {
				return
			}
			start = end + 1
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range work {
				if ctx.Err() != nil {
					lower(&gap, b.Start)
					continue
				}
				if b.Start >= best.Load() {
					continue
				}
				hit := scan(b, bound)
				tested.Add(hit.Tested)
				if hit.Found {
					lower(&best, hit.Offset)
				}
			}
		}()
	}
	wg.Wait()

	out := Outcome{Tested: tested.Load(), Workers: workers}
	k := best.Load()
	if g := gap.Load(); g <= last && k >= g {
		return out, ctx.Err()
	}
	if k <= last {
		out.Offset = k
		out.Found = true
	}
	return out, nil
}

// lower moves v down to k unless it already holds a smaller value.
func lower(v *atomic.Int64, k int64) {
	for {
		cur := v.Load()
		if k >= cur || v.CompareAndSwap(cur, k) {
			return
		}
	}
}
