package ffsroot

import (
	"context"
	"math/big"

	"github.com/mahdiidarabi/ffs-bruteforce/internal/bruteforce"
	"github.com/mahdiidarabi/ffs-bruteforce/internal/log"
)

const (
	// ctx is polled every ctxCheckMask+1 offsets
	ctxCheckMask = 1<<10 - 1
	// progressInterval is the number of offsets between debug progress lines
	progressInterval = 1 << 14
)

// SequentialStrategy tests k = 0, 1, ..., MaxAttempts in order and stops
// at the first perfect square.
type SequentialStrategy struct{}

// NewSequentialStrategy creates a sequential strategy.
func NewSequentialStrategy() *SequentialStrategy {
	return &SequentialStrategy{}
}

// Name returns the name of this strategy.
func (s *SequentialStrategy) Name() string {
	return "Sequential"
}

// Search implements the SearchStrategy interface.
func (s *SequentialStrategy) Search(ctx context.Context, p Problem) (*SearchResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	logger := log.FromContextOrDefault(ctx)

	candidate := new(big.Int).Set(p.Expected)
	root, sq := new(big.Int), new(big.Int)

	for k := int64(0); ; k++ {
		if k&ctxCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if k > 0 && k%progressInterval == 0 {
			logger.Debugw("search progress", "tested", k, "max_attempts", p.MaxAttempts)
		}

		if isSquare(candidate, root, sq) {
			return foundResult(k, candidate, root, k+1, s.Name()), nil
		}
		if k == p.MaxAttempts {
			break
		}
		candidate.Add(candidate, p.N)
	}

	return exhaustedResult(p.MaxAttempts, p.MaxAttempts+1, s.Name()), nil
}

// ParallelStrategy splits the offsets into batches scanned by a worker
// pool. The reported offset is the smallest match, exactly as with
// SequentialStrategy.
type ParallelStrategy struct {
	Config ParallelConfig
}

// NewParallelStrategy creates a parallel strategy with default settings.
func NewParallelStrategy() *ParallelStrategy {
	return &ParallelStrategy{Config: DefaultParallelConfig()}
}

// WithConfig sets the worker configuration for the strategy.
func (s *ParallelStrategy) WithConfig(config ParallelConfig) *ParallelStrategy {
	s.Config = config
	return s
}

// Name returns the name of this strategy.
func (s *ParallelStrategy) Name() string {
	return "Parallel"
}

// Search implements the SearchStrategy interface.
func (s *ParallelStrategy) Search(ctx context.Context, p Problem) (*SearchResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	logger := log.FromContextOrDefault(ctx)

	out, err := bruteforce.FindFirst(ctx, p.MaxAttempts, bruteforce.Options{
		Workers:   s.Config.Workers,
		BatchSize: s.Config.BatchSize,
	}, scanBatch(p))
	if err != nil {
		return nil, err
	}
	logger.Debugw("workers done", "workers", out.Workers, "tested", out.Tested)

	if !out.Found {
		return exhaustedResult(p.MaxAttempts, out.Tested, s.Name()), nil
	}

	candidate := Candidate(p.N, p.Expected, out.Offset)
	y, ok := IsPerfectSquare(candidate)
	if !ok {
		// unreachable unless the scanner and the final check disagree
		panic("ffsroot: offset reported by worker is not a perfect square")
	}
	return foundResult(out.Offset, candidate, y, out.Tested, s.Name()), nil
}

// scanBatch returns a scanner for the residue family of p. Each batch
// computes its first candidate once and then adds n per offset.
func scanBatch(p Problem) bruteforce.ScanFunc {
	return func(b bruteforce.Batch, bound func() int64) bruteforce.Hit {
		var hit bruteforce.Hit
		candidate := Candidate(p.N, p.Expected, b.Start)
		root, sq := new(big.Int), new(big.Int)

		for k := b.Start; k <= b.End; k++ {
			if k >= bound() {
				break
			}
			hit.Tested++
			if isSquare(candidate, root, sq) {
				hit.Offset, hit.Found = k, true
				return hit
			}
			candidate.Add(candidate, p.N)
		}
		return hit
	}
}
