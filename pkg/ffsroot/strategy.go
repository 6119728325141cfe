package ffsroot

import (
	"context"

	"github.com/mahdiidarabi/ffs-bruteforce/internal/bruteforce"
)

// SearchStrategy defines the interface for search strategies.
type SearchStrategy interface {
	// Search scans the residue family of p and returns the smallest offset
	// whose candidate is a perfect square, or an exhausted result.
	// Exhaustion is not an error; errors are reserved for invalid problems
	// and cancellation.
	Search(ctx context.Context, p Problem) (*SearchResult, error)

	// Name returns a human-readable name for this strategy.
	Name() string
}

// ParallelConfig configures the parallel strategy.
type ParallelConfig struct {
	// Workers controls parallelization (0 = one per CPU)
	Workers int

	// BatchSize is the number of consecutive offsets handed to a worker
	BatchSize int64
}

// DefaultParallelConfig returns a sensible default configuration.
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		Workers:   0,
		BatchSize: bruteforce.DefaultBatchSize,
	}
}

// NewStrategy picks the sequential strategy for a single worker and the
// parallel one otherwise. workers = 0 means one per CPU.
func NewStrategy(workers int, batchSize int64) SearchStrategy {
	if workers == 1 {
		return NewSequentialStrategy()
	}
	return NewParallelStrategy().WithConfig(ParallelConfig{
		Workers:   workers,
		BatchSize: batchSize,
	})
}
