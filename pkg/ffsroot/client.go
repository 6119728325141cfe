package ffsroot

import (
	"context"
	"math/big"

	"github.com/jonboulle/clockwork"

	"github.com/mahdiidarabi/ffs-bruteforce/internal/log"
	"github.com/mahdiidarabi/ffs-bruteforce/internal/metrics"
)

// Client provides a high-level API for square searches.
type Client struct {
	strategy SearchStrategy
	logger   log.Logger
	metrics  *metrics.Metrics
	clock    clockwork.Clock
}

// NewClient creates a new client with the sequential strategy.
func NewClient() *Client {
	return &Client{
		strategy: NewSequentialStrategy(),
		logger:   log.DefaultLogger(),
		clock:    clockwork.NewRealClock(),
	}
}

// WithStrategy sets a custom search strategy.
func (c *Client) WithStrategy(strategy SearchStrategy) *Client {
	c.strategy = strategy
	return c
}

// WithLogger sets the logger handed to strategies through the context.
func (c *Client) WithLogger(l log.Logger) *Client {
	c.logger = l
	return c
}

// WithMetrics makes the client record every search in m.
func (c *Client) WithMetrics(m *metrics.Metrics) *Client {
	c.metrics = m
	return c
}

// WithClock sets the clock used to time searches.
func (c *Client) WithClock(clock clockwork.Clock) *Client {
	c.clock = clock
	return c
}

// Search looks for the smallest k in [0, maxAttempts] such that
// expected + k*n is a perfect square.
//
// Args:
//   - ctx: Context for cancellation.
//   - n: Public modulus, must be positive.
//   - expected: Observed value, must not be negative.
//   - maxAttempts: Largest offset to test; 0 tests expected alone.
//
// Returns:
//   - SearchResult with Found set on success; an exhausted search is not an error.
//   - error for invalid inputs or a cancelled context.
func (c *Client) Search(ctx context.Context, n, expected *big.Int, maxAttempts int64) (*SearchResult, error) {
	return c.SearchProblem(ctx, Problem{N: n, Expected: expected, MaxAttempts: maxAttempts})
}

// SearchProblem is Search for an already assembled Problem.
func (c *Client) SearchProblem(ctx context.Context, p Problem) (*SearchResult, error) {
	logger := c.logger.Named(c.strategy.Name())

	if err := p.Validate(); err != nil {
		c.metrics.ObserveSearch(metrics.OutcomeError, 0, 0, 0)
		return nil, err
	}

	logger.Debugw("starting search", "n", p.N.String(), "expected", p.Expected.String(), "max_attempts", p.MaxAttempts)

	start := c.clock.Now()
	result, err := c.strategy.Search(log.ToContext(ctx, logger), p)
	elapsed := c.clock.Since(start)
	if err != nil {
		logger.Warnw("search aborted", "err", err, "elapsed", elapsed)
		c.metrics.ObserveSearch(metrics.OutcomeError, 0, 0, elapsed)
		return nil, err
	}
	result.Elapsed = elapsed

	if result.Found {
		logger.Infow("perfect square found", "k", result.K, "y", result.Y.String(), "tested", result.Tested, "elapsed", elapsed)
		c.metrics.ObserveSearch(metrics.OutcomeFound, result.Tested, result.K, elapsed)
	} else {
		logger.Infow("search exhausted", "max_attempts", p.MaxAttempts, "tested", result.Tested, "elapsed", elapsed)
		c.metrics.ObserveSearch(metrics.OutcomeExhausted, result.Tested, 0, elapsed)
	}
	return result, nil
}
