package ffsroot

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// naiveSearch is the textbook scan on machine integers, used as an oracle
// for small inputs.
func naiveSearch(n, expected, maxAttempts int64) (found bool, k int64, y int64) {
	for k = 0; k <= maxAttempts; k++ {
		c := expected + k*n
		for r := int64(0); r*r <= c; r++ {
			if r*r == c {
				return true, k, r
			}
		}
	}
	return false, maxAttempts, 0
}

// allStrategies returns the strategies every property must hold for.
func allStrategies() []SearchStrategy {
	return []SearchStrategy{
		NewSequentialStrategy(),
		NewParallelStrategy().WithConfig(ParallelConfig{Workers: 4, BatchSize: 3}),
		NewParallelStrategy().WithConfig(ParallelConfig{Workers: 2, BatchSize: 1}),
		NewParallelStrategy(),
	}
}

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	z, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "bad literal %s", s)
	return z
}

func search(t *testing.T, s SearchStrategy, n, expected *big.Int, maxAttempts int64) *SearchResult {
	t.Helper()
	res, err := s.Search(context.Background(), Problem{N: n, Expected: expected, MaxAttempts: maxAttempts})
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

// requireSound checks correctness, minimality and cap respect of res.
func requireSound(t *testing.T, p Problem, res *SearchResult) {
	t.Helper()
	require.LessOrEqual(t, res.Attempts, p.MaxAttempts+1)
	require.LessOrEqual(t, res.Tested, p.MaxAttempts+1)

	last := p.MaxAttempts
	if res.Found {
		y2 := new(big.Int).Mul(res.Y, res.Y)
		require.Zero(t, y2.Cmp(Candidate(p.N, p.Expected, res.K)), "y*y != expected + k*n")
		require.Zero(t, res.Candidate.Cmp(y2))
		require.GreaterOrEqual(t, res.Y.Sign(), 0)
		last = res.K - 1
	} else {
		require.Equal(t, p.MaxAttempts, res.K)
		require.Nil(t, res.Y)
	}
	for k := int64(0); k <= last; k++ {
		_, ok := IsPerfectSquare(Candidate(p.N, p.Expected, k))
		require.False(t, ok, "offset %d below the reported one is a square", k)
	}
}
