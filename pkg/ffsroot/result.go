package ffsroot

import (
	"math/big"
	"time"
)

// State is the position of a search in its state machine.
type State int

const (
	// StateSearching is the state of a search that is still scanning.
	StateSearching State = iota
	// StateFound means a perfect square was reached.
	StateFound
	// StateExhausted means every offset up to the cap was rejected.
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateSearching:
		return "searching"
	case StateFound:
		return "found"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// SearchResult contains the outcome of a search.
type SearchResult struct {
	Found     bool     // whether a perfect square was found
	K         int64    // matching offset, or the cap when not found
	Y         *big.Int // square root of Candidate, nil when not found
	Candidate *big.Int // expected + K*n, nil when not found
	Attempts  int64    // offsets covered in scan order: K+1 when found, cap+1 otherwise
	Tested    int64    // perfect-square tests actually run
	Strategy  string
	Elapsed   time.Duration
}

// State returns the terminal state of a completed search.
func (r *SearchResult) State() State {
	if r == nil {
		return StateSearching
	}
	if r.Found {
		return StateFound
	}
	return StateExhausted
}

func foundResult(k int64, candidate, y *big.Int, tested int64, strategy string) *SearchResult {
	return &SearchResult{
		Found:     true,
		K:         k,
		Y:         y,
		Candidate: candidate,
		Attempts:  k + 1,
		Tested:    tested,
		Strategy:  strategy,
	}
}

func exhaustedResult(maxAttempts, tested int64, strategy string) *SearchResult {
	return &SearchResult{
		K:        maxAttempts,
		Attempts: maxAttempts + 1,
		Tested:   tested,
		Strategy: strategy,
	}
}
