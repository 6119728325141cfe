package ffsroot

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/hashicorp/go-multierror"
)

// Reference configuration of the tool.
const (
	DefaultModulus     int64 = 84436625
	DefaultExpected    int64 = 39778375
	DefaultMaxAttempts int64 = 100000
)

// MaxAttemptsLimit is the largest accepted attempt cap.
const MaxAttemptsLimit int64 = math.MaxInt64 - 1

var (
	// ErrMissingValue is returned when n or expected is nil.
	ErrMissingValue = errors.New("missing value")
	// ErrInvalidModulus is returned when n <= 0.
	ErrInvalidModulus = errors.New("modulus must be positive")
	// ErrNegativeExpected is returned when expected < 0.
	ErrNegativeExpected = errors.New("expected value must not be negative")
	// ErrInvalidMaxAttempts is returned when the cap is negative or above MaxAttemptsLimit.
	ErrInvalidMaxAttempts = errors.New("max attempts out of range")
)

// Problem holds the inputs of one search. It is never mutated by a strategy.
type Problem struct {
	N           *big.Int // public modulus
	Expected    *big.Int // observed value
	MaxAttempts int64    // largest offset k to test
}

// DefaultProblem returns the reference instance.
func DefaultProblem() Problem {
	return Problem{
		N:           big.NewInt(DefaultModulus),
		Expected:    big.NewInt(DefaultExpected),
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Validate reports every problem with p at once.
func (p Problem) Validate() error {
	var result *multierror.Error

	switch {
	case p.N == nil:
		result = multierror.Append(result, fmt.Errorf("n: %w", ErrMissingValue))
	case p.N.Sign() <= 0:
		result = multierror.Append(result, fmt.Errorf("n = %s: %w", p.N, ErrInvalidModulus))
	}

	switch {
	case p.Expected == nil:
		result = multierror.Append(result, fmt.Errorf("expected: %w", ErrMissingValue))
	case p.Expected.Sign() < 0:
		result = multierror.Append(result, fmt.Errorf("expected = %s: %w", p.Expected, ErrNegativeExpected))
	}

	if p.MaxAttempts < 0 || p.MaxAttempts > MaxAttemptsLimit {
		result = multierror.Append(result, fmt.Errorf("max attempts = %d: %w", p.MaxAttempts, ErrInvalidMaxAttempts))
	}

	return result.ErrorOrNil()
}
