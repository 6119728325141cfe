// Package config loads the search parameters from built-in defaults and an
// optional TOML file.
package config

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"

	"github.com/mahdiidarabi/ffs-bruteforce/internal/parser"
	"github.com/mahdiidarabi/ffs-bruteforce/pkg/ffsroot"
)

// DefaultWorkers runs the sequential scan.
const DefaultWorkers = 1

var (
	// ErrInvalidWorkers is returned for a negative worker count.
	ErrInvalidWorkers = errors.New("workers must not be negative")
	// ErrInvalidBatchSize is returned for a negative batch size.
	ErrInvalidBatchSize = errors.New("batch_size must not be negative")
)

// Config is everything one run of the tool needs. A zero BatchSize selects
// the engine default.
type Config struct {
	N           *big.Int
	Expected    *big.Int
	MaxAttempts int64
	Workers     int
	BatchSize   int64
}

// fileConfig mirrors the TOML layout. Integers may be written natively or
// as strings, the latter for values that do not fit in 64 bits.
type fileConfig struct {
	N           interface{} `toml:"n"`
	Expected    interface{} `toml:"expected"`
	MaxAttempts *int64      `toml:"max_attempts"`
	Workers     *int        `toml:"workers"`
	BatchSize   *int64      `toml:"batch_size"`
}

// Default returns the reference configuration.
func Default() *Config {
	p := ffsroot.DefaultProblem()
	return &Config{
		N:           p.N,
		Expected:    p.Expected,
		MaxAttempts: p.MaxAttempts,
		Workers:     DefaultWorkers,
		BatchSize:   ffsroot.DefaultParallelConfig().BatchSize,
	}
}

// Load reads path and overlays its keys on Default. Unknown keys are
// rejected so that typos do not silently fall back to defaults.
func Load(path string) (*Config, error) {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	cfg := Default()
	var result *multierror.Error
	if fc.N != nil {
		if cfg.N, err = parser.ParseInteger(fc.N); err != nil {
			result = multierror.Append(result, fmt.Errorf("n: %w", err))
		}
	}
	if fc.Expected != nil {
		if cfg.Expected, err = parser.ParseInteger(fc.Expected); err != nil {
			result = multierror.Append(result, fmt.Errorf("expected: %w", err))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	if fc.MaxAttempts != nil {
		cfg.MaxAttempts = *fc.MaxAttempts
	}
	if fc.Workers != nil {
		cfg.Workers = *fc.Workers
	}
	if fc.BatchSize != nil {
		cfg.BatchSize = *fc.BatchSize
	}
	return cfg, nil
}

// Problem returns the search inputs of c.
func (c *Config) Problem() ffsroot.Problem {
	return ffsroot.Problem{N: c.N, Expected: c.Expected, MaxAttempts: c.MaxAttempts}
}

// Strategy returns the strategy matching the worker settings of c.
func (c *Config) Strategy() ffsroot.SearchStrategy {
	return ffsroot.NewStrategy(c.Workers, c.BatchSize)
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	if err := c.Problem().Validate(); err != nil {
		var merr *multierror.Error
		if errors.As(err, &merr) {
			result = multierror.Append(result, merr.Errors...)
		} else {
			result = multierror.Append(result, err)
		}
	}
	if c.Workers < 0 {
		result = multierror.Append(result, fmt.Errorf("workers = %d: %w", c.Workers, ErrInvalidWorkers))
	}
	if c.BatchSize < 0 {
		result = multierror.Append(result, fmt.Errorf("batch_size = %d: %w", c.BatchSize, ErrInvalidBatchSize))
	}
	return result.ErrorOrNil()
}
