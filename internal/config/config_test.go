package config

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/ffs-bruteforce/internal/parser"
	"github.com/mahdiidarabi/ffs-bruteforce/pkg/ffsroot"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ffs.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, int64(84436625), cfg.N.Int64())
	require.Equal(t, int64(39778375), cfg.Expected.Int64())
	require.Equal(t, int64(100000), cfg.MaxAttempts)
	require.Equal(t, 1, cfg.Workers)
	require.NoError(t, cfg.Validate())
	require.Equal(t, "Sequential", cfg.Strategy().Name())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
n = 7
expected = "0x4"
max_attempts = 10
workers = 4
batch_size = 128
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, int64(7), cfg.N.Int64())
	require.Equal(t, int64(4), cfg.Expected.Int64())
	require.Equal(t, int64(10), cfg.MaxAttempts)
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, int64(128), cfg.BatchSize)
	require.Equal(t, "Parallel", cfg.Strategy().Name())
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `max_attempts = 5`))
	require.NoError(t, err)
	require.Equal(t, int64(84436625), cfg.N.Int64())
	require.Equal(t, int64(5), cfg.MaxAttempts)
}

func TestLoad_BigIntegerAsString(t *testing.T) {
	cfg, err := Load(writeConfig(t, `n = "340282366920938463463374607431768211457"`))
	require.NoError(t, err)
	want, _ := new(big.Int).SetString("340282366920938463463374607431768211457", 10)
	require.Zero(t, want.Cmp(cfg.N))
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, `n = [`))
	require.Error(t, err)

	_, err = Load(writeConfig(t, `modulus = 5`))
	require.ErrorContains(t, err, "unknown keys modulus")

	_, err = Load(writeConfig(t, "n = \"abc\"\nexpected = 1.5\n"))
	require.ErrorIs(t, err, parser.ErrNotInteger)
	require.ErrorContains(t, err, "n:")
	require.ErrorContains(t, err, "expected:")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.N = big.NewInt(0)
	cfg.Expected = big.NewInt(-2)
	cfg.Workers = -1
	cfg.BatchSize = -8

	err := cfg.Validate()
	require.ErrorIs(t, err, ffsroot.ErrInvalidModulus)
	require.ErrorIs(t, err, ffsroot.ErrNegativeExpected)
	require.ErrorIs(t, err, ErrInvalidWorkers)
	require.ErrorIs(t, err, ErrInvalidBatchSize)
}

func TestValidate_BatchSizeFromFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, "workers = 4\nbatch_size = -1\n"))
	require.NoError(t, err)
	require.ErrorIs(t, cfg.Validate(), ErrInvalidBatchSize)

	cfg, err = Load(writeConfig(t, "batch_size = 0\n"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
}
