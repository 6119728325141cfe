package main

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"os"
	"os/signal"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	cli "github.com/urfave/cli/v2"
	"go.uber.org/zap/zapcore"

	"github.com/mahdiidarabi/ffs-bruteforce/internal/config"
	"github.com/mahdiidarabi/ffs-bruteforce/internal/log"
	"github.com/mahdiidarabi/ffs-bruteforce/internal/metrics"
	"github.com/mahdiidarabi/ffs-bruteforce/internal/parser"
	"github.com/mahdiidarabi/ffs-bruteforce/pkg/ffsroot"
)

// Automatically set through -ldflags
// Example: go install -ldflags "-X main.version=`git describe --tags`
//   -X main.buildDate=`date -u +%d/%m/%Y@%H:%M:%S` -X main.gitCommit=`git rev-parse HEAD`"
var (
	version   = "master"
	gitCommit = "none"
	buildDate = "unknown"
)

// Process exit codes.
const (
	exitFound     = 0
	exitError     = 1
	exitExhausted = 2
)

var (
	modulusFlag = &cli.StringFlag{
		Name:  "n",
		Value: strconv.FormatInt(ffsroot.DefaultModulus, 10),
		Usage: "public `N` for the modulo ring of the target FFS instance",
	}
	expectedFlag = &cli.StringFlag{
		Name:    "expected",
		Aliases: []string{"e"},
		Value:   strconv.FormatInt(ffsroot.DefaultExpected, 10),
		Usage:   "observed `VALUE` (x*v_i^e_i) to express as a square",
	}
	maxAttemptsFlag = &cli.Int64Flag{
		Name:    "max-attempts",
		Aliases: []string{"m"},
		Value:   ffsroot.DefaultMaxAttempts,
		Usage:   "largest offset k to try",
	}
	workersFlag = &cli.IntFlag{
		Name:    "workers",
		Aliases: []string{"w"},
		Value:   config.DefaultWorkers,
		Usage:   "number of parallel workers (1 = sequential, 0 = one per CPU)",
	}
	configFlag = &cli.StringFlag{
		Name:      "config",
		Aliases:   []string{"c"},
		Usage:     "TOML `FILE` with n, expected, max_attempts, workers and batch_size",
		TakesFile: true,
	}
	verboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "log search progress and metrics to stderr",
	}
)

func init() {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintf(c.App.Writer, "ffs-bruteforce %v (date %v, commit %v)\n", version, buildDate, gitCommit)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one search and returns the process exit code: 0 when y was
// found, 2 when the attempts were exhausted, 1 on invalid input.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	code := exitFound

	app := &cli.App{
		Name:            "ffs-bruteforce",
		Version:         version,
		Usage:           "Bruteforce y for Feige Fiat Shamir",
		UsageText:       "ffs-bruteforce [-n N] [-e VALUE] [options]",
		Flags:           []cli.Flag{modulusFlag, expectedFlag, maxAttemptsFlag, workersFlag, configFlag, verboseFlag},
		Writer:          stdout,
		ErrWriter:       stderr,
		HideHelpCommand: true,
		ExitErrHandler:  func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				_ = cli.ShowAppHelp(c)
				return fmt.Errorf("unexpected arguments: %v", c.Args().Slice())
			}
			found, err := search(c, stdout, stderr)
			if err != nil {
				return err
			}
			if found {
				code = exitFound
			} else {
				code = exitExhausted
			}
			return nil
		},
	}
	if err := app.RunContext(ctx, args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return code
}

func search(c *cli.Context, stdout, stderr io.Writer) (bool, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		_ = cli.ShowAppHelp(c)
		return false, err
	}
	if err := cfg.Validate(); err != nil {
		return false, err
	}

	level := log.WarnLevel
	if c.Bool(verboseFlag.Name) {
		level = log.DebugLevel
	}
	logger := log.New(zapcore.AddSync(stderr), level, false)

	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	if err != nil {
		return false, err
	}

	client := ffsroot.NewClient().
		WithStrategy(cfg.Strategy()).
		WithLogger(logger).
		WithMetrics(m)

	fmt.Fprintf(stdout, "n = %s, expected = %s\n", cfg.N, cfg.Expected)
	fmt.Fprintf(stdout, "Calculating y ...\n\n")

	result, err := client.SearchProblem(c.Context, cfg.Problem())
	if err != nil {
		return false, err
	}
	logMetrics(logger, reg)

	if result.Found {
		fmt.Fprintf(stdout, "Found y after %d tries!\n", result.K)
		fmt.Fprintf(stdout, "y = %s\n", result.Y)
		return true, nil
	}
	fmt.Fprintf(stdout, "y not found after %d tries\n", result.K)
	return false, nil
}

// loadConfig layers defaults, the optional config file and explicitly set
// flags, in that order.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := c.String(configFlag.Name); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	if c.IsSet(modulusFlag.Name) {
		n, err := parseIntegerFlag(c, modulusFlag.Name)
		if err != nil {
			return nil, err
		}
		cfg.N = n
	}
	if c.IsSet(expectedFlag.Name) {
		e, err := parseIntegerFlag(c, expectedFlag.Name)
		if err != nil {
			return nil, err
		}
		cfg.Expected = e
	}
	if c.IsSet(maxAttemptsFlag.Name) {
		cfg.MaxAttempts = c.Int64(maxAttemptsFlag.Name)
	}
	if c.IsSet(workersFlag.Name) {
		cfg.Workers = c.Int(workersFlag.Name)
	}
	return cfg, nil
}

func parseIntegerFlag(c *cli.Context, name string) (*big.Int, error) {
	v, err := parser.ParseInteger(c.String(name))
	if err != nil {
		return nil, fmt.Errorf("invalid value for flag -%s: %w", name, err)
	}
	return v, nil
}

func logMetrics(logger log.Logger, reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		logger.Warnw("failed to gather metrics", "err", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			kv := []interface{}{"name", mf.GetName()}
			for _, lp := range m.GetLabel() {
				kv = append(kv, lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				kv = append(kv, "value", m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				kv = append(kv, "value", m.GetGauge().GetValue())
			case m.GetHistogram() != nil:
				kv = append(kv, "count", m.GetHistogram().GetSampleCount(), "sum", m.GetHistogram().GetSampleSum())
			}
			logger.Debugw("metric", kv...)
		}
	}
}
