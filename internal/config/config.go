package config

import (
	"flag"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/primecheck/internal/errors"
	"github.com/agbru/primecheck/internal/primality"
	"github.com/agbru/primecheck/internal/ui"
)

const (
	// EnvPrefix is prepended to every environment variable read by the
	// configuration layer.
	EnvPrefix = "PRIMECHECK_"

	// StrategyAll selects every registered strategy.
	StrategyAll = "all"

	// DefaultTimeout bounds a whole run.
	DefaultTimeout = 5 * time.Minute

	// MaxCandidate is the largest candidate accepted from the command line.
	// The divisor sweep is linear, so larger values would not finish in
	// practical time.
	MaxCandidate int64 = math.MaxInt32
)

// AppConfig aggregates the parameters of a run.
type AppConfig struct {
	// N is the candidate number.
	N int64
	// Segments is the number of segments the divisor range is split into.
	Segments int
	// PoolSize is the worker count of the pooled strategies. Zero means
	// "derive from the hardware".
	PoolSize int
	// Strategy is a registry key or StrategyAll.
	Strategy string
	// Demo replaces Strategy/Segments/PoolSize with the fixed demonstration
	// plan list.
	Demo bool
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Verbose adds environment and memory details to the report.
	Verbose bool
	// Quiet prints only the verdict.
	Quiet bool
	// NoColor disables ANSI colors.
	NoColor bool
	// Theme is a ui theme name or ui.ThemeAuto. Empty means auto.
	Theme string
	// ShowSegments logs the range examined by every scanned segment.
	ShowSegments bool
	// Metrics dumps the Prometheus registry after the run.
	Metrics bool
}

// ParseConfig parses args into an AppConfig, applies environment overrides
// for flags not set explicitly and validates the result.
//
// Parameters:
//   - programName: The name shown in usage output.
//   - args: The command-line arguments without the program name.
//   - errWriter: The writer for usage and flag errors.
//   - availableStrategies: The registry keys accepted by -strategy.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when -h was given, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableStrategies []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	config := AppConfig{}
	fs.Int64Var(&config.N, "n", primality.DefaultCandidate, "Candidate number to test for primality.")
	fs.IntVar(&config.Segments, "segments", primality.DefaultSegmentCount, "Number of segments the divisor range is split into.")
	fs.IntVar(&config.Segments, "s", primality.DefaultSegmentCount, "Number of segments (shorthand).")
	fs.IntVar(&config.PoolSize, "pool", 0, "Worker pool size of the pooled strategies (0 = derive from CPU count).")
	fs.IntVar(&config.PoolSize, "p", 0, "Worker pool size (shorthand).")
	fs.StringVar(&config.Strategy, "strategy", StrategyAll,
		fmt.Sprintf("Strategy to run: %s or %s.", strings.Join(availableStrategies, ", "), StrategyAll))
	fs.BoolVar(&config.Demo, "demo", false, "Run the fixed demonstration plan list.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum duration of the whole run.")
	fs.BoolVar(&config.Verbose, "v", false, "Verbose output (shorthand).")
	fs.BoolVar(&config.Verbose, "verbose", false, "Show environment and memory details.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the verdict.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.Theme, "theme", ui.ThemeAuto,
		fmt.Sprintf("Color theme: %s or %s.", strings.Join(ui.ThemeNames(), ", "), ui.ThemeAuto))
	fs.BoolVar(&config.ShowSegments, "segments-log", false, "Log the range examined by every segment.")
	fs.BoolVar(&config.Metrics, "metrics", false, "Print Prometheus metrics after the run.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)
	config.Strategy = strings.ToLower(strings.TrimSpace(config.Strategy))
	config.Theme = strings.ToLower(strings.TrimSpace(config.Theme))

	if err := config.Validate(availableStrategies); err != nil {
		fmt.Fprintln(errWriter, "Error:", err)
		fs.Usage()
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks the semantic consistency of the configuration.
// Negative, zero and unit candidates are valid: they are simply not prime.
func (c AppConfig) Validate(availableStrategies []string) error {
	if c.N > MaxCandidate {
		return apperrors.NewConfigError("the candidate must not exceed %d (got %d)", MaxCandidate, c.N)
	}
	if c.Segments <= 0 {
		return apperrors.NewConfigError("the number of segments must be greater than zero (got %d)", c.Segments)
	}
	if c.PoolSize < 0 {
		return apperrors.NewConfigError("the pool size must not be negative (got %d)", c.PoolSize)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("the timeout must be strictly positive")
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("-quiet and -verbose are mutually exclusive")
	}
	if _, ok := ui.LookupTheme(c.Theme); !ok && c.Theme != "" && c.Theme != ui.ThemeAuto {
		return apperrors.NewConfigError("unrecognized theme: %q. Valid themes: %s or %s",
			c.Theme, strings.Join(ui.ThemeNames(), ", "), ui.ThemeAuto)
	}
	if c.Strategy != StrategyAll && !slices.Contains(availableStrategies, c.Strategy) {
		return apperrors.NewConfigError("unrecognized strategy: %q. Valid strategies: %s or %s",
			c.Strategy, strings.Join(availableStrategies, ", "), StrategyAll)
	}
	return nil
}
