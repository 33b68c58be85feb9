package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/primecheck/internal/cli"
	apperrors "github.com/agbru/primecheck/internal/errors"
	"github.com/agbru/primecheck/internal/logging"
	"github.com/agbru/primecheck/internal/metrics"
	"github.com/agbru/primecheck/internal/orchestration"
	"github.com/agbru/primecheck/internal/sysmon"
)

// runCheck orchestrates the execution of the configured plans.
func (a *Application) runCheck(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	plans := orchestration.GetChecksToRun(a.Config, a.Registry)
	if len(plans) == 0 {
		a.logger.Error("no strategy matches the selection", nil, logging.String("strategy", a.Config.Strategy))
		return apperrors.ExitErrorConfig
	}

	// Skip verbose output in quiet mode
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(plans, out)
	}

	// Choose progress reporter based on quiet mode
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	var execOpts orchestration.ExecutionOptions
	var checkMetrics *metrics.CheckMetrics
	if a.Config.Metrics {
		checkMetrics = metrics.NewCheckMetrics()
		execOpts.Metrics = checkMetrics
	}
	if a.Config.ShowSegments {
		execOpts.SegmentLogger = a.logger
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()
	if a.Config.Verbose {
		sysmon.Sample() // primes the CPU delta
	}

	results := orchestration.ExecuteChecks(ctx, plans, a.Config.N, execOpts, progressReporter, progressOut)

	// In-flight segments are never interrupted, so a run that overran its
	// deadline may still hold complete results. It is reported as a
	// timeout all the same.
	if err := ctx.Err(); apperrors.IsContextError(err) {
		errOut := out
		if a.Config.Quiet {
			errOut = a.ErrWriter
		}
		if errors.Is(err, context.DeadlineExceeded) {
			err = apperrors.TimeoutError{Operation: "primality check", Limit: a.Config.Timeout}
		}
		return cli.CLIResultPresenter{}.HandleError(err, a.Config.Timeout, errOut)
	}

	exitCode := a.analyzeResults(results, out)

	if a.Config.Verbose {
		cli.DisplaySystemStats(sysmon.Sample(), out)
		cli.DisplayMemoryStats(collector.Snapshot().Since(before), out)
	}
	if checkMetrics != nil {
		if !a.Config.Quiet {
			fmt.Fprintf(out, "\n--- Metrics ---\n")
		}
		if err := checkMetrics.WriteText(out); err != nil {
			a.logger.Error("writing metrics", err)
			return apperrors.ExitErrorGeneric
		}
	}
	return exitCode
}

// analyzeResults compares the results and prints either the full report or,
// in quiet mode, the bare verdict.
func (a *Application) analyzeResults(results []orchestration.CheckResult, out io.Writer) int {
	presenter := cli.CLIResultPresenter{}
	presOpts := orchestration.PresentationOptions{
		N:       a.Config.N,
		Verbose: a.Config.Verbose,
	}

	if !a.Config.Quiet {
		return orchestration.AnalyzeComparisonResults(results, presOpts, presenter, presenter, out)
	}

	exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, presenter, presenter, io.Discard)
	switch exitCode {
	case apperrors.ExitSuccess:
		// Results are sorted with the fastest success first.
		cli.DisplayQuietResult(out, results[0].Prime)
	case apperrors.ExitErrorMismatch:
		a.logger.Error("the strategies disagree on the verdict", nil, logging.Int64("n", a.Config.N))
	default:
		for _, r := range results {
			if r.Err != nil {
				a.logger.Error("check failed", r.Err, logging.String("strategy", r.Name))
				break
			}
		}
	}
	return exitCode
}
