package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/primecheck/internal/errors"
	"github.com/agbru/primecheck/internal/logging"
	"github.com/agbru/primecheck/internal/metrics"
	"github.com/agbru/primecheck/internal/primality"
)

const tracerName = "github.com/agbru/primecheck/internal/orchestration"

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of dropped updates when the
// UI is slow to consume them.
const ProgressBufferMultiplier = 8

// ExecutionOptions carries the optional instrumentation of a run.
type ExecutionOptions struct {
	// Metrics receives per-check and per-segment measurements. May be nil.
	Metrics *metrics.CheckMetrics
	// SegmentLogger receives the range record of every scanned segment.
	// May be nil.
	SegmentLogger logging.Logger
}

// ExecuteChecks runs every plan against number and collects the results.
//
// Plans run one at a time so that their wall-clock durations are
// comparable; each plan is still internally concurrent. Each run is wrapped
// in an OpenTelemetry span. Errors are recorded in the results, never
// returned, so that one failing strategy does not hide the others.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - plans: The plans to execute.
//   - number: The candidate number.
//   - opts: Optional metrics and segment logging.
//   - progressReporter: The progress reporter (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - []CheckResult: One result per plan, in plan order.
func ExecuteChecks(ctx context.Context, plans []Plan, number int64, opts ExecutionOptions, progressReporter ProgressReporter, out io.Writer) []CheckResult {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(1)
	results := make([]CheckResult, len(plans))
	progressChan := make(chan primality.ProgressUpdate, max(len(plans), 1)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(plans), out)

	for i, plan := range plans {
		g.Go(func() error {
			results[i] = runPlan(ctx, i, plan, number, opts, progressChan)
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

func runPlan(ctx context.Context, index int, plan Plan, number int64, opts ExecutionOptions, progressChan chan<- primality.ProgressUpdate) CheckResult {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "primecheck.check",
		trace.WithAttributes(
			attribute.String("primecheck.strategy", plan.Strategy),
			attribute.Int64("primecheck.number", number),
			attribute.Int("primecheck.segments", plan.Segments),
			attribute.Int("primecheck.pool_size", plan.PoolSize),
		))
	defer span.End()

	progress := primality.NewProgressObserver(index, plan.Segments, progressChan)
	observers := primality.MultiObserver{progress}
	if opts.Metrics != nil {
		observers = append(observers, opts.Metrics.Observer(plan.Strategy))
	}
	if opts.SegmentLogger != nil {
		observers = append(observers, primality.NewLogObserver(opts.SegmentLogger, plan.Strategy))
	}

	start := time.Now()
	prime, err := plan.Checker.Check(ctx, number, plan.Segments, primality.Options{
		PoolSize: plan.PoolSize,
		Observer: observers,
	})
	duration := time.Since(start)
	progress.Complete()

	if opts.Metrics != nil {
		opts.Metrics.ObserveCheck(plan.Strategy, prime, err, duration)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.Bool("primecheck.prime", prime))
	}

	return CheckResult{
		Name:     plan.Checker.Name(),
		Strategy: plan.Strategy,
		Segments: plan.Segments,
		PoolSize: plan.PoolSize,
		Prime:    prime,
		Duration: duration,
		Err:      err,
	}
}

// AnalyzeComparisonResults processes the results of every plan and
// generates a summary report.
//
// It sorts the results by execution time (successes first), validates that
// every successful check reached the same verdict, and displays the
// comparison table.
//
// Parameters:
//   - results: The slice of check results to analyze.
//   - opts: Presentation options.
//   - presenter: The result presenter for display formatting.
//   - errHandler: The handler mapping a failure to an exit code.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []CheckResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *CheckResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValidResult == nil {
				firstValidResult = &results[i]
			}
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No strategy could complete the check.\n")
		return errHandler.HandleError(firstError, 0, out)
	}

	for _, res := range results {
		if res.Err == nil && res.Prime != firstValidResult.Prime {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! The strategies disagree on the verdict.\n")
			return apperrors.ExitErrorMismatch
		}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid verdicts are consistent.\n")
	presenter.PresentResult(*firstValidResult, opts, out)
	return apperrors.ExitSuccess
}
