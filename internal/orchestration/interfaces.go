package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/primecheck/internal/primality"
)

// CheckResult encapsulates the outcome of running one plan.
// It serves as the shared domain type between orchestration and presentation layers.
type CheckResult struct {
	// Name is the human-readable strategy name (e.g., "Pooled Future").
	Name string
	// Strategy is the registry key of the strategy.
	Strategy string
	// Segments is the number of segments the range was split into.
	Segments int
	// PoolSize is the number of workers used.
	PoolSize int
	// Prime is the verdict. It is meaningless when Err is set.
	Prime bool
	// Duration is the wall-clock time of the check.
	Duration time.Duration
	// Err contains any error that occurred during the check.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	N       int64
	Verbose bool
}

// ProgressReporter defines the interface for displaying check progress.
// Implementations handle the visual representation (spinner, bar) while the
// orchestration layer focuses on running the plans.
type ProgressReporter interface {
	// DisplayProgress consumes progressChan until it is closed and then
	// calls wg.Done.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving per-check progress updates.
	//   - numChecks: The number of checks being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan primality.ProgressUpdate, numChecks int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan primality.ProgressUpdate, numChecks int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan primality.ProgressUpdate, numChecks int, out io.Writer) {
	f(wg, progressChan, numChecks, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan primality.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter defines the interface for presenting check results.
type ResultPresenter interface {
	// PresentComparisonTable displays the summary table of every plan.
	PresentComparisonTable(results []CheckResult, out io.Writer)

	// PresentResult displays the agreed verdict.
	PresentResult(result CheckResult, opts PresentationOptions, out io.Writer)
}

// ErrorHandler handles check errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
