package cli

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/olekukonko/tablewriter"

	apperrors "github.com/agbru/primecheck/internal/errors"
	"github.com/agbru/primecheck/internal/format"
	"github.com/agbru/primecheck/internal/orchestration"
	"github.com/agbru/primecheck/internal/primality"
	"github.com/agbru/primecheck/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter for CLI output.
// It wraps the DisplayProgress function to provide a spinner and progress bar
// display during checks.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing checks.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan primality.ProgressUpdate, numChecks int, out io.Writer) {
	DisplayProgress(wg, progressChan, numChecks, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentComparisonTable renders one row per check with its partition,
// duration, verdict and status.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.CheckResult, out io.Writer) {
	fmt.Fprintf(out, "\n%s--- Comparison Summary ---%s\n", ui.ColorBold(), ui.ColorReset())

	table := tablewriter.NewWriter(out)
	table.Header("Strategy", "Segments", "Pool", "Duration", "Verdict", "Status")

	for _, res := range results {
		duration := format.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		verdict, status := "-", "OK"
		if res.Err != nil {
			status = fmt.Sprintf("Failure (%v)", res.Err)
		} else {
			verdict = ui.VerdictLabel(res.Prime)
		}
		_ = table.Append(res.Name, strconv.Itoa(res.Segments), strconv.Itoa(res.PoolSize), duration, verdict, status)
	}

	_ = table.Render()
}

// PresentResult displays the agreed verdict using DisplayResult.
func (CLIResultPresenter) PresentResult(result orchestration.CheckResult, opts orchestration.PresentationOptions, out io.Writer) {
	DisplayResult(result, opts.N, opts.Verbose, out)
}

// HandleError handles check errors and returns an appropriate exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCheckError(err, duration, out, CLIColorProvider{})
}

// CLIColorProvider supplies the active theme's colors to the error handler.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }
