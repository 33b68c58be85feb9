package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/primecheck/internal/config"
	"github.com/agbru/primecheck/internal/orchestration"
	"github.com/agbru/primecheck/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the user.
// It shows the candidate, the partition, the timeout and environment details.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Checking %s%d%s for primality with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), cfg.N, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	if !cfg.Demo {
		fmt.Fprintf(out, "Partition: %s%d%s segments, pool of %s%d%s workers.\n",
			ui.ColorCyan(), cfg.Segments, ui.ColorReset(), ui.ColorCyan(), cfg.PoolSize, ui.ColorReset())
	}
}

// PrintExecutionMode displays the execution mode (single strategy vs comparison).
//
// Parameters:
//   - plans: The plans that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(plans []orchestration.Plan, out io.Writer) {
	var modeDesc string
	switch len(plans) {
	case 0:
		modeDesc = "nothing to run"
	case 1:
		modeDesc = fmt.Sprintf("Single check with the %s%s%s strategy",
			ui.ColorGreen(), plans[0].Checker.Name(), ui.ColorReset())
	default:
		modeDesc = fmt.Sprintf("Sequential comparison of %d plans", len(plans))
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
