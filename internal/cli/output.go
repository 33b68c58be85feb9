// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietResult].
//
//   - Print* functions describe the run before it starts.
//     Examples: [PrintExecutionConfig], [PrintExecutionMode].

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/agbru/primecheck/internal/format"
	"github.com/agbru/primecheck/internal/metrics"
	"github.com/agbru/primecheck/internal/orchestration"
	"github.com/agbru/primecheck/internal/sysmon"
	"github.com/agbru/primecheck/internal/ui"
)

// DisplayResult prints the verdict badge for n and the check that produced
// it. In verbose mode it adds the partition geometry.
//
// Parameters:
//   - result: The check result to display.
//   - n: The candidate number.
//   - verbose: Whether to print the partition details.
//   - out: The output writer.
func DisplayResult(result orchestration.CheckResult, n int64, verbose bool, out io.Writer) {
	fmt.Fprintf(out, "\n--- Result ---\n")
	fmt.Fprintf(out, "%s%d%s is %s\n", ui.ColorBold(), n, ui.ColorReset(), ui.RenderVerdict(result.Prime))
	fmt.Fprintf(out, "Strategy:   %s%s%s (%d segments, pool of %d)\n",
		ui.ColorBlue(), result.Name, ui.ColorReset(), result.Segments, result.PoolSize)
	fmt.Fprintf(out, "Check time: %s%s%s\n", ui.ColorYellow(), format.FormatExecutionDuration(result.Duration), ui.ColorReset())

	if verbose && result.Segments > 0 {
		fmt.Fprintf(out, "Divisor range [0, %d) split into %d segments of about %d candidates each.\n",
			max(n, 0), result.Segments, max(n, 0)/int64(result.Segments))
	}
}

// FormatQuietResult formats a verdict for quiet mode output.
// Returns "true" or "false", suitable for scripting.
func FormatQuietResult(prime bool) string {
	return strconv.FormatBool(prime)
}

// DisplayQuietResult outputs a verdict in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, prime bool) {
	fmt.Fprintln(out, FormatQuietResult(prime))
}

// DisplaySystemStats shows the machine load sampled around the run.
func DisplaySystemStats(stats sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "\nSystem:\n")
	if stats.LogicalCPUs > 0 {
		fmt.Fprintf(out, "  Logical CPUs:    %d\n", stats.LogicalCPUs)
	}
	fmt.Fprintf(out, "  CPU usage:       %.1f%%\n", stats.CPUPercent)
	fmt.Fprintf(out, "  Memory usage:    %.1f%%\n", stats.MemPercent)
}

// DisplayMemoryStats shows memory statistics accumulated during the run.
func DisplayMemoryStats(snap metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(snap.HeapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(snap.TotalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", snap.NumGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(snap.PauseTotalNs)/1e6)
	fmt.Fprintf(out, "  Goroutines:      %d\n", snap.NumGoroutine)
}
