package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/primecheck/internal/errors"
	"github.com/agbru/primecheck/internal/orchestration"
	"github.com/agbru/primecheck/internal/ui"
)

func TestPresentComparisonTable(t *testing.T) {
	previous := ui.Apply(ui.NoColorTheme)
	defer ui.Apply(previous)

	results := []orchestration.CheckResult{
		{Name: "Pooled Future", Segments: 5, PoolSize: 3, Prime: false, Duration: 2 * time.Millisecond},
		{Name: "Sequential", Segments: 1, PoolSize: 1, Duration: 0},
		{Name: "Pooled Shared Flag", Segments: 4, PoolSize: 2, Err: errors.New("boom")},
	}
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)
	output := buf.String()

	for _, s := range []string{"Comparison Summary", "STRATEGY", "Pooled Future", "NOT PRIME", "2ms", "< 1µs", "Failure (boom)"} {
		if !strings.Contains(strings.ToUpper(output), strings.ToUpper(s)) {
			t.Errorf("expected table to contain %q, got:\n%s", s, output)
		}
	}
}

func TestPresenterHandleError(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	code := CLIResultPresenter{}.HandleError(context.DeadlineExceeded, time.Second, &buf)
	if code != apperrors.ExitErrorTimeout {
		t.Errorf("HandleError(DeadlineExceeded) = %d, want %d", code, apperrors.ExitErrorTimeout)
	}
}

func TestCLIColorProvider(t *testing.T) {
	previous := ui.Apply(ui.DarkTheme)
	defer ui.Apply(previous)

	c := CLIColorProvider{}
	if c.Red() != ui.DarkTheme.Error || c.Yellow() != ui.DarkTheme.Warning || c.Reset() != ui.DarkTheme.Reset {
		t.Error("CLIColorProvider should expose the active theme")
	}
}
