package metrics

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/agbru/primecheck/internal/primality"
)

func TestCheckMetrics_Observer(t *testing.T) {
	t.Parallel()
	m := NewCheckMetrics()

	checker := primality.NewPooledChecker()
	opts := primality.Options{PoolSize: 2, Observer: m.Observer("pool")}
	if _, err := checker.Check(context.Background(), 18, 3, opts); err != nil {
		t.Fatalf("Check: %v", err)
	}

	if got := testutil.ToFloat64(m.segments.WithLabelValues("pool")); got != 3 {
		t.Errorf("expected 3 scanned segments, got %v", got)
	}
	// [0,6) and [6,12) contain divisors of 18, [12,18) does not.
	if got := testutil.ToFloat64(m.divisorSegments.WithLabelValues("pool")); got != 2 {
		t.Errorf("expected 2 segments with divisors, got %v", got)
	}
}

func TestCheckMetrics_ObserveCheck(t *testing.T) {
	t.Parallel()
	m := NewCheckMetrics()

	m.ObserveCheck("future", true, nil, time.Millisecond)
	m.ObserveCheck("future", false, nil, time.Millisecond)
	m.ObserveCheck("future", false, errors.New("boom"), time.Millisecond)
	m.ObserveCheck("future", true, nil, 2*time.Millisecond)

	tests := []struct {
		verdict string
		want    float64
	}{
		{VerdictPrime, 2},
		{VerdictComposite, 1},
		{VerdictError, 1},
	}
	for _, tt := range tests {
		if got := testutil.ToFloat64(m.checks.WithLabelValues("future", tt.verdict)); got != tt.want {
			t.Errorf("verdict %s: expected %v, got %v", tt.verdict, tt.want, got)
		}
	}
}

func TestCheckMetrics_WriteText(t *testing.T) {
	t.Parallel()
	m := NewCheckMetrics()
	m.ObserveCheck("sequential", true, nil, time.Millisecond)

	var buf bytes.Buffer
	if err := m.WriteText(&buf); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	body := buf.String()

	for _, want := range []string{
		"primecheck_checks_total",
		"primecheck_check_duration_seconds",
		`strategy="sequential"`,
		"go_",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output should contain %q", want)
		}
	}
}

func TestCheckMetrics_IndependentRegistries(t *testing.T) {
	t.Parallel()
	// Registering twice on the default registry would panic; separate
	// instances must not.
	a, b := NewCheckMetrics(), NewCheckMetrics()
	if a.Registry() == b.Registry() {
		t.Error("each CheckMetrics should own its registry")
	}
}
