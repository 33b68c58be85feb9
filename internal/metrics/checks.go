package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"

	apperrors "github.com/agbru/primecheck/internal/errors"
	"github.com/agbru/primecheck/internal/primality"
)

// Verdict label values of primecheck_checks_total.
const (
	VerdictPrime     = "prime"
	VerdictComposite = "composite"
	VerdictError     = "error"
)

// CheckMetrics holds the Prometheus instruments of the primality engine.
// Each instance owns its own registry, so independent runs (and tests)
// never collide on registration.
type CheckMetrics struct {
	registry        *prometheus.Registry
	checks          *prometheus.CounterVec
	segments        *prometheus.CounterVec
	divisorSegments *prometheus.CounterVec
	duration        *prometheus.HistogramVec
}

// NewCheckMetrics creates and registers the instruments, along with the Go
// runtime collector.
func NewCheckMetrics() *CheckMetrics {
	m := &CheckMetrics{
		registry: prometheus.NewRegistry(),
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "primecheck_checks_total",
			Help: "Completed primality checks by strategy and verdict.",
		}, []string{"strategy", "verdict"}),
		segments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "primecheck_segments_scanned_total",
			Help: "Segments whose divisor range was fully examined.",
		}, []string{"strategy"}),
		divisorSegments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "primecheck_divisors_found_total",
			Help: "Segments in which a divisor was found.",
		}, []string{"strategy"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "primecheck_check_duration_seconds",
			Help:    "Wall-clock duration of a primality check.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12),
		}, []string{"strategy"}),
	}
	m.registry.MustRegister(
		m.checks,
		m.segments,
		m.divisorSegments,
		m.duration,
		collectors.NewGoCollector(),
	)
	return m
}

// Registry returns the registry holding the instruments.
func (m *CheckMetrics) Registry() *prometheus.Registry { return m.registry }

// Observer returns a segment observer counting scans for strategy.
func (m *CheckMetrics) Observer(strategy string) primality.Observer {
	scanned := m.segments.WithLabelValues(strategy)
	found := m.divisorSegments.WithLabelValues(strategy)
	return primality.ObserverFunc(func(_ int64, _ primality.Segment, clean bool) {
		scanned.Inc()
		if !clean {
			found.Inc()
		}
	})
}

// ObserveCheck records the outcome and duration of one check.
func (m *CheckMetrics) ObserveCheck(strategy string, prime bool, err error, d time.Duration) {
	verdict := VerdictComposite
	switch {
	case err != nil:
		verdict = VerdictError
	case prime:
		verdict = VerdictPrime
	}
	m.checks.WithLabelValues(strategy, verdict).Inc()
	m.duration.WithLabelValues(strategy).Observe(d.Seconds())
}

// WriteText writes every gathered metric family to w in the Prometheus
// text exposition format.
func (m *CheckMetrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return apperrors.WrapError(err, "gathering metrics")
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return apperrors.WrapError(err, "encoding %s", mf.GetName())
		}
	}
	return nil
}
