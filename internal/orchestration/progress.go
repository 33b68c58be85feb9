package orchestration

import (
	"time"

	"github.com/agbru/primecheck/internal/primality"
)

// ProgressAggregator combines the per-check progress updates of a run into
// one average with a remaining-time estimate. It is not safe for concurrent
// use; a single display goroutine owns it.
type ProgressAggregator struct {
	values    []float64
	startTime time.Time
	now       func() time.Time
}

// NewProgressAggregator creates a new aggregator for the given number of
// checks. Returns nil if numChecks <= 0.
func NewProgressAggregator(numChecks int) *ProgressAggregator {
	if numChecks <= 0 {
		return nil
	}
	return &ProgressAggregator{
		values:    make([]float64, numChecks),
		startTime: time.Now(),
		now:       time.Now,
	}
}

// AggregatedProgress holds the result of processing a single progress update.
type AggregatedProgress struct {
	// CheckIndex is the index of the check that sent the update.
	CheckIndex int
	// Value is the raw progress value from the update (0.0 to 1.0).
	Value float64
	// AverageProgress is the aggregated average across all checks.
	AverageProgress float64
	// ETA is the estimated time remaining.
	ETA time.Duration
}

// Update processes a single progress update and returns the aggregated
// result. Updates with an out-of-range index are ignored. Progress of a
// check never moves backwards.
func (a *ProgressAggregator) Update(update primality.ProgressUpdate) AggregatedProgress {
	if update.CheckIndex >= 0 && update.CheckIndex < len(a.values) && update.Value > a.values[update.CheckIndex] {
		a.values[update.CheckIndex] = min(update.Value, 1.0)
	}
	return AggregatedProgress{
		CheckIndex:      update.CheckIndex,
		Value:           update.Value,
		AverageProgress: a.CalculateAverage(),
		ETA:             a.GetETA(),
	}
}

// CalculateAverage returns the current average progress without updating.
func (a *ProgressAggregator) CalculateAverage() float64 {
	var sum float64
	for _, v := range a.values {
		sum += v
	}
	return sum / float64(len(a.values))
}

// GetETA extrapolates the remaining time from the elapsed time and the
// average progress. It returns 0 before any progress and once complete.
func (a *ProgressAggregator) GetETA() time.Duration {
	avg := a.CalculateAverage()
	if avg <= 0 || avg >= 1 {
		return 0
	}
	elapsed := a.now().Sub(a.startTime)
	return time.Duration(float64(elapsed) * (1 - avg) / avg)
}

// NumChecks returns the number of checks being tracked.
func (a *ProgressAggregator) NumChecks() int {
	return len(a.values)
}

// IsMultiCheck returns true if tracking more than one check.
func (a *ProgressAggregator) IsMultiCheck() bool {
	return len(a.values) > 1
}

// DrainChannel reads all updates from the channel without processing.
func DrainChannel(progressChan <-chan primality.ProgressUpdate) {
	for range progressChan {
	}
}
