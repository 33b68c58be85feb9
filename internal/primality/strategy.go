package primality

import (
	"context"

	apperrors "github.com/agbru/primecheck/internal/errors"
)

// Options configures a single check.
type Options struct {
	// PoolSize is the number of workers of the pooled strategies. The
	// sequential strategy always uses one worker and ignores it.
	PoolSize int
	// Observer receives the range record of every scanned segment. May be nil.
	Observer Observer
}

// Checker is the common interface of the three execution strategies.
type Checker interface {
	// Check reports whether number is prime, scanning segmentCount
	// segments. It returns only after every dispatched segment has
	// finished and the strategy's workers have exited.
	Check(ctx context.Context, number int64, segmentCount int, opts Options) (bool, error)
	// Name returns a human-readable strategy name.
	Name() string
}

// prepare validates the arguments and hoists the global non-primality rule.
// It returns the partition to dispatch, or done=true when the verdict is
// already known to be false.
func prepare(ctx context.Context, number int64, segmentCount int) (segments []Segment, done bool, err error) {
	if err := validateSegmentCount(segmentCount); err != nil {
		return nil, false, err
	}
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if number <= 1 {
		return nil, true, nil
	}
	segments, err = Partition(number, segmentCount)
	if err != nil {
		return nil, false, err
	}
	return segments, false, nil
}

// checkShared runs every segment as a fire-and-forget task on a pool of
// poolSize workers. A segment that finds a divisor lowers the shared
// verdict; the verdict is read only after the pool has drained.
func checkShared(ctx context.Context, number int64, segmentCount, poolSize int, obs Observer, scan segmentScanner) (bool, error) {
	segments, done, err := prepare(ctx, number, segmentCount)
	if err != nil || done {
		return false, err
	}

	pool, err := NewPool(poolSize)
	if err != nil {
		return false, err
	}

	verdict := NewVerdict()
	for _, seg := range segments {
		if err := pool.Execute(seg.Index, func() {
			if !scan(number, seg, obs) {
				verdict.Reject()
			}
		}); err != nil {
			_ = pool.Shutdown()
			return false, err
		}
	}

	if err := pool.Shutdown(); err != nil {
		return false, err
	}
	return verdict.Value(), nil
}

// SequentialChecker executes all segments in index order on one dedicated
// worker. Every segment runs its full scan even after another one has
// found a divisor.
type SequentialChecker struct {
	scan segmentScanner
}

// NewSequentialChecker returns a sequential strategy.
func NewSequentialChecker() *SequentialChecker {
	return &SequentialChecker{scan: CheckSegment}
}

// Name returns the strategy name.
func (c *SequentialChecker) Name() string { return "Sequential" }

// Check runs the segments one after another. opts.PoolSize is ignored.
func (c *SequentialChecker) Check(ctx context.Context, number int64, segmentCount int, opts Options) (bool, error) {
	return checkShared(ctx, number, segmentCount, 1, opts.Observer, c.scan)
}

// PooledChecker executes segments on a fixed pool, each task writing the
// shared verdict under its lock.
type PooledChecker struct {
	scan segmentScanner
}

// NewPooledChecker returns a fire-and-forget pooled strategy.
func NewPooledChecker() *PooledChecker {
	return &PooledChecker{scan: CheckSegment}
}

// Name returns the strategy name.
func (c *PooledChecker) Name() string { return "Pooled Shared Flag" }

// Check runs the segments on opts.PoolSize workers.
func (c *PooledChecker) Check(ctx context.Context, number int64, segmentCount int, opts Options) (bool, error) {
	return checkShared(ctx, number, segmentCount, opts.PoolSize, opts.Observer, c.scan)
}

// FutureChecker executes segments on a fixed pool as value-returning tasks
// and reduces their outcomes with AND. No state is shared between tasks.
type FutureChecker struct {
	scan segmentScanner
}

// NewFutureChecker returns a future-based pooled strategy.
func NewFutureChecker() *FutureChecker {
	return &FutureChecker{scan: CheckSegment}
}

// Name returns the strategy name.
func (c *FutureChecker) Name() string { return "Pooled Future" }

// Check runs the segments on opts.PoolSize workers and combines their
// outcomes.
func (c *FutureChecker) Check(ctx context.Context, number int64, segmentCount int, opts Options) (bool, error) {
	outcomes, err := c.Collect(ctx, number, segmentCount, opts)
	if err != nil {
		return false, err
	}
	return outcomes.Reduce(), nil
}

// Collect dispatches every segment and gathers one outcome per segment, in
// submission order. The first task failure encountered in that order is
// returned; the pool is drained in every case. For numbers below 2 no
// segment is dispatched and the set holds a single false.
func (c *FutureChecker) Collect(ctx context.Context, number int64, segmentCount int, opts Options) (ResultSet, error) {
	segments, done, err := prepare(ctx, number, segmentCount)
	if err != nil {
		return nil, err
	}
	if done {
		return ResultSet{false}, nil
	}

	pool, err := NewPool(opts.PoolSize)
	if err != nil {
		return nil, err
	}

	futures := make([]*Future, 0, len(segments))
	for _, seg := range segments {
		f, err := pool.Submit(seg.Index, func() bool {
			return c.scan(number, seg, opts.Observer)
		})
		if err != nil {
			_ = pool.Shutdown()
			return nil, err
		}
		futures = append(futures, f)
	}

	outcomes := make(ResultSet, 0, len(futures))
	var firstErr error
	for _, f := range futures {
		ok, err := f.Get()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		outcomes = append(outcomes, ok)
	}

	if err := pool.Shutdown(); err != nil && firstErr == nil {
		firstErr = err
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return outcomes, nil
}

// ResultSet holds the per-segment outcomes of a future-based check, in
// submission order.
type ResultSet []bool

// Reduce returns the AND of every outcome, seeded with true.
func (r ResultSet) Reduce() bool {
	result := true
	for _, ok := range r {
		result = result && ok
	}
	return result
}

// wrapCheckError attributes err to the named strategy.
func wrapCheckError(name string, err error) error {
	if err == nil {
		return nil
	}
	return apperrors.CheckError{Strategy: name, Cause: err}
}

// Named returns a Checker whose errors are wrapped in apperrors.CheckError
// carrying the strategy name.
func Named(c Checker) Checker {
	return namedChecker{c}
}

type namedChecker struct{ Checker }

func (n namedChecker) Check(ctx context.Context, number int64, segmentCount int, opts Options) (bool, error) {
	ok, err := n.Checker.Check(ctx, number, segmentCount, opts)
	return ok, wrapCheckError(n.Name(), err)
}
