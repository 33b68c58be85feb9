package primality

import "context"

// CheckSequential reports whether number is prime using the sequential
// strategy over segmentCount segments.
func CheckSequential(number int64, segmentCount int) (bool, error) {
	return NewSequentialChecker().Check(context.Background(), number, segmentCount, Options{})
}

// CheckPooledFireAndForget reports whether number is prime using poolSize
// workers that share a monotonic verdict.
func CheckPooledFireAndForget(number int64, segmentCount, poolSize int) (bool, error) {
	return NewPooledChecker().Check(context.Background(), number, segmentCount, Options{PoolSize: poolSize})
}

// CheckPooledFuture reports whether number is prime using poolSize workers
// whose per-segment outcomes are reduced by the caller.
func CheckPooledFuture(number int64, segmentCount, poolSize int) (bool, error) {
	return NewFutureChecker().Check(context.Background(), number, segmentCount, Options{PoolSize: poolSize})
}
