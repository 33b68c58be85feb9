package primality

const (
	// DefaultCandidate is the number checked when the caller supplies none.
	// 1,000,000,007 is prime and large enough that the O(n) sweep takes a
	// measurable amount of time.
	DefaultCandidate int64 = 1_000_000_007

	// DefaultSegmentCount is the number of segments used when the caller
	// supplies none.
	DefaultSegmentCount = 4

	// DefaultPoolSize is the pool size used by the pooled strategies when
	// none is configured and no adaptive estimate applies.
	DefaultPoolSize = 2

	// progressBufferSize bounds the per-check progress channel used by
	// ProgressObserver before updates start being dropped.
	progressBufferSize = 64
)
