package primality

import (
	"errors"
	"fmt"
	"math"

	apperrors "github.com/agbru/primecheck/internal/errors"
)

var (
	// ErrInvalidSegmentCount is returned when the segment count is not positive.
	ErrInvalidSegmentCount = errors.New("segment count must be greater than zero")
	// ErrInvalidPoolSize is returned when a pooled strategy is given a
	// non-positive pool size.
	ErrInvalidPoolSize = errors.New("pool size must be greater than zero")
	// ErrRangeOverflow is returned when i*number cannot be represented in
	// 64 bits for some segment index i.
	ErrRangeOverflow = errors.New("segment bounds overflow 64-bit arithmetic")
)

// Segment is a half-open range [Start, End) of candidate divisors.
type Segment struct {
	// Index is the position of the segment in the partition.
	Index int
	// Start is the first candidate divisor (inclusive).
	Start int64
	// End is the bound of the range (exclusive).
	End int64
}

// String renders the segment as "start:end", the diagnostic format of the
// range record.
func (s Segment) String() string {
	return fmt.Sprintf("%d:%d", s.Start, s.End)
}

// Empty reports whether the segment contains no integers.
func (s Segment) Empty() bool { return s.End <= s.Start }

// Partition splits [0, number) into segmentCount contiguous segments with
// bounds floor(i*number/segmentCount) and floor((i+1)*number/segmentCount).
// Consecutive segments share their boundary, so the union is exactly
// [0, number). Segments may be empty when segmentCount exceeds number.
//
// For negative numbers the bounds are negative and every segment is empty
// or reversed; callers rely on the non-primality rule for those inputs.
func Partition(number int64, segmentCount int) ([]Segment, error) {
	if err := validateSegmentCount(segmentCount); err != nil {
		return nil, err
	}
	count := int64(segmentCount)
	if number != 0 && absInt64(number) > math.MaxInt64/count {
		return nil, apperrors.ValidationError{
			Field:   "number",
			Message: fmt.Sprintf("%d cannot be split into %d segments", number, segmentCount),
			Err:     ErrRangeOverflow,
		}
	}

	segments := make([]Segment, segmentCount)
	for i := range segments {
		idx := int64(i)
		segments[i] = Segment{
			Index: i,
			Start: floorDiv(idx*number, count),
			End:   floorDiv((idx+1)*number, count),
		}
	}
	return segments, nil
}

func validateSegmentCount(segmentCount int) error {
	if segmentCount <= 0 {
		return apperrors.ValidationError{
			Field:   "segments",
			Message: fmt.Sprintf("got %d, must be greater than zero", segmentCount),
			Err:     ErrInvalidSegmentCount,
		}
	}
	return nil
}

// floorDiv divides rounding toward negative infinity. b is always positive.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func absInt64(v int64) int64 {
	if v < 0 {
		if v == math.MinInt64 {
			return math.MaxInt64
		}
		return -v
	}
	return v
}
