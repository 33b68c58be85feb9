package primality

// segmentScanner is the signature of the per-segment scan. Strategies hold
// one so tests can substitute a scan with a known outcome.
type segmentScanner func(number int64, seg Segment, obs Observer) bool

// CheckSegment reports whether number has no divisor in
// [max(2, seg.Start), seg.End). Numbers below 2 are never prime, whatever
// the segment. An empty segment finds no divisor and reports true.
//
// The scanned range is reported to obs, which may be nil.
func CheckSegment(number int64, seg Segment, obs Observer) bool {
	clean := scanSegment(number, seg)
	if obs != nil {
		obs.SegmentScanned(number, seg, clean)
	}
	return clean
}

func scanSegment(number int64, seg Segment) bool {
	if number <= 1 {
		return false
	}
	for d := max(2, seg.Start); d < seg.End; d++ {
		if number%d == 0 {
			return false
		}
	}
	return true
}
