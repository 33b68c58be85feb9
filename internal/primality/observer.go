//go:generate mockgen -source=observer.go -destination=mocks/mock_observer.go -package=mocks

package primality

import (
	"sync/atomic"

	"github.com/agbru/primecheck/internal/logging"
)

// Observer receives a record of every scanned segment. It is the
// diagnostic hook of the engine: observers see what was examined but never
// influence the outcome. Implementations must be safe for concurrent use,
// since pooled strategies report from several workers at once.
type Observer interface {
	// SegmentScanned is called once per segment after its scan, with
	// clean set when no divisor was found in the segment.
	SegmentScanned(number int64, seg Segment, clean bool)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(number int64, seg Segment, clean bool)

// SegmentScanned calls f.
func (f ObserverFunc) SegmentScanned(number int64, seg Segment, clean bool) {
	f(number, seg, clean)
}

// MultiObserver fans a record out to several observers, skipping nil ones.
type MultiObserver []Observer

// SegmentScanned forwards the record to every observer in order.
func (m MultiObserver) SegmentScanned(number int64, seg Segment, clean bool) {
	for _, o := range m {
		if o != nil {
			o.SegmentScanned(number, seg, clean)
		}
	}
}

// LogObserver writes the range record of each segment through a Logger
// at debug level.
type LogObserver struct {
	logger   logging.Logger
	strategy string
}

// NewLogObserver returns a LogObserver tagging records with the strategy name.
func NewLogObserver(logger logging.Logger, strategy string) *LogObserver {
	return &LogObserver{logger: logger, strategy: strategy}
}

// SegmentScanned logs "range start:end".
func (o *LogObserver) SegmentScanned(number int64, seg Segment, clean bool) {
	o.logger.Debug("range "+seg.String(),
		logging.String("strategy", o.strategy),
		logging.Int64("number", number),
		logging.Int("segment", seg.Index),
		logging.Bool("clean", clean),
	)
}

// ProgressUpdate is the fraction of segments of one check that have been
// scanned.
type ProgressUpdate struct {
	// CheckIndex identifies the check among those run by the caller.
	CheckIndex int
	// Value is the completed fraction, from 0.0 to 1.0.
	Value float64
}

// ProgressObserver turns segment records into ProgressUpdates. Sends never
// block: when the channel is full the update is dropped, and the next one
// carries the newer value anyway.
type ProgressObserver struct {
	index   int
	total   int64
	scanned atomic.Int64
	out     chan<- ProgressUpdate
}

// NewProgressObserver returns an observer for a check of total segments.
func NewProgressObserver(index, total int, out chan<- ProgressUpdate) *ProgressObserver {
	return &ProgressObserver{index: index, total: int64(max(total, 1)), out: out}
}

// SegmentScanned publishes the new completed fraction.
func (o *ProgressObserver) SegmentScanned(int64, Segment, bool) {
	done := o.scanned.Add(1)
	o.publish(float64(min(done, o.total)) / float64(o.total))
}

// Complete publishes 1.0 regardless of how many segments were scanned, for
// checks that finish without dispatching any segment.
func (o *ProgressObserver) Complete() {
	o.publish(1.0)
}

func (o *ProgressObserver) publish(value float64) {
	if o.out == nil {
		return
	}
	select {
	case o.out <- ProgressUpdate{CheckIndex: o.index, Value: value}:
	default:
	}
}
