package apfind

import (
	"time"

	"github.com/hupe1980/apfind/internal/container"
	"github.com/hupe1980/apfind/internal/mla"
	"github.com/hupe1980/apfind/internal/resource"
	"golang.org/x/time/rate"
)

// Stats is a snapshot of a Detector's work and memory.
type Stats struct {
	Values          int   // values pushed
	Scanned         int64 // earlier values examined across all pushes
	Extensions      int   // progression index entries
	IndexNodes      int
	IndexDepth      int
	StoreSegments   int
	MemoryBytes     int64
	PeakMemoryBytes int64
	Improvements    int
	Best            int // length of the best progression
}

// Detector finds the longest arithmetic progression in a non-decreasing
// stream of values.
//
// Each pushed value is paired with every earlier value, newest first, as the
// last two terms of a candidate progression. The term that would precede the
// pair is located with a single descending cursor, and when it exists the
// pair extends the progression recorded for (predecessor, earlier value).
// Only extensions are stored, so memory grows with the number of progressions
// of length three or more rather than with the square of the input.
//
// A Detector is not safe for concurrent use.
type Detector struct {
	opts     options
	rc       *resource.Controller
	store    *container.Store
	index    *mla.Array
	tracker  *Tracker
	first    uint64
	scanned  int64
	progress *rate.Sometimes
}

// New creates a Detector.
func New(optFns ...Option) (*Detector, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	rc := resource.NewController(resource.Config{MemoryLimitBytes: o.memoryLimit})

	index, err := mla.New(mla.WithFanout(o.fanout), mla.WithResourceController(rc))
	if err != nil {
		return nil, translateError(err)
	}

	d := &Detector{
		opts:  o,
		rc:    rc,
		store: container.NewStore(rc),
		index: index,
	}
	d.tracker = NewTracker(d.improved)
	if o.progressInterval > 0 {
		d.progress = &rate.Sometimes{Interval: o.progressInterval}
	}
	return d, nil
}

func (d *Detector) improved(p Progression) {
	d.opts.logger.LogImprovement(p)
	d.opts.metricsCollector.RecordImprovement(p.Length)
	if d.opts.reporter != nil {
		d.opts.reporter(p)
	}
}

// Push ingests the next value.
//
// A value smaller than its predecessor returns an *OrderViolationError and a
// refused allocation returns ErrAllocationFailed. Both leave the Detector in
// an unspecified state; the caller must stop.
func (d *Detector) Push(v uint64) error {
	start := time.Now()
	scanned, extensions, err := d.push(v)
	d.opts.metricsCollector.RecordValue(scanned, extensions, time.Since(start))
	if err != nil {
		d.opts.metricsCollector.RecordError(err)
		return err
	}

	if d.progress != nil {
		d.progress.Do(func() {
			d.opts.logger.LogProgress(d.Stats())
		})
	}
	return nil
}

func (d *Detector) push(v uint64) (scanned, extensions int, err error) {
	if prev, ok := d.store.Last(); ok && v < prev {
		return 0, 0, &OrderViolationError{Index: d.store.Len(), Previous: prev, Value: v}
	}

	k, err := d.store.Append(v)
	if err != nil {
		return 0, 0, translateError(err)
	}
	if k == 0 {
		d.first = v
	}

	d.tracker.Consider(Progression{Length: 1, PrevIndex: k, EndIndex: k, Prev: v, Last: v})

	// m is the predecessor cursor shared by the whole scan. The predecessor
	// value only shrinks as j moves down, so m never has to move back up.
	m := k - 1
	for j := k - 1; j >= 0; j-- {
		vj := d.store.Get(j)
		scanned++

		d.tracker.Consider(Progression{Length: 2, PrevIndex: j, EndIndex: k, Prev: vj, Last: v})

		step := v - vj
		if step > vj-d.first {
			// The predecessor would be below the smallest value seen.
			break
		}
		want := vj - step

		if m >= j {
			m = j - 1
		}
		for m >= 0 && d.store.Get(m) > want {
			m--
		}
		if m < 0 || d.store.Get(m) != want {
			continue
		}

		length := d.index.Search(m, j) + 1
		if err := d.index.Append(j, k, length); err != nil {
			d.scanned += int64(scanned)
			return scanned, extensions, translateError(err)
		}
		extensions++
		d.tracker.Consider(Progression{Length: length, PrevIndex: j, EndIndex: k, Prev: vj, Last: v})
	}

	d.scanned += int64(scanned)
	return scanned, extensions, nil
}

// Result returns the longest progression found so far.
func (d *Detector) Result() Progression {
	return d.tracker.Best()
}

// Len returns the number of values pushed.
func (d *Detector) Len() int {
	return d.store.Len()
}

// Stats returns a snapshot of the detector state.
func (d *Detector) Stats() Stats {
	return Stats{
		Values:          d.store.Len(),
		Scanned:         d.scanned,
		Extensions:      d.index.Len(),
		IndexNodes:      d.index.Nodes(),
		IndexDepth:      d.index.Depth(),
		StoreSegments:   d.store.Segments(),
		MemoryBytes:     d.rc.MemoryUsage(),
		PeakMemoryBytes: d.rc.PeakMemoryUsage(),
		Improvements:    d.tracker.Improvements(),
		Best:            d.tracker.Best().Length,
	}
}
