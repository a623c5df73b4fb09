// Package container implements the append-only number store.
package container

import (
	"unsafe"

	"github.com/hupe1980/apfind/internal/resource"
)

const (
	// segmentBits determines the size of each segment.
	// 13 bits = 8192 values (64 KiB) per segment.
	segmentBits = 13
	segmentSize = 1 << segmentBits
	segmentMask = segmentSize - 1
)

// SegmentBytes is the memory charged for one segment.
const SegmentBytes = int64(segmentSize * unsafe.Sizeof(uint64(0)))

// Segment is a fixed-size array of values.
type Segment struct {
	values [segmentSize]uint64
}

// Store is an append-only, segmented array of values.
// Values are never moved once written; growth allocates a new segment and
// never copies existing ones. It supports random access in O(1).
//
// Store is not safe for concurrent use.
type Store struct {
	segments []*Segment
	n        int
	rc       *resource.Controller
}

// NewStore creates an empty Store. rc may be nil (unlimited).
func NewStore(rc *resource.Controller) *Store {
	return &Store{rc: rc}
}

// Append stores v at the next index and returns that index.
// It fails only when the memory budget refuses a new segment.
func (s *Store) Append(v uint64) (int, error) {
	idx := s.n
	segIdx := idx >> segmentBits
	if segIdx == len(s.segments) {
		if err := s.rc.AcquireMemory(SegmentBytes); err != nil {
			return 0, err
		}
		s.segments = append(s.segments, &Segment{})
	}
	s.segments[segIdx].values[idx&segmentMask] = v
	s.n++
	return idx, nil
}

// Get returns the value at index i. It panics if i is out of range.
func (s *Store) Get(i int) uint64 {
	if i < 0 || i >= s.n {
		panic("container: index out of range")
	}
	return s.segments[i>>segmentBits].values[i&segmentMask]
}

// Last returns the most recently appended value.
func (s *Store) Last() (uint64, bool) {
	if s.n == 0 {
		return 0, false
	}
	return s.Get(s.n - 1), true
}

// Len returns the number of values stored.
func (s *Store) Len() int {
	return s.n
}

// Segments returns the number of allocated segments.
func (s *Store) Segments() int {
	return len(s.segments)
}
