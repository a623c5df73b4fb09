package mla

import (
	"cmp"
	"fmt"
)

// DefaultLength is the length of the trivial progression formed by any
// index pair that has no recorded entry.
const DefaultLength = 2

// Key identifies a progression by the indices of its last two terms (I < J).
type Key struct {
	I int
	J int
}

// Compare orders keys by J ascending, then by I descending.
//
// This is the order in which a left-to-right scan produces keys: J is the
// newest index, and for a fixed J the predecessor index I walks downwards.
func (k Key) Compare(o Key) int {
	if c := cmp.Compare(k.J, o.J); c != 0 {
		return c
	}
	return cmp.Compare(o.I, k.I)
}

func (k Key) String() string {
	return fmt.Sprintf("(%d,%d)", k.I, k.J)
}

// Entry records that the longest progression ending at indices Key.I, Key.J
// has length Len.
type Entry struct {
	Key
	Len int
}

// OrderError is returned when a key is appended out of order.
type OrderError struct {
	Last Key
	Next Key
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("mla: key %s appended after %s", e.Next, e.Last)
}
