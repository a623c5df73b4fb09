package apfind

import (
	"errors"
	"fmt"

	"github.com/hupe1980/apfind/internal/mla"
	"github.com/hupe1980/apfind/internal/resource"
)

var (
	// ErrOrderViolation is matched by every *OrderViolationError.
	ErrOrderViolation = errors.New("monotonicity failure")

	// ErrAllocationFailed is returned when the number store or the
	// progression index cannot grow.
	ErrAllocationFailed = errors.New("allocation failed")

	// ErrInvalidFanout is returned when the configured index fan-out is too small.
	ErrInvalidFanout = errors.New("invalid fanout")
)

// OrderViolationError reports a value smaller than its predecessor.
//
// Line is the 1-based input line when the value came from a line-oriented
// source, and 0 otherwise. Index is the position the value would have taken.
type OrderViolationError struct {
	Line     int
	Index    int
	Previous uint64
	Value    uint64
}

func (e *OrderViolationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("at line %d: monotonicity failure (%d after %d)", e.Line, e.Value, e.Previous)
	}
	return fmt.Sprintf("at index %d: monotonicity failure (%d after %d)", e.Index, e.Value, e.Previous)
}

func (e *OrderViolationError) Unwrap() error { return ErrOrderViolation }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, resource.ErrMemoryLimitExceeded) {
		return fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}
	if errors.Is(err, mla.ErrInvalidFanout) {
		return fmt.Errorf("%w: %w", ErrInvalidFanout, err)
	}

	return err
}
