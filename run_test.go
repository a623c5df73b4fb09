package apfind

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineSource mimics a line reader in which some lines are blank.
type lineSource struct {
	values []uint64
	lines  []int
	pos    int
}

func (s *lineSource) Next() (uint64, error) {
	if s.pos == len(s.values) {
		return 0, io.EOF
	}
	s.pos++
	return s.values[s.pos-1], nil
}

func (s *lineSource) Line() int {
	return s.lines[s.pos-1]
}

type failingSource struct {
	n   int
	err error
}

func (s *failingSource) Next() (uint64, error) {
	if s.n == 0 {
		return 0, s.err
	}
	s.n--
	return uint64(10 - s.n), nil
}

func TestRun_OrderViolationUsesSourceLine(t *testing.T) {
	src := &lineSource{values: []uint64{1, 4, 2}, lines: []int{1, 3, 7}}

	p, err := Run(context.Background(), src)

	var ove *OrderViolationError
	require.ErrorAs(t, err, &ove)
	assert.Equal(t, 7, ove.Line)
	assert.Equal(t, 2, ove.Index)
	assert.Equal(t, "2: 1 4", p.String())
}

func TestRun_SourceError(t *testing.T) {
	boom := errors.New("boom")
	p, err := Run(context.Background(), &failingSource{n: 3, err: boom})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "3: 8 9 10", p.String())
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, &failingSource{n: 3, err: io.EOF})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_InvalidOptions(t *testing.T) {
	_, err := Run(context.Background(), &failingSource{err: io.EOF}, WithFanout(0))
	assert.ErrorIs(t, err, ErrInvalidFanout)
}
