package apfind

import (
	"context"
	"errors"
	"io"
)

// Source yields the values of a stream. Next returns io.EOF once the stream
// is exhausted.
type Source interface {
	Next() (uint64, error)
}

// liner is implemented by line-oriented sources.
type liner interface {
	Line() int
}

// Run pushes every value of src through a new Detector and returns the
// longest progression.
//
// On failure Run returns the best progression found before the failure
// together with the error. Order violations carry the source line when src
// reports one, else the 1-based position in the stream.
func Run(ctx context.Context, src Source, optFns ...Option) (Progression, error) {
	d, err := New(optFns...)
	if err != nil {
		return Progression{}, err
	}

	err = d.consume(ctx, src)
	d.opts.logger.LogFinish(ctx, d.Result(), d.Stats(), err)
	return d.Result(), err
}

func (d *Detector) consume(ctx context.Context, src Source) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		v, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := d.Push(v); err != nil {
			var ove *OrderViolationError
			if errors.As(err, &ove) {
				ove.Line = ove.Index + 1
				if l, ok := src.(liner); ok {
					ove.Line = l.Line()
				}
			}
			return err
		}
	}
}

// Find runs the detector over an in-memory slice.
func Find(values []uint64, optFns ...Option) (Progression, error) {
	return Run(context.Background(), &sliceSource{values: values}, optFns...)
}

type sliceSource struct {
	values []uint64
	pos    int
}

func (s *sliceSource) Next() (uint64, error) {
	if s.pos == len(s.values) {
		return 0, io.EOF
	}
	v := s.values[s.pos]
	s.pos++
	return v, nil
}
