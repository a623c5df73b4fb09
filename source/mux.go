package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Stdin is the location naming standard input.
const Stdin = "-"

// Mux resolves locations to openers by scheme.
type Mux struct {
	openers map[string]Opener
	stdin   io.Reader
}

// NewMux creates a Mux that handles standard input and local files.
func NewMux() *Mux {
	m := &Mux{
		openers: make(map[string]Opener),
		stdin:   os.Stdin,
	}
	m.Handle("file", FileOpener{})
	return m
}

// Handle registers o for locations of the form scheme://name.
func (m *Mux) Handle(scheme string, o Opener) {
	m.openers[scheme] = o
}

// SetStdin replaces the reader used for the "-" location.
func (m *Mux) SetStdin(r io.Reader) {
	m.stdin = r
}

// Split separates a location into scheme and name. Locations without a
// scheme are local files.
func Split(location string) (scheme, name string) {
	if s, n, ok := strings.Cut(location, "://"); ok {
		return s, n
	}
	return "file", location
}

// Open opens location and strips any compression frame.
func (m *Mux) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	var raw io.ReadCloser
	if location == "" || location == Stdin {
		raw = io.NopCloser(m.stdin)
	} else {
		scheme, name := Split(location)
		o, ok := m.openers[scheme]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
		}
		if name == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLocation, location)
		}
		rc, err := o.Open(ctx, name)
		if err != nil {
			return nil, err
		}
		raw = rc
	}

	dec, _, err := Decompress(raw)
	if err != nil {
		_ = raw.Close()
		return nil, err
	}
	return &stackedCloser{Reader: dec, closers: []io.Closer{dec, raw}}, nil
}

type stackedCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedCloser) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
