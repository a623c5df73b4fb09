package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hupe1980/apfind/internal/fs"
)

var (
	// ErrMalformed is matched by every *SyntaxError.
	ErrMalformed = errors.New("malformed value")

	// ErrNotFound is returned when an input location does not exist.
	//
	// Openers return an error that satisfies `errors.Is(err, ErrNotFound)`.
	// The default maps to `os.ErrNotExist`.
	ErrNotFound = os.ErrNotExist

	// ErrUnsupportedScheme is returned for a location scheme with no opener.
	ErrUnsupportedScheme = errors.New("unsupported location scheme")

	// ErrInvalidLocation is returned when a location cannot be parsed.
	ErrInvalidLocation = errors.New("invalid location")
)

// SyntaxError reports a line that is not an unsigned integer.
type SyntaxError struct {
	Line int
	Text string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at line %d: malformed value %q", e.Line, e.Text)
}

func (e *SyntaxError) Unwrap() []error { return []error{ErrMalformed, e.Err} }

// Opener opens a named input for reading.
type Opener interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(ctx context.Context, name string) (io.ReadCloser, error)

// Open implements Opener.
func (f OpenerFunc) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return f(ctx, name)
}

// FileOpener opens local files through FS, or fs.Default when FS is nil.
type FileOpener struct {
	FS fs.FileSystem
}

// Open implements Opener.
func (o FileOpener) Open(_ context.Context, name string) (io.ReadCloser, error) {
	fsys := o.FS
	if fsys == nil {
		fsys = fs.Default
	}
	return fsys.Open(name)
}
