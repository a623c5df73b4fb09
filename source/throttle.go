package source

import (
	"context"
	"io"

	"github.com/hupe1980/apfind/internal/resource"
)

// Throttle paces reads from r to the IO limit of rc. It returns r unchanged
// when rc has no IO limit.
func Throttle(ctx context.Context, r io.Reader, rc *resource.Controller) io.Reader {
	burst := rc.IOBurst()
	if burst == 0 {
		return r
	}
	return &throttledReader{ctx: ctx, r: r, rc: rc, burst: burst}
}

type throttledReader struct {
	ctx   context.Context
	r     io.Reader
	rc    *resource.Controller
	burst int
}

func (t *throttledReader) Read(p []byte) (int, error) {
	if len(p) > t.burst {
		p = p[:t.burst]
	}
	n, err := t.r.Read(p)
	if n > 0 {
		if werr := t.rc.AcquireIO(t.ctx, n); werr != nil {
			// The run is over; the bytes read are discarded.
			return 0, werr
		}
	}
	return n, err
}
