package apfind

import (
	"io"
	"strconv"
)

// Progression describes an arithmetic progression found in the stream by its
// last two terms.
//
// For a single-term progression PrevIndex equals EndIndex and Prev equals
// Last. The zero value is the empty progression.
type Progression struct {
	Length    int
	PrevIndex int    // index of the second-to-last term
	EndIndex  int    // index of the last term
	Prev      uint64 // value of the second-to-last term
	Last      uint64 // value of the last term
}

// Step returns the common difference.
func (p Progression) Step() uint64 {
	return p.Last - p.Prev
}

// First returns the value of the first term.
func (p Progression) First() uint64 {
	if p.Length == 0 {
		return 0
	}
	return p.Last - p.Step()*uint64(p.Length-1)
}

// Values returns the terms in increasing index order.
func (p Progression) Values() []uint64 {
	if p.Length == 0 {
		return nil
	}
	out := make([]uint64, p.Length)
	v := p.First()
	for i := range out {
		out[i] = v
		v += p.Step()
	}
	return out
}

// String renders the report line: "<length>: <v1> ... <vN>", or "0" for the
// empty progression.
func (p Progression) String() string {
	return string(p.appendText(nil))
}

// WriteTo writes the report line followed by a newline.
func (p Progression) WriteTo(w io.Writer) (int64, error) {
	b := append(p.appendText(nil), '\n')
	n, err := w.Write(b)
	return int64(n), err
}

func (p Progression) appendText(b []byte) []byte {
	b = strconv.AppendInt(b, int64(p.Length), 10)
	if p.Length == 0 {
		return b
	}
	b = append(b, ':')
	for _, v := range p.Values() {
		b = append(b, ' ')
		b = strconv.AppendUint(b, v, 10)
	}
	return b
}
