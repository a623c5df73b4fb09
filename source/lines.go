package source

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

const maxLineSize = 1 << 20

// LineReader reads one unsigned integer per line.
type LineReader struct {
	sc   *bufio.Scanner
	line int
}

// NewLineReader creates a LineReader over r.
func NewLineReader(r io.Reader) *LineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &LineReader{sc: sc}
}

// Next returns the next value, or io.EOF at the end of the input.
func (r *LineReader) Next() (uint64, error) {
	for r.sc.Scan() {
		r.line++
		text := strings.TrimSpace(r.sc.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseUint(text, 0, 64)
		if err != nil {
			return 0, &SyntaxError{Line: r.line, Text: text, Err: err}
		}
		return v, nil
	}
	if err := r.sc.Err(); err != nil {
		return 0, err
	}
	return 0, io.EOF
}

// Line returns the 1-based line number of the last line read.
func (r *LineReader) Line() int {
	return r.line
}
