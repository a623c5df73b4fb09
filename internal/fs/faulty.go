package fs

import (
	"errors"
	"os"
	"strings"
	"sync"
)

// ErrInjected is the error used by faults that do not set their own.
var ErrInjected = errors.New("injected fault error")

// Fault defines specific failure behavior.
type Fault struct {
	FailOnOpen     bool
	FailAfterBytes int64 // Fail reads after this many bytes read FROM THIS FILE. -1 to disable.
	FailOnClose    bool
	Err            error
}

func (f Fault) err() error {
	if f.Err != nil {
		return f.Err
	}
	return ErrInjected
}

// FaultyFS is a FileSystem wrapper that can inject errors.
type FaultyFS struct {
	FS      FileSystem
	Default Fault // Fallback

	mu    sync.Mutex
	rules map[string]Fault // Filename pattern -> Fault
	read  int64
}

// NewFaultyFS creates a new FaultyFS wrapping the provided FS (or Default if nil).
func NewFaultyFS(fs FileSystem) *FaultyFS {
	if fs == nil {
		fs = Default
	}
	return &FaultyFS{
		FS:    fs,
		rules: make(map[string]Fault),
		Default: Fault{
			FailAfterBytes: -1, // No limit
		},
	}
}

// AddRule adds a fault injection rule for files whose name contains pattern.
func (f *FaultyFS) AddRule(pattern string, fault Fault) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules[pattern] = fault
}

// BytesRead returns the total bytes read through f.
func (f *FaultyFS) BytesRead() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read
}

func (f *FaultyFS) fault(name string) Fault {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Longest matching pattern wins.
	fault, best := f.Default, -1
	for pattern, rule := range f.rules {
		if strings.Contains(name, pattern) && len(pattern) > best {
			fault, best = rule, len(pattern)
		}
	}
	return fault
}

func (f *FaultyFS) Open(name string) (File, error) {
	fault := f.fault(name)
	if fault.FailOnOpen {
		return nil, &os.PathError{Op: "open", Path: name, Err: fault.err()}
	}

	file, err := f.FS.Open(name)
	if err != nil {
		return nil, err
	}
	return &faultyFile{File: file, fs: f, fault: fault}, nil
}

func (f *FaultyFS) Stat(name string) (os.FileInfo, error) {
	return f.FS.Stat(name)
}

type faultyFile struct {
	File
	fs    *FaultyFS
	fault Fault
	read  int64
}

func (ff *faultyFile) Read(p []byte) (int, error) {
	if limit := ff.fault.FailAfterBytes; limit >= 0 {
		remaining := limit - ff.read
		if remaining <= 0 {
			return 0, ff.fault.err()
		}
		if int64(len(p)) > remaining {
			p = p[:remaining]
		}
	}

	n, err := ff.File.Read(p)
	if n > 0 {
		ff.read += int64(n)
		ff.fs.mu.Lock()
		ff.fs.read += int64(n)
		ff.fs.mu.Unlock()
	}
	return n, err
}

func (ff *faultyFile) Close() error {
	if ff.fault.FailOnClose {
		_ = ff.File.Close()
		return ff.fault.err()
	}
	return ff.File.Close()
}
