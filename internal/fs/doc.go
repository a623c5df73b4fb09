// Package fs provides a read-side filesystem abstraction for testability
// and fault injection.
//
// # Implementations
//
//   - [LocalFS]: Production implementation using the standard os package
//   - [FaultyFS]: Test utility that injects open, read and close errors
//
// # Usage
//
// Production code should use fs.Default (which is [LocalFS]):
//
//	f, err := fs.Default.Open(path)
//
// Tests can inject [FaultyFS] to simulate a disk that fails mid-stream:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("values", fs.Fault{FailAfterBytes: 16})
//	// inject ffs into the file opener under test
//
// Operations take no context.Context. Local reads are not interruptible at
// the syscall level; object stores have their own openers with context
// support.
package fs
