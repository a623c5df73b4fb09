// Package apfind finds the longest arithmetic progression in a stream of
// non-decreasing unsigned integers.
//
// A progression may skip values: in 1 2 3 5 7 the longest progression is
// 1 3 5 7. The search takes quadratic time in the worst case, but memory only
// grows with the number of three-or-more term progressions found, so streams
// with few progressions stay small.
//
// # Quick Start
//
//	p, err := apfind.Find([]uint64{1, 3, 4, 5, 7, 9})
//	fmt.Println(p) // 5: 1 3 5 7 9
//
// Streaming from a reader:
//
//	src := source.NewLineReader(os.Stdin)
//	p, err := apfind.Run(ctx, src, apfind.WithReporter(func(p apfind.Progression) {
//	    fmt.Println(p) // every improvement, as it happens
//	}))
//
// # Errors
//
// A value smaller than its predecessor stops the run with an
// *OrderViolationError (errors.Is(err, ErrOrderViolation)). A memory limit set
// with WithMemoryLimit stops the run with ErrAllocationFailed. Neither is
// recoverable: the detector relies on every value and every extension being
// recorded.
package apfind
