// Package resource implements the memory budget shared by the growing
// structures of a run, and the input read throttle.
//
// Memory tracking uses a weighted semaphore for hard limits and atomic counters
// for usage tracking. AcquireMemory is non-blocking and returns immediately
// with ErrMemoryLimitExceeded if the limit would be exceeded:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//
//	if err := rc.AcquireMemory(64 << 10); err != nil {
//	    // ErrMemoryLimitExceeded: the caller treats this as fatal
//	}
//
// The number store and the progression index only ever grow, so nothing in a
// run releases memory; ReleaseMemory exists for callers that share one
// Controller across several runs.
//
// Input reads are paced with a token bucket (golang.org/x/time/rate) whose
// burst equals one second of throughput:
//
//	rc := resource.NewController(resource.Config{IOLimitBytesPerSec: 1 << 20})
//	err := rc.AcquireIO(ctx, n) // blocks; fails only when ctx is done
//
// # Nil Safety
//
// All methods handle nil Controller gracefully - they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
