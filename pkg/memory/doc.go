// Package memory provides a growable, bounds-checked byte buffer whose
// resizing behavior is delegated to a pluggable growth policy.
//
// The central type is Memory, a single contiguous allocation with
// offset-addressed reads and writes. A write that does not fit in the
// current allocation asks the active GrowthPolicy for a new capacity,
// reallocates, zero-fills the newly exposed region and then copies. Reads
// never allocate and fail when the requested range falls outside the
// current allocation.
//
// Four growth policies are provided:
//
//   - FixedPolicy: no growth permitted. Builds strictly bounded buffers.
//   - ExponentialPolicy: doubles the current capacity.
//   - LinearPolicy: grows the current capacity by half.
//   - PercentagePolicy: grows by a configurable percentage.
//
// All policies clamp their result to the buffer's maximum size and saturate
// rather than overflow. Capacity exhaustion is an expected, recoverable
// condition: the caller can raise the ceiling with SetMaxSize or switch
// policies with SetGrowthPolicy and retry.
//
// Memory supports concurrent access from multiple goroutines. Every
// operation acquires an internal mutex, so each call observes a consistent,
// fully-applied prior state; no call ever observes a partially grown
// buffer. Failed operations leave the buffer unchanged.
//
// Example usage:
//
//	// A buffer that starts at 4KB and may double up to 1MB.
//	m := memory.New(memory.ExponentialPolicy{}, 4096,
//	    memory.WithMaxSize(1<<20))
//
//	// Write at an offset beyond the current size; the buffer grows.
//	_, err := m.WriteAt(payload, 8192)
//
//	// Read it back.
//	got := make([]byte, len(payload))
//	_, err = m.ReadAt(got, 8192)
package memory
