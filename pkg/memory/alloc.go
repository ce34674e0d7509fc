package memory

import "fmt"

var _ Allocator = goAllocator{}

// Allocator provides the raw storage behind a Memory buffer. Allocate must
// return zero-filled storage of exactly the requested size. Reallocate must
// preserve the contents of old; the contents of any newly exposed region
// are unspecified and are cleared by the caller.
//
// The default allocator is backed by the Go runtime. Alternative
// implementations exist mainly so allocation failure is a real, testable
// code path.
type Allocator interface {
	Allocate(size int) ([]byte, error)
	Reallocate(size int, old []byte) ([]byte, error)
}

// AllocationError reports that the underlying allocator could not satisfy a
// request. The failed operation leaves the buffer unchanged.
type AllocationError struct {
	// Size is the allocation size that could not be satisfied.
	Size int

	// Err is the allocator's underlying error.
	Err error
}

// Error implements the error interface.
func (e *AllocationError) Error() string {
	return fmt.Sprintf("memory: allocation of %d bytes failed: %v", e.Size, e.Err)
}

// Unwrap returns the allocator's underlying error.
func (e *AllocationError) Unwrap() error { return e.Err }

// goAllocator allocates through the Go runtime. make never fails for sizes
// the runtime can address, so its error results are always nil.
type goAllocator struct{}

func (goAllocator) Allocate(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func (goAllocator) Reallocate(size int, old []byte) ([]byte, error) {
	if size == len(old) {
		return old, nil
	}
	buf := make([]byte, size)
	copy(buf, old)
	return buf, nil
}
