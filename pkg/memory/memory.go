package memory

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
)

// ErrBoundsExceeded is returned when a read range falls outside the
// current allocation, or when an offset is negative.
var ErrBoundsExceeded = errors.New("memory: bounds exceeded")

// ErrInvalidConfiguration is returned when the maximum size would be
// lowered below the current size.
var ErrInvalidConfiguration = errors.New("memory: invalid configuration")

var (
	_ io.ReaderAt = (*Memory)(nil)
	_ io.WriterAt = (*Memory)(nil)
)

// Memory is a growable, bounds-checked byte buffer safe for concurrent use
// by multiple goroutines. It owns a single contiguous allocation whose size
// never exceeds the configured maximum. Writes beyond the current size grow
// the allocation through the active GrowthPolicy; reads never allocate.
//
// All operations acquire an internal mutex, so each call observes a
// consistent, fully-applied prior state. Every failure leaves the buffer's
// contents and size unchanged.
//
// Storage is allocated by Initialize or, when absent, by the first write.
// A forced Initialize is a destructive reset: it discards all prior content
// and reallocates at the initial size.
type Memory struct {
	mu sync.Mutex

	policy      GrowthPolicy
	alloc       Allocator
	initialSize int
	maxSize     int
	lazy        bool
	data        []byte // nil until initialized; len(data) is the current size
}

// Option configures a Memory buffer at construction time.
type Option func(*Memory)

// WithMaxSize sets the maximum size the buffer may ever grow to. The
// default is unbounded (math.MaxInt).
func WithMaxSize(n int) Option {
	return func(m *Memory) { m.maxSize = n }
}

// WithLazyInit defers allocation until the first write or a forced
// Initialize. An unforced Initialize on a lazy buffer is a no-op.
func WithLazyInit() Option {
	return func(m *Memory) { m.lazy = true }
}

// WithAllocator replaces the default Go runtime allocator.
func WithAllocator(a Allocator) Option {
	return func(m *Memory) { m.alloc = a }
}

// New creates a Memory buffer with the given growth policy and initial
// size. No storage is allocated until Initialize is called or the first
// write forces an initialization.
func New(policy GrowthPolicy, initialSize int, opts ...Option) *Memory {
	m := &Memory{
		policy:      policy,
		alloc:       goAllocator{},
		initialSize: initialSize,
		maxSize:     math.MaxInt,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Initialize allocates the buffer's storage at the initial size, clamped
// to the maximum size, zero-filled. If storage already exists and force is
// false it is a no-op, as is an unforced Initialize on a lazy buffer. When
// force is true any existing storage and content are discarded before
// reallocating.
func (m *Memory) Initialize(force bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initializeLocked(force)
}

func (m *Memory) initializeLocked(force bool) error {
	if !force && (m.data != nil || m.lazy) {
		return nil
	}
	size := min(m.initialSize, m.maxSize)
	buf, err := m.alloc.Allocate(size)
	if err != nil {
		return &AllocationError{Size: size, Err: err}
	}
	m.data = buf
	return nil
}

// SetGrowthPolicy replaces the active growth policy. Existing storage is
// unaffected; the new policy applies from the next growth.
func (m *Memory) SetGrowthPolicy(policy GrowthPolicy) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.policy = policy
}

// SetMaxSize updates the maximum size the buffer may grow to. The ceiling
// can be raised freely but never lowered below the current size.
func (m *Memory) SetMaxSize(n int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n < len(m.data) {
		return fmt.Errorf("memory: max size %d below current size %d: %w", n, len(m.data), ErrInvalidConfiguration)
	}
	m.maxSize = n
	return nil
}

// Size returns the current allocation length in bytes. It is zero until
// storage is allocated.
func (m *Memory) Size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

// MaxSize returns the buffer's maximum size.
func (m *Memory) MaxSize() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.maxSize
}

// ReadAt copies len(p) bytes starting at offset off into p. It never
// allocates; a range that extends past the current size fails with
// ErrBoundsExceeded and copies nothing.
func (m *Memory) ReadAt(p []byte, off int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if off < 0 || off+int64(len(p)) > int64(len(m.data)) {
		return 0, fmt.Errorf("memory: read of %d bytes at offset %d exceeds current size %d: %w",
			len(p), off, len(m.data), ErrBoundsExceeded)
	}
	copy(p, m.data[off:])
	return len(p), nil
}

// WriteAt copies len(p) bytes from p into the buffer starting at offset
// off, growing the allocation first when the range extends past the
// current size. Growth is all-or-nothing: if it fails, no bytes are
// written and the buffer is unchanged.
func (m *Memory) WriteAt(p []byte, off int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if off < 0 || off > int64(math.MaxInt-len(p)) {
		return 0, fmt.Errorf("memory: write of %d bytes at offset %d: %w", len(p), off, ErrBoundsExceeded)
	}
	end := int(off) + len(p)
	if end > len(m.data) {
		if err := m.growLocked(end); err != nil {
			return 0, err
		}
	}
	copy(m.data[off:], p)
	return len(p), nil
}

// growLocked ensures the allocation covers at least needed bytes. The
// caller must hold mu. On any failure the buffer's contents and size are
// left unchanged.
func (m *Memory) growLocked(needed int) error {
	if needed > m.maxSize {
		return fmt.Errorf("memory: needed size %d exceeds max size %d: %w", needed, m.maxSize, ErrCapacityExceeded)
	}
	if m.data == nil {
		if err := m.initializeLocked(true); err != nil {
			return err
		}
		if needed <= len(m.data) {
			return nil
		}
	}
	current := len(m.data)
	if needed <= current {
		return nil
	}
	next, err := m.policy.GrowToSize(needed, current, m.maxSize)
	if err != nil {
		return err
	}
	if next <= current {
		// Capacity is saturated: the policy made no progress.
		return fmt.Errorf("memory: max size %d reached: %w", m.maxSize, ErrCapacityExceeded)
	}
	buf, err := m.alloc.Reallocate(next, m.data)
	if err != nil {
		return &AllocationError{Size: next, Err: err}
	}
	clear(buf[current:])
	m.data = buf
	return nil
}
