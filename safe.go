package region

import (
	"runtime"
	"sync"
)

// SafeRegion is a mutex-protected wrapper around Region for concurrent
// access. The underlying Region stays unsynchronized; this type is the
// packaged form of the external locking it requires. All operations
// come with the overhead of mutex locking.
type SafeRegion struct {
	mu sync.Mutex
	r  *Region
}

// NewSafeRegion creates a thread-safe region with the given usable size
// and alignment, backed by the Go heap. If alignment <= 0,
// DefaultAlignment is used.
func NewSafeRegion(size, alignment int) (*SafeRegion, error) {
	r, err := New(size, alignment)
	if err != nil {
		return nil, err
	}
	return &SafeRegion{r: r}, nil
}

// NewSafeRegionWithStorage is NewSafeRegion over an explicit storage
// provider.
func NewSafeRegionWithStorage(size, alignment int, st Storage) (*SafeRegion, error) {
	r, err := NewWithStorage(size, alignment, st)
	if err != nil {
		return nil, err
	}
	return &SafeRegion{r: r}, nil
}

// Alloc thread-safely allocates n bytes.
func (s *SafeRegion) Alloc(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Alloc(n)
}

// AllocAligned thread-safely allocates n bytes aligned to a.
func (s *SafeRegion) AllocAligned(n, a int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.AllocAligned(n, a)
}

// AllocAll thread-safely claims the entire remaining capacity.
func (s *SafeRegion) AllocAll() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.AllocAll()
}

// Grow thread-safely extends b in place by delta bytes.
func (s *SafeRegion) Grow(b []byte, delta int) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Grow(b, delta)
}

// Realloc thread-safely resizes b to n bytes.
func (s *SafeRegion) Realloc(b []byte, n int) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Realloc(b, n)
}

// Dealloc reports false; individual reclamation is unsupported.
func (s *SafeRegion) Dealloc(b []byte) bool {
	return s.r.Dealloc(b)
}

// Owns thread-safely reports whether b lies within the managed window.
func (s *SafeRegion) Owns(b []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Owns(b)
}

// Empty thread-safely reports whether nothing is allocated.
func (s *SafeRegion) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Empty()
}

// Available thread-safely returns the remaining capacity.
func (s *SafeRegion) Available() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Available()
}

// Reset thread-safely reclaims the whole region.
func (s *SafeRegion) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Reset()
}

// Release thread-safely returns the buffer to its provider and makes
// the region unusable.
func (s *SafeRegion) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Release()
}

// Generic allocation functions for SafeRegion

// SafeAlloc thread-safely returns a pointer to a zeroed T stored inside
// the region, or nil on exhaustion.
func SafeAlloc[T any](s *SafeRegion) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.r)
}

// SafeAllocUninitialized thread-safely returns a *T without zeroing
// memory.
func SafeAllocUninitialized[T any](s *SafeRegion) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocUninitialized[T](s.r)
}

// SafeAllocSlice thread-safely allocates a slice of n elements of type T.
func SafeAllocSlice[T any](s *SafeRegion, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.r, n)
}

// SafeAllocSliceZeroed thread-safely allocates a slice of n zeroed
// elements.
func SafeAllocSliceZeroed[T any](s *SafeRegion, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSliceZeroed[T](s.r, n)
}

// SafePtrAndKeepAlive returns t and keeps the underlying region alive.
func SafePtrAndKeepAlive[T any](s *SafeRegion, t *T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	runtime.KeepAlive(s.r)
	return t
}
