package region

import (
	"errors"
	"sync"
)

// Storage obtains contiguous backing buffers for a Region. Obtaining is
// the only capability a Region requires; providers that can also take
// buffers back implement ReleasingStorage.
type Storage interface {
	// Obtain returns a buffer of at least n bytes or an error when the
	// provider cannot supply one.
	Obtain(n int) ([]byte, error)
}

// ReleasingStorage is the optional release capability. A Region checks
// for it once, on Release; providers without it simply never get their
// buffers back (the buffer's lifetime is managed elsewhere, e.g. by the
// garbage collector).
type ReleasingStorage interface {
	Storage
	Release(buf []byte)
}

var errNegativeSize = errors.New("region: negative buffer size")

// HeapStorage obtains buffers from the Go heap. It has no release
// capability; abandoned buffers are reclaimed by the garbage collector.
type HeapStorage struct{}

// Obtain returns a zeroed buffer of n bytes.
func (HeapStorage) Obtain(n int) ([]byte, error) {
	if n < 0 {
		return nil, errNegativeSize
	}
	return make([]byte, n), nil
}

// PoolStorage recycles released buffers through a sync.Pool, so a
// Region-per-request workload reuses the same handful of buffers
// instead of re-allocating them. Buffers returned by Obtain may contain
// stale bytes from a previous cycle.
//
// The zero value is ready to use.
type PoolStorage struct {
	pool sync.Pool
}

// NewPoolStorage returns an empty PoolStorage.
func NewPoolStorage() *PoolStorage {
	return &PoolStorage{}
}

// Obtain returns a recycled buffer when one of sufficient capacity is
// pooled, falling back to the heap otherwise.
func (s *PoolStorage) Obtain(n int) ([]byte, error) {
	if n < 0 {
		return nil, errNegativeSize
	}
	if v := s.pool.Get(); v != nil {
		buf := *v.(*[]byte)
		if cap(buf) >= n {
			return buf[:n], nil
		}
	}
	return make([]byte, n), nil
}

// Release puts buf back into the pool for a later Obtain. The pool
// holds *[]byte so putting a buffer back does not itself allocate.
func (s *PoolStorage) Release(buf []byte) {
	if cap(buf) == 0 {
		return
	}
	buf = buf[:cap(buf)]
	s.pool.Put(&buf)
}
