package region

import (
	"runtime"
	"unsafe"
)

// Alloc returns a pointer to a zeroed T stored inside the region, or
// nil when the region cannot satisfy the allocation. The value is
// placed at T's natural alignment. Zero-sized types return nil.
func Alloc[T any](r *Region) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return nil
	}
	b := r.AllocAligned(size, int(unsafe.Alignof(zero)))
	if b == nil {
		return nil
	}
	clear(b)
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// AllocUninitialized returns a *T located in the region without zeroing
// memory. Faster than Alloc, but the contents are undefined until the
// caller initializes them.
func AllocUninitialized[T any](r *Region) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return nil
	}
	b := r.AllocAligned(size, int(unsafe.Alignof(zero)))
	if b == nil {
		return nil
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// AllocSlice allocates a slice of n elements of type T inside the
// region. The elements are not initialized. Returns nil when n <= 0,
// when the total byte size overflows, or when capacity is insufficient.
func AllocSlice[T any](r *Region, n int) []T {
	b := allocSliceBytes[T](r, n)
	if b == nil {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// AllocSliceZeroed is AllocSlice with zeroed elements.
func AllocSliceZeroed[T any](r *Region, n int) []T {
	b := allocSliceBytes[T](r, n)
	if b == nil {
		return nil
	}
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

func allocSliceBytes[T any](r *Region, n int) []byte {
	if n <= 0 {
		return nil
	}
	var zero T
	elem := int(unsafe.Sizeof(zero))
	if elem == 0 {
		return nil
	}
	total := elem * n
	if total/elem != n {
		return nil
	}
	return r.AllocAligned(total, int(unsafe.Alignof(zero)))
}

// PtrAndKeepAlive returns t and calls runtime.KeepAlive on the region.
// Useful to keep the region reachable while t is still in use in
// unsafe code.
func PtrAndKeepAlive[T any](r *Region, t *T) *T {
	runtime.KeepAlive(r)
	return t
}
