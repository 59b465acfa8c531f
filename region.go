// Package region implements a fixed-capacity bump allocator. Typical
// usage: create one region per request, carve many temporary buffers out
// of it, then Reset() at the end of the request for O(1) cleanup.
package region

import (
	"errors"
	"unsafe"
)

// DefaultAlignment is the alignment used when the caller passes a
// non-positive alignment to a constructor.
const DefaultAlignment = int(unsafe.Sizeof(uintptr(0)))

var errSizeOverflow = errors.New("region: requested capacity overflows when rounded to alignment")

// Region is a bump allocator over one contiguous buffer. Allocation
// advances a cursor; nothing is ever freed individually, the whole
// region is reclaimed at once by Reset. Not goroutine-safe; use
// SafeRegion for concurrent access.
//
// Offsets always satisfy start <= cur <= end <= len(buf). start is the
// buffer base rounded up to the region alignment, end is the usable
// limit, cur is the next free byte. A failing operation never moves cur.
type Region struct {
	buf      []byte
	start    int
	cur      int
	end      int
	align    int
	storage  Storage // nil when the buffer is caller-supplied
	released bool
}

// New creates a Region with exactly RoundUp(size, alignment) usable
// bytes, backed by the Go heap. If alignment <= 0, DefaultAlignment is
// used. alignment must be a power of two.
func New(size, alignment int) (*Region, error) {
	return NewWithStorage(size, alignment, HeapStorage{})
}

// NewWithStorage is like New but obtains the backing buffer from s.
// The buffer is handed back to s on Release when s supports release.
//
// The request to s is padded by alignment-1 bytes so the usable window
// holds the full rounded size no matter how the returned buffer's base
// address is aligned.
func NewWithStorage(size, alignment int, s Storage) (*Region, error) {
	if alignment <= 0 {
		alignment = DefaultAlignment
	}
	mustPowerOfTwo(alignment)
	if size < 0 {
		size = 0
	}
	rounded := RoundUp(size, alignment)
	if rounded < size || rounded+alignment-1 < rounded {
		return nil, errSizeOverflow
	}
	buf, err := s.Obtain(rounded + alignment - 1)
	if err != nil {
		return nil, err
	}
	r := &Region{buf: buf, align: alignment, storage: s}
	r.start = alignedStart(buf, alignment)
	r.end = r.start + rounded
	if r.end > len(buf) {
		r.end = len(buf)
	}
	r.cur = r.start
	return r, nil
}

// NewWithBuffer creates a Region over caller-supplied storage. The
// Region never releases buf; its lifetime is the caller's problem.
// Usable capacity is whatever remains of buf after aligning its base,
// so it may be up to alignment-1 bytes short of len(buf).
func NewWithBuffer(buf []byte, alignment int) *Region {
	if alignment <= 0 {
		alignment = DefaultAlignment
	}
	mustPowerOfTwo(alignment)
	r := &Region{buf: buf, align: alignment}
	r.start = alignedStart(buf, alignment)
	r.end = len(buf)
	r.cur = r.start
	return r
}

// alignedStart returns the offset of the first byte of buf whose address
// is a multiple of align, clamped to len(buf).
func alignedStart(buf []byte, align int) int {
	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	aligned := AlignUp(base, align)
	if aligned < base || int(aligned-base) > len(buf) {
		return len(buf)
	}
	return int(aligned - base)
}

// Alloc returns a buffer of exactly n bytes whose start address is a
// multiple of the region alignment, or nil when the region cannot
// satisfy the request. n <= 0 always returns nil: zero-length
// allocations are not handed out, so "no request" is distinguishable
// from exhaustion. The cursor advances by n rounded up to the region
// alignment; the padding bytes are reserved and never reused.
func (r *Region) Alloc(n int) []byte {
	r.panicIfReleased()
	if n <= 0 {
		return nil
	}
	rounded := RoundUp(n, r.align)
	if rounded < n || rounded > r.end-r.cur {
		return nil
	}
	p := r.cur
	r.cur += rounded
	return r.buf[p : p+n : p+n]
}

// AllocAligned returns n bytes aligned to a, which must be a power of
// two and may be stricter than the region alignment. On any failure the
// cursor is exactly where it was before the call.
func (r *Region) AllocAligned(n, a int) []byte {
	r.panicIfReleased()
	mustPowerOfTwo(a)
	if n <= 0 {
		return nil
	}
	addr := r.base() + uintptr(r.cur)
	aligned := AlignUp(addr, a)
	if aligned < addr {
		// address arithmetic wrapped
		return nil
	}
	skip := int(aligned - addr)
	if skip > r.end-r.cur {
		return nil
	}
	saved := r.cur
	r.cur += skip
	b := r.Alloc(n)
	if b == nil {
		r.cur = saved
	}
	return b
}

// AllocAll returns the entire remaining capacity as one buffer and
// moves the cursor to the end. It always succeeds; when nothing remains
// the result is an empty, non-nil slice. Subsequent Alloc calls fail
// until Reset.
func (r *Region) AllocAll() []byte {
	r.panicIfReleased()
	p := r.cur
	r.cur = r.end
	return r.buf[p:r.end:r.end]
}

// Grow extends b in place by delta bytes and reports whether it
// succeeded. Only the most recent live allocation can grow: Grow
// verifies that b's end lies within one alignment quantum of the
// cursor, so any older buffer is refused. delta == 0 succeeds trivially
// for any b, including an empty one; growing an empty buffer by a
// non-zero amount fails because there is no position to grow from.
// Growth that fits in the padding already reserved for b costs nothing;
// otherwise exactly the additional rounded bytes are allocated. On
// failure the original slice is returned and the cursor is untouched.
func (r *Region) Grow(b []byte, delta int) ([]byte, bool) {
	r.panicIfReleased()
	if delta == 0 {
		return b, true
	}
	if delta < 0 || len(b) == 0 || !r.Owns(b) {
		return b, false
	}
	off := int(uintptr(unsafe.Pointer(unsafe.SliceData(b))) - r.base())
	pad := r.cur - (off + len(b))
	if pad < 0 || pad >= r.align {
		// not the latest allocation
		return b, false
	}
	newLen := len(b) + delta
	if newLen < len(b) {
		return b, false
	}
	if extra := newLen - (len(b) + pad); extra > 0 {
		if r.Alloc(extra) == nil {
			return b, false
		}
	}
	return r.buf[off : off+newLen : off+newLen], true
}

// Realloc returns a buffer of n bytes holding the first min(n, len(b))
// bytes of b, and reports whether it succeeded. n == 0 succeeds
// unconditionally with a nil result, mirroring realloc-to-zero. The new
// buffer is always freshly allocated; the old bytes are abandoned in
// place, consistent with batch-only reclamation. On failure the
// original slice is returned unchanged.
func (r *Region) Realloc(b []byte, n int) ([]byte, bool) {
	r.panicIfReleased()
	if n == 0 {
		return nil, true
	}
	if n < 0 {
		return b, false
	}
	fresh := r.Alloc(n)
	if fresh == nil {
		return b, false
	}
	copy(fresh, b)
	return fresh, true
}

// Dealloc reports false for every buffer: individual reclamation is
// deliberately unsupported, use Reset.
func (r *Region) Dealloc([]byte) bool {
	return false
}

// Reset moves the cursor back to the aligned start, reclaiming the
// whole region in O(1). Every previously returned buffer becomes
// logically invalid; the caller must not use them afterwards.
func (r *Region) Reset() {
	r.panicIfReleased()
	r.cur = r.start
}

// Owns reports whether b's byte range lies fully within the managed
// window. Empty and nil buffers are not owned. The answer is always a
// definite yes or no.
func (r *Region) Owns(b []byte) bool {
	if r.released || len(b) == 0 || len(r.buf) == 0 {
		return false
	}
	base := r.base()
	p := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return p >= base && p-base+uintptr(len(b)) <= uintptr(r.end)
}

// Empty reports whether nothing has been allocated since construction
// or the last Reset.
func (r *Region) Empty() bool {
	return r.cur == r.start
}

// Available returns the byte count obtainable by a single maximal
// Alloc or AllocAll call.
func (r *Region) Available() int {
	return r.end - r.cur
}

// Release hands the buffer back to the storage provider, when the
// provider supports release, and makes the Region unusable. Allocation
// and reset operations panic afterwards. Release is idempotent. Regions
// over caller-supplied buffers never return memory anywhere.
func (r *Region) Release() {
	if r.released {
		return
	}
	if rs, ok := r.storage.(ReleasingStorage); ok {
		rs.Release(r.buf)
	}
	r.buf = nil
	r.start, r.cur, r.end = 0, 0, 0
	r.released = true
}

func (r *Region) base() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(r.buf)))
}

func (r *Region) panicIfReleased() {
	if r.released {
		panic("region: use after Release()")
	}
}
