package region

// Alignment arithmetic shared by every Region operation. All helpers
// require a power-of-two alignment; violating that is a programming
// error and panics rather than producing a wrong answer.

// mustPowerOfTwo panics if align is not a positive power of two.
func mustPowerOfTwo(align int) {
	if align <= 0 || align&(align-1) != 0 {
		panic("region: alignment must be a power of two")
	}
}

// RoundUp returns the smallest multiple of align that is >= n.
// align must be a power of two. The addition can wrap past the top of
// the int range; a result smaller than n signals overflow and callers
// must treat it as allocation failure.
func RoundUp(n, align int) int {
	mustPowerOfTwo(align)
	return (n + align - 1) &^ (align - 1)
}

// RoundDown returns the largest multiple of align that is <= n.
// align must be a power of two.
func RoundDown(n, align int) int {
	mustPowerOfTwo(align)
	return n &^ (align - 1)
}

// AlignUp rounds the address p up to the next multiple of align.
// Like RoundUp, the result wraps (becomes smaller than p) on overflow.
func AlignUp(p uintptr, align int) uintptr {
	mustPowerOfTwo(align)
	a := uintptr(align)
	return (p + a - 1) &^ (a - 1)
}

// AlignDown rounds the address p down to a multiple of align.
func AlignDown(p uintptr, align int) uintptr {
	mustPowerOfTwo(align)
	return p &^ (uintptr(align) - 1)
}

// IsAligned reports whether p is a multiple of align.
func IsAligned(p uintptr, align int) bool {
	mustPowerOfTwo(align)
	return p&(uintptr(align)-1) == 0
}
