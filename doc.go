// Package region implements a fixed-capacity bump allocator (memory
// region) for Go.
//
// # Overview
//
// A region allocator serves allocations from one contiguous buffer by
// advancing a cursor, with no per-allocation bookkeeping and no
// individual deallocation. The whole buffer is reclaimed at once. This
// is particularly useful for:
//
//   - Request-scoped allocations in servers
//   - Temporary object allocation with batch cleanup
//   - Reducing garbage collection pressure
//   - Workloads needing a hard cap on allocated memory
//
// # Basic Usage
//
//	r, err := region.New(64*1024, 0) // 64 KiB, default alignment
//	if err != nil {
//		// storage provider could not supply the buffer
//	}
//	defer r.Release()
//
//	// Allocate raw bytes
//	buf := r.Alloc(1024)
//	if buf == nil {
//		// region exhausted
//	}
//
//	// Allocate typed values
//	ptr := region.Alloc[MyStruct](r)
//	slice := region.AllocSlice[int](r, 100)
//
//	// Reset for reuse (O(1) operation)
//	r.Reset()
//
// # Capacity Model
//
// Unlike a growing arena, a Region never acquires more memory after
// construction. An allocation that does not fit in the remaining
// capacity fails by returning nil (or false for Grow/Realloc); the
// region's cursors are left untouched by every failing operation.
// Alloc(0) also returns nil, so "nothing requested" and "exhausted" are
// both reported the same in-band way and neither is ever a panic.
//
// Panics are reserved for programming errors: a non-power-of-two
// alignment, or any use of a Region after Release.
//
// # Backing Storage
//
// A Region obtains its buffer from a Storage provider (the Go heap by
// default), or wraps a caller-supplied []byte via NewWithBuffer. If the
// provider implements ReleasingStorage, Release hands the buffer back;
// otherwise the buffer's lifetime is managed externally and Release
// only poisons the Region.
//
// # Thread Safety
//
// Region is not thread-safe. For concurrent access, use SafeRegion:
//
//	s, err := region.NewSafeRegion(64*1024, 0)
//	defer s.Release()
//
//	buf := s.Alloc(1024)
//	ptr := region.SafeAlloc[MyStruct](s)
//
// # Memory Layout
//
// Allocation starts at the buffer's base address rounded up to the
// configured alignment. Every allocation's length is rounded up to a
// multiple of that alignment before the cursor advances, so each
// returned buffer starts on an aligned address; the padding bytes stay
// reserved and are never handed out. AllocAligned places a single
// allocation on a stricter boundary when needed.
//
// # Important Notes
//
//   - Allocated memory is only valid until Reset or Release
//   - No individual deallocation: Dealloc always reports false
//   - Raw Alloc does not zero memory obtained from recycled storage;
//     use the typed Alloc/AllocSliceZeroed helpers for zeroed values
//
// # Metrics and Monitoring
//
//	m := r.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization * 100)
//	fmt.Printf("Memory in use: %d bytes\n", m.SizeInUse)
//	fmt.Printf("Total capacity: %d bytes\n", m.Capacity)
package region
