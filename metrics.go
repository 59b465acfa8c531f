package region

// SizeInUse returns the number of bytes consumed since construction or
// the last Reset, including internal fragmentation due to alignment.
func (r *Region) SizeInUse() int {
	if r.released {
		return 0
	}
	return r.cur - r.start
}

// Capacity returns the total usable capacity of the region in bytes.
func (r *Region) Capacity() int {
	if r.released {
		return 0
	}
	return r.end - r.start
}

// Alignment returns the region's base alignment.
func (r *Region) Alignment() int {
	return r.align
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to
// 1.0). Returns 0.0 for a region with no capacity.
func (r *Region) Utilization() float64 {
	capacity := r.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(r.SizeInUse()) / float64(capacity)
}

// Metrics returns a snapshot of region statistics.
func (r *Region) Metrics() RegionMetrics {
	return RegionMetrics{
		SizeInUse:   r.SizeInUse(),
		Available:   r.Available(),
		Capacity:    r.Capacity(),
		Alignment:   r.Alignment(),
		Utilization: r.Utilization(),
	}
}

// RegionMetrics contains statistical information about a region.
type RegionMetrics struct {
	SizeInUse   int     // Bytes consumed, padding included
	Available   int     // Bytes still obtainable
	Capacity    int     // Total usable capacity in bytes
	Alignment   int     // Base alignment
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// Thread-safe metrics for SafeRegion

// SizeInUse thread-safely returns the bytes consumed since the last
// Reset.
func (s *SafeRegion) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.SizeInUse()
}

// Capacity thread-safely returns the total usable capacity.
func (s *SafeRegion) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Capacity()
}

// Alignment thread-safely returns the base alignment.
func (s *SafeRegion) Alignment() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Alignment()
}

// Utilization thread-safely returns the ratio of bytes in use to
// capacity.
func (s *SafeRegion) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Utilization()
}

// Metrics thread-safely returns a snapshot of region statistics.
func (s *SafeRegion) Metrics() RegionMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Metrics()
}
