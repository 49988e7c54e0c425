package bitscan

// Kernel function pointers for scalar zero counts.
// Generic implementations are the default; initCapabilities swaps in the
// hardware kernels when they are compiled in and selected.
var (
	kernelLeadingZeros32  = leadingZeros32Generic
	kernelTrailingZeros32 = trailingZeros32Generic
	kernelLeadingZeros64  = leadingZeros64Generic
	kernelTrailingZeros64 = trailingZeros64Generic
)

type kernels32 struct {
	leading  func(uint32) int
	trailing func(uint32) int
}

type kernels64 struct {
	leading  func(uint64) int
	trailing func(uint64) int
}

func installKernels(impl Impl) {
	kernelLeadingZeros32 = leadingZeros32Generic
	kernelTrailingZeros32 = trailingZeros32Generic
	kernelLeadingZeros64 = leadingZeros64Generic
	kernelTrailingZeros64 = trailingZeros64Generic

	if impl != Hardware {
		return
	}
	if k, ok := hardwareKernels32(); ok {
		kernelLeadingZeros32 = k.leading
		kernelTrailingZeros32 = k.trailing
	}
	if k, ok := hardwareKernels64(); ok {
		kernelLeadingZeros64 = k.leading
		kernelTrailingZeros64 = k.trailing
	}
}

// ==============================================================================
// Generic implementations
// ==============================================================================
//
// Binary search over bit halves. Callers guarantee x != 0.

func leadingZeros32Generic(x uint32) int {
	n := 0
	if x <= 0x0000FFFF {
		n += 16
		x <<= 16
	}
	if x <= 0x00FFFFFF {
		n += 8
		x <<= 8
	}
	if x <= 0x0FFFFFFF {
		n += 4
		x <<= 4
	}
	if x <= 0x3FFFFFFF {
		n += 2
		x <<= 2
	}
	if x <= 0x7FFFFFFF {
		n++
	}
	return n
}

func trailingZeros32Generic(x uint32) int {
	n := 0
	if x&0x0000FFFF == 0 {
		n += 16
		x >>= 16
	}
	if x&0x000000FF == 0 {
		n += 8
		x >>= 8
	}
	if x&0x0000000F == 0 {
		n += 4
		x >>= 4
	}
	if x&0x00000003 == 0 {
		n += 2
		x >>= 2
	}
	if x&0x00000001 == 0 {
		n++
	}
	return n
}

func leadingZeros64Generic(x uint64) int {
	if hi := uint32(x >> 32); hi != 0 {
		return leadingZeros32Generic(hi)
	}
	return 32 + leadingZeros32Generic(uint32(x))
}

func trailingZeros64Generic(x uint64) int {
	if lo := uint32(x); lo != 0 {
		return trailingZeros32Generic(lo)
	}
	return 32 + trailingZeros32Generic(uint32(x >> 32))
}
