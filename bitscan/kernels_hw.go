//go:build !noasm

package bitscan

import "math/bits"

func hardwareKernels32() (kernels32, bool) {
	return kernels32{
		leading:  bits.LeadingZeros32,
		trailing: bits.TrailingZeros32,
	}, true
}
