//go:build !noasm && (amd64 || arm64 || ppc64 || ppc64le || riscv64 || s390x || loong64 || mips64 || mips64le)

package bitscan

import "math/bits"

func hardwareKernels64() (kernels64, bool) {
	return kernels64{
		leading:  bits.LeadingZeros64,
		trailing: bits.TrailingZeros64,
	}, true
}
