//go:build noasm

package bitscan

func hardwareKernels32() (kernels32, bool) {
	return kernels32{}, false
}
