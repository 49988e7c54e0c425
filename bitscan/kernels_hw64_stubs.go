//go:build noasm || !(amd64 || arm64 || ppc64 || ppc64le || riscv64 || s390x || loong64 || mips64 || mips64le)

package bitscan

// 64-bit scans have no single-instruction form on this target; the generic
// kernels stay installed.
func hardwareKernels64() (kernels64, bool) {
	return kernels64{}, false
}
