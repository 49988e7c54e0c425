package bitscan

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain prints scan diagnostics so CI logs show which kernels ran.
func TestMain(m *testing.M) {
	fmt.Printf("=== Bit Scan Diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("BITVEC_SCAN=%q\n", os.Getenv("BITVEC_SCAN"))
	fmt.Printf("Active: %s\n", Active())
	fmt.Printf("Override: %v\n", IsOverridden())
	fmt.Printf("Hardware 32-bit: %v\n", Has32BitScan())
	fmt.Printf("Hardware 64-bit: %v\n", Has64BitScan())
	fmt.Printf("CPU Features: %v\n", Features())
	fmt.Printf("============================\n\n")

	os.Exit(m.Run())
}
