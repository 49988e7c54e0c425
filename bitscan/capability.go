package bitscan

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Impl identifies a scan kernel implementation.
type Impl uint8

const (
	// Generic represents the portable pure Go implementation.
	Generic Impl = iota
	// Hardware represents math/bits intrinsics.
	Hardware
)

var (
	// ErrInvalidImpl is returned when an implementation name cannot be parsed.
	ErrInvalidImpl = errors.New("bitscan: invalid implementation")
	// ErrUnavailable is returned when the requested kernels are not compiled in.
	ErrUnavailable = errors.New("bitscan: implementation unavailable")
)

// String returns the string representation of an Impl.
func (i Impl) String() string {
	switch i {
	case Generic:
		return "generic"
	case Hardware:
		return "hardware"
	default:
		return "unknown"
	}
}

// ParseImpl parses a string into an Impl value.
func ParseImpl(s string) (Impl, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic", "purego":
		return Generic, nil
	case "hardware", "hw":
		return Hardware, nil
	default:
		return Generic, fmt.Errorf("%w: %q", ErrInvalidImpl, s)
	}
}

// Package-level state, initialized once at package init.
var (
	// activeImpl is the selected kernel implementation.
	activeImpl Impl

	// hasOverride is true if BITVEC_SCAN was set to a usable value.
	hasOverride bool

	// CPU feature flags (set by platform-specific init).
	hasBMI1   bool // x86-64 TZCNT
	hasPOPCNT bool // x86-64 POPCNT
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	activeImpl = selectBestImpl()

	if override := os.Getenv("BITVEC_SCAN"); override != "" {
		if impl, err := ParseImpl(override); err == nil && isImplAvailable(impl) {
			hasOverride = true
			activeImpl = impl
		}
	}

	installKernels(activeImpl)
}

// isImplAvailable checks if an Impl can be installed on this build.
func isImplAvailable(impl Impl) bool {
	switch impl {
	case Generic:
		return true
	case Hardware:
		return Has32BitScan()
	default:
		return false
	}
}

func selectBestImpl() Impl {
	if Has32BitScan() {
		return Hardware
	}
	return Generic
}

// Use switches the active kernels. It is not safe to call concurrently with
// any scan and is meant for program startup.
func Use(impl Impl) error {
	if !isImplAvailable(impl) {
		return fmt.Errorf("%w: %s", ErrUnavailable, impl)
	}
	activeImpl = impl
	installKernels(impl)
	return nil
}

// Active returns the currently active Impl.
func Active() Impl {
	return activeImpl
}

// IsOverridden returns true if BITVEC_SCAN selected the implementation.
func IsOverridden() bool {
	return hasOverride
}

// Has32BitScan returns true if hardware 32-bit zero counts are compiled in.
func Has32BitScan() bool {
	_, ok := hardwareKernels32()
	return ok
}

// Has64BitScan returns true if hardware 64-bit zero counts are compiled in.
// It is false on 32-bit targets, where 64-bit words use the generic kernels.
func Has64BitScan() bool {
	_, ok := hardwareKernels64()
	return ok
}

// Features lists the detected CPU features relevant to bit scanning.
func Features() []string {
	var features []string
	if hasBMI1 {
		features = append(features, "bmi1")
	}
	if hasPOPCNT {
		features = append(features, "popcnt")
	}
	return features
}
