// Package bitscan provides bit primitives over a single word or a slice of words.
//
// # Directions
//
// Every operation takes a Direction. Left position 0 is the most-significant
// bit of a word; Right position 0 is the least-significant bit. For a slice of
// words, word 0 holds the most-significant (first) bits of the sequence.
//
// # Scan kernels
//
// Leading/trailing zero counts dispatch through kernel functions selected once
// at init:
//
//   - Generic: portable binary search over bit halves
//   - Hardware: math/bits intrinsics (LZCNT/BSR, TZCNT/BSF, CLZ/RBIT)
//
// The 64-bit hardware kernels are only compiled on 64-bit architectures.
// Build with -tags noasm to force the generic fallback everywhere, or set
// BITVEC_SCAN=generic at runtime.
package bitscan
