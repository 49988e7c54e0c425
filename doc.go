// Package bitvec provides a word-packed dynamic bit vector with indexing from
// either end and fast first-set-bit scans.
//
// # Quick Start
//
//	v := bitvec.New[uint64](120, false)
//	v.Set(bitvec.Left, 63)
//	v.Resize(64, false)
//
//	n, ok := v.CountZero(bitvec.Left)  // 63, true
//	n, ok = v.CountZero(bitvec.Right)  // 0, true
//
// # Directions
//
// Left position 0 is the first bit of the vector; Right position 0 is the
// last bit. Both directions map onto a single Left-relative addressing inside
// the backing words, so Test(Right, p) == Test(Left, Len()-1-p).
//
// # Word Width
//
// The word type is chosen per instantiation: BitVector[uint32] or
// BitVector[uint64]. Scans use the kernels selected by package bitscan; on
// 32-bit targets the 64-bit hardware scan is not compiled in and
// BitVector[uint32] is the natural choice.
//
// # Errors
//
// Out-of-range positions are caller bugs and are not reported. The absence of
// a set bit is reported by CountZero's boolean result. Only the text and
// roaring helpers return errors.
package bitvec
