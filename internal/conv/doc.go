// Package conv provides checked conversions between int positions and the
// uint32 values stored in roaring bitmaps.
//
// Bit positions are ints; roaring stores uint32. On 64-bit platforms a
// position can exceed uint32, and on 32-bit platforms a uint32 can exceed int.
package conv
