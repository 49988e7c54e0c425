// Package input opens bit-string input files for the bitvec command.
//
// Files ending in .zst, .gz or .lz4 are decompressed transparently; anything
// else is read as is.
package input
