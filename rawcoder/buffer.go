// Copyright (C) 2026 Storj Labs, Inc.
// See LICENSE for copying information.

package rawcoder

// Buffer is a fixed-length random access byte region. Coders read inputs
// and write outputs through this capability, so a single copy of each
// algorithm serves both plain in-heap slices and windows over externally
// managed allocations.
type Buffer interface {
	// Len returns the number of bytes in the region.
	Len() int

	// Byte returns the byte at index i.
	Byte(i int) byte

	// SetByte stores v at index i.
	SetByte(i int, v byte)
}

// Bytes is a Buffer backed by a plain byte slice.
type Bytes []byte

// Len returns the number of bytes in the slice.
func (b Bytes) Len() int { return len(b) }

// Byte returns the byte at index i.
func (b Bytes) Byte(i int) byte { return b[i] }

// SetByte stores v at index i.
func (b Bytes) SetByte(i int, v byte) { b[i] = v }

// Region is a Buffer windowing a fixed range of a shared backing slice, for
// callers that keep every unit of a stripe in a single allocation and hand
// the coder one window per unit.
type Region struct {
	backing []byte
	off     int
	length  int
}

// NewRegion returns a Region over backing[off : off+length]. Out of range
// windows panic with the usual slice bounds error.
func NewRegion(backing []byte, off, length int) Region {
	_ = backing[off : off+length]
	return Region{backing: backing, off: off, length: length}
}

// Len returns the number of bytes in the window.
func (r Region) Len() int { return r.length }

// Byte returns the byte at index i of the window.
func (r Region) Byte(i int) byte {
	if i < 0 || i >= r.length {
		panic("rawcoder: region index out of range")
	}
	return r.backing[r.off+i]
}

// SetByte stores v at index i of the window.
func (r Region) SetByte(i int, v byte) {
	if i < 0 || i >= r.length {
		panic("rawcoder: region index out of range")
	}
	r.backing[r.off+i] = v
}
