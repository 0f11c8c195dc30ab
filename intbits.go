// Copyright 2023 The intbits Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package intbits provides access to the individual bits of unsigned
// integer values.
//
// Bit and Bits read a single bit or a half-open range of bits, with
// bit 0 the least significant:
//
//	intbits.Bit(uint8(2), 1)           // true
//	intbits.Bits(uint32(0b1011), 0, 2) // 0b11
//	intbits.Bits(uint32(0b1011), 2, 4) // 0b10
//
// WithBit and WithBits return a new value with some bits replaced,
// leaving the rest untouched:
//
//	intbits.WithBit(uint8(0xFF), 3, false) // 0xF7
//	intbits.WithBits(uint8(0xFF), 4, 8, 3) // 0x3F
//
// SetBit and SetBits are the same operations updating a value in
// place.  All of these panic on an out-of-range index or range; the
// Try variants return ErrOutOfRange instead.
package intbits

import (
	"errors"
	"fmt"
	"math/bits"
)

// Uint is the set of fixed-width unsigned integer types these
// functions operate on.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// ErrOutOfRange is returned by the Try variants when a bit index is
// not in [0, W) or a bit range is not within [0, W], for W the width
// of the value's type.
var ErrOutOfRange = errors.New("bit index out of range")

// Width returns the number of bits in the representation of T.
func Width[T Uint]() int {
	return bits.OnesCount64(uint64(^T(0)))
}

func checkIndex(i, w int) {
	if i < 0 || i >= w {
		panic(fmt.Sprintf("intbits: bit index %d out of range for %d-bit value", i, w))
	}
}

func checkRange(lo, hi, w int) {
	if lo < 0 || hi < lo || hi > w {
		panic(fmt.Sprintf("intbits: bit range [%d, %d) out of range for %d-bit value", lo, hi, w))
	}
}

// Bit returns true if bit i of v is 1.  It panics if i is not in
// [0, W).
func Bit[T Uint](v T, i int) bool {
	checkIndex(i, Width[T]())
	return v>>i&1 != 0
}

// Bits extracts the bits of v in the half-open range [lo, hi) and
// returns them in the least significant bits of the result; all
// higher bits of the result are 0.  An empty range yields 0.  It
// panics unless 0 <= lo <= hi <= W.
func Bits[T Uint](v T, lo, hi int) T {
	w := Width[T]()
	checkRange(lo, hi, w)
	n := hi - lo
	if n == w {
		// full-width range: shifting a mask into place would
		// need a shift by w, so skip the mask entirely
		return v
	}
	return v >> lo & (T(1)<<n - 1)
}

// WithBit returns v with bit i set to bit and all other bits
// unchanged.  It panics if i is not in [0, W).
func WithBit[T Uint](v T, i int, bit bool) T {
	checkIndex(i, Width[T]())
	if bit {
		return v | T(1)<<i
	}
	return v &^ (T(1) << i)
}

// WithBits returns v with the bits in [lo, hi) replaced by the low
// hi-lo bits of b and all other bits unchanged.  Bits of b above
// hi-lo are ignored.  It panics unless 0 <= lo <= hi <= W.
func WithBits[T Uint](v T, lo, hi int, b T) T {
	w := Width[T]()
	checkRange(lo, hi, w)
	n := hi - lo
	if n == w {
		return b
	}
	m := (T(1)<<n - 1) << lo
	return v&^m | b<<lo&m
}

// SetBit sets bit i of *v to bit.  It panics if i is not in [0, W).
func SetBit[T Uint](v *T, i int, bit bool) {
	*v = WithBit(*v, i, bit)
}

// SetBits replaces the bits of *v in [lo, hi) with the low hi-lo bits
// of b.  It panics unless 0 <= lo <= hi <= W.
func SetBits[T Uint](v *T, lo, hi int, b T) {
	*v = WithBits(*v, lo, hi, b)
}

// TryBit is Bit returning ErrOutOfRange instead of panicking.
func TryBit[T Uint](v T, i int) (bool, error) {
	if i < 0 || i >= Width[T]() {
		return false, ErrOutOfRange
	}
	return v>>i&1 != 0, nil
}

// TryBits is Bits returning ErrOutOfRange instead of panicking.
func TryBits[T Uint](v T, lo, hi int) (T, error) {
	w := Width[T]()
	if lo < 0 || hi < lo || hi > w {
		return 0, ErrOutOfRange
	}
	if hi-lo == w {
		return v, nil
	}
	return v >> lo & (T(1)<<(hi-lo) - 1), nil
}

// TryWithBit is WithBit returning ErrOutOfRange instead of panicking.
func TryWithBit[T Uint](v T, i int, bit bool) (T, error) {
	if i < 0 || i >= Width[T]() {
		return 0, ErrOutOfRange
	}
	if bit {
		return v | T(1)<<i, nil
	}
	return v &^ (T(1) << i), nil
}

// TryWithBits is WithBits returning ErrOutOfRange instead of
// panicking.
func TryWithBits[T Uint](v T, lo, hi int, b T) (T, error) {
	w := Width[T]()
	if lo < 0 || hi < lo || hi > w {
		return 0, ErrOutOfRange
	}
	n := hi - lo
	if n == w {
		return b, nil
	}
	m := (T(1)<<n - 1) << lo
	return v&^m | b<<lo&m, nil
}
