// Copyright 2023 The intbits Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package bitset provides a bitmap wider than any single machine
// word, built on the intbits accessors.
package bitset

import (
	"math/bits"

	"github.com/bpowers/intbits"
)

// Bitset is an in-memory bitmap that is conceptually similar to []bool, but more memory efficient.
type Bitset struct {
	words  []uint64
	length int64
}

func getOffsets(off int64) (wordOff int64, bitOff int) {
	wordOff = off / 64
	bitOff = int(off % 64)
	return
}

// Set sets the bit at position `off` to 1.
func (b *Bitset) Set(off int64) {
	if off < 0 || off >= b.length {
		return
	}
	wordOff, bitOff := getOffsets(off)
	b.words[wordOff] = intbits.WithBit(b.words[wordOff], bitOff, true)
}

// Clear sets the bit at position `off` to 0.
func (b *Bitset) Clear(off int64) {
	if off < 0 || off >= b.length {
		return
	}
	wordOff, bitOff := getOffsets(off)
	b.words[wordOff] = intbits.WithBit(b.words[wordOff], bitOff, false)
}

// IsSet returns true if the bit at position `off` is 1.
func (b *Bitset) IsSet(off int64) bool {
	if off < 0 || off >= b.length {
		return false
	}
	wordOff, bitOff := getOffsets(off)
	return intbits.Bit(b.words[wordOff], bitOff)
}

// SetRange sets every bit in the half-open range [lo, hi) to 1,
// clamping the range to the bitmap's length.
func (b *Bitset) SetRange(lo, hi int64) {
	if lo < 0 {
		lo = 0
	}
	if hi > b.length {
		hi = b.length
	}
	for lo < hi {
		wordOff, bitOff := getOffsets(lo)
		n := int64(64 - bitOff)
		if n > hi-lo {
			n = hi - lo
		}
		w := b.words[wordOff]
		b.words[wordOff] = intbits.WithBits(w, bitOff, bitOff+int(n), ^uint64(0))
		lo += n
	}
}

// Count returns the number of bits set to 1.
func (b *Bitset) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// New returns a new in-memory bitset where you can set, clear and test for individual bits.
func New(length int64) *Bitset {
	wordLen := (length + 63) / 64
	return &Bitset{
		words:  make([]uint64, wordLen),
		length: length,
	}
}
