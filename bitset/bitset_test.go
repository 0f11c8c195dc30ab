// Copyright 2023 The intbits Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitset(t *testing.T) {
	b := New(128)

	require.Equal(t, 2, len(b.words))
	require.Equal(t, int64(128), b.length)

	// should do nothing
	b.Set(132)
	b.Set(-1)

	zero := []uint64{0, 0}
	require.Equal(t, zero, b.words)

	require.False(t, b.IsSet(7))
	b.Set(7)
	require.True(t, b.IsSet(7))
	b.Set(8)
	require.True(t, b.IsSet(8))
	b.Clear(7)
	require.False(t, b.IsSet(7))
	require.True(t, b.IsSet(8))
	b.Clear(8)
	require.Equal(t, zero, b.words)

	for i := int64(0); i < 128; i++ {
		b.Set(i)
	}

	full := []uint64{^uint64(0), ^uint64(0)}
	require.Equal(t, full, b.words)
	require.Equal(t, 128, b.Count())

	// should do nothing
	b.Clear(137)
	require.Equal(t, full, b.words)
}

func TestSetRange(t *testing.T) {
	b := New(192)

	// straddles the word boundary at 64
	b.SetRange(60, 70)
	require.Equal(t, 10, b.Count())
	require.False(t, b.IsSet(59))
	for i := int64(60); i < 70; i++ {
		require.True(t, b.IsSet(i))
	}
	require.False(t, b.IsSet(70))

	// covers a whole word
	b = New(192)
	b.SetRange(64, 128)
	require.Equal(t, []uint64{0, ^uint64(0), 0}, b.words)

	// clamped to the bitmap
	b = New(70)
	b.SetRange(-5, 1000)
	require.Equal(t, 70, b.Count())
	require.True(t, b.IsSet(69))

	// empty range
	b = New(70)
	b.SetRange(10, 10)
	require.Equal(t, 0, b.Count())
}
