// Copyright 2026 go-alignbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package buffer

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat64s(t *testing.T) {
	for _, n := range []int{1, 3, 4, 7, 64, 1024} {
		x := Float64s(n)
		require.Len(t, x, n)
		require.Equal(t, n, cap(x))
		assert.True(t, Aligned(x, AVXAlignment), "n=%d: base address not 32-byte aligned", n)
	}
}

func TestFloat64sNonPositive(t *testing.T) {
	assert.Nil(t, Float64s(0))
	assert.Nil(t, Float64s(-1))
	assert.Nil(t, Float64sMisaligned(0, 4))
}

func TestFloat64sMisaligned(t *testing.T) {
	for _, offset := range []int{1, 4, 8, 16, 31} {
		x := Float64sMisaligned(16, offset)
		require.Len(t, x, 16)
		addr := uintptr(unsafe.Pointer(&x[0]))
		assert.Equal(t, uintptr(offset), addr%AVXAlignment, "offset=%d", offset)
		assert.False(t, Aligned(x, AVXAlignment), "offset=%d", offset)
	}
}

func TestFloat64sMisalignedStraddles(t *testing.T) {
	// Offset 4 places every element across its natural 8-byte boundary.
	x := Float64sMisaligned(8, 4)
	addr := uintptr(unsafe.Pointer(&x[0]))
	assert.Equal(t, uintptr(4), addr%8)
}

func TestFloat64sMisalignedOffsetRange(t *testing.T) {
	assert.Panics(t, func() { Float64sMisaligned(8, 0) })
	assert.Panics(t, func() { Float64sMisaligned(8, -4) })
	assert.Panics(t, func() { Float64sMisaligned(8, AVXAlignment) })
}

func TestMisalignedReadWrite(t *testing.T) {
	src := Float64s(1000)
	FillRandom(src, 7)
	dst := Float64sMisaligned(1000, 4)
	copy(dst, src)
	assert.Equal(t, src, dst)
}

func TestIsAligned(t *testing.T) {
	aligned := unsafe.Pointer(&Float64s(4)[0])
	assert.True(t, IsAligned(aligned, AVXAlignment))
	assert.True(t, IsAligned(aligned, 8))

	off := unsafe.Pointer(&Float64sMisaligned(4, 4)[0])
	assert.False(t, IsAligned(off, AVXAlignment))
	assert.False(t, IsAligned(off, 8))
	assert.True(t, IsAligned(off, 4))
}

func TestAlignedEmpty(t *testing.T) {
	assert.True(t, Aligned(nil, AVXAlignment))
}

func TestFillRandom(t *testing.T) {
	a := make([]float64, 256)
	b := make([]float64, 256)
	FillRandom(a, 99)
	FillRandom(b, 99)
	require.Equal(t, a, b, "same seed must produce the same contents")

	for i, v := range a {
		assert.GreaterOrEqual(t, v, 0.0, "index %d", i)
		assert.Less(t, v, 1.0, "index %d", i)
	}

	c := make([]float64, 256)
	FillRandom(c, 100)
	assert.NotEqual(t, a, c, "different seeds should produce different contents")
}
