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

// Package buffer allocates float64 slices with controlled base-address
// alignment. The Go runtime gives no alignment guarantee beyond the element
// size, so aligned buffers are carved out of an over-allocated byte slice by
// rounding the base address up to the requested boundary. Misaligned buffers
// round up the same way and then step a fixed number of bytes past the
// boundary, which is how the harness produces float64 data that is not even
// 8-byte aligned.
package buffer

import (
	"math/rand"
	"unsafe"
)

const (
	// AVXAlignment is the required alignment for 256-bit aligned vector
	// loads.
	AVXAlignment = 32

	// CacheLineSize is the typical CPU cache line size in bytes.
	CacheLineSize = 64
)

// Float64s returns a float64 slice of length n whose first element sits on a
// 32-byte boundary. Returns nil for n <= 0.
func Float64s(n int) []float64 {
	return alignedFloat64s(n, AVXAlignment, 0)
}

// Float64sMisaligned returns a float64 slice of length n whose first element
// sits exactly offset bytes past a 32-byte boundary. offset must be in
// [1, AVXAlignment-1]; Float64sMisaligned panics otherwise. An offset that is
// not a multiple of 8 yields elements straddling their natural alignment.
// Returns nil for n <= 0.
func Float64sMisaligned(n, offset int) []float64 {
	if offset <= 0 || offset >= AVXAlignment {
		panic("buffer: misalignment offset must be in [1, 31]")
	}
	return alignedFloat64s(n, AVXAlignment, offset)
}

// alignedFloat64s over-allocates a byte slice, rounds the base address up to
// the alignment boundary, steps offset bytes further, and reinterprets the
// result as a float64 slice. The returned slice shares the backing array with
// the raw allocation, so the allocation stays reachable for as long as the
// slice is.
func alignedFloat64s(n, alignment, offset int) []float64 {
	if n <= 0 {
		return nil
	}

	raw := make([]byte, n*8+alignment-1+offset)
	addr := uintptr(unsafe.Pointer(&raw[0]))
	aligned := (addr + uintptr(alignment-1)) &^ uintptr(alignment-1)
	start := int(aligned-addr) + offset

	return unsafe.Slice((*float64)(unsafe.Pointer(&raw[start])), n)
}

// IsAligned reports whether ptr sits on an align-byte boundary. align must be
// a power of two.
func IsAligned(ptr unsafe.Pointer, align uintptr) bool {
	return uintptr(ptr)&(align-1) == 0
}

// Aligned reports whether the first element of x sits on an align-byte
// boundary. An empty slice is considered aligned.
func Aligned(x []float64, align uintptr) bool {
	if len(x) == 0 {
		return true
	}
	return IsAligned(unsafe.Pointer(&x[0]), align)
}

// FillRandom fills x with deterministic pseudo-random values in [0, 1).
// The same seed always produces the same contents.
func FillRandom(x []float64, seed int64) {
	r := rand.New(rand.NewSource(seed))
	for i := range x {
		x[i] = r.Float64()
	}
}
