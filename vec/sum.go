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

// Package vec provides float64 summation kernels in three flavours: a scalar
// reference loop, a vector kernel using aligned loads, and a vector kernel
// using unaligned loads. On amd64 with AVX the vector kernels are hand-written
// assembly processing four float64 lanes per step; everywhere else (and under
// the noasm build tag or the ALIGNBENCH_NO_SIMD environment variable) a pure
// Go fallback with the same reduction order is used.
//
// The aligned and unaligned kernels exist side by side so the cost of load
// alignment can be measured in isolation; see cmd/alignbench.
package vec

import "unsafe"

// lanes is the number of float64 values per 256-bit vector.
const lanes = 4

// AVXAlignment is the base-address alignment required by the aligned-load
// kernel.
const AVXAlignment = 32

// Sum returns the sum of all elements of x using the best strategy available
// at the current dispatch level. The alignment of x does not matter.
// An empty slice sums to 0.
func Sum(x []float64) float64 {
	if currentLevel == LevelScalar || len(x) < lanes {
		return SumScalar(x)
	}
	return sumUnalignedVec(x)
}

// SumScalar returns the sum of all elements of x using a plain accumulation
// loop. It is the reference implementation the vector kernels are tested
// against.
func SumScalar(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v
	}
	return sum
}

// SumAlignedLoads sums x with the aligned-load vector kernel. The base
// address of x must be aligned to AVXAlignment bytes; SumAlignedLoads panics
// otherwise. Slices shorter than one vector take the scalar path regardless
// of alignment.
func SumAlignedLoads(x []float64) float64 {
	if len(x) < lanes {
		return SumScalar(x)
	}
	if !alignedTo(x, AVXAlignment) {
		panic("vec: SumAlignedLoads requires a 32-byte aligned base address")
	}
	if currentLevel == LevelScalar {
		return sumVec4(x)
	}
	return sumAlignedVec(x)
}

// SumUnalignedLoads sums x with the unaligned-load vector kernel. The base
// address may be anywhere, including addresses that are not 8-byte aligned.
func SumUnalignedLoads(x []float64) float64 {
	if len(x) < lanes {
		return SumScalar(x)
	}
	if currentLevel == LevelScalar {
		return sumVec4(x)
	}
	return sumUnalignedVec(x)
}

// alignedTo reports whether the first element of x sits on an align-byte
// boundary. align must be a power of two.
func alignedTo(x []float64, align uintptr) bool {
	if len(x) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&x[0]))&(align-1) == 0
}

// sumVec4 mirrors the vector kernels in pure Go: four independent
// accumulators over groups of four elements, reduced in the same order as the
// assembly ((s0+s2) + (s1+s3)), then a scalar tail. Used when no assembly
// kernel is compiled in or selected.
func sumVec4(x []float64) float64 {
	var s0, s1, s2, s3 float64
	n := len(x) &^ (lanes - 1)
	for i := 0; i < n; i += lanes {
		s0 += x[i]
		s1 += x[i+1]
		s2 += x[i+2]
		s3 += x[i+3]
	}
	sum := (s0 + s2) + (s1 + s3)
	for _, v := range x[n:] {
		sum += v
	}
	return sum
}
