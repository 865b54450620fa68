//go:build amd64 && !noasm

package vec

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Assembly kernels in sum_avx_amd64.s. Both expect n to be a multiple of
// lanes; the wrappers sum the tail in Go. The aligned variant faults if p is
// not 32-byte aligned, which is exactly the contract being benchmarked.

//go:noescape
func sumAvxAligned(p unsafe.Pointer, n int64) float64

//go:noescape
func sumAvxUnaligned(p unsafe.Pointer, n int64) float64

func sumAlignedVec(x []float64) float64 {
	n := len(x) &^ (lanes - 1)
	if n == 0 {
		return SumScalar(x)
	}
	sum := sumAvxAligned(unsafe.Pointer(&x[0]), int64(n))
	for _, v := range x[n:] {
		sum += v
	}
	return sum
}

func sumUnalignedVec(x []float64) float64 {
	n := len(x) &^ (lanes - 1)
	if n == 0 {
		return SumScalar(x)
	}
	sum := sumAvxUnaligned(unsafe.Pointer(&x[0]), int64(n))
	for _, v := range x[n:] {
		sum += v
	}
	return sum
}

// sumImpls lists every compiled-in implementation so tests and benchmarks can
// exercise each one. The dispatch code does not consult this table; it is
// informational, lowest entry first being the preferred kernel.
var sumImpls = []sumImpl{
	{"avx/aligned", sumAlignedVec, cpu.X86.HasAVX, true},
	{"avx/unaligned", sumUnalignedVec, cpu.X86.HasAVX, false},
	{"generic", sumVec4, true, false},
	{"scalar", SumScalar, true, false},
}
