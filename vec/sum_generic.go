//go:build !amd64 || noasm

package vec

// Without assembly kernels the vector strategies share the pure Go reduction.
// Dispatch never selects them (the level stays scalar), but they remain
// callable so the API behaves identically everywhere.

func sumAlignedVec(x []float64) float64 { return sumVec4(x) }

func sumUnalignedVec(x []float64) float64 { return sumVec4(x) }

var sumImpls = []sumImpl{
	{"generic", sumVec4, true, false},
	{"scalar", SumScalar, true, false},
}
