package vec

import "os"

// Level identifies the reduction strategy selected at package init.
type Level int

const (
	// LevelScalar is the pure Go fallback, used on architectures without
	// vector kernels or when they are disabled.
	LevelScalar Level = iota
	// LevelAVX uses 256-bit AVX loads, four float64 lanes per step.
	LevelAVX
)

func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelAVX:
		return "avx"
	default:
		return "unknown"
	}
}

var (
	currentLevel Level
	currentName  string
)

// CurrentLevel returns the dispatch level selected at package init.
func CurrentLevel() Level { return currentLevel }

// CurrentName returns the short name of the selected dispatch level.
func CurrentName() string { return currentName }

// NoSimdEnv reports whether vector kernels are disabled via the
// ALIGNBENCH_NO_SIMD environment variable.
func NoSimdEnv() bool {
	return os.Getenv("ALIGNBENCH_NO_SIMD") != ""
}

func setScalarMode() {
	currentLevel = LevelScalar
	currentName = "scalar"
}

// sumImpl describes one compiled-in summation implementation. Each platform
// provides a sumImpls table listing them, preferred kernel first. available
// indicates the kernel can run on this machine, needsAlign that its input
// base address must be 32-byte aligned.
type sumImpl struct {
	name       string
	fn         func([]float64) float64
	available  bool
	needsAlign bool
}
