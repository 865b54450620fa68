//go:build amd64 && !noasm

package vec

import "golang.org/x/sys/cpu"

func init() {
	// Check if vector kernels are disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	if cpu.X86.HasAVX {
		currentLevel = LevelAVX
		currentName = "avx"
		return
	}

	setScalarMode()
}
