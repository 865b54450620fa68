//go:build !amd64 || noasm

package vec

func init() {
	// Only amd64 has vector kernels for now. Everything else takes the
	// scalar path, which keeps the package usable on all architectures
	// the Go toolchain supports.
	setScalarMode()
}
