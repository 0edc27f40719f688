//go:build !amd64 && !arm64

package intrin

// Other architectures report no native instruction support. The wrappers
// remain available and bit-exact.
func detectFeatures() {}
