//go:build !amd64 || noasm

package simd256

// No generated kernels on this build (non-amd64 target, or the "noasm"
// build tag forcing it); Pack and Unpack run internal/lanes unconditionally
// via the packFn/unpackFn defaults declared in simd256.go.
