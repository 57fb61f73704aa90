//go:build !arm64 && !riscv64
// +build !arm64,!riscv64

package trap

import "unsafe"

const supported = false

func trap(op uint32, param unsafe.Pointer) uintptr {
	panic(ErrUnsupported)
}
