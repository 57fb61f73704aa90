package trap

import "unsafe"

const supported = true

//go:noescape
func trap(op uint32, param unsafe.Pointer) uintptr
