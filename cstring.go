package semihost

import (
	"fmt"
	"strings"
	"unsafe"
)

// CString returns s with a NUL terminator appended, unless s already ends with
// one. Every path and command passed to a Client must be NUL-terminated.
func CString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// cstring returns the address of s and its length without the terminator.
// what names the argument in the panic raised when the terminator is missing.
func cstring(s, what string) (unsafe.Pointer, uintptr) {
	if !strings.HasSuffix(s, "\x00") {
		panic(fmt.Errorf("%s: %w", what, FaultMissingNul))
	}
	return unsafe.Pointer(unsafe.StringData(s)), uintptr(len(s) - 1)
}

func bytesPtr(b []byte) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(b))
}
