// Package trap issues semihosting calls.
//
// A call hands an operation code and the address of an argument block to the
// debugger or emulator hosting the program and returns the single word it
// leaves in the result register. The call is synchronous and may block for
// as long as the host likes. It must not be issued concurrently or from
// contexts that cannot tolerate an unbounded stall.
package trap

import (
	"errors"
	"unsafe"

	"github.com/pgavlin/semihost/abi"
)

// ErrUnsupported is returned by Native on architectures without a semihosting
// trap instruction.
var ErrUnsupported = errors.New("semihosting is not supported on this architecture")

// A Transport delivers one semihosting call to the host. param is the address
// of the argument block expected by op, or nil for operations without one. The
// host may write through param before Call returns.
type Transport interface {
	Call(op abi.Op, param unsafe.Pointer) uintptr
}

// Func adapts an ordinary function to the Transport interface.
type Func func(op abi.Op, param unsafe.Pointer) uintptr

func (f Func) Call(op abi.Op, param unsafe.Pointer) uintptr {
	return f(op, param)
}

type native struct{}

func (native) Call(op abi.Op, param unsafe.Pointer) uintptr {
	return trap(uint32(op), param)
}

// Native returns the transport backed by this architecture's trap instruction.
// Only arm64 and riscv64 have one. On 32-bit ARM, SYS_EXIT takes its reason in
// a register rather than a block, so Native returns ErrUnsupported there too;
// wrap a target-specific trap with Func instead.
func Native() (Transport, error) {
	if !supported {
		return nil, ErrUnsupported
	}
	return native{}, nil
}
