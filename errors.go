package semihost

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/pgavlin/semihost/abi"
)

// ErrFailed is matched by every error that reports a failed call. Use
// Client.Errno for the host's reason.
var ErrFailed = errors.New("semihosting call failed")

// ErrClosed is returned by operations on a closed File.
var ErrClosed = fs.ErrClosed

// ErrBadMagic is returned by Client.Extensions when the features file does not
// start with the expected magic number.
var ErrBadMagic = errors.New("bad semihosting features magic")

// An OpError reports a call whose result signalled failure.
type OpError struct {
	Op abi.Op
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%v failed", e.Op)
}

func (e *OpError) Unwrap() error {
	return ErrFailed
}

// A HostError carries the host-specific error code returned by SYS_REMOVE and
// SYS_RENAME, which report failure with any non-zero result.
type HostError struct {
	Op   abi.Op
	Code uintptr
}

func (e *HostError) Error() string {
	return fmt.Sprintf("%v failed: host error %d", e.Op, e.Code)
}

func (e *HostError) Unwrap() error {
	return ErrFailed
}

// Errno is the value of the host's errno variable.
type Errno int32

func (e Errno) Error() string {
	return fmt.Sprintf("host errno %d", int32(e))
}

// A Fault is a violated precondition. Faults are never returned; they are
// raised with panic, wrapped with the details of the violation.
type Fault string

func (f Fault) Error() string {
	return string(f)
}

// FaultMissingNul indicates a string argument without its NUL terminator.
var FaultMissingNul = Fault("string is missing its NUL terminator")

// FaultInvalidCmdLine indicates a command line that is not valid UTF-8.
var FaultInvalidCmdLine = Fault("command line is not valid UTF-8")

// FaultCloseFailed indicates that the host refused to close a file that was
// closed automatically.
var FaultCloseFailed = Fault("failed to close file")

// FaultResumed indicates that the host returned from SYS_EXIT.
var FaultResumed = Fault("execution continued after exit")
