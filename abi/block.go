package abi

import "unsafe"

// A Block is an argument block: the words a caller lays out in memory before
// trapping into the host. Each block type belongs to exactly one operation, so
// the layout passed to the host cannot disagree with the operation code.
//
// Every field of a block is one machine word. Address fields are held as
// unsafe.Pointer so that the referenced memory stays alive for the duration of
// the trap.
type Block interface {
	Op() Op
}

// Handle is an opaque, host-assigned file handle. An open handle is never zero.
type Handle uintptr

// OpenBlock is the argument block of SYS_OPEN. Len excludes the NUL terminator.
type OpenBlock struct {
	Path unsafe.Pointer
	Mode OpenMode
	Len  uintptr
}

func (*OpenBlock) Op() Op { return OpOpen }

// HandleBlock is the single-word argument block shared by the operations that
// only take a file handle.
type HandleBlock struct {
	Handle Handle
}

// CloseBlock is the argument block of SYS_CLOSE.
type CloseBlock HandleBlock

func (*CloseBlock) Op() Op { return OpClose }

// IsTTYBlock is the argument block of SYS_ISTTY.
type IsTTYBlock HandleBlock

func (*IsTTYBlock) Op() Op { return OpIsTTY }

// FlenBlock is the argument block of SYS_FLEN.
type FlenBlock HandleBlock

func (*FlenBlock) Op() Op { return OpFlen }

// TransferBlock describes a buffer transferred to or from an open file.
type TransferBlock struct {
	Handle Handle
	Buf    unsafe.Pointer
	Len    uintptr
}

// ReadBlock is the argument block of SYS_READ.
type ReadBlock TransferBlock

func (*ReadBlock) Op() Op { return OpRead }

// WriteBlock is the argument block of SYS_WRITE.
type WriteBlock TransferBlock

func (*WriteBlock) Op() Op { return OpWrite }

// SeekBlock is the argument block of SYS_SEEK. Pos is an absolute offset from
// the start of the file.
type SeekBlock struct {
	Handle Handle
	Pos    uintptr
}

func (*SeekBlock) Op() Op { return OpSeek }

// TmpNameBlock is the argument block of SYS_TMPNAM.
type TmpNameBlock struct {
	Buf unsafe.Pointer
	ID  uintptr
	Len uintptr
}

func (*TmpNameBlock) Op() Op { return OpTmpName }

// StringBlock describes a NUL-terminated string. Len excludes the terminator.
type StringBlock struct {
	Str unsafe.Pointer
	Len uintptr
}

// RemoveBlock is the argument block of SYS_REMOVE.
type RemoveBlock StringBlock

func (*RemoveBlock) Op() Op { return OpRemove }

// SystemBlock is the argument block of SYS_SYSTEM.
type SystemBlock StringBlock

func (*SystemBlock) Op() Op { return OpSystem }

// RenameBlock is the argument block of SYS_RENAME.
type RenameBlock struct {
	Old    unsafe.Pointer
	OldLen uintptr
	New    unsafe.Pointer
	NewLen uintptr
}

func (*RenameBlock) Op() Op { return OpRename }

// CmdLineBlock is the argument block of SYS_GET_CMDLINE. The host rewrites
// both words: Buf points at the command line and Len holds its length.
type CmdLineBlock struct {
	Buf unsafe.Pointer
	Len uintptr
}

func (*CmdLineBlock) Op() Op { return OpGetCmdLine }

// HeapInfo describes the heap and stack of the running image.
type HeapInfo struct {
	HeapBase   uintptr
	HeapLimit  uintptr
	StackBase  uintptr
	StackLimit uintptr
}

// HeapInfoBlock is the argument block of SYS_HEAPINFO: the address of the
// descriptor the host fills in.
type HeapInfoBlock struct {
	Info *HeapInfo
}

func (*HeapInfoBlock) Op() Op { return OpHeapInfo }

// ElapsedBlock is the argument block of SYS_ELAPSED. The host stores the tick
// count in Ticks.
type ElapsedBlock struct {
	Ticks uint64
}

func (*ElapsedBlock) Op() Op { return OpElapsed }

// ExitBlock is the argument block of SYS_EXIT.
type ExitBlock struct {
	Reason uintptr
	Code   uintptr
}

func (*ExitBlock) Op() Op { return OpExit }

const (
	// ConsoleChunkSize is the size of the buffer passed to SYS_WRITE0.
	ConsoleChunkSize = 256
	// ConsoleChunkData is the number of data bytes in one console chunk; the
	// final byte is always NUL.
	ConsoleChunkData = ConsoleChunkSize - 1
)

// ConsoleChunk is the argument of SYS_WRITE0: a NUL-terminated string rather
// than a word array.
type ConsoleChunk [ConsoleChunkSize]byte

func (*ConsoleChunk) Op() Op { return OpWrite0 }

// CharBlock is the argument of SYS_WRITEC: the address of one byte.
type CharBlock struct {
	C byte
}

func (*CharBlock) Op() Op { return OpWriteC }

// The operations below take no argument block. Their parameter register is
// zero.

type ReadCBlock struct{}

func (*ReadCBlock) Op() Op { return OpReadC }

type ClockBlock struct{}

func (*ClockBlock) Op() Op { return OpClock }

type TimeBlock struct{}

func (*TimeBlock) Op() Op { return OpTime }

type ErrnoBlock struct{}

func (*ErrnoBlock) Op() Op { return OpErrno }

type TickFreqBlock struct{}

func (*TickFreqBlock) Op() Op { return OpTickFreq }
