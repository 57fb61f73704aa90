// Package abi describes the semihosting wire protocol: operation codes, the
// argument block laid out in memory for each operation, and the convention
// used to report failure through the returned machine word.
package abi

import "fmt"

// Op is a semihosting operation code. The set of codes is fixed by ARM.
type Op uint32

const (
	OpOpen       Op = 0x01
	OpClose      Op = 0x02
	OpWriteC     Op = 0x03
	OpWrite0     Op = 0x04
	OpWrite      Op = 0x05
	OpRead       Op = 0x06
	OpReadC      Op = 0x07
	OpIsTTY      Op = 0x09
	OpSeek       Op = 0x0a
	OpFlen       Op = 0x0c
	OpTmpName    Op = 0x0d
	OpRemove     Op = 0x0e
	OpRename     Op = 0x0f
	OpClock      Op = 0x10
	OpTime       Op = 0x11
	OpSystem     Op = 0x12
	OpErrno      Op = 0x13
	OpGetCmdLine Op = 0x15
	OpHeapInfo   Op = 0x16
	OpExit       Op = 0x18
	OpElapsed    Op = 0x30
	OpTickFreq   Op = 0x31
)

// ReservedLimit bounds the operation codes reserved by ARM.
// Codes at or above it belong to applications and are never issued by this
// module.
const ReservedLimit = 0x100

// Ops lists every defined operation code in ascending order.
var Ops = []Op{
	OpOpen, OpClose, OpWriteC, OpWrite0, OpWrite, OpRead, OpReadC, OpIsTTY, OpSeek, OpFlen, OpTmpName,
	OpRemove, OpRename, OpClock, OpTime, OpSystem, OpErrno, OpGetCmdLine, OpHeapInfo, OpExit, OpElapsed,
	OpTickFreq,
}

var opNames = map[Op]string{
	OpOpen:       "SYS_OPEN",
	OpClose:      "SYS_CLOSE",
	OpWriteC:     "SYS_WRITEC",
	OpWrite0:     "SYS_WRITE0",
	OpWrite:      "SYS_WRITE",
	OpRead:       "SYS_READ",
	OpReadC:      "SYS_READC",
	OpIsTTY:      "SYS_ISTTY",
	OpSeek:       "SYS_SEEK",
	OpFlen:       "SYS_FLEN",
	OpTmpName:    "SYS_TMPNAM",
	OpRemove:     "SYS_REMOVE",
	OpRename:     "SYS_RENAME",
	OpClock:      "SYS_CLOCK",
	OpTime:       "SYS_TIME",
	OpSystem:     "SYS_SYSTEM",
	OpErrno:      "SYS_ERRNO",
	OpGetCmdLine: "SYS_GET_CMDLINE",
	OpHeapInfo:   "SYS_HEAPINFO",
	OpExit:       "SYS_EXIT",
	OpElapsed:    "SYS_ELAPSED",
	OpTickFreq:   "SYS_TICKFREQ",
}

func (op Op) String() string {
	if n, ok := opNames[op]; ok {
		return n
	}
	return fmt.Sprintf("SYS_0x%02x", uint32(op))
}

// Valid returns true if op is one of the defined operation codes.
func (op Op) Valid() bool {
	_, ok := opNames[op]
	return ok
}
