// Package semihosttest provides an in-process semihosting host for tests.
//
// A Host implements trap.Transport by decoding argument blocks directly from
// the caller's memory, so a semihost.Client backed by a Host behaves as it
// would under a debugger while running as an ordinary Go test.
package semihosttest

import (
	"bytes"
	"fmt"
	"runtime"
	"unsafe"

	hclog "github.com/hashicorp/go-hclog"

	"github.com/pgavlin/semihost/abi"
)

// Host errno values, as reported by SYS_ERRNO.
const (
	ENOENT = 2
	EIO    = 5
	EBADF  = 9
	EACCES = 13
	EINVAL = 22
)

// A Call records one call received by a Host.
type Call struct {
	Op     abi.Op
	Result uintptr

	Handle abi.Handle
	Mode   abi.OpenMode
	// Path holds the path or command passed to the call, without its terminator.
	Path string
	// Data holds the bytes transferred by the call. For SYS_WRITE0 it includes
	// the terminator.
	Data []byte
}

// An Exit records a SYS_EXIT.
type Exit struct {
	Reason abi.ExitReason
	Code   uintptr
}

// Host is an in-memory semihosting host. Its exported fields may be set
// before the first call and inspected afterwards. The zero value is an empty
// host with a null logger. A Host is not safe for concurrent use.
type Host struct {
	Logger hclog.Logger

	// Console receives SYS_WRITE0 and SYS_WRITEC output.
	Console bytes.Buffer
	// Input is consumed by SYS_READC. Once exhausted, SYS_READC returns 0.
	Input []byte

	// Stdin is read through the standard input stream.
	Stdin []byte
	// Stdout and Stderr receive writes to the standard output and error streams.
	Stdout, Stderr bytes.Buffer

	CmdLine  string
	Heap     abi.HeapInfo
	Clock    uintptr
	Time     uintptr
	Ticks    uint64
	TickFreq uintptr
	// Features holds the contents of the features pseudo-file. If nil, the
	// file does not exist.
	Features []byte

	// Errno is the value returned by SYS_ERRNO. Failed calls update it.
	Errno int32
	// System runs commands passed to SYS_SYSTEM. If nil, every command exits 0.
	System func(cmd string) int

	// Fail makes every call to the given operations fail without effect.
	Fail map[abi.Op]bool

	// Calls records every call in order.
	Calls []Call
	// Exited records the last SYS_EXIT.
	Exited *Exit

	files   map[string]*memFile
	handles handleTable
}

// New creates an empty host.
func New() *Host {
	return &Host{
		Logger: hclog.NewNullLogger(),
		Fail:   map[abi.Op]bool{},
		files:  map[string]*memFile{},
	}
}

func (h *Host) prepare() {
	if h.Logger == nil {
		h.Logger = hclog.NewNullLogger()
	}
	if h.files == nil {
		h.files = map[string]*memFile{}
	}
}

// WriteFile creates or replaces a file on the host.
func (h *Host) WriteFile(name string, data []byte) {
	h.prepare()
	h.files[name] = &memFile{data: append([]byte(nil), data...)}
}

// ReadFile returns the contents of a file on the host.
func (h *Host) ReadFile(name string) ([]byte, bool) {
	f, ok := h.files[name]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), f.data...), true
}

// OpenHandles returns the number of handles that are currently open.
func (h *Host) OpenHandles() int {
	return h.handles.count()
}

// CallsTo returns the recorded calls to op.
func (h *Host) CallsTo(op abi.Op) []Call {
	var calls []Call
	for _, c := range h.Calls {
		if c.Op == op {
			calls = append(calls, c)
		}
	}
	return calls
}

type handler func(h *Host, c *Call, param unsafe.Pointer) uintptr

var handlers [abi.ReservedLimit]handler

func init() {
	handlers[abi.OpOpen] = (*Host).open
	handlers[abi.OpClose] = (*Host).close
	handlers[abi.OpWriteC] = (*Host).writec
	handlers[abi.OpWrite0] = (*Host).write0
	handlers[abi.OpWrite] = (*Host).write
	handlers[abi.OpRead] = (*Host).read
	handlers[abi.OpReadC] = (*Host).readc
	handlers[abi.OpIsTTY] = (*Host).istty
	handlers[abi.OpSeek] = (*Host).seek
	handlers[abi.OpFlen] = (*Host).flen
	handlers[abi.OpTmpName] = (*Host).tmpnam
	handlers[abi.OpRemove] = (*Host).remove
	handlers[abi.OpRename] = (*Host).rename
	handlers[abi.OpClock] = (*Host).clock
	handlers[abi.OpTime] = (*Host).time
	handlers[abi.OpSystem] = (*Host).system
	handlers[abi.OpErrno] = (*Host).errno
	handlers[abi.OpGetCmdLine] = (*Host).getCmdLine
	handlers[abi.OpHeapInfo] = (*Host).heapInfo
	handlers[abi.OpExit] = (*Host).exit
	handlers[abi.OpElapsed] = (*Host).elapsed
	handlers[abi.OpTickFreq] = (*Host).tickFreq
}

// Call implements trap.Transport.
func (h *Host) Call(op abi.Op, param unsafe.Pointer) uintptr {
	h.prepare()

	c := Call{Op: op}

	var ret uintptr
	switch {
	case uint32(op) >= abi.ReservedLimit || handlers[op] == nil:
		h.Logger.Error("unknown operation", "op", op)
		ret = h.fail(EINVAL)
	case h.Fail[op] && op != abi.OpExit:
		ret = h.fail(EIO)
	default:
		ret = handlers[op](h, &c, param)
	}

	h.Logger.Trace("semihosting call", "op", op, "result", ret)

	c.Result = ret
	h.Calls = append(h.Calls, c)
	return ret
}

func (h *Host) fail(errno int32) uintptr {
	h.Errno = errno
	return abi.Failure
}

// cstring reads a string of n bytes at p and checks that it is followed by a
// NUL.
func cstring(p unsafe.Pointer, n uintptr) (string, bool) {
	if p == nil {
		return "", false
	}
	b := unsafe.Slice((*byte)(p), n+1)
	if b[n] != 0 {
		return "", false
	}
	return string(b[:n]), true
}

func buffer(p unsafe.Pointer, n uintptr) []byte {
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

func (h *Host) writec(c *Call, param unsafe.Pointer) uintptr {
	b := (*abi.CharBlock)(param)
	c.Data = []byte{b.C}
	h.Console.WriteByte(b.C)
	return 0
}

func (h *Host) write0(c *Call, param unsafe.Pointer) uintptr {
	for i := uintptr(0); ; i++ {
		b := *(*byte)(unsafe.Add(param, i))
		c.Data = append(c.Data, b)
		if b == 0 {
			break
		}
		h.Console.WriteByte(b)
	}
	return 0
}

func (h *Host) readc(c *Call, param unsafe.Pointer) uintptr {
	if len(h.Input) == 0 {
		return 0
	}
	b := h.Input[0]
	h.Input = h.Input[1:]
	c.Data = []byte{b}
	return uintptr(b)
}

func (h *Host) clock(c *Call, param unsafe.Pointer) uintptr {
	return h.Clock
}

func (h *Host) time(c *Call, param unsafe.Pointer) uintptr {
	return h.Time
}

func (h *Host) errno(c *Call, param unsafe.Pointer) uintptr {
	return uintptr(h.Errno)
}

func (h *Host) elapsed(c *Call, param unsafe.Pointer) uintptr {
	(*abi.ElapsedBlock)(param).Ticks = h.Ticks
	return 0
}

func (h *Host) tickFreq(c *Call, param unsafe.Pointer) uintptr {
	if h.TickFreq == 0 {
		return h.fail(EINVAL)
	}
	return h.TickFreq
}

func (h *Host) heapInfo(c *Call, param unsafe.Pointer) uintptr {
	b := (*abi.HeapInfoBlock)(param)
	if b.Info == nil {
		return h.fail(EINVAL)
	}
	*b.Info = h.Heap
	return 0
}

func (h *Host) getCmdLine(c *Call, param unsafe.Pointer) uintptr {
	b := (*abi.CmdLineBlock)(param)
	if uintptr(len(h.CmdLine)) >= b.Len {
		return h.fail(EINVAL)
	}

	buf := buffer(b.Buf, b.Len)
	n := copy(buf, h.CmdLine)
	buf[n] = 0
	b.Len = uintptr(n)
	c.Data = []byte(h.CmdLine)
	return 0
}

func (h *Host) system(c *Call, param unsafe.Pointer) uintptr {
	b := (*abi.SystemBlock)(param)
	cmd, ok := cstring(b.Str, b.Len)
	if !ok {
		return h.fail(EINVAL)
	}
	c.Path = cmd

	if h.System == nil {
		return 0
	}
	return uintptr(h.System(cmd))
}

func (h *Host) exit(c *Call, param unsafe.Pointer) uintptr {
	b := (*abi.ExitBlock)(param)
	h.Exited = &Exit{Reason: abi.ExitReason(b.Reason &^ abi.StoppedMarker), Code: b.Code}

	c.Result = 0
	h.Calls = append(h.Calls, *c)
	h.Logger.Debug("exit", "reason", h.Exited.Reason, "code", b.Code)

	// The caller never regains control.
	runtime.Goexit()
	panic("unreachable")
}

func (h *Host) String() string {
	return fmt.Sprintf("Host{files: %d, open: %d, calls: %d}", len(h.files), h.handles.count(), len(h.Calls))
}
