package semihosttest

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgavlin/semihost/abi"
)

func open(t *testing.T, h *Host, path string, mode abi.OpenMode) uintptr {
	p := []byte(path + "\x00")
	b := abi.OpenBlock{Path: unsafe.Pointer(&p[0]), Mode: mode, Len: uintptr(len(path))}
	return h.Call(abi.OpOpen, unsafe.Pointer(&b))
}

func TestUnknownOperation(t *testing.T) {
	h := New()

	assert.Equal(t, abi.Failure, h.Call(abi.Op(0x08), nil))
	assert.Equal(t, int32(EINVAL), h.Errno)
	assert.Equal(t, abi.Failure, h.Call(abi.Op(0x1000), nil))

	require.Len(t, h.Calls, 2)
	assert.Equal(t, abi.Failure, h.Calls[0].Result)
}

func TestFailInjection(t *testing.T) {
	h := New()
	h.Clock = 7
	h.Fail[abi.OpClock] = true

	assert.Equal(t, abi.Failure, h.Call(abi.OpClock, nil))
	assert.Equal(t, int32(EIO), h.Errno)

	delete(h.Fail, abi.OpClock)
	assert.Equal(t, uintptr(7), h.Call(abi.OpClock, nil))
}

func TestHandleAllocation(t *testing.T) {
	h := New()
	h.WriteFile("f", []byte("data"))

	first := open(t, h, "f", abi.ModeRead)
	second := open(t, h, "f", abi.ModeRead)
	assert.Equal(t, uintptr(1), first)
	assert.Equal(t, uintptr(2), second)
	assert.Equal(t, 2, h.OpenHandles())

	cb := abi.CloseBlock{Handle: abi.Handle(first)}
	assert.Equal(t, uintptr(0), h.Call(abi.OpClose, unsafe.Pointer(&cb)))
	assert.Equal(t, abi.Failure, h.Call(abi.OpClose, unsafe.Pointer(&cb)))
	assert.Equal(t, int32(EBADF), h.Errno)

	assert.Equal(t, first, open(t, h, "f", abi.ModeRead))
}

func TestHandleExhaustion(t *testing.T) {
	h := New()
	for i := 1; i < maxHandles; i++ {
		require.NotEqual(t, abi.Failure, open(t, h, ":tt", abi.ModeWrite))
	}
	assert.Equal(t, abi.Failure, open(t, h, ":tt", abi.ModeWrite))
	assert.Equal(t, int32(EACCES), h.Errno)
}

func TestOpenModes(t *testing.T) {
	h := New()

	assert.Equal(t, abi.Failure, open(t, h, "missing", abi.ModeRead))
	assert.Equal(t, int32(ENOENT), h.Errno)

	h.WriteFile("f", []byte("old"))
	assert.NotEqual(t, abi.Failure, open(t, h, "f", abi.ModeWrite))
	data, ok := h.ReadFile("f")
	require.True(t, ok)
	assert.Empty(t, data)

	assert.NotEqual(t, abi.Failure, open(t, h, "g", abi.ModeAppend))
	_, ok = h.ReadFile("g")
	assert.True(t, ok)

	assert.Equal(t, abi.Failure, open(t, h, ":semihosting-features", abi.ModeRead))
	h.Features = []byte{}
	assert.Equal(t, abi.Failure, open(t, h, ":semihosting-features", abi.ModeWrite))
	assert.NotEqual(t, abi.Failure, open(t, h, ":semihosting-features", abi.ModeReadBinary))
}

func TestStdioStreams(t *testing.T) {
	h := New()
	out := open(t, h, ":tt", abi.ModeWriteBinary)
	errs := open(t, h, ":tt", abi.ModeAppendBinary)

	for _, c := range []struct {
		handle uintptr
		data   string
	}{{out, "out"}, {errs, "err"}} {
		p := []byte(c.data)
		b := abi.WriteBlock{Handle: abi.Handle(c.handle), Buf: unsafe.Pointer(&p[0]), Len: uintptr(len(p))}
		assert.Equal(t, uintptr(0), h.Call(abi.OpWrite, unsafe.Pointer(&b)))

		tb := abi.IsTTYBlock{Handle: abi.Handle(c.handle)}
		assert.Equal(t, uintptr(1), h.Call(abi.OpIsTTY, unsafe.Pointer(&tb)))
	}

	assert.Equal(t, "out", h.Stdout.String())
	assert.Equal(t, "err", h.Stderr.String())
}

func TestCallsTo(t *testing.T) {
	h := New()
	h.Call(abi.OpClock, nil)
	h.Call(abi.OpTime, nil)
	h.Call(abi.OpClock, nil)

	assert.Len(t, h.CallsTo(abi.OpClock), 2)
	assert.Len(t, h.CallsTo(abi.OpTime), 1)
	assert.Empty(t, h.CallsTo(abi.OpErrno))
}

func TestZeroHost(t *testing.T) {
	var h Host
	h.Clock = 5
	assert.Equal(t, uintptr(5), h.Call(abi.OpClock, nil))

	handle := open(t, &h, "new", abi.ModeWrite)
	assert.Equal(t, uintptr(1), handle)
	_, ok := h.ReadFile("new")
	assert.True(t, ok)

	var other Host
	other.WriteFile("f", []byte("x"))
	data, ok := other.ReadFile("f")
	require.True(t, ok)
	assert.Equal(t, "x", string(data))
}
