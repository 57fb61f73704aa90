package semihost

import (
	"bytes"
	"errors"
	"runtime"
	"testing"
	"unsafe"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgavlin/semihost/abi"
	"github.com/pgavlin/semihost/semihosttest"
	"github.com/pgavlin/semihost/trap"
)

func newClient(t *testing.T) (*Client, *semihosttest.Host) {
	host := semihosttest.New()
	c, err := New(&Options{Transport: host})
	require.NoError(t, err)
	return c, host
}

func funcClient(t *testing.T, f func(op abi.Op, param unsafe.Pointer) uintptr) *Client {
	c, err := New(&Options{Transport: trap.Func(f)})
	require.NoError(t, err)
	return c
}

func TestNewNative(t *testing.T) {
	c, err := New(nil)
	switch runtime.GOARCH {
	case "arm64", "riscv64":
		require.NoError(t, err)
		assert.NotNil(t, c)
	default:
		assert.ErrorIs(t, err, trap.ErrUnsupported)
	}
}

func TestResultConvention(t *testing.T) {
	var raw uintptr
	c := funcClient(t, func(op abi.Op, param unsafe.Pointer) uintptr {
		assert.Equal(t, abi.OpClock, op)
		assert.Nil(t, param)
		return raw
	})

	for _, v := range []uintptr{0, 1, 100, abi.Failure - 1} {
		raw = v
		got, err := c.Clock()
		require.NoError(t, err)
		assert.Equal(t, uint(v), got)
	}

	raw = abi.Failure
	_, err := c.Clock()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFailed)

	var opErr *OpError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, abi.OpClock, opErr.Op)
	assert.Equal(t, "SYS_CLOCK failed", err.Error())
}

func TestTraceLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Output: &buf, Level: hclog.Trace})

	host := semihosttest.New()
	host.Clock = 42
	c, err := New(&Options{Transport: host, Logger: logger})
	require.NoError(t, err)

	_, err = c.Clock()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "op=SYS_CLOCK")
	assert.Contains(t, buf.String(), "result=42")
}

func TestCString(t *testing.T) {
	assert.Equal(t, "a\x00", CString("a"))
	assert.Equal(t, "a\x00", CString("a\x00"))
	assert.Equal(t, "\x00", CString(""))
}
