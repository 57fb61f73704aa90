package env

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgavlin/semihost"
	"github.com/pgavlin/semihost/abi"
	"github.com/pgavlin/semihost/semihosttest"
)

func TestOpenStreams(t *testing.T) {
	host := semihosttest.New()
	e := &Env{Transport: host}
	require.NoError(t, e.Open())
	assert.Equal(t, 2, host.OpenHandles())

	fmt.Fprint(e.Out, "out")
	fmt.Fprint(e.Err, "err")
	assert.Equal(t, "out", host.Stdout.String())
	assert.Equal(t, "err", host.Stderr.String())

	require.NoError(t, e.Close())
	assert.Equal(t, 0, host.OpenHandles())
	require.NoError(t, e.Close())
}

func TestOpenConsole(t *testing.T) {
	host := semihosttest.New()
	e := &Env{Transport: host, Console: true}
	require.NoError(t, e.Open())
	assert.Equal(t, 0, host.OpenHandles())

	fmt.Fprint(e.Out, "hi")
	assert.Equal(t, "hi", host.Console.String())
}

func TestOpenFailure(t *testing.T) {
	host := semihosttest.New()
	host.Fail[abi.OpOpen] = true
	e := &Env{Transport: host}
	assert.ErrorIs(t, e.Open(), semihost.ErrFailed)
}

func TestDescribe(t *testing.T) {
	host := semihosttest.New()
	e := &Env{Transport: host}
	require.NoError(t, e.Open())

	host.Errno = semihosttest.ENOENT
	err := &semihost.OpError{Op: abi.OpOpen}
	switch runtime.GOOS {
	case "linux", "darwin":
		assert.Equal(t, "SYS_OPEN failed (ENOENT: host errno 2)", e.Describe(err))
	}

	host.Errno = 0
	assert.Equal(t, "SYS_OPEN failed (host errno 0)", e.Describe(err))

	assert.Equal(t, "plain", e.Describe(fmt.Errorf("plain")))
}
