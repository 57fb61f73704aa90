package files

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgavlin/semihost"
	"github.com/pgavlin/semihost/abi"
	"github.com/pgavlin/semihost/cmd/semihost/env"
	"github.com/pgavlin/semihost/semihosttest"
)

func setup(t *testing.T) (*env.Env, *semihosttest.Host) {
	host := semihosttest.New()
	e := &env.Env{Transport: host}
	require.NoError(t, e.Open())
	t.Cleanup(func() { e.Close() })
	return e, host
}

func execute(command *cobra.Command, args ...string) error {
	command.SetArgs(append([]string{}, args...))
	command.SilenceErrors, command.SilenceUsage = true, true
	return command.Execute()
}

func TestCat(t *testing.T) {
	e, host := setup(t)
	host.WriteFile("a.txt", []byte("hello, "))
	host.WriteFile("b.txt", []byte("world\n"))

	require.NoError(t, execute(catCommand(e), "a.txt", "b.txt"))
	assert.Equal(t, "hello, world\n", host.Stdout.String())

	// stdout and stderr stay open
	assert.Equal(t, 2, host.OpenHandles())

	err := execute(catCommand(e), "missing.txt")
	assert.ErrorIs(t, err, semihost.ErrFailed)
	assert.Contains(t, err.Error(), "reading missing.txt")
}

func TestCatStdin(t *testing.T) {
	e, host := setup(t)
	host.Stdin = []byte("typed input")

	require.NoError(t, execute(catCommand(e)))
	assert.Equal(t, "typed input", host.Stdout.String())
}

func TestCatConsole(t *testing.T) {
	host := semihosttest.New()
	host.WriteFile("a.txt", []byte("to the console"))
	e := &env.Env{Transport: host, Console: true}
	require.NoError(t, e.Open())

	require.NoError(t, execute(catCommand(e), "a.txt"))
	assert.Equal(t, "to the console", host.Console.String())
	assert.Zero(t, host.Stdout.Len())
}

func TestCp(t *testing.T) {
	e, host := setup(t)
	host.WriteFile("src", []byte("payload"))
	host.WriteFile("dst", []byte("old contents"))

	require.NoError(t, execute(cpCommand(e), "src", "dst"))
	data, ok := host.ReadFile("dst")
	require.True(t, ok)
	assert.Equal(t, "payload", string(data))

	require.NoError(t, execute(cpCommand(e), "--mode", "ab", "src", "dst"))
	data, _ = host.ReadFile("dst")
	assert.Equal(t, "payloadpayload", string(data))

	assert.Error(t, execute(cpCommand(e), "--mode", "x", "src", "dst"))
	assert.Equal(t, 2, host.OpenHandles())
}

func TestRmMv(t *testing.T) {
	e, host := setup(t)
	host.WriteFile("a", nil)

	require.NoError(t, execute(mvCommand(e), "a", "b"))
	_, ok := host.ReadFile("b")
	assert.True(t, ok)

	require.NoError(t, execute(rmCommand(e), "b"))
	_, ok = host.ReadFile("b")
	assert.False(t, ok)

	err := execute(rmCommand(e), "b")
	var hostErr *semihost.HostError
	require.ErrorAs(t, err, &hostErr)
	assert.Equal(t, abi.OpRemove, hostErr.Op)
}

func TestTmpname(t *testing.T) {
	e, host := setup(t)

	require.NoError(t, execute(tmpnameCommand(e), "0x10"))
	assert.Equal(t, "/tmp/semihost-10\n", host.Stdout.String())

	assert.Error(t, execute(tmpnameCommand(e), "256"))
}

func TestMode(t *testing.T) {
	var m mode
	require.NoError(t, m.Set("w+"))
	assert.Equal(t, abi.ModeWriteRead, abi.OpenMode(m))
	assert.Equal(t, "w+", m.String())
	assert.Error(t, m.Set("rw"))
}
