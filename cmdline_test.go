package semihost

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdLine(t *testing.T) {
	c, host := newClient(t)
	host.CmdLine = "prog --verbose  input.txt"

	buf := make([]byte, 80)
	line, err := c.CmdLine(buf)
	require.NoError(t, err)
	assert.Equal(t, "prog --verbose  input.txt", line)

	args, err := c.Args(buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"prog", "--verbose", "input.txt"}, args)
}

func TestCmdLineTooLong(t *testing.T) {
	c, host := newClient(t)
	host.CmdLine = "prog with a long command line"

	_, err := c.CmdLine(make([]byte, 8))
	assert.ErrorIs(t, err, ErrFailed)
}

func TestCmdLineEmpty(t *testing.T) {
	c, _ := newClient(t)

	args, err := c.Args(make([]byte, 80))
	require.NoError(t, err)
	assert.Empty(t, args)
}

func TestCmdLineInvalidUTF8(t *testing.T) {
	c, host := newClient(t)
	host.CmdLine = "prog \xff\xfe"

	defer func() {
		x := recover()
		require.NotNil(t, x)
		err, ok := x.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, FaultInvalidCmdLine))
	}()

	c.CmdLine(make([]byte, 80))
	t.Fatal("CmdLine returned")
}
