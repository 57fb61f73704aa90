package semihost

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgavlin/semihost/abi"
)

func TestTime(t *testing.T) {
	c, host := newClient(t)
	host.Clock = 250
	host.Time = 1700000000
	host.Ticks = 3500
	host.TickFreq = 1000

	cs, err := c.Clock()
	require.NoError(t, err)
	assert.Equal(t, uint(250), cs)

	now, err := c.Time()
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), now.Unix())

	ticks, err := c.Elapsed()
	require.NoError(t, err)
	assert.Equal(t, uint64(3500), ticks)

	freq, err := c.TickFreq()
	require.NoError(t, err)
	assert.Equal(t, uint(1000), freq)

	d, err := c.ElapsedDuration()
	require.NoError(t, err)
	assert.Equal(t, 3500*time.Millisecond, d)
}

func TestTimeFailures(t *testing.T) {
	c, host := newClient(t)

	_, err := c.TickFreq()
	assert.ErrorIs(t, err, ErrFailed)
	_, err = c.ElapsedDuration()
	assert.ErrorIs(t, err, ErrFailed)

	host.Fail[abi.OpElapsed] = true
	_, err = c.Elapsed()
	assert.ErrorIs(t, err, ErrFailed)

	host.Fail[abi.OpTime] = true
	_, err = c.Time()
	assert.ErrorIs(t, err, ErrFailed)
}
