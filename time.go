package semihost

import (
	"time"

	"github.com/pgavlin/semihost/abi"
)

// Clock returns the number of centiseconds since execution started. Each call
// is a trap into the host, so it is too coarse for benchmarking.
func (c *Client) Clock() (uint, error) {
	v, err := c.check(abi.OpClock, invoke(c, &abi.ClockBlock{}))
	return uint(v), err
}

// Time returns the host's wall-clock time with one-second resolution.
func (c *Client) Time() (time.Time, error) {
	v, err := c.check(abi.OpTime, invoke(c, &abi.TimeBlock{}))
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(v), 0), nil
}

// Elapsed returns the number of ticks since execution started. Hosts that do
// not implement it always fail.
func (c *Client) Elapsed() (uint64, error) {
	var b abi.ElapsedBlock
	if _, err := c.check(b.Op(), invoke(c, &b)); err != nil {
		return 0, err
	}
	return b.Ticks, nil
}

// TickFreq returns the number of Elapsed ticks per second.
func (c *Client) TickFreq() (uint, error) {
	v, err := c.check(abi.OpTickFreq, invoke(c, &abi.TickFreqBlock{}))
	return uint(v), err
}

// ElapsedDuration converts Elapsed to a duration using TickFreq.
func (c *Client) ElapsedDuration() (time.Duration, error) {
	ticks, err := c.Elapsed()
	if err != nil {
		return 0, err
	}
	freq, err := c.TickFreq()
	if err != nil {
		return 0, err
	}
	if freq == 0 {
		return 0, &OpError{Op: abi.OpTickFreq}
	}

	f := uint64(freq)
	return time.Duration(ticks/f)*time.Second + time.Duration(ticks%f)*time.Second/time.Duration(f), nil
}
