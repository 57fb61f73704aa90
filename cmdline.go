package semihost

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
	"unsafe"

	"github.com/pgavlin/semihost/abi"
)

// CmdLine retrieves the command line the program was started with. The host
// writes it into buf, which should hold at least 80 bytes. The returned
// string is a copy, so buf may be reused.
//
// A command line that is not valid UTF-8 is fatal: CmdLine panics with an
// error wrapping FaultInvalidCmdLine.
func (c *Client) CmdLine(buf []byte) (string, error) {
	b := abi.CmdLineBlock{Buf: bytesPtr(buf), Len: uintptr(len(buf))}
	if _, err := c.check(b.Op(), invoke(c, &b)); err != nil {
		return "", err
	}

	// The host reports the command line through the block.
	var line []byte
	if b.Buf != nil && b.Len != 0 {
		line = unsafe.Slice((*byte)(b.Buf), b.Len)
	}
	line = bytes.TrimRight(line, "\x00")

	if !utf8.Valid(line) {
		panic(fmt.Errorf("%w: %q", FaultInvalidCmdLine, line))
	}
	return string(line), nil
}

// Args returns the command line split into whitespace-separated fields. The
// first field is normally the program name.
func (c *Client) Args(buf []byte) ([]string, error) {
	line, err := c.CmdLine(buf)
	if err != nil {
		return nil, err
	}
	return strings.Fields(line), nil
}
