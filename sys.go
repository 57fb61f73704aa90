package semihost

import (
	"bytes"
	"unicode/utf8"

	"github.com/pgavlin/semihost/abi"
)

// Errno returns the host's errno, which describes the last failed call. It
// never fails.
func (c *Client) Errno() Errno {
	return Errno(int32(invoke(c, &abi.ErrnoBlock{})))
}

// System runs cmd in the host's shell and returns its exit status. cmd must be
// NUL-terminated.
func (c *Client) System(cmd string) int {
	p, n := cstring(cmd, "command")

	b := abi.SystemBlock{Str: p, Len: n}
	return int(int32(invoke(c, &b)))
}

// Remove deletes a file on the host. path must be NUL-terminated. A failure is
// reported as a *HostError carrying the host's error code.
func (c *Client) Remove(path string) error {
	p, n := cstring(path, "path")

	b := abi.RemoveBlock{Str: p, Len: n}
	if code := invoke(c, &b); code != 0 {
		return &HostError{Op: b.Op(), Code: code}
	}
	return nil
}

// Rename renames a file on the host. Both paths must be NUL-terminated.
func (c *Client) Rename(oldpath, newpath string) error {
	op, on := cstring(oldpath, "old path")
	np, nn := cstring(newpath, "new path")

	b := abi.RenameBlock{Old: op, OldLen: on, New: np, NewLen: nn}
	if code := invoke(c, &b); code != 0 {
		return &HostError{Op: b.Op(), Code: code}
	}
	return nil
}

// TmpName asks the host for the name of a temporary file. The same id always
// names the same file. buf must hold at least the host's L_tmpnam bytes. The
// returned name keeps its NUL terminator so that it can be passed straight to
// Open or Remove.
func (c *Client) TmpName(buf []byte, id uint8) (string, error) {
	b := abi.TmpNameBlock{Buf: bytesPtr(buf), ID: uintptr(id), Len: uintptr(len(buf))}
	if _, err := c.check(b.Op(), invoke(c, &b)); err != nil {
		return "", err
	}

	i := bytes.IndexByte(buf, 0)
	if i < 0 || !utf8.Valid(buf[:i]) {
		return "", &OpError{Op: b.Op()}
	}
	return string(buf[:i+1]), nil
}

// HeapInfo returns the heap and stack parameters of the running image.
func (c *Client) HeapInfo() (abi.HeapInfo, error) {
	var info abi.HeapInfo

	b := abi.HeapInfoBlock{Info: &info}
	if _, err := c.check(b.Op(), invoke(c, &b)); err != nil {
		return abi.HeapInfo{}, err
	}
	return info, nil
}
