package semihost

import (
	"errors"
	"fmt"
	"io"

	"github.com/pgavlin/semihost/abi"
)

var errWhence = errors.New("semihost: seek supports only io.SeekStart")
var errOffset = errors.New("semihost: negative seek offset")

// File is an open file on the host. It owns its handle until Close, after
// which every method returns ErrClosed without contacting the host.
//
// Files are not closed by finalizers; use Close or Client.WithFile.
type File struct {
	c *Client
	h abi.Handle
}

// Open opens a file on the host. path is relative to the host's working
// directory or absolute, and must end with a NUL byte (see CString).
func (c *Client) Open(path string, mode abi.OpenMode) (*File, error) {
	p, n := cstring(path, "path")

	b := abi.OpenBlock{Path: p, Mode: mode, Len: n}
	h, err := c.check(b.Op(), invoke(c, &b))
	if err != nil {
		return nil, err
	}
	if h == 0 {
		// An open handle is never zero.
		return nil, &OpError{Op: b.Op()}
	}

	c.logger.Debug("opened file", "path", path[:n], "mode", mode, "handle", h)
	return &File{c: c, h: abi.Handle(h)}, nil
}

// WithFile opens path, calls fn with the open file, and closes the file when
// fn returns or panics. If fn closes the file itself, WithFile does not close
// it again. A failure to close the file is fatal: WithFile panics with an
// error wrapping FaultCloseFailed.
func (c *Client) WithFile(path string, mode abi.OpenMode, fn func(f *File) error) error {
	f, err := c.Open(path, mode)
	if err != nil {
		return err
	}
	defer f.mustClose()

	return fn(f)
}

// Stdin opens the host's standard input.
func (c *Client) Stdin() (*File, error) {
	return c.Open(abi.StdioPath, abi.ModeReadBinary)
}

// Stdout opens the host's standard output.
func (c *Client) Stdout() (*File, error) {
	return c.Open(abi.StdioPath, abi.ModeWriteBinary)
}

// Stderr opens the host's standard error. Hosts without the stdout/stderr
// extension may treat it as standard output.
func (c *Client) Stderr() (*File, error) {
	return c.Open(abi.StdioPath, abi.ModeAppendBinary)
}

// Handle returns the host handle, or 0 once the file is closed.
func (f *File) Handle() abi.Handle {
	return f.h
}

func (f *File) String() string {
	return fmt.Sprintf("File{handle: %d}", f.h)
}

// ReadRaw reads into p at the current file position with a single call and
// returns the number of bytes that were not read: 0 when p was filled, len(p)
// at end of file.
func (f *File) ReadRaw(p []byte) (int, error) {
	if f.h == 0 {
		return len(p), ErrClosed
	}

	b := abi.ReadBlock{Handle: f.h, Buf: bytesPtr(p), Len: uintptr(len(p))}
	rem := invoke(f.c, &b)
	if rem > uintptr(len(p)) {
		return len(p), &OpError{Op: b.Op()}
	}
	return int(rem), nil
}

// WriteRaw writes p at the current file position with a single call and
// returns the number of bytes that were not written.
func (f *File) WriteRaw(p []byte) (int, error) {
	if f.h == 0 {
		return len(p), ErrClosed
	}

	b := abi.WriteBlock{Handle: f.h, Buf: bytesPtr(p), Len: uintptr(len(p))}
	rem := invoke(f.c, &b)
	if rem > uintptr(len(p)) {
		return len(p), &OpError{Op: b.Op()}
	}
	return int(rem), nil
}

// Read implements io.Reader. It returns io.EOF when the host transfers nothing.
func (f *File) Read(p []byte) (int, error) {
	if len(p) == 0 {
		if f.h == 0 {
			return 0, ErrClosed
		}
		return 0, nil
	}

	rem, err := f.ReadRaw(p)
	if err != nil {
		return 0, err
	}
	n := len(p) - rem
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Write implements io.Writer.
func (f *File) Write(p []byte) (int, error) {
	rem, err := f.WriteRaw(p)
	if err != nil {
		return 0, err
	}
	if rem != 0 {
		return len(p) - rem, io.ErrShortWrite
	}
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (f *File) WriteString(s string) (int, error) {
	return f.Write([]byte(s))
}

// Seek implements io.Seeker. The host only supports absolute positioning, so
// whence must be io.SeekStart. Use Client.Errno for the reason of a failure.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	if f.h == 0 {
		return 0, ErrClosed
	}
	if whence != io.SeekStart {
		return 0, errWhence
	}
	if offset < 0 {
		return 0, errOffset
	}

	b := abi.SeekBlock{Handle: f.h, Pos: uintptr(offset)}
	if abi.Negative(invoke(f.c, &b)) {
		return 0, &OpError{Op: b.Op()}
	}
	return offset, nil
}

// Len returns the length of the file.
func (f *File) Len() (int, error) {
	if f.h == 0 {
		return 0, ErrClosed
	}

	b := abi.FlenBlock{Handle: f.h}
	n, err := f.c.check(b.Op(), invoke(f.c, &b))
	return int(n), err
}

// IsEmpty returns true if the file is empty or its length is unavailable.
func (f *File) IsEmpty() bool {
	n, err := f.Len()
	return err != nil || n == 0
}

// IsTTY returns true if the file is connected to an interactive device. Any
// result other than 1, including failure, is reported as false.
func (f *File) IsTTY() bool {
	if f.h == 0 {
		return false
	}

	b := abi.IsTTYBlock{Handle: f.h}
	return invoke(f.c, &b) == 1
}

// Close releases the handle. The handle is given up even if the host reports
// failure, so Close is issued at most once per file.
func (f *File) Close() error {
	if f.h == 0 {
		return ErrClosed
	}

	b := abi.CloseBlock{Handle: f.h}
	f.h = 0

	_, err := f.c.check(b.Op(), invoke(f.c, &b))
	if err == nil {
		f.c.logger.Debug("closed file", "handle", b.Handle)
	}
	return err
}

func (f *File) mustClose() {
	if f.h == 0 {
		return
	}

	h := f.h
	if err := f.Close(); err != nil {
		panic(fmt.Errorf("%w: handle %d", FaultCloseFailed, h))
	}
}
