package semihosttest

import (
	"fmt"
	"unsafe"

	"github.com/willf/bitset"

	"github.com/pgavlin/semihost/abi"
)

const maxHandles = 64

type stream int

const (
	streamNone stream = iota
	streamStdin
	streamStdout
	streamStderr
)

type memFile struct {
	data []byte
}

type openFile struct {
	name   string
	f      *memFile
	stream stream
	mode   abi.OpenMode
	pos    int
}

func (f *openFile) readable() bool {
	switch f.mode {
	case abi.ModeWrite, abi.ModeWriteBinary, abi.ModeAppend, abi.ModeAppendBinary:
		return false
	}
	return f.stream != streamStdout && f.stream != streamStderr
}

func (f *openFile) writable() bool {
	switch f.mode {
	case abi.ModeRead, abi.ModeReadBinary:
		return false
	}
	return f.stream != streamStdin
}

func (f *openFile) appending() bool {
	return f.mode >= abi.ModeAppend
}

// handleTable maps handles to open files. Handle 0 is never allocated.
type handleTable struct {
	files  [maxHandles]openFile
	bitmap bitset.BitSet
}

func (t *handleTable) allocate() (abi.Handle, *openFile, bool) {
	for i := uint(1); i < maxHandles; i++ {
		if !t.bitmap.Test(i) {
			t.bitmap.Set(i)
			t.files[i] = openFile{}
			return abi.Handle(i), &t.files[i], true
		}
	}
	return 0, nil, false
}

func (t *handleTable) get(h abi.Handle) (*openFile, bool) {
	if h == 0 || h >= maxHandles || !t.bitmap.Test(uint(h)) {
		return nil, false
	}
	return &t.files[h], true
}

func (t *handleTable) release(h abi.Handle) {
	t.files[h] = openFile{}
	t.bitmap.Clear(uint(h))
}

func (t *handleTable) count() int {
	return int(t.bitmap.Count())
}

func (h *Host) open(c *Call, param unsafe.Pointer) uintptr {
	b := (*abi.OpenBlock)(param)
	path, ok := cstring(b.Path, b.Len)
	if !ok || b.Mode > abi.ModeAppendReadBinary {
		return h.fail(EINVAL)
	}
	c.Path, c.Mode = path, b.Mode

	var f *memFile
	s := streamNone
	switch path {
	case ":tt":
		switch {
		case b.Mode >= abi.ModeAppend:
			s = streamStderr
		case b.Mode >= abi.ModeWrite:
			s = streamStdout
		default:
			s = streamStdin
		}
	case ":semihosting-features":
		if h.Features == nil || b.Mode != abi.ModeReadBinary && b.Mode != abi.ModeRead {
			return h.fail(ENOENT)
		}
		f = &memFile{data: h.Features}
	default:
		existing, exists := h.files[path]
		switch {
		case b.Mode <= abi.ModeReadWriteBinary:
			if !exists {
				return h.fail(ENOENT)
			}
			f = existing
		case b.Mode <= abi.ModeWriteReadBinary:
			f = &memFile{}
			h.files[path] = f
		default:
			if !exists {
				existing = &memFile{}
				h.files[path] = existing
			}
			f = existing
		}
	}

	handle, of, ok := h.handles.allocate()
	if !ok {
		return h.fail(EACCES)
	}
	*of = openFile{name: path, f: f, stream: s, mode: b.Mode}
	if of.appending() && f != nil {
		of.pos = len(f.data)
	}

	c.Handle = handle
	return uintptr(handle)
}

func (h *Host) close(c *Call, param unsafe.Pointer) uintptr {
	b := (*abi.CloseBlock)(param)
	c.Handle = b.Handle
	if _, ok := h.handles.get(b.Handle); !ok {
		return h.fail(EBADF)
	}
	h.handles.release(b.Handle)
	return 0
}

func (h *Host) read(c *Call, param unsafe.Pointer) uintptr {
	b := (*abi.ReadBlock)(param)
	c.Handle = b.Handle

	f, ok := h.handles.get(b.Handle)
	if !ok || !f.readable() {
		h.Errno = EBADF
		return b.Len
	}

	buf := buffer(b.Buf, b.Len)

	var n int
	if f.stream == streamStdin {
		n = copy(buf, h.Stdin)
		h.Stdin = h.Stdin[n:]
	} else {
		if f.pos < len(f.f.data) {
			n = copy(buf, f.f.data[f.pos:])
		}
		f.pos += n
	}

	c.Data = append([]byte(nil), buf[:n]...)
	return b.Len - uintptr(n)
}

func (h *Host) write(c *Call, param unsafe.Pointer) uintptr {
	b := (*abi.WriteBlock)(param)
	c.Handle = b.Handle

	f, ok := h.handles.get(b.Handle)
	if !ok || !f.writable() {
		h.Errno = EBADF
		return b.Len
	}

	data := buffer(b.Buf, b.Len)
	c.Data = append([]byte(nil), data...)

	switch f.stream {
	case streamStdout:
		h.Stdout.Write(data)
	case streamStderr:
		h.Stderr.Write(data)
	default:
		if f.appending() {
			f.pos = len(f.f.data)
		}
		if end := f.pos + len(data); end > len(f.f.data) {
			f.f.data = append(f.f.data, make([]byte, end-len(f.f.data))...)
		}
		f.pos += copy(f.f.data[f.pos:], data)
	}
	return 0
}

func (h *Host) seek(c *Call, param unsafe.Pointer) uintptr {
	b := (*abi.SeekBlock)(param)
	c.Handle = b.Handle

	f, ok := h.handles.get(b.Handle)
	if !ok || f.f == nil {
		return h.fail(EBADF)
	}
	if b.Pos > uintptr(len(f.f.data)) {
		return h.fail(EINVAL)
	}
	f.pos = int(b.Pos)
	return 0
}

func (h *Host) flen(c *Call, param unsafe.Pointer) uintptr {
	b := (*abi.FlenBlock)(param)
	c.Handle = b.Handle

	f, ok := h.handles.get(b.Handle)
	if !ok || f.f == nil {
		return h.fail(EBADF)
	}
	return uintptr(len(f.f.data))
}

func (h *Host) istty(c *Call, param unsafe.Pointer) uintptr {
	b := (*abi.IsTTYBlock)(param)
	c.Handle = b.Handle

	f, ok := h.handles.get(b.Handle)
	if !ok {
		return h.fail(EBADF)
	}
	if f.stream != streamNone {
		return 1
	}
	return 0
}

func (h *Host) tmpnam(c *Call, param unsafe.Pointer) uintptr {
	b := (*abi.TmpNameBlock)(param)

	name := fmt.Sprintf("/tmp/semihost-%02x", b.ID)
	if uintptr(len(name)) >= b.Len {
		return h.fail(EINVAL)
	}

	buf := buffer(b.Buf, b.Len)
	n := copy(buf, name)
	buf[n] = 0
	c.Path = name
	return 0
}

func (h *Host) remove(c *Call, param unsafe.Pointer) uintptr {
	b := (*abi.RemoveBlock)(param)
	path, ok := cstring(b.Str, b.Len)
	if !ok {
		h.Errno = EINVAL
		return EINVAL
	}
	c.Path = path

	if _, ok := h.files[path]; !ok {
		h.Errno = ENOENT
		return ENOENT
	}
	delete(h.files, path)
	return 0
}

func (h *Host) rename(c *Call, param unsafe.Pointer) uintptr {
	b := (*abi.RenameBlock)(param)
	oldpath, ok1 := cstring(b.Old, b.OldLen)
	newpath, ok2 := cstring(b.New, b.NewLen)
	if !ok1 || !ok2 {
		h.Errno = EINVAL
		return EINVAL
	}
	c.Path = oldpath + " -> " + newpath

	f, ok := h.files[oldpath]
	if !ok {
		h.Errno = ENOENT
		return ENOENT
	}
	delete(h.files, oldpath)
	h.files[newpath] = f
	return 0
}
