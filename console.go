package semihost

import "github.com/pgavlin/semihost/abi"

// Console is the debugger's console. Output is unbuffered: every Write issues
// one SYS_WRITE0 per 255 bytes.
type Console struct {
	c *Client
}

// Console returns the debugger's console.
func (c *Client) Console() *Console {
	return &Console{c: c}
}

// Write implements io.Writer. Because SYS_WRITE0 takes a NUL-terminated
// string, p is copied into NUL-terminated chunks and a multi-byte character
// may be split across two chunks. NUL bytes in p cannot be sent: they are
// counted as written but never reach the host. Every other byte does.
func (con *Console) Write(p []byte) (int, error) {
	writeChunks(con.c, p)
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (con *Console) WriteString(s string) (int, error) {
	writeChunks(con.c, s)
	return len(s), nil
}

func writeChunks[S string | []byte](c *Client, s S) {
	var chunk abi.ConsoleChunk
	m := 0
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			continue
		}
		chunk[m] = s[i]
		if m++; m == abi.ConsoleChunkData {
			chunk[m] = 0
			invoke(c, &chunk)
			m = 0
		}
	}
	if m != 0 {
		chunk[m] = 0
		invoke(c, &chunk)
	}
}

// WriteByte implements io.ByteWriter with a single SYS_WRITEC.
func (con *Console) WriteByte(c byte) error {
	b := abi.CharBlock{C: c}
	invoke(con.c, &b)
	return nil
}

// ReadByte implements io.ByteReader. It blocks until the host supplies a byte.
func (con *Console) ReadByte() (byte, error) {
	return byte(invoke(con.c, &abi.ReadCBlock{})), nil
}
