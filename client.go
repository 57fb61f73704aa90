// Package semihost lets a program running under a debugger or emulator use
// the host's console, files and clock through the semihosting interface.
//
// Every method issues at most one synchronous trap into the host (WithFile and
// Extensions issue a fixed sequence of them). A Client is not safe for
// concurrent use: the trap is not reentrant, so callers that share a Client
// between goroutines or interrupt handlers must serialize access themselves.
package semihost

import (
	"unsafe"

	"github.com/davecgh/go-spew/spew"
	hclog "github.com/hashicorp/go-hclog"

	"github.com/pgavlin/semihost/abi"
	"github.com/pgavlin/semihost/log"
	"github.com/pgavlin/semihost/trap"
)

// Options configures a Client.
type Options struct {
	// Transport delivers calls to the host. If nil, the architecture's native
	// trap is used.
	Transport trap.Transport
	// Logger receives a Trace entry per call. If nil, a logger named
	// "semihost" is derived from log.L.
	Logger hclog.Logger
}

// A Client issues semihosting calls through a Transport.
type Client struct {
	transport trap.Transport
	logger    hclog.Logger
}

// New creates a client. It fails only when opts names no transport and the
// current architecture has no native one.
func New(opts *Options) (*Client, error) {
	var transport trap.Transport
	var logger hclog.Logger
	if opts != nil {
		transport, logger = opts.Transport, opts.Logger
	}
	if transport == nil {
		t, err := trap.Native()
		if err != nil {
			return nil, err
		}
		transport = t
	}
	if logger == nil {
		logger = log.L.Named("semihost")
	}
	return &Client{transport: transport, logger: logger}, nil
}

type block[B any] interface {
	*B
	abi.Block
}

// invoke traps with the operation and address of b. Blocks of size zero are
// passed as a nil parameter.
func invoke[B any, P block[B]](c *Client, b P) uintptr {
	var param unsafe.Pointer
	if unsafe.Sizeof(*b) != 0 {
		param = unsafe.Pointer(b)
	}

	op := b.Op()
	ret := c.transport.Call(op, param)

	if c.logger.IsTrace() {
		c.logger.Trace("call", "op", op, "result", ret, "block", spew.Sdump(b))
	}
	return ret
}

// check applies the shared result convention to the result of op.
func (c *Client) check(op abi.Op, raw uintptr) (uintptr, error) {
	v, ok := abi.Check(raw)
	if !ok {
		return 0, &OpError{Op: op}
	}
	return v, nil
}
