// Package env holds the state shared by the semihost commands.
package env

import (
	"errors"
	"fmt"
	"io"

	hclog "github.com/hashicorp/go-hclog"

	"github.com/pgavlin/semihost"
	"github.com/pgavlin/semihost/log"
	"github.com/pgavlin/semihost/trap"
)

// Env is filled in by the root command before any subcommand runs.
type Env struct {
	// Transport overrides the native trap. Tests set it to a semihosttest.Host.
	Transport trap.Transport

	Client *semihost.Client
	// Out and Err receive command output: the host's standard streams, or the
	// debug console when Console is set.
	Out, Err io.Writer

	Console bool
	Verbose bool

	closers []*semihost.File
}

// Open connects to the host and sets up the output streams.
func (e *Env) Open() error {
	if e.Verbose {
		log.L.SetLevel(hclog.Trace)
	}

	if e.Client == nil {
		c, err := semihost.New(&semihost.Options{Transport: e.Transport, Logger: log.L.Named("cli")})
		if err != nil {
			return err
		}
		e.Client = c
	}

	if e.Console {
		con := e.Client.Console()
		e.Out, e.Err = con, con
		return nil
	}

	stdout, err := e.Client.Stdout()
	if err != nil {
		return fmt.Errorf("opening standard output: %w", err)
	}
	stderr, err := e.Client.Stderr()
	if err != nil {
		stdout.Close()
		return fmt.Errorf("opening standard error: %w", err)
	}
	e.Out, e.Err = stdout, stderr
	e.closers = append(e.closers, stdout, stderr)
	return nil
}

// Close releases the streams opened by Open.
func (e *Env) Close() error {
	var errs []error
	for _, f := range e.closers {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	e.closers = nil
	return errors.Join(errs...)
}

// Describe formats err for the user. Failed calls are annotated with the
// host's errno.
func (e *Env) Describe(err error) string {
	if e.Client == nil || !errors.Is(err, semihost.ErrFailed) {
		return err.Error()
	}

	errno := e.Client.Errno()
	if name := errnoName(errno); name != "" {
		return fmt.Sprintf("%v (%v: %v)", err, name, errno)
	}
	return fmt.Sprintf("%v (%v)", err, errno)
}
