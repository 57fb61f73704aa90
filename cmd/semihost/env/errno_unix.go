//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package env

import (
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/pgavlin/semihost"
)

// errnoName names errno using the local errno table, which matches hosts of
// the same family.
func errnoName(errno semihost.Errno) string {
	if errno <= 0 {
		return ""
	}
	return unix.ErrnoName(syscall.Errno(errno))
}
