//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package env

import "github.com/pgavlin/semihost"

func errnoName(errno semihost.Errno) string {
	return ""
}
