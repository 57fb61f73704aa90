// Package log holds the logger shared by the semihost packages.
package log

import (
	"os"

	hclog "github.com/hashicorp/go-hclog"
)

// L is the root logger. It logs at Info unless TRACE is set in the
// environment.
var L hclog.Logger

func init() {
	L = hclog.New(&hclog.LoggerOptions{
		Name:  "semihost",
		Level: hclog.Info,
	})

	EnableTrace()
}

// EnableTrace raises L to Trace if TRACE is set in the environment.
func EnableTrace() {
	if str := os.Getenv("TRACE"); str != "" {
		L.SetLevel(hclog.Trace)
	}
}
