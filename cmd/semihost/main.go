package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pgavlin/semihost"
	"github.com/pgavlin/semihost/abi"
	"github.com/pgavlin/semihost/cmd/semihost/env"
	"github.com/pgavlin/semihost/cmd/semihost/files"
	"github.com/pgavlin/semihost/cmd/semihost/info"
	"github.com/pgavlin/semihost/cmd/semihost/run"
	"github.com/pgavlin/semihost/log"
)

var version = "<unknown>"

func configureCLI(e *env.Env) *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "semihost",
		Short:         "semihosting tools",
		Long:          "semihost - access a debugger's host from a program running under semihosting",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.Open()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return e.Close()
		},
	}

	rootCommand.AddCommand(files.Commands(e)...)
	rootCommand.AddCommand(info.Command(e))
	rootCommand.AddCommand(run.Commands(e)...)

	rootCommand.PersistentFlags().BoolVar(&e.Console, "console", false, "write output to the debug console instead of the host's standard streams")
	rootCommand.PersistentFlags().BoolVarP(&e.Verbose, "verbose", "v", false, "log every semihosting call")

	return rootCommand
}

// hostArgs fetches the arguments from the host. Programs loaded by a debugger
// start without an argument vector, not even a program name.
func hostArgs(e *env.Env) ([]string, bool) {
	c, err := semihost.New(&semihost.Options{Logger: log.L.Named("cli")})
	if err != nil {
		return nil, false
	}
	e.Client = c

	var buf [256]byte
	args, err := c.Args(buf[:])
	if err != nil || len(args) == 0 {
		return nil, false
	}
	return args[1:], true
}

func exitCode(err error) int {
	var status *run.StatusError
	if errors.As(err, &status) {
		return status.Status
	}
	return 1
}

func main() {
	e := &env.Env{}
	rootCommand := configureCLI(e)

	if len(os.Args) == 0 {
		if args, ok := hostArgs(e); ok {
			rootCommand.SetArgs(args)
		}
	}

	err := rootCommand.Execute()
	if err == nil {
		return
	}

	var w io.Writer = os.Stderr
	if e.Err != nil {
		w = e.Err
	}
	fmt.Fprintf(w, "%v\n", e.Describe(err))

	code := exitCode(err)
	if e.Client == nil {
		os.Exit(code)
	}
	e.Close()
	e.Client.Exit(abi.ExitApplication, code)
}
