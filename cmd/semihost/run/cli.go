package run

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pgavlin/semihost"
	"github.com/pgavlin/semihost/abi"
	"github.com/pgavlin/semihost/cmd/semihost/env"
)

// StatusError reports a host command that exited with a non-zero status.
type StatusError struct {
	Command string
	Status  int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%q exited with status %d", e.Command, e.Status)
}

var _ pflag.Value = (*reason)(nil)

type reason abi.ExitReason

func (r *reason) String() string {
	return abi.ExitReason(*r).String()
}

func (r *reason) Set(s string) error {
	v, err := abi.ParseExitReason(s)
	if err != nil {
		return err
	}
	*r = reason(v)
	return nil
}

func (r *reason) Type() string {
	return "reason"
}

// Commands returns the commands that run host programs or stop execution.
func Commands(e *env.Env) []*cobra.Command {
	return []*cobra.Command{systemCommand(e), exitCommand(e)}
}

func systemCommand(e *env.Env) *cobra.Command {
	command := &cobra.Command{
		Use:   "system [command...]",
		Short: "Run a command on the host",
		Long:  "Run a command in the host's shell. The arguments are joined with spaces.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command := strings.Join(args, " ")
			if status := e.Client.System(semihost.CString(command)); status != 0 {
				return &StatusError{Command: command, Status: status}
			}
			return nil
		},
	}

	// Flags after the first argument belong to the host command.
	command.Flags().SetInterspersed(false)

	return command
}

func exitCommand(e *env.Env) *cobra.Command {
	r := reason(abi.ExitApplication)

	command := &cobra.Command{
		Use:   "exit [code]",
		Short: "Stop execution",
		Long:  "Report to the host that execution has stopped. Does not return.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := 0
			if len(args) == 1 {
				c, err := strconv.Atoi(args[0])
				if err != nil {
					return errors.Wrap(err, "parsing exit code")
				}
				code = c
			}

			// Output written through the host's streams must reach the host
			// before it stops the program.
			if err := e.Close(); err != nil {
				return err
			}
			e.Client.Exit(abi.ExitReason(r), code)
			return nil
		},
	}

	command.Flags().VarP(&r, "reason", "r", "the reason for stopping")

	return command
}
