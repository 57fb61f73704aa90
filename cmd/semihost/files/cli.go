package files

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pgavlin/semihost"
	"github.com/pgavlin/semihost/abi"
	"github.com/pgavlin/semihost/cmd/semihost/env"
)

var _ pflag.Value = (*mode)(nil)

// mode is an open mode given in fopen syntax.
type mode abi.OpenMode

func (m *mode) String() string {
	return abi.OpenMode(*m).String()
}

func (m *mode) Set(s string) error {
	v, err := abi.ParseOpenMode(s)
	if err != nil {
		return err
	}
	*m = mode(v)
	return nil
}

func (m *mode) Type() string {
	return "mode"
}

// Commands returns the file commands.
func Commands(e *env.Env) []*cobra.Command {
	return []*cobra.Command{
		catCommand(e),
		cpCommand(e),
		rmCommand(e),
		mvCommand(e),
		tmpnameCommand(e),
	}
}

func catCommand(e *env.Env) *cobra.Command {
	m := mode(abi.ModeReadBinary)

	command := &cobra.Command{
		Use:   "cat [paths...]",
		Short: "Print host files",
		Long:  "Print the contents of files on the host. With no paths, print the host's standard input.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				stdin, err := e.Client.Stdin()
				if err != nil {
					return errors.Wrap(err, "opening standard input")
				}
				defer stdin.Close()

				_, err = io.Copy(e.Out, stdin)
				return err
			}

			for _, path := range args {
				err := e.Client.WithFile(semihost.CString(path), abi.OpenMode(m), func(f *semihost.File) error {
					_, err := io.Copy(e.Out, f)
					return err
				})
				if err != nil {
					return errors.Wrapf(err, "reading %v", path)
				}
			}
			return nil
		},
	}

	command.Flags().VarP(&m, "mode", "m", "the mode used to open each file")

	return command
}

func cpCommand(e *env.Env) *cobra.Command {
	m := mode(abi.ModeWriteBinary)

	command := &cobra.Command{
		Use:   "cp [source] [destination]",
		Short: "Copy a host file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := args[0], args[1]

			return e.Client.WithFile(semihost.CString(src), abi.ModeReadBinary, func(in *semihost.File) error {
				err := e.Client.WithFile(semihost.CString(dst), abi.OpenMode(m), func(out *semihost.File) error {
					_, err := io.Copy(out, in)
					return err
				})
				return errors.Wrapf(err, "copying %v to %v", src, dst)
			})
		},
	}

	command.Flags().VarP(&m, "mode", "m", "the mode used to open the destination")

	return command
}

func rmCommand(e *env.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "rm [paths...]",
		Short: "Remove host files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if err := e.Client.Remove(semihost.CString(path)); err != nil {
					return errors.Wrapf(err, "removing %v", path)
				}
			}
			return nil
		},
	}
}

func mvCommand(e *env.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "mv [old path] [new path]",
		Short: "Rename a host file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := e.Client.Rename(semihost.CString(args[0]), semihost.CString(args[1]))
			return errors.Wrapf(err, "renaming %v to %v", args[0], args[1])
		},
	}
}

func tmpnameCommand(e *env.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "tmpname [id]",
		Short: "Print the name of a host temporary file",
		Long:  "Print the name of the host temporary file identified by id, an integer between 0 and 255.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 0, 8)
			if err != nil {
				return errors.Wrap(err, "parsing id")
			}

			var buf [256]byte
			name, err := e.Client.TmpName(buf[:], uint8(id))
			if err != nil {
				return errors.Wrapf(err, "naming temporary file %d", id)
			}
			_, err = io.WriteString(e.Out, strings.TrimSuffix(name, "\x00")+"\n")
			return err
		},
	}
}
