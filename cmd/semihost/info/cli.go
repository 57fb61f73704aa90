package info

import (
	"github.com/spf13/cobra"

	"github.com/pgavlin/semihost/cmd/semihost/env"
)

func Command(e *env.Env) *cobra.Command {
	var csv bool

	command := &cobra.Command{
		Use:   "info",
		Short: "Describe the host",
		Long:  "Query the host for heap parameters, clocks, and supported extensions.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := probe(e.Client)
			if csv {
				return writeCSV(e.Out, rows)
			}
			return writeTable(e.Out, rows)
		},
	}

	command.Flags().BoolVar(&csv, "csv", false, "print the results in CSV format")

	return command
}
