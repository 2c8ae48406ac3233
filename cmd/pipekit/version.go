package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/pipekit/version"
)

func newVersionCommand() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			if full {
				fmt.Fprintln(cmd.OutOrStdout(), info.Full())
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), info.String())
			}
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "include build date and Go version")

	return cmd
}
