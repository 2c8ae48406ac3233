package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/pipekit/flow"
)

func newPluginsCommand(rootOpts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List the available plugins by kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			kinds := []flow.Kind{flow.KindReader, flow.KindFilter, flow.KindWriter, flow.KindGenerator}
			for i, kind := range kinds {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%ss:\n", kind)
				for _, name := range rootOpts.Registry.Names(kind) {
					plugin, _, ok := rootOpts.Registry.Create(name, kind)
					if !ok {
						continue
					}
					fmt.Fprintf(out, "  %-20s %s\n", name, plugin.Description())
				}
			}
			return nil
		},
	}
}
