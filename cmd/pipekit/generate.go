package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/pipekit/generator"
)

// generateOptions holds flags for the generate command.
type generateOptions struct {
	*rootOptions
	Generators []string
}

func newGenerateCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &generateOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate -g GENERATOR",
		Short: "Print the variable bindings a generator setup produces",
		Long: `Parse the generator command line(s), compose their bindings and
print one binding per line. Useful for testing a generator setup
before attaching it to a pipeline template.

Example:
  pipekit generate -g "range -f 1 -t 4" -g "list -v a -v b"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gens, err := generator.ParseSpecs(opts.Generators, opts.Registry)
			if err != nil {
				return err
			}
			bindings, err := generator.Compose(gens)
			if err != nil {
				return err
			}
			for _, binding := range bindings {
				fmt.Fprintln(cmd.OutOrStdout(), binding.String())
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Generators, "generator", "g", nil, "generator command line, repeatable")
	_ = cmd.MarkFlagRequired("generator")

	return cmd
}
