package main

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/pipekit/find"
	"github.com/kbukum/pipekit/logger"
)

func newFindCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &find.Options{}

	cmd := &cobra.Command{
		Use:   "find -i DIR -o FILE [flags]",
		Short: "Locate files and store their names in a list file",
		Long: `Scan the input directories for files, filter them with regular
expressions and write the full names to the output file, one per
line. With split ratios and names, the result is distributed over
several list files instead.

Example:
  pipekit find -i /data -r -m "\.png$" -o files.txt
  pipekit find -i /data -o files.txt --split_ratios 80 20 --split_names train test`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return find.Run(opts, logger.Get("find"))
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Inputs, "input", "i", nil, "dir(s) to scan for files, repeatable")
	cmd.Flags().BoolVarP(&opts.Recursive, "recursive", "r", false, "scan the directories recursively")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "file to store the located file names in")
	cmd.Flags().StringArrayVarP(&opts.Match, "match", "m", nil, "regexp the full names must match to be included, repeatable")
	cmd.Flags().StringArrayVarP(&opts.NotMatch, "not-match", "n", nil, "regexp that excludes matching full names, repeatable")
	cmd.Flags().IntSliceVar(&opts.SplitRatios, "split_ratios", nil, "split ratios (must sum up to 100)")
	cmd.Flags().StringSliceVar(&opts.SplitNames, "split_names", nil, "split names used as filename suffixes (before the extension)")
	cmd.Flags().StringVar(&opts.SplitNameSeparator, "split_name_separator", "-", "separator between file name and split name")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
