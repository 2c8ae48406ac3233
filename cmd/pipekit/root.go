package main

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/pipekit/config"
	"github.com/kbukum/pipekit/filter"
	"github.com/kbukum/pipekit/flow"
	"github.com/kbukum/pipekit/generator"
	"github.com/kbukum/pipekit/logger"
	"github.com/kbukum/pipekit/reader"
	"github.com/kbukum/pipekit/writer"
)

// rootOptions holds global flags and loaded settings shared by all
// subcommands.
type rootOptions struct {
	LogLevel string
	Settings *config.Settings
	Registry *flow.Registry
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "pipekit",
		Short: "Generator-driven pipeline execution",
		Long: `pipekit expands pipeline templates with variable generators and
executes the resulting command lines, either through the built-in
reader/filter/writer plugins or as external processes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}
			if opts.LogLevel != "" {
				settings.Logging.Level = opts.LogLevel
			}
			if err := settings.Validate(); err != nil {
				return err
			}
			logger.Init(settings.Logging)
			opts.Settings = settings
			opts.Registry = builtinRegistry()
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log_level", "", "log level override (trace|debug|info|warn|error)")

	cmd.AddCommand(newExecCommand(opts))
	cmd.AddCommand(newGenerateCommand(opts))
	cmd.AddCommand(newFindCommand(opts))
	cmd.AddCommand(newPluginsCommand(opts))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// builtinRegistry registers all built-in plugins.
func builtinRegistry() *flow.Registry {
	reg := flow.NewRegistry()
	reader.Register(reg)
	filter.Register(reg)
	writer.Register(reg)
	generator.Register(reg)
	return reg
}
