package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/exec"
	"github.com/kbukum/pipekit/flow"
	"github.com/kbukum/pipekit/placeholder"
	"github.com/kbukum/pipekit/process"
)

// execOptions holds flags for the exec command.
type execOptions struct {
	*rootOptions
	Generators   []string
	DryRun       bool
	Prefix       string
	Placeholders string
	Format       string
	Program      string
	External     bool
}

func newExecCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &execOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "exec -g GENERATOR [flags] -- TEMPLATE...",
		Short: "Expand a pipeline template and execute it per binding",
		Long: `Expand the pipeline template once per variable binding produced by
the generator(s) and execute each expanded command line.

By default the expanded line is run through the built-in plugins.
With --external the line runs as a child process instead, and with
--exec_dry_run it is only printed.

Example:
  pipekit exec -g "dirs -i /data" -- list-files -i "{dir}" console
  pipekit exec -g "range -f 1 -t 4" -n -P convert -- -i "in{i}.png" "out{i}.jpg"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Program == "" {
				opts.Program = cmd.Root().Name()
			}
			return runExec(cmd.Context(), opts, args, cmd.OutOrStdout())
		},
	}

	// Template tokens carry their own flags, so parsing stops at the
	// first non-flag argument.
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().StringArrayVarP(&opts.Generators, "exec_generator", "g", nil, "generator command line, repeatable; bindings compose into a Cartesian product")
	cmd.Flags().BoolVarP(&opts.DryRun, "exec_dry_run", "n", false, "only print the expanded command lines")
	cmd.Flags().StringVarP(&opts.Prefix, "exec_prefix", "P", "", "string to prefix the expanded line with in dry-run output")
	cmd.Flags().StringVar(&opts.Placeholders, "exec_placeholders", "", "key=value file with custom placeholders")
	cmd.Flags().StringVar(&opts.Format, "exec_format", "", "pipeline template format (cmdline|file)")
	cmd.Flags().StringVar(&opts.Program, "exec_program", "", "program name stripped from the template's first token, so a full invocation can be pasted; defaults to the binary name")
	cmd.Flags().BoolVarP(&opts.External, "external", "x", false, "run each expanded line as a child process instead of the built-in plugins")
	_ = cmd.MarkFlagRequired("exec_generator")

	return cmd
}

func runExec(parent context.Context, opts *execOptions, template []string, out io.Writer) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	format := opts.Settings.Exec.Format
	if opts.Format != "" {
		format = opts.Format
	}
	parsedFormat, err := flow.ParsePipelineFormat(format)
	if err != nil {
		return err
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = opts.Settings.Exec.Prefix
	}
	placeholders := opts.Placeholders
	if placeholders == "" {
		placeholders = opts.Settings.Exec.Placeholders
	}

	table := placeholder.NewTable()
	var entry exec.EntryPoint
	if opts.External {
		entry = process.EntryPoint(ctx, process.EntryPointConfig{
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		})
	} else {
		entry = pipelineEntryPoint(ctx, opts.Registry, table)
	}

	driver := exec.NewDriver(opts.Registry, entry)
	driver.Placeholders = table
	driver.Out = out
	return driver.Run(&exec.Options{
		Generators:   opts.Generators,
		Template:     template,
		Format:       parsedFormat,
		DryRun:       opts.DryRun,
		Prefix:       prefix,
		Placeholders: placeholders,
		Program:      opts.Program,
	})
}

// pipelineEntryPoint assembles each expanded command line into a
// reader/filter/writer pipeline and runs it with a fresh session
// sharing the driver's placeholder table. Canceling the context stops
// the session.
func pipelineEntryPoint(ctx context.Context, reg *flow.Registry, table *placeholder.Table) exec.EntryPoint {
	return func(args []string) error {
		sub, err := flow.Assemble(args, reg)
		if err != nil {
			return err
		}
		if sub.Reader == nil {
			return errors.Configuration("pipeline requires a reader")
		}
		sess := flow.NewSession()
		sess.Placeholders = table
		done := make(chan struct{})
		defer close(done)
		go func() {
			select {
			case <-ctx.Done():
				sess.Stop()
			case <-done:
			}
		}()
		return flow.Execute(sub.Reader, sub.Filter, sub.Writer, sess)
	}
}
