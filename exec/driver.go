package exec

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/flow"
	"github.com/kbukum/pipekit/generator"
	"github.com/kbukum/pipekit/logger"
	"github.com/kbukum/pipekit/placeholder"
)

// Options configures one pipeline execution run.
type Options struct {
	// Generators holds one generator command line per entry; their
	// bindings compose into a Cartesian product.
	Generators []string

	// Template is the pipeline template token sequence.
	Template []string

	// Format selects how the template is loaded.
	Format flow.PipelineFormat

	// DryRun prints the expanded command lines instead of executing.
	DryRun bool

	// Prefix prepends a string to the first token in dry-run output.
	Prefix string

	// Placeholders is a path to a key=value file with custom
	// placeholders; a missing file is logged and skipped.
	Placeholders string

	// Program is the program name stripped from the template's first
	// token, enabling a full command invocation to be pasted.
	Program string
}

// EntryPoint executes one expanded pipeline command line.
type EntryPoint func(args []string) error

// Hook runs around the execution loop with the parsed options.
type Hook func(opts *Options) error

// Driver expands a pipeline template once per generator binding and
// dispatches the result.
type Driver struct {
	Registry     *flow.Registry
	EntryPoint   EntryPoint
	Placeholders *placeholder.Table

	// PreHook and PostHook run once before and after the loop.
	PreHook  Hook
	PostHook Hook

	// Out receives dry-run output, stdout when nil.
	Out io.Writer

	Log *logger.Logger
}

// NewDriver returns a driver dispatching to entry with the given
// plugin registry.
func NewDriver(reg *flow.Registry, entry EntryPoint) *Driver {
	return &Driver{
		Registry:     reg,
		EntryPoint:   entry,
		Placeholders: placeholder.NewTable(),
		Log:          logger.Get("exec"),
	}
}

// Run performs one full execution: load the template, compose the
// generator bindings, and expand-and-dispatch once per binding.
func (d *Driver) Run(opts *Options) error {
	if len(opts.Generators) == 0 {
		return errors.Configuration("at least one generator is required")
	}

	if d.PreHook != nil {
		if err := d.PreHook(opts); err != nil {
			return err
		}
	}

	if opts.Placeholders != "" {
		if err := d.Placeholders.LoadFile(opts.Placeholders); err != nil {
			d.Log.Error("failed to load placeholders, skipping",
				logger.ErrorFields("load", err))
		}
	}

	format := opts.Format
	if format == "" {
		format = flow.FormatCmdline
	}
	tokens, err := flow.LoadPipeline(opts.Template, format, d.Placeholders.Expand)
	if err != nil {
		return err
	}
	tokens = flow.StripProgram(tokens, opts.Program)

	gens, err := generator.ParseSpecs(opts.Generators, d.Registry)
	if err != nil {
		return err
	}
	bindings, err := generator.Compose(gens)
	if err != nil {
		return err
	}
	d.Log.Info("composed bindings", logger.Fields(
		"generators", len(gens), "bindings", len(bindings)))

	for _, binding := range bindings {
		expanded := ExpandVars(tokens, binding)
		d.Log.Debug("expanded template", logger.Fields(
			"binding", binding.String(),
			"cmdline", flow.JoinCmdline(expanded)))
		if opts.DryRun {
			d.printDryRun(expanded, opts.Prefix)
			continue
		}
		if err := d.EntryPoint(expanded); err != nil {
			return errors.Newf(errors.ErrCodeRuntime, "pipeline execution failed").
				WithDetail("cmdline", flow.JoinCmdline(expanded)).
				WithCause(err)
		}
	}

	if d.PostHook != nil {
		if err := d.PostHook(opts); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) printDryRun(tokens []string, prefix string) {
	out := d.Out
	if out == nil {
		out = os.Stdout
	}
	line := flow.JoinCmdline(tokens)
	if prefix != "" {
		if !strings.HasSuffix(prefix, " ") {
			prefix += " "
		}
		line = prefix + line
	}
	fmt.Fprintln(out, line)
}
