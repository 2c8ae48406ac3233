package process

import (
	"context"
	"io"
	"time"
)

// EntryPointConfig configures an entry point built on subprocess
// execution.
type EntryPointConfig struct {
	// Dir is the working directory for each invocation.
	Dir string
	// GracePeriod is how long to wait after SIGTERM before SIGKILL.
	GracePeriod time.Duration
	// Timeout bounds each invocation. Zero means no timeout.
	Timeout time.Duration
	// Stdout receives the captured standard output. May be nil.
	Stdout io.Writer
	// Stderr receives the captured standard error. May be nil.
	Stderr io.Writer
}

// EntryPoint returns a dispatch function that runs its argument list
// as a subprocess: the first token is the binary, the rest its
// arguments. Stopping the context terminates the child.
func EntryPoint(ctx context.Context, cfg EntryPointConfig) func(args []string) error {
	return func(args []string) error {
		runCtx := ctx
		if cfg.Timeout > 0 {
			var cancel context.CancelFunc
			runCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
			defer cancel()
		}
		cmd := Command{
			Dir:         cfg.Dir,
			GracePeriod: cfg.GracePeriod,
		}
		if len(args) > 0 {
			cmd.Binary = args[0]
			cmd.Args = args[1:]
		}
		result, err := Run(runCtx, cmd)
		if result != nil {
			if cfg.Stdout != nil && len(result.Stdout) > 0 {
				_, _ = cfg.Stdout.Write(result.Stdout)
			}
			if cfg.Stderr != nil && len(result.Stderr) > 0 {
				_, _ = cfg.Stderr.Write(result.Stderr)
			}
		}
		return err
	}
}
