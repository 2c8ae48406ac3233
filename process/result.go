package process

import "time"

// Result holds the captured output and status of a finished command.
type Result struct {
	Stdout []byte
	Stderr []byte
	// ExitCode is -1 when the process was killed or never started.
	ExitCode int
	Duration time.Duration
}

// Success reports whether the command exited with code zero.
func (r *Result) Success() bool { return r.ExitCode == 0 }
