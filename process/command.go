package process

import (
	"io"
	"time"
)

// Command describes one expanded pipeline command line to execute as a
// subprocess. The binary is resolved via PATH unless given as a path.
type Command struct {
	Binary string
	// Args are passed verbatim, no shell is involved.
	Args []string
	// Dir is the working directory; empty means the current directory.
	Dir string
	// Env entries (key=value) are merged with os.Environ.
	Env []string
	// Stdin provides input to the process. May be nil.
	Stdin io.Reader
	// GracePeriod is how long to wait after SIGTERM before SIGKILL.
	// Defaults to 5 seconds if zero.
	GracePeriod time.Duration
}

// NewCommand builds a Command from a binary and its arguments.
func NewCommand(binary string, args ...string) Command {
	return Command{Binary: binary, Args: args}
}
