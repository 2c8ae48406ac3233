package reader

import (
	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/flow"
)

// Start forwards a single empty string, useful for kicking off
// pipelines whose stages generate their own data.
type Start struct {
	flow.Base

	finished bool
}

func NewStart() *Start { return &Start{} }

func (r *Start) Name() string { return "start" }

func (r *Start) Description() string {
	return "Dummy reader, simply forwards an empty string to trigger executions."
}

func (r *Start) Bind(fs *pflag.FlagSet) {}

func (r *Start) Init(sess *flow.Session) error {
	r.Attach(r.Name(), sess)
	r.finished = false
	return nil
}

func (r *Start) Read(emit func(flow.Payload) error) error {
	r.finished = true
	return emit(flow.Item(""))
}

func (r *Start) Finished() bool { return r.finished }
