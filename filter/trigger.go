package filter

import (
	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/flow"
)

// Trigger runs a complete nested pipeline whenever data passes through.
// The outer item is forwarded unchanged regardless of what the inner
// pipeline produces. With a gate configured, the trigger turns into a
// conditional execution, but only for single items; batches always
// trigger.
type Trigger struct {
	flow.Base

	SubFlow string
	Gate    flow.Gate

	registry *flow.Registry
	sub      *flow.SubFlow
}

// NewTrigger returns a trigger resolving sub-flow plugins against reg.
func NewTrigger(reg *flow.Registry) *Trigger {
	return &Trigger{registry: reg}
}

func (f *Trigger) Name() string { return "trigger" }

func (f *Trigger) Description() string {
	return "Runs the sub-flow with its reader/filter(s)/writer whenever data is passing through. " +
		"A metadata field comparison turns this into a conditional execution for single items; " +
		"batches always trigger."
}

func (f *Trigger) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.SubFlow, "sub_flow", "f", "", "the command-line defining the sub-flow (reader/filter(s)/writer)")
	f.Gate.Bind(fs)
}

func (f *Trigger) Init(sess *flow.Session) error {
	f.Attach(f.Name(), sess)
	if err := f.Gate.Check(); err != nil {
		return err
	}
	tokens, err := flow.SplitCmdline(f.SubFlow)
	if err != nil {
		return err
	}
	sub, err := flow.Assemble(tokens, f.registry)
	if err != nil {
		return err
	}
	if sub.Reader == nil {
		return errors.Configuration("no reader defined in sub-flow")
	}
	// members are initialized and finalized by every nested run, so
	// the reader starts fresh each time the trigger fires
	f.sub = sub
	return nil
}

func (f *Trigger) Process(data flow.Payload) (flow.Payload, error) {
	if single, ok := data.Single(); ok {
		pass, err := f.Gate.Eval(single, f.Log)
		if err != nil {
			return flow.Payload{}, err
		}
		if !pass {
			return data, nil
		}
	}
	if err := flow.Execute(f.sub.Reader, f.sub.Filter, f.sub.Writer, f.Session); err != nil {
		return flow.Payload{}, err
	}
	return data, nil
}
