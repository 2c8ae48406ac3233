package filter

import (
	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/flow"
)

// SubProcess forwards items through a nested filter-only sub-flow. With
// a gate configured, items failing the comparison pass through
// unmodified; the sub-flow is initialized either way so its lifecycle
// stays consistent.
type SubProcess struct {
	flow.Base

	SubFlow string
	Format  string
	Gate    flow.Gate

	registry *flow.Registry
	filter   flow.Filter
}

// NewSubProcess returns a sub-process resolving filters against reg.
func NewSubProcess(reg *flow.Registry) *SubProcess {
	return &SubProcess{registry: reg, Format: string(flow.FormatCmdline)}
}

func (f *SubProcess) Name() string { return "sub-process" }

func (f *SubProcess) Description() string {
	return "Forwards the data passing through to the sub-flow of filter(s). " +
		"A metadata field comparison turns this into conditional processing."
}

func (f *SubProcess) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.SubFlow, "sub_flow", "f", "", "the command-line or file defining the sub-flow of filter(s)")
	fs.StringVar(&f.Format, "sub_flow_format", string(flow.FormatCmdline), "the format of the sub_flow option")
	f.Gate.Bind(fs)
}

func (f *SubProcess) Init(sess *flow.Session) error {
	f.Attach(f.Name(), sess)
	if err := f.Gate.Check(); err != nil {
		return err
	}
	format, err := flow.ParsePipelineFormat(f.Format)
	if err != nil {
		return err
	}
	tokens, err := flow.LoadPipelineString(f.SubFlow, format, sess.ExpandPlaceholders)
	if err != nil {
		return err
	}
	sub, err := flow.Assemble(tokens, f.registry)
	if err != nil {
		return err
	}
	if sub.Reader != nil || sub.Writer != nil {
		return errors.Composition("sub-process accepts only filters, but sub-flow contains a reader or writer")
	}
	if sub.Filter == nil {
		return errors.Composition("no filter defined in sub-flow")
	}
	if err := sub.Filter.Init(sess); err != nil {
		return err
	}
	f.filter = sub.Filter
	return nil
}

func (f *SubProcess) Process(data flow.Payload) (flow.Payload, error) {
	if !f.Gate.Active() {
		return f.filter.Process(data)
	}
	// Gating happens per item, so a batch may end up partially
	// processed: gated-out items pass through unchanged.
	result := make([]any, 0, data.Len())
	for _, item := range data.Items() {
		pass, err := f.Gate.Eval(item, f.Log)
		if err != nil {
			return flow.Payload{}, err
		}
		if !pass {
			result = append(result, item)
			continue
		}
		out, err := f.filter.Process(flow.Item(item))
		if err != nil {
			return flow.Payload{}, err
		}
		result = append(result, out.Items()...)
	}
	if !data.IsList() && len(result) == 1 {
		return flow.Item(result[0]), nil
	}
	return flow.List(result), nil
}

func (f *SubProcess) Finalize() error {
	if f.filter != nil {
		return f.filter.Finalize()
	}
	return nil
}
