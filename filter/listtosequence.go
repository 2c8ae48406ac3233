package filter

import (
	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/flow"
)

// ListToSequence splats nested lists so downstream stages see the
// individual elements.
type ListToSequence struct {
	flow.Base
}

func NewListToSequence() *ListToSequence { return &ListToSequence{} }

func (f *ListToSequence) Name() string { return "list-to-sequence" }

func (f *ListToSequence) Description() string {
	return "Forwards the individual elements of incoming lists."
}

func (f *ListToSequence) Bind(fs *pflag.FlagSet) {}

func (f *ListToSequence) Init(sess *flow.Session) error {
	f.Attach(f.Name(), sess)
	return nil
}

func (f *ListToSequence) Process(data flow.Payload) (flow.Payload, error) {
	var items []any
	for _, item := range data.Items() {
		if nested, ok := item.([]any); ok {
			items = append(items, nested...)
			continue
		}
		items = append(items, item)
	}
	return flow.List(items), nil
}
