package filter

import (
	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/flow"
)

// Block drops items whose metadata matches the configured comparison.
// Items without metadata or without the field pass through.
type Block struct {
	flow.Base

	Gate flow.Gate
}

func NewBlock() *Block { return &Block{} }

func (f *Block) Name() string { return "block" }

func (f *Block) Description() string {
	return "Blocks items whose metadata field matches the comparison; everything else passes through."
}

func (f *Block) Bind(fs *pflag.FlagSet) {
	f.Gate.Bind(fs)
}

func (f *Block) Init(sess *flow.Session) error {
	f.Attach(f.Name(), sess)
	return f.Gate.Check()
}

func (f *Block) Process(data flow.Payload) (flow.Payload, error) {
	if !f.Gate.Active() {
		return data, nil
	}
	var kept []any
	for _, item := range data.Items() {
		matched, err := f.Gate.Eval(item, f.Log)
		if err != nil {
			return flow.Payload{}, err
		}
		if matched {
			f.Log.Debug("blocking item")
			continue
		}
		kept = append(kept, item)
	}
	return flow.List(kept).Flatten(), nil
}
