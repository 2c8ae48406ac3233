package filter

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/flow"
	"github.com/kbukum/pipekit/logger"
)

// SetPlaceholder registers a session placeholder, either with a fixed
// value or with the current item passing through. Values are expanded
// through the existing placeholders first, so placeholders can build on
// each other.
type SetPlaceholder struct {
	flow.Base

	Placeholder string
	Value       string
	UseCurrent  bool
}

func NewSetPlaceholder() *SetPlaceholder { return &SetPlaceholder{} }

func (f *SetPlaceholder) Name() string { return "set-placeholder" }

func (f *SetPlaceholder) Description() string {
	return "Sets the placeholder to the specified value, or to the data passing through, for use in subsequent stages."
}

func (f *SetPlaceholder) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.Placeholder, "placeholder", "p", "", "the name of the placeholder, without curly brackets")
	fs.StringVarP(&f.Value, "value", "v", "", "the value of the placeholder, may contain other placeholders")
	fs.BoolVarP(&f.UseCurrent, "use_current", "u", false, "whether to use the data passing through instead of the specified value")
}

func (f *SetPlaceholder) Init(sess *flow.Session) error {
	f.Attach(f.Name(), sess)
	if f.Placeholder == "" {
		return errors.Configuration("no placeholder name provided")
	}
	if !f.UseCurrent && f.Value == "" {
		return errors.Configuration("no placeholder value provided")
	}
	return nil
}

func (f *SetPlaceholder) Process(data flow.Payload) (flow.Payload, error) {
	value := f.Value
	if f.UseCurrent {
		if single, ok := data.Single(); ok {
			value = fmt.Sprint(flow.ItemValue(single))
		} else {
			value = fmt.Sprint(data.Items())
		}
	}
	value = f.Session.ExpandPlaceholders(value)
	f.Log.Info("setting placeholder", logger.Fields(
		"placeholder", f.Placeholder, "value", value))
	f.Session.Placeholders.Set(f.Placeholder, value)
	return data, nil
}
