package filter

import (
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/flow"
)

// Recognized value interpretations for set-metadata.
const (
	MetadataTypeString  = "string"
	MetadataTypeBool    = "bool"
	MetadataTypeNumeric = "numeric"
)

// SetMetadata stores a field/value pair in the metadata of every item
// passing through. Items without metadata support are left alone.
type SetMetadata struct {
	flow.Base

	Field  string
	Value  string
	AsType string

	typed any
}

func NewSetMetadata() *SetMetadata {
	return &SetMetadata{AsType: MetadataTypeString}
}

func (f *SetMetadata) Name() string { return "set-metadata" }

func (f *SetMetadata) Description() string {
	return "Sets the specified field in the metadata of the items passing through."
}

func (f *SetMetadata) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.Field, "field", "f", "", "the metadata field to set")
	fs.StringVarP(&f.Value, "value", "v", "", "the value to set")
	fs.StringVarP(&f.AsType, "as_type", "t", MetadataTypeString, "how to interpret the value: string, bool or numeric")
}

func (f *SetMetadata) Init(sess *flow.Session) error {
	f.Attach(f.Name(), sess)
	if f.Field == "" {
		return errors.Configuration("no metadata field provided")
	}
	if f.Value == "" {
		return errors.Configuration("no value provided")
	}
	switch f.AsType {
	case MetadataTypeString:
		f.typed = f.Value
	case MetadataTypeBool:
		f.typed = strings.EqualFold(f.Value, "true")
	case MetadataTypeNumeric:
		n, err := strconv.ParseFloat(f.Value, 64)
		if err != nil {
			return errors.Configuration("value %q is not numeric", f.Value).WithCause(err)
		}
		f.typed = n
	default:
		return errors.Configuration("unhandled metadata type: %s", f.AsType)
	}
	return nil
}

func (f *SetMetadata) Process(data flow.Payload) (flow.Payload, error) {
	for _, item := range data.Items() {
		mh, ok := item.(flow.MetadataHandler)
		if !ok {
			f.Log.Debug("item carries no metadata, ignoring")
			continue
		}
		mh.Metadata()[f.Field] = f.typed
	}
	return data, nil
}
