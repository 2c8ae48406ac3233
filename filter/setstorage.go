package filter

import (
	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/flow"
)

// SetStorage saves the data passing through in the session storage and
// forwards it unchanged.
type SetStorage struct {
	flow.Base

	StorageName string
}

func NewSetStorage() *SetStorage { return &SetStorage{} }

func (f *SetStorage) Name() string { return "set-storage" }

func (f *SetStorage) Description() string {
	return "Stores the objects passing through in session storage under the specified name."
}

func (f *SetStorage) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.StorageName, "storage_name", "s", "", "the name to store the data under in session storage")
}

func (f *SetStorage) Init(sess *flow.Session) error {
	f.Attach(f.Name(), sess)
	if f.StorageName == "" {
		return errors.Configuration("no storage name provided")
	}
	return nil
}

func (f *SetStorage) Process(data flow.Payload) (flow.Payload, error) {
	if single, ok := data.Single(); ok {
		f.Session.Storage.Set(f.StorageName, single)
	} else {
		f.Session.Storage.Set(f.StorageName, data.Items())
	}
	return data, nil
}
