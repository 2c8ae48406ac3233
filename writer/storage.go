package writer

import (
	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/flow"
)

// ToStorage stores the incoming object in session storage.
type ToStorage struct {
	flow.Base

	StorageName string
}

func NewToStorage() *ToStorage { return &ToStorage{} }

func (w *ToStorage) Name() string { return "to-storage" }

func (w *ToStorage) Description() string {
	return "Stores the incoming object in session storage under the specified name."
}

func (w *ToStorage) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&w.StorageName, "storage_name", "s", "", "the name to store the object under in session storage")
}

func (w *ToStorage) Init(sess *flow.Session) error {
	w.Attach(w.Name(), sess)
	if w.StorageName == "" {
		return errors.Configuration("no storage name provided")
	}
	return nil
}

func (w *ToStorage) Write(data flow.Payload) error {
	if single, ok := data.Single(); ok {
		w.Session.Storage.Set(w.StorageName, single)
		return nil
	}
	w.Session.Storage.Set(w.StorageName, data.Items())
	return nil
}
