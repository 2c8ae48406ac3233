package reader

import (
	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/flow"
)

// FromStorage forwards an object previously saved in session storage.
type FromStorage struct {
	flow.Base

	StorageName string

	finished bool
}

func NewFromStorage() *FromStorage { return &FromStorage{} }

func (r *FromStorage) Name() string { return "from-storage" }

func (r *FromStorage) Description() string {
	return "Retrieves the specified object from session storage and forwards it."
}

func (r *FromStorage) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&r.StorageName, "storage_name", "s", "", "the name of the object to retrieve from session storage")
}

func (r *FromStorage) Init(sess *flow.Session) error {
	r.Attach(r.Name(), sess)
	r.finished = false
	if r.StorageName == "" {
		return errors.Configuration("no storage name provided")
	}
	return nil
}

func (r *FromStorage) Read(emit func(flow.Payload) error) error {
	r.finished = true
	value, ok := r.Session.Storage.Get(r.StorageName)
	if !ok {
		return errors.Configuration("nothing stored under: %s", r.StorageName)
	}
	return emit(flow.Item(value))
}

func (r *FromStorage) Finished() bool { return r.finished }
