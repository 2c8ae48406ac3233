package writer

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/flow"
	"github.com/kbukum/pipekit/logger"
)

// DeleteFiles deletes the files whose names it receives. Placeholders
// in the names get expanded automatically.
type DeleteFiles struct {
	flow.Base
}

func NewDeleteFiles() *DeleteFiles { return &DeleteFiles{} }

func (w *DeleteFiles) Name() string { return "delete-files" }

func (w *DeleteFiles) Description() string {
	return "Deletes the files associated with the file names it receives. Placeholders in the file names get expanded automatically."
}

func (w *DeleteFiles) Bind(fs *pflag.FlagSet) {}

func (w *DeleteFiles) Init(sess *flow.Session) error {
	w.Attach(w.Name(), sess)
	return nil
}

func (w *DeleteFiles) Write(data flow.Payload) error {
	for _, item := range data.Items() {
		path := w.Session.ExpandPlaceholders(fmt.Sprint(flow.ItemValue(item)))
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				w.Log.Warn("file already gone", logger.Fields("path", path))
				continue
			}
			return errors.Newf(errors.ErrCodeRuntime, "failed to delete %s", path).WithCause(err)
		}
		w.Log.Info("deleted file", logger.Fields("path", path))
	}
	return nil
}
