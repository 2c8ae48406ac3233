package writer

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/flow"
)

// TextFile stores the incoming data in a text file, one item per line.
type TextFile struct {
	flow.Base

	Path         string
	Append       bool
	DeleteOnInit bool

	fp *os.File
}

func NewTextFile() *TextFile { return &TextFile{} }

func (w *TextFile) Name() string { return "to-text-file" }

func (w *TextFile) Description() string {
	return "Stores the incoming data in the specified text file, one item per line."
}

func (w *TextFile) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&w.Path, "path", "p", "", "the file to write the data to; may contain placeholders")
	fs.BoolVarP(&w.Append, "append", "a", false, "whether to append to the file rather than overwrite it")
	fs.BoolVarP(&w.DeleteOnInit, "delete_on_init", "d", false, "whether to remove an existing file when initializing")
}

func (w *TextFile) Init(sess *flow.Session) error {
	w.Attach(w.Name(), sess)
	if w.Path == "" {
		return errors.Configuration("no output file provided")
	}
	path := sess.ExpandPlaceholders(w.Path)
	if w.DeleteOnInit {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return errors.Configuration("cannot remove output file: %s", path).WithCause(err)
		}
	}
	flags := os.O_CREATE | os.O_WRONLY
	if w.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	fp, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return errors.Load(path, err)
	}
	w.fp = fp
	return nil
}

func (w *TextFile) Write(data flow.Payload) error {
	for _, item := range data.Items() {
		if _, err := fmt.Fprintln(w.fp, flow.ItemValue(item)); err != nil {
			return errors.Newf(errors.ErrCodeRuntime, "failed to write item").WithCause(err)
		}
	}
	return nil
}

func (w *TextFile) Finalize() error {
	if w.fp != nil {
		err := w.fp.Close()
		w.fp = nil
		return err
	}
	return nil
}
