package writer

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/flow"
)

// Console prints the data to stdout.
type Console struct {
	flow.Base

	Prefix string

	// Out defaults to stdout.
	Out io.Writer
}

func NewConsole() *Console { return &Console{} }

func (w *Console) Name() string { return "console" }

func (w *Console) Description() string {
	return "Just prints the data to stdout."
}

func (w *Console) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&w.Prefix, "prefix", "p", "", "the prefix to print before each item")
}

func (w *Console) Init(sess *flow.Session) error {
	w.Attach(w.Name(), sess)
	return nil
}

func (w *Console) Write(data flow.Payload) error {
	out := w.Out
	if out == nil {
		out = os.Stdout
	}
	for _, item := range data.Items() {
		if _, err := fmt.Fprintf(out, "%s%v\n", w.Prefix, flow.ItemValue(item)); err != nil {
			return err
		}
	}
	return nil
}
