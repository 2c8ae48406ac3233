package filter

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/flow"
)

// Log format variables recognized by log-data.
const (
	LogVarTimestamp = "{TIMESTAMP}"
	LogVarName      = "{NAME}"
)

// LogData records information about the items passing through, either
// to the log or appended to a file, and forwards them unchanged.
type LogData struct {
	flow.Base

	Format       string
	OutputFile   string
	DeleteOnInit bool

	fp *os.File
}

func NewLogData() *LogData {
	return &LogData{Format: LogVarTimestamp + ": " + LogVarName}
}

func (f *LogData) Name() string { return "log-data" }

func (f *LogData) Description() string {
	return "Logs information about the data passing through, either to the log or appended to the specified file."
}

func (f *LogData) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.Format, "log_format", "f", LogVarTimestamp+": "+LogVarName,
		"the format for one entry; supports "+LogVarTimestamp+" and "+LogVarName)
	fs.StringVarP(&f.OutputFile, "output_file", "o", "", "the file to append the entries to; may contain placeholders")
	fs.BoolVarP(&f.DeleteOnInit, "delete_on_init", "d", false, "whether to remove an existing output file when initializing")
}

func (f *LogData) Init(sess *flow.Session) error {
	f.Attach(f.Name(), sess)
	if f.OutputFile == "" {
		return nil
	}
	path := sess.ExpandPlaceholders(f.OutputFile)
	if f.DeleteOnInit {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return errors.Configuration("cannot remove output file: %s", path).WithCause(err)
		}
	}
	fp, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Load(path, err)
	}
	f.fp = fp
	return nil
}

func (f *LogData) Process(data flow.Payload) (flow.Payload, error) {
	for _, item := range data.Items() {
		entry := f.Format
		entry = strings.ReplaceAll(entry, LogVarTimestamp, time.Now().Format(time.RFC3339))
		entry = strings.ReplaceAll(entry, LogVarName, fmt.Sprint(flow.ItemValue(item)))
		if f.fp != nil {
			if _, err := fmt.Fprintln(f.fp, entry); err != nil {
				return flow.Payload{}, errors.Newf(errors.ErrCodeRuntime, "failed to write log entry").WithCause(err)
			}
		} else {
			f.Log.Info(entry)
		}
	}
	return data, nil
}

func (f *LogData) Finalize() error {
	if f.fp != nil {
		err := f.fp.Close()
		f.fp = nil
		return err
	}
	return nil
}
