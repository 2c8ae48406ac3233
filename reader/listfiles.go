package reader

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/flow"
	"github.com/kbukum/pipekit/logger"
)

// ListFiles forwards the files of a directory, either one by one or as
// a single list.
type ListFiles struct {
	flow.Base

	InputDir string
	Regexp   string
	AsList   bool

	pattern  *regexp.Regexp
	finished bool
}

func NewListFiles() *ListFiles {
	return &ListFiles{Regexp: ".*"}
}

func (r *ListFiles) Name() string { return "list-files" }

func (r *ListFiles) Description() string {
	return "Lists files in the specified directory and forwards them."
}

func (r *ListFiles) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&r.InputDir, "input_dir", "i", "", "the directory to list the files in; may contain placeholders")
	fs.StringVarP(&r.Regexp, "regexp", "r", ".*", "the regular expression that the files must match")
	fs.BoolVar(&r.AsList, "as_list", false, "whether to forward the files as a list or one by one")
}

func (r *ListFiles) Init(sess *flow.Session) error {
	r.Attach(r.Name(), sess)
	r.finished = false
	if r.InputDir == "" {
		return errors.Configuration("no input directory provided")
	}
	pattern, err := regexp.Compile(r.Regexp)
	if err != nil {
		return errors.Configuration("invalid pattern %q", r.Regexp).WithCause(err)
	}
	r.pattern = pattern
	return nil
}

func (r *ListFiles) Read(emit func(flow.Payload) error) error {
	r.finished = true
	dir := r.Session.ExpandPlaceholders(r.InputDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Load(dir, err)
	}
	var files []any
	for _, entry := range entries {
		if entry.IsDir() || !r.pattern.MatchString(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Slice(files, func(i, j int) bool { return files[i].(string) < files[j].(string) })
	r.Log.Info("listed files", logger.Fields("dir", dir, "count", len(files)))

	if r.AsList {
		return emit(flow.List(files))
	}
	for _, file := range files {
		if err := emit(flow.Item(file)); err != nil {
			return err
		}
	}
	return nil
}

func (r *ListFiles) Finished() bool { return r.finished }
