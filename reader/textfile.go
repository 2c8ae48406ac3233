package reader

import (
	"bufio"
	"os"

	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/flow"
)

// TextFile forwards a text file line by line.
type TextFile struct {
	flow.Base

	Path string

	sources  []string
	finished bool
}

func NewTextFile() *TextFile { return &TextFile{} }

func (r *TextFile) Name() string { return "from-text-file" }

func (r *TextFile) Description() string {
	return "Reads the specified text file line by line and forwards the data."
}

func (r *TextFile) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&r.Path, "path", "p", "", "the file to load; may contain placeholders")
}

// SetSource injects the files to read, taking precedence over the
// path option.
func (r *TextFile) SetSource(paths []string) { r.sources = paths }

func (r *TextFile) Init(sess *flow.Session) error {
	r.Attach(r.Name(), sess)
	r.finished = false
	if r.Path == "" && len(r.sources) == 0 {
		return errors.Configuration("no input file provided")
	}
	return nil
}

func (r *TextFile) Read(emit func(flow.Payload) error) error {
	r.finished = true
	paths := r.sources
	if len(paths) == 0 {
		paths = []string{r.Path}
	}
	for _, path := range paths {
		if err := r.readFile(r.Session.ExpandPlaceholders(path), emit); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextFile) readFile(path string, emit func(flow.Payload) error) error {
	fp, err := os.Open(path)
	if err != nil {
		return errors.Load(path, err)
	}
	defer fp.Close()

	scanner := bufio.NewScanner(fp)
	for scanner.Scan() {
		if err := emit(flow.Item(scanner.Text())); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Load(path, err)
	}
	return nil
}

func (r *TextFile) Finished() bool { return r.finished }
