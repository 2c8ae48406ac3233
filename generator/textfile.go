package generator

import (
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
)

// TextFile outputs one binding per line of a text file, skipping empty
// lines and lines starting with '#'.
type TextFile struct {
	SingleVariable

	File string
}

func NewTextFile() *TextFile { return &TextFile{} }

func (g *TextFile) Name() string { return "text-file" }

func (g *TextFile) Description() string {
	return "Outputs one binding per line of the text file, skipping empty and comment lines."
}

func (g *TextFile) Bind(fs *pflag.FlagSet) {
	g.BindVar(fs, "line")
	fs.StringVarP(&g.File, "text_file", "f", "", "the text file with the values to use")
}

func (g *TextFile) Check() error {
	if err := g.CheckVar(); err != nil {
		return err
	}
	if g.File == "" {
		return errors.Validation("no text file provided")
	}
	info, err := os.Stat(g.File)
	if err != nil {
		return errors.Validation("text file does not exist: %s", g.File).WithCause(err)
	}
	if info.IsDir() {
		return errors.Validation("text file points to a directory: %s", g.File)
	}
	return nil
}

func (g *TextFile) Produce() ([]*Binding, error) {
	raw, err := os.ReadFile(g.File)
	if err != nil {
		return nil, errors.Load(g.File, err)
	}
	var result []*Binding
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		result = append(result, NewBinding().Set(g.VarName, line))
	}
	return result, nil
}
