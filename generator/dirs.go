package generator

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
)

// Dirs outputs one binding per sub-directory of the input directory.
type Dirs struct {
	SingleVariable

	Input    string
	Absolute bool
}

func NewDirs() *Dirs { return &Dirs{} }

func (g *Dirs) Name() string { return "dirs" }

func (g *Dirs) Description() string {
	return "Outputs one binding per sub-directory of the input directory, sorted by name."
}

func (g *Dirs) Bind(fs *pflag.FlagSet) {
	g.BindVar(fs, "dir")
	fs.StringVarP(&g.Input, "input", "i", "", "the directory to list sub-directories of")
	fs.BoolVarP(&g.Absolute, "absolute", "a", false, "whether to output absolute paths")
}

func (g *Dirs) Check() error {
	if err := g.CheckVar(); err != nil {
		return err
	}
	if g.Input == "" {
		return errors.Validation("no input directory provided")
	}
	info, err := os.Stat(g.Input)
	if err != nil {
		return errors.Validation("input directory does not exist: %s", g.Input).WithCause(err)
	}
	if !info.IsDir() {
		return errors.Validation("input is not a directory: %s", g.Input)
	}
	return nil
}

func (g *Dirs) Produce() ([]*Binding, error) {
	entries, err := os.ReadDir(g.Input)
	if err != nil {
		return nil, errors.Load(g.Input, err)
	}
	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(g.Input, entry.Name())
		if g.Absolute {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		dirs = append(dirs, path)
	}
	sort.Strings(dirs)

	result := make([]*Binding, 0, len(dirs))
	for _, dir := range dirs {
		result = append(result, NewBinding().Set(g.VarName, dir))
	}
	return result, nil
}
