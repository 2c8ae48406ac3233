package generator

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
)

// CSVFile outputs one binding per row of a CSV file, using the column
// headers as variable names.
type CSVFile struct {
	File string
}

func NewCSVFile() *CSVFile { return &CSVFile{} }

func (g *CSVFile) Name() string { return "csv-file" }

func (g *CSVFile) Description() string {
	return "Outputs one binding per row of the CSV file, using the column headers as variable names."
}

func (g *CSVFile) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&g.File, "csv_file", "f", "", "the CSV file to use")
}

func (g *CSVFile) Check() error {
	if g.File == "" {
		return errors.Validation("no CSV file provided")
	}
	info, err := os.Stat(g.File)
	if err != nil {
		return errors.Validation("CSV file does not exist: %s", g.File).WithCause(err)
	}
	if info.IsDir() {
		return errors.Validation("CSV file points to a directory: %s", g.File)
	}
	return nil
}

func (g *CSVFile) Produce() ([]*Binding, error) {
	fp, err := os.Open(g.File)
	if err != nil {
		return nil, errors.Load(g.File, err)
	}
	defer fp.Close()

	reader := csv.NewReader(fp)
	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Load(g.File, err)
	}

	var result []*Binding
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Load(g.File, err)
		}
		binding := NewBinding()
		for i, name := range header {
			if i < len(row) {
				binding.Set(name, row[i])
			}
		}
		result = append(result, binding)
	}
	return result, nil
}
