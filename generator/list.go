package generator

import (
	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
)

// List outputs one binding per supplied value.
type List struct {
	SingleVariable

	Values []string
}

func NewList() *List { return &List{} }

func (g *List) Name() string { return "list" }

func (g *List) Description() string {
	return "Outputs one binding per supplied value."
}

func (g *List) Bind(fs *pflag.FlagSet) {
	g.BindVar(fs, "v")
	fs.StringSliceVarP(&g.Values, "values", "v", nil, "the values to iterate over")
}

func (g *List) Check() error {
	if err := g.CheckVar(); err != nil {
		return err
	}
	if len(g.Values) == 0 {
		return errors.Validation("no values provided")
	}
	return nil
}

func (g *List) Produce() ([]*Binding, error) {
	result := make([]*Binding, 0, len(g.Values))
	for _, value := range g.Values {
		result = append(result, NewBinding().Set(g.VarName, value))
	}
	return result, nil
}
