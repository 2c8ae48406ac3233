package generator

import (
	"strconv"

	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
)

// Range outputs one binding per integer in [From, To), advancing by
// Step.
type Range struct {
	SingleVariable

	From int
	To   int
	Step int
}

func NewRange() *Range { return &Range{} }

func (g *Range) Name() string { return "range" }

func (g *Range) Description() string {
	return "Outputs one binding per integer in the half-open range [from, to), advancing by step."
}

func (g *Range) Bind(fs *pflag.FlagSet) {
	g.BindVar(fs, "i")
	fs.IntVarP(&g.From, "from", "f", 0, "the first value, inclusive")
	fs.IntVarP(&g.To, "to", "t", 0, "the end value, exclusive")
	fs.IntVarP(&g.Step, "step", "s", 1, "the increment between values")
}

func (g *Range) Check() error {
	if err := g.CheckVar(); err != nil {
		return err
	}
	if g.Step == 0 {
		return errors.Validation("step must not be zero")
	}
	if g.Step > 0 && g.From >= g.To {
		return errors.Validation("from (%d) must be less than to (%d) for a positive step", g.From, g.To)
	}
	if g.Step < 0 && g.From <= g.To {
		return errors.Validation("from (%d) must be greater than to (%d) for a negative step", g.From, g.To)
	}
	return nil
}

func (g *Range) Produce() ([]*Binding, error) {
	var result []*Binding
	if g.Step > 0 {
		for i := g.From; i < g.To; i += g.Step {
			result = append(result, NewBinding().Set(g.VarName, strconv.Itoa(i)))
		}
	} else {
		for i := g.From; i > g.To; i += g.Step {
			result = append(result, NewBinding().Set(g.VarName, strconv.Itoa(i)))
		}
	}
	return result, nil
}
