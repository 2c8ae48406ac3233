package generator

import (
	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/flow"
)

// Generator is a plugin that validates its configuration and produces
// an ordered sequence of variable bindings.
type Generator interface {
	flow.Plugin

	// Check validates the configuration before production.
	Check() error

	// Produce yields the bindings. Callers go through Generate, which
	// runs Check first.
	Produce() ([]*Binding, error)
}

// Generate runs a generator's full lifecycle: Check, then Produce.
// A failed check surfaces as a validation error and Produce is never
// called.
func Generate(g Generator) ([]*Binding, error) {
	if err := g.Check(); err != nil {
		return nil, errors.Validation("generator %q failed its check", g.Name()).WithCause(err)
	}
	return g.Produce()
}

// SingleVariable is the base for generators that output one variable.
// It carries the variable name option with a per-plugin default.
type SingleVariable struct {
	VarName string

	defaultName string
}

// BindVar registers the variable name option, defaulting to def.
func (s *SingleVariable) BindVar(fs *pflag.FlagSet, def string) {
	s.defaultName = def
	fs.StringVarP(&s.VarName, "var_name", "n", def, "the name of the variable")
}

// CheckVar validates that a variable name was supplied or defaulted.
func (s *SingleVariable) CheckVar() error {
	if s.VarName == "" {
		return errors.Validation("no variable name provided")
	}
	return nil
}

// ParseOne parses a command line that must yield exactly one generator.
func ParseOne(cmdline string, reg *flow.Registry) (Generator, error) {
	tokens, err := flow.SplitCmdline(cmdline)
	if err != nil {
		return nil, err
	}
	gens, err := Parse(tokens, reg)
	if err != nil {
		return nil, err
	}
	if len(gens) != 1 {
		return nil, errors.Arity("generator", 1, len(gens))
	}
	return gens[0], nil
}

// Parse instantiates all generators named in a token sequence.
func Parse(tokens []string, reg *flow.Registry) ([]Generator, error) {
	plugins, err := flow.Instantiate(tokens, reg, flow.KindGenerator)
	if err != nil {
		return nil, err
	}
	gens := make([]Generator, 0, len(plugins))
	for _, plugin := range plugins {
		g, ok := plugin.(Generator)
		if !ok {
			return nil, errors.Composition("plugin %q is not a generator", plugin.Name())
		}
		gens = append(gens, g)
	}
	return gens, nil
}

// ParseSpecs resolves one generator per spec string, in order.
func ParseSpecs(specs []string, reg *flow.Registry) ([]Generator, error) {
	gens := make([]Generator, 0, len(specs))
	for _, spec := range specs {
		g, err := ParseOne(spec, reg)
		if err != nil {
			return nil, err
		}
		gens = append(gens, g)
	}
	return gens, nil
}
