package generator

import "github.com/spf13/pflag"

// Null outputs a single empty binding, making the template run exactly
// once without any substitutions.
type Null struct{}

func NewNull() *Null { return &Null{} }

func (g *Null) Name() string { return "null" }

func (g *Null) Description() string {
	return "Outputs a single empty binding, running the template once without substitutions."
}

func (g *Null) Bind(fs *pflag.FlagSet) {}

func (g *Null) Check() error { return nil }

func (g *Null) Produce() ([]*Binding, error) {
	return []*Binding{NewBinding()}, nil
}
