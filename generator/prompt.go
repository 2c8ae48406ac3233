package generator

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
)

// DefaultPromptMessage is the prompt shown when no custom message is
// configured. It expects one %s for the variable name.
const DefaultPromptMessage = "Please enter value for variable '%s': "

// Prompt asks the user to enter a value for each configured variable
// and outputs a single binding with all answers.
type Prompt struct {
	VarNames []string
	Message  string

	// In and Out default to stdin/stdout.
	In  io.Reader
	Out io.Writer
}

func NewPrompt() *Prompt { return &Prompt{} }

func (g *Prompt) Name() string { return "prompt" }

func (g *Prompt) Description() string {
	return "Prompts the user to enter values for the specified variables."
}

func (g *Prompt) Bind(fs *pflag.FlagSet) {
	fs.StringSliceVarP(&g.VarNames, "var_names", "v", nil, "the variable names to prompt the user for")
	fs.StringVarP(&g.Message, "message", "m", "",
		"the custom prompt message; expects one %s which gets expanded with the variable name")
}

func (g *Prompt) Check() error {
	if len(g.VarNames) == 0 {
		return errors.Validation("no variable names specified")
	}
	if g.Message != "" && !strings.Contains(g.Message, "%s") {
		return errors.Validation("prompt message requires a single %%s to be present")
	}
	return nil
}

func (g *Prompt) Produce() ([]*Binding, error) {
	msg := g.Message
	if msg == "" {
		msg = DefaultPromptMessage
	}
	in := g.In
	if in == nil {
		in = os.Stdin
	}
	out := g.Out
	if out == nil {
		out = os.Stdout
	}

	scanner := bufio.NewScanner(in)
	binding := NewBinding()
	for _, name := range g.VarNames {
		fmt.Fprintf(out, msg, name)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, errors.Load("stdin", err)
			}
			return nil, errors.Validation("no input for variable %q", name)
		}
		binding.Set(name, strings.TrimSpace(scanner.Text()))
	}
	return []*Binding{binding}, nil
}
