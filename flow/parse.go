package flow

import (
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
)

var validate = validator.New()

// configure parses a plugin's argument group through its own flag
// schema and validates the resulting options.
func configure(plugin Plugin, args []string) error {
	fs := pflag.NewFlagSet(plugin.Name(), pflag.ContinueOnError)
	fs.Usage = func() {} // errors are surfaced, not printed
	plugin.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return errors.Configuration("invalid options for plugin %q", plugin.Name()).WithCause(err)
	}
	if ob, ok := plugin.(OptionBearer); ok {
		if err := validate.Struct(ob.Options()); err != nil {
			return errors.Configuration("invalid options for plugin %q", plugin.Name()).WithCause(err)
		}
	}
	return nil
}

// Instantiate turns a token sequence into configured plugin instances,
// searching the registry under the given kinds.
func Instantiate(tokens []string, reg *Registry, kinds ...Kind) ([]Plugin, error) {
	groups, err := SplitGroups(tokens, reg.Names(kinds...))
	if err != nil {
		return nil, err
	}
	plugins := make([]Plugin, 0, len(groups))
	for _, group := range groups {
		plugin, _, ok := reg.Create(group.Name, kinds...)
		if !ok {
			return nil, errors.Composition("unknown plugin: %q", group.Name)
		}
		if err := configure(plugin, group.Args); err != nil {
			return nil, err
		}
		plugins = append(plugins, plugin)
	}
	return plugins, nil
}

// parseOne instantiates a command line that must resolve to exactly one
// plugin of the requested kind.
func parseOne(cmdline string, reg *Registry, kind Kind) (Plugin, error) {
	if cmdline == "" {
		return nil, errors.Configuration("no %s command line supplied", kind)
	}
	tokens, err := SplitCmdline(cmdline)
	if err != nil {
		return nil, err
	}
	plugins, err := Instantiate(tokens, reg, kind)
	if err != nil {
		return nil, err
	}
	if len(plugins) != 1 {
		return nil, errors.Arity(string(kind), 1, len(plugins))
	}
	return plugins[0], nil
}

// ParseReader parses a command line that must yield exactly one reader.
func ParseReader(cmdline string, reg *Registry) (Reader, error) {
	plugin, err := parseOne(cmdline, reg, KindReader)
	if err != nil {
		return nil, err
	}
	reader, ok := plugin.(Reader)
	if !ok {
		return nil, errors.Composition("plugin %q is not a reader", plugin.Name())
	}
	return reader, nil
}

// ParseFilter parses a command line that must yield exactly one filter.
func ParseFilter(cmdline string, reg *Registry) (Filter, error) {
	plugin, err := parseOne(cmdline, reg, KindFilter)
	if err != nil {
		return nil, err
	}
	filter, ok := plugin.(Filter)
	if !ok {
		return nil, errors.Composition("plugin %q is not a filter", plugin.Name())
	}
	return filter, nil
}

// ParseWriter parses a command line that must yield exactly one writer.
func ParseWriter(cmdline string, reg *Registry) (Writer, error) {
	plugin, err := parseOne(cmdline, reg, KindWriter)
	if err != nil {
		return nil, err
	}
	writer, ok := plugin.(Writer)
	if !ok {
		return nil, errors.Composition("plugin %q is not a writer", plugin.Name())
	}
	return writer, nil
}
