package flow

import (
	"github.com/kbukum/pipekit/errors"
)

// SubFlow is an assembled reader/filter(s)/writer composition. Reader
// and Writer may be nil; Filter is nil, a single filter, or a
// MultiFilter wrapping the ordered chain.
type SubFlow struct {
	Reader Reader
	Filter Filter
	Writer Writer
}

// Empty reports whether nothing was assembled.
func (s *SubFlow) Empty() bool {
	return s.Reader == nil && s.Filter == nil && s.Writer == nil
}

// Plugins returns the members in role order: reader, filter, writer.
func (s *SubFlow) Plugins() []Plugin {
	var plugins []Plugin
	if s.Reader != nil {
		plugins = append(plugins, s.Reader)
	}
	if s.Filter != nil {
		plugins = append(plugins, s.Filter)
	}
	if s.Writer != nil {
		plugins = append(plugins, s.Writer)
	}
	return plugins
}

// Init initializes all members with the shared session.
func (s *SubFlow) Init(sess *Session) error {
	for _, plugin := range s.Plugins() {
		if lc, ok := plugin.(Lifecycle); ok {
			if err := lc.Init(sess); err != nil {
				return errors.Configuration("failed to initialize plugin %q", plugin.Name()).WithCause(err)
			}
		}
	}
	return nil
}

// Assemble splits a token sequence into plugin-argument groups against
// the registry and classifies the instances into reader/filter/writer
// roles. A second reader or writer is a composition error; a writer
// terminates the scan and residual plugins after it are a composition
// error.
func Assemble(tokens []string, reg *Registry) (*SubFlow, error) {
	plugins, err := Instantiate(tokens, reg, KindReader, KindFilter, KindWriter)
	if err != nil {
		return nil, err
	}

	result := &SubFlow{}
	var filters []Filter
	for _, plugin := range plugins {
		if result.Writer != nil {
			return nil, errors.Composition("plugin %q defined after writer %q", plugin.Name(), result.Writer.Name())
		}
		switch p := plugin.(type) {
		case Reader:
			if result.Reader != nil {
				return nil, errors.Composition("more than one reader defined: %q and %q", result.Reader.Name(), p.Name())
			}
			result.Reader = p
		case Filter:
			filters = append(filters, p)
		case Writer:
			result.Writer = p
		default:
			return nil, errors.Composition("plugin %q has no pipeline role", plugin.Name())
		}
	}

	switch len(filters) {
	case 0:
	case 1:
		result.Filter = filters[0]
	default:
		result.Filter = NewMultiFilter(filters)
	}
	return result, nil
}
