package flow

import (
	"strings"

	"github.com/spf13/pflag"
)

// MultiFilter wraps an ordered list of filters into a single composite
// unit so downstream composition only addresses one filter.
type MultiFilter struct {
	Base
	filters []Filter
}

// NewMultiFilter creates a composite over the given filters.
func NewMultiFilter(filters []Filter) *MultiFilter {
	return &MultiFilter{filters: filters}
}

func (m *MultiFilter) Name() string { return "multi-filter" }

func (m *MultiFilter) Description() string {
	names := make([]string, len(m.filters))
	for i, f := range m.filters {
		names[i] = f.Name()
	}
	return "Applies the filters in sequence: " + strings.Join(names, ", ")
}

// Bind is a no-op; the members were configured individually before
// being wrapped.
func (m *MultiFilter) Bind(fs *pflag.FlagSet) {}

// Filters returns the wrapped filters in application order.
func (m *MultiFilter) Filters() []Filter { return m.filters }

// Init initializes all member filters with the shared session.
func (m *MultiFilter) Init(sess *Session) error {
	m.Attach(m.Name(), sess)
	for _, f := range m.filters {
		if err := f.Init(sess); err != nil {
			return err
		}
	}
	return nil
}

// Process applies the member filters in sequence.
func (m *MultiFilter) Process(data Payload) (Payload, error) {
	var err error
	for _, f := range m.filters {
		data, err = f.Process(data)
		if err != nil {
			return data, err
		}
	}
	return data, nil
}

// Finalize finalizes all member filters. Errors are logged and
// swallowed so every member gets a chance to clean up.
func (m *MultiFilter) Finalize() error {
	for _, f := range m.filters {
		if err := f.Finalize(); err != nil && m.Log != nil {
			m.Log.Error("filter finalize failed", map[string]interface{}{
				"filter": f.Name(), "error": err.Error()})
		}
	}
	return nil
}
