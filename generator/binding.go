package generator

import (
	"fmt"
	"strings"
)

// Binding is one concrete assignment of variable names to string
// values. Insertion order is preserved and defines the substitution
// order during template expansion.
type Binding struct {
	keys   []string
	values map[string]string
}

// NewBinding returns an empty binding.
func NewBinding() *Binding {
	return &Binding{values: make(map[string]string)}
}

// Set assigns a value, appending the key on first use.
func (b *Binding) Set(name, value string) *Binding {
	if _, exists := b.values[name]; !exists {
		b.keys = append(b.keys, name)
	}
	b.values[name] = value
	return b
}

// Get looks up a value by name.
func (b *Binding) Get(name string) (string, bool) {
	v, ok := b.values[name]
	return v, ok
}

// Keys returns the variable names in insertion order.
func (b *Binding) Keys() []string {
	result := make([]string, len(b.keys))
	copy(result, b.keys)
	return result
}

// Len returns the number of variables.
func (b *Binding) Len() int { return len(b.keys) }

// Merge combines the receiver with an inner binding into a new one.
// The receiver's keys come first; keys present in both take the inner
// binding's value.
func (b *Binding) Merge(inner *Binding) *Binding {
	result := NewBinding()
	for _, k := range b.keys {
		result.Set(k, b.values[k])
	}
	for _, k := range inner.keys {
		result.Set(k, inner.values[k])
	}
	return result
}

// String renders the binding as name=value pairs in insertion order.
func (b *Binding) String() string {
	parts := make([]string, 0, len(b.keys))
	for _, k := range b.keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, b.values[k]))
	}
	return strings.Join(parts, " ")
}
